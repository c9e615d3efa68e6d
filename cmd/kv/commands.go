package kv

import (
	"fmt"
	"os"

	"github.com/VictoriaMetrics/metrics"
	"github.com/spf13/cobra"
)

var (
	setCmd = &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Sets the value for a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]
			if existed, err := database.Set(key, value); err != nil {
				return err
			} else {
				fmt.Printf("set successfully (existed=%t)\n", existed)
			}
			return nil
		},
	}
	getCmd = &cobra.Command{
		Use:   "get [key]",
		Short: "Reads the value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if value, found, err := database.Get(key); err != nil {
				return err
			} else {
				fmt.Printf("key=%s, found=%v, value=%s\n", key, found, value)
			}
			return nil
		},
	}
	delCmd = &cobra.Command{
		Use:   "del [key]",
		Short: "Deletes a key value pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if err := database.Delete(key); err != nil {
				return err
			} else {
				fmt.Println("delete successfully")
			}
			return nil
		},
	}
	hasCmd = &cobra.Command{
		Use:   "has [key]",
		Short: "Checks if a key exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if found, err := database.Has(key); err != nil {
				return err
			} else {
				fmt.Printf("key=%s, found=%t\n", key, found)
			}
			return nil
		},
	}
	clearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Removes every key value pair of the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.Clear(); err != nil {
				return err
			}
			fmt.Println("clear successfully")
			return nil
		},
	}
	entriesCmd = &cobra.Command{
		Use:   "entries",
		Short: "Lists all key value pairs of the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := database.Entries()
			if err != nil {
				return err
			}
			for _, entry := range entries {
				fmt.Printf("%s=%s\n", entry.Key, entry.Value)
			}
			fmt.Printf("(%d entries)\n", len(entries))
			return nil
		},
	}
	repairCmd = &cobra.Command{
		Use:   "repair",
		Short: "Reconciles the key index with the entries actually stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := database.Repair()
			if err != nil {
				return err
			}
			fmt.Printf("repair removed %d stale items\n", removed)
			return nil
		},
	}
	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Dumps operation metrics in Prometheus text format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics.WritePrometheus(os.Stdout, false)
			return nil
		},
	}
)

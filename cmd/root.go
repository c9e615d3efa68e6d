package cmd

import (
	"fmt"
	"os"

	"github.com/MRUIAW/ReplayCraft/cmd/kv"
	"github.com/MRUIAW/ReplayCraft/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "1.2.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "replaycraft",
		Short: "embedded chunked key-value store",
		Long: fmt.Sprintf(`ReplayCraft store (v%s)

An embedded key-value database built on top of primitive property
stores with bounded entry sizes, splitting large values into chunks
transparently.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of the ReplayCraft store",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("replaycraft v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(kv.KeyValueCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "raw", util.WrapString("serializer to use for values (raw, json, gob)"))
	key = "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("log level (debug, info, warn, error)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package kv

import (
	"fmt"
	"strings"
	"time"

	"github.com/MRUIAW/ReplayCraft/cmd/util"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for the database layer",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfKeyPrefix   = "__perf"
	perfOps         = 1000
	perfValueSizeKB = 100
	perfKeySpread   = 100
	perfSkip        = make([]string, 0)
)

func init() {
	// add flags
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. set,get)"))
	key = "ops"
	perfTestCmd.Flags().Int(key, 1000, util.WrapString("Number of operations per benchmark"))
	key = "large-value-size"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How large the value for the set-large test should be (in KB)"))
	key = "keys"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How many different keys to use for the tests"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfOps = viper.GetInt("ops")
	perfValueSizeKB = viper.GetInt("large-value-size")
	perfKeySpread = viper.GetInt("keys")
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {

	fmt.Println("Performance testing tool for the ReplayCraft store")
	fmt.Println()
	fmt.Printf("Operations per benchmark: %d\n", perfOps)
	fmt.Printf("Key spread: %d\n", perfKeySpread)
	fmt.Printf("Large value size: %d KB\n", perfValueSizeKB)
	fmt.Println()

	perfKey := func(counter int) string {
		return fmt.Sprintf("%s-%d", perfKeyPrefix, counter%perfKeySpread)
	}

	// cleanup all benchmark keys afterwards
	defer func() {
		for i := 0; i < perfKeySpread; i++ {
			if err := database.Delete(perfKey(i)); err != nil {
				fmt.Printf("error cleaning up key %s: %v\n", perfKey(i), err)
			}
		}
	}()

	if !shouldSkip("set") {
		timer := gometrics.NewTimer()
		for i := 0; i < perfOps; i++ {
			counter := i
			timer.Time(func() {
				if _, err := database.Set(perfKey(counter), "test"); err != nil {
					fmt.Printf("(set) - error setting key: %v\n", err)
				}
			})
		}
		printTimer("set", timer)
	}

	if !shouldSkip("set-large") {
		largeValue := strings.Repeat("x", perfValueSizeKB*1024)

		timer := gometrics.NewTimer()
		for i := 0; i < perfOps; i++ {
			counter := i
			timer.Time(func() {
				if _, err := database.Set(perfKey(counter), largeValue); err != nil {
					fmt.Printf("(set-large) - error setting key: %v\n", err)
				}
			})
		}
		printTimer("set-large", timer)
	}

	if !shouldSkip("get") {
		if _, err := database.Set(perfKey(0), "test"); err != nil {
			return err
		}

		timer := gometrics.NewTimer()
		for i := 0; i < perfOps; i++ {
			counter := i
			timer.Time(func() {
				if _, _, err := database.Get(perfKey(counter)); err != nil {
					fmt.Printf("(get) - error getting key: %v\n", err)
				}
			})
		}
		printTimer("get", timer)
	}

	if !shouldSkip("entries") {
		timer := gometrics.NewTimer()
		for i := 0; i < perfOps; i++ {
			timer.Time(func() {
				if _, err := database.Entries(); err != nil {
					fmt.Printf("(entries) - error listing entries: %v\n", err)
				}
			})
		}
		printTimer("entries", timer)
	}

	return nil
}

// shouldSkip returns whether the benchmark with the given name was skipped via flag
func shouldSkip(name string) bool {
	for _, skip := range perfSkip {
		if strings.TrimSpace(skip) == name {
			fmt.Printf("%-10s skipped\n", name)
			return true
		}
	}
	return false
}

// printTimer prints one result line for a benchmark timer
func printTimer(name string, timer gometrics.Timer) {
	toMs := func(ns float64) float64 { return ns / float64(time.Millisecond) }

	fmt.Printf("%-10s count=%d mean=%.3fms p50=%.3fms p95=%.3fms p99=%.3fms max=%.3fms\n",
		name,
		timer.Count(),
		toMs(timer.Mean()),
		toMs(timer.Percentile(0.5)),
		toMs(timer.Percentile(0.95)),
		toMs(timer.Percentile(0.99)),
		toMs(float64(timer.Max())),
	)
}

package kv

import (
	"github.com/MRUIAW/ReplayCraft/cmd/util"
	"github.com/MRUIAW/ReplayCraft/lib/common"
	"github.com/MRUIAW/ReplayCraft/lib/propdb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	database propdb.IDatabase[string]

	// KeyValueCommands represents the KV command group
	KeyValueCommands = &cobra.Command{
		Use:               "kv",
		Short:             "Perform key-value database operations",
		PersistentPreRunE: setupDatabase,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add common store flags to the KV command
	util.SetupStoreFlags(KeyValueCommands)

	// Add subcommands
	KeyValueCommands.AddCommand(setCmd)
	KeyValueCommands.AddCommand(getCmd)
	KeyValueCommands.AddCommand(delCmd)
	KeyValueCommands.AddCommand(hasCmd)
	KeyValueCommands.AddCommand(clearCmd)
	KeyValueCommands.AddCommand(entriesCmd)
	KeyValueCommands.AddCommand(repairCmd)
	KeyValueCommands.AddCommand(statsCmd)
	KeyValueCommands.AddCommand(perfTestCmd)
}

// setupDatabase opens the configured database for the subcommands
func setupDatabase(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	common.InitLoggers(viper.GetString("log-level"))

	var err error
	database, err = util.GetDatabase()
	return err
}

package proc

import (
	"github.com/shaik-zeeshan/circle/cmd/util"
	"github.com/shaik-zeeshan/circle/lib/procstore"
	"github.com/spf13/cobra"
)

var (
	storeClient *procstore.Client

	// ProcCommands represents the process command group
	ProcCommands = &cobra.Command{
		Use:               "proc",
		Short:             "Manage processes registered with the daemon",
		PersistentPreRunE: setupProcClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common socket flags to the proc command
	util.SetupClientFlags(ProcCommands)

	// Add subcommands
	ProcCommands.AddCommand(startCmd)
	ProcCommands.AddCommand(stopCmd)
	ProcCommands.AddCommand(listCmd)
	ProcCommands.AddCommand(statusCmd)
	ProcCommands.AddCommand(perfTestCmd)
}

// setupProcClient initializes the process-store client
func setupProcClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	storeClient = procstore.NewClient(*util.GetClientConfig())
	return nil
}

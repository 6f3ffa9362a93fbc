package proc

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	startCmd = &cobra.Command{
		Use:   "start [name] [command]",
		Short: "Registers a named process with the daemon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			command := args[1]
			if msg, err := storeClient.Start(name, command); err != nil {
				return err
			} else {
				fmt.Println(msg)
			}
			return nil
		},
	}
	stopCmd = &cobra.Command{
		Use:   "stop [name]",
		Short: "Removes a named process from the daemon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if msg, err := storeClient.Stop(name); err != nil {
				return err
			} else {
				fmt.Println(msg)
			}
			return nil
		},
	}
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Lists all processes registered with the daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := storeClient.List()
			if err != nil {
				return err
			}

			if len(processes) == 0 {
				fmt.Println("No running processes")
				return nil
			}

			// Sort names for consistent output
			names := make([]string, 0, len(processes))
			for name := range processes {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Printf("%d running processes:\n", len(processes))
			for _, name := range names {
				fmt.Printf("  %s: %s\n", name, processes[name])
			}
			return nil
		},
	}
	statusCmd = &cobra.Command{
		Use:   "status [name]",
		Short: "Shows the status of a named process",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			status, err := storeClient.Status(name)
			if err != nil {
				return err
			}
			fmt.Printf("name=%s, command=%s, uptime=%ds\n", status.Name, status.Command, status.UptimeSeconds)
			return nil
		},
	}
)

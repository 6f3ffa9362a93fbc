package cmd

import (
	"fmt"
	"os"

	"github.com/shaik-zeeshan/circle/cmd/proc"
	"github.com/shaik-zeeshan/circle/cmd/serve"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "circle",
		Short: "Unix-socket IPC for CLI background process management",
		Long: fmt.Sprintf(`circle (v%s)

A minimal request/response RPC mechanism over local Unix domain sockets,
pairing a long-running daemon with short-lived CLI invocations.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of circle",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("circle v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(proc.ProcCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

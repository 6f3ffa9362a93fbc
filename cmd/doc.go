// Package cmd implements the command-line interface for circle. It provides
// a hierarchical command structure with operations for running the daemon
// and interacting with it as a client.
//
// The package is organized into several subpackages:
//
//   - serve: Commands for starting and configuring the circle daemon
//   - proc: Commands for process operations (start, stop, list, status, perf)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See circle -help for a list of all commands.
package cmd

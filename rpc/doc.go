// Package rpc provides a minimal request/response RPC mechanism over local
// Unix domain sockets, intended for single-machine IPC between a long-running
// background process and short-lived client invocations, such as a CLI
// talking to a daemon.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures used across the RPC system, including the
//     request and response envelopes, configuration structures, the error
//     taxonomy and logging.
//
//   - serializer: Envelope serialization to and from the self-describing
//     JSON wire format.
//
//   - server: The connection acceptor. Binds the socket, accepts connections,
//     and dispatches each to a handler registered under the request's command
//     name, one goroutine per connection.
//
//   - client: The request dispatcher. Performs one timed connect/write/read
//     exchange per call, plus a fire-and-forget variant.
package rpc

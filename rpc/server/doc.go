// Package server implements the accepting side of the circle IPC system:
// a Unix domain socket listener that routes each incoming request envelope
// to a registered handler and writes back exactly one response envelope.
//
// Connection model: one goroutine per accepted connection, one read and one
// write per connection, no keep-alive and no ordering across connections.
// Failures are confined to the connection they occur on; the accept loop
// itself only ever logs and continues.
//
// Startup claims the socket path defensively: a pre-existing file is probed
// with a short dial and only removed when nothing answers, so a live server
// on the same path surfaces as an AddressInUse error instead of being
// clobbered.
//
// Key Components:
//
//   - SocketServer: Listener lifecycle, accept loop and per-connection
//     round-trip handling, with per-command request counters and latency
//     summaries.
//
//   - HandlerFunc / TypedHandler: The application contract. Handlers map a
//     decoded request envelope to a response envelope or an error; TypedHandler
//     lifts plain functions over concrete data shapes into that contract.
//
//   - registry: Concurrent command-to-handler mapping shared by all
//     per-connection goroutines.
package server

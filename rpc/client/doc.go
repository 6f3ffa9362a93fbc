// Package client implements the dispatching side of the circle IPC system.
// Each call performs exactly one exchange: a fresh connect, a single request
// write followed by a half-close, and a single response read. Connect and
// read are each bounded by the configured timeout; timeouts surface as
// ConnectionTimeout errors, distinct from plain Io failures, so callers can
// tell a slow or unreachable server from a local transport fault.
//
// The client never interprets application-level failure: a well-formed
// response with Success=false is returned to the caller unchanged. Only
// transport, timeout and decode failures are raised as errors.
//
// Key Components:
//
//   - SocketClient: The exchange primitive (Send) and its fire-and-forget
//     variant (Notify), which writes and half-closes without reading.
//
//   - Request / NotifyWith: Generic typed wrappers that build the envelope,
//     perform the exchange and decode the response body into the caller's
//     expected shape without that shape affecting the wire format.
package client

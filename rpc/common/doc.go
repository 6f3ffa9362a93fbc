// Package common provides core data structures and utilities shared across
// the circle IPC system. It defines fundamental types, configuration
// structures, and protocol elements used by other packages.
//
// The package focuses on:
//   - Envelope definition for request/response communication over the socket
//   - Configuration structures for client and server components
//   - The error taxonomy of the RPC core
//   - Custom logging implementation shared by all packages
//
// Key Components:
//
//   - Payload: Request envelope carrying a unique request id, the command
//     name used for handler routing and an opaque application body. Typed
//     helpers (NewPayload, DecodeData) let callers work with concrete types
//     while the wire stays self-describing JSON.
//
//   - Response: Response envelope correlated to its request by id. Exactly
//     one of data/error is set, determined by the success flag. Created via
//     the NewSuccessResponse and NewErrorResponse factories.
//
//   - ServerConfig / ClientConfig: Socket path and timeout configuration for
//     the two endpoints of an exchange.
//
//   - SocketError: Error type carrying an ErrCode that classifies failures
//     into Io, Serialization, AddressInUse, ConnectionTimeout,
//     HandlerNotFound and InvalidRequest.
//
//   - Logger: Custom logging implementation with consistent formatting
//     across the application.
package common

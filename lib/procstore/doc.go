// Package procstore is the example application built on the circle RPC
// core: an in-memory table of named processes managed by a daemon and
// queried by short-lived CLI invocations.
//
// The store owns its shared state. The RPC core only routes envelopes; the
// process table is synchronized here, independently of the handler registry.
//
// Key Components:
//
//   - Store: Concurrent name -> command table with start/stop/list/status
//     operations and the handlers a daemon registers for them.
//
//   - Client: Typed client adapter over the socket dispatcher. It translates
//     failed responses into errors, which is deliberately the application's
//     job rather than the dispatcher's.
package procstore

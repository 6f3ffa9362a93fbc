package server

import (
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/shaik-zeeshan/circle/rpc/common"
)

// --------------------------------------------------------------------------
// Handler Registry
// --------------------------------------------------------------------------

// HandlerFunc processes one decoded request envelope and returns either a
// response envelope or an error. A returned error is not a connection abort:
// the server encodes it as a failed Response carrying the stringified error.
type HandlerFunc func(p *common.Payload) (*common.Response, error)

// registry maps command names to their handlers. It is shared across all
// per-connection goroutines: reads are concurrent, writes are allowed while
// serving but carry no ordering guarantee relative to in-flight lookups.
type registry struct {
	handlers *xsync.MapOf[string, HandlerFunc]
}

func newRegistry() *registry {
	return &registry{
		handlers: xsync.NewMapOf[string, HandlerFunc](),
	}
}

// register stores a handler under its command name, replacing any previous
// registration for that name.
func (r *registry) register(command string, handler HandlerFunc) {
	r.handlers.Store(command, handler)
}

// lookup returns the handler for a command, if one is registered.
func (r *registry) lookup(command string) (HandlerFunc, bool) {
	return r.handlers.Load(command)
}

// --------------------------------------------------------------------------
// Typed Handler Adapter
// --------------------------------------------------------------------------

// TypedHandler adapts a function on concrete request/response shapes into a
// HandlerFunc. The envelope body is decoded into T before the function runs
// and its result is wrapped in a success Response; errors pass through and
// become failed Responses at the connection layer.
func TypedHandler[T, R any](fn func(data T) (R, error)) HandlerFunc {
	return func(p *common.Payload) (*common.Response, error) {
		data, err := common.DecodeData[T](p)
		if err != nil {
			return nil, err
		}

		result, err := fn(data)
		if err != nil {
			return nil, err
		}

		return common.NewSuccessResponse(p.RequestID, result)
	}
}

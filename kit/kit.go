// Package kit provides transport-agnostic endpoint plumbing shared by the
// sunrise agent surfaces: a typed Endpoint, middleware chaining, and the
// MCP registration glue.
//
// An Endpoint is the unit of business logic. Transports (MCP, HTTP dispatch)
// decode their wire format into a typed request, invoke the Endpoint, and
// encode the response back out. The same Endpoint can serve both transports.
package kit

import "context"

// Endpoint is a transport-agnostic business operation.
type Endpoint func(ctx context.Context, req any) (any, error)

// Middleware wraps an Endpoint with cross-cutting behaviour.
type Middleware func(Endpoint) Endpoint

// Chain composes middlewares left to right: the first middleware is the
// outermost wrapper.
func Chain(mws ...Middleware) Middleware {
	return func(next Endpoint) Endpoint {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}

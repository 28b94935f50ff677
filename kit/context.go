package kit

import "context"

type contextKey string

const (
	// TransportKey labels which surface a request arrived on: "http" or "mcp".
	TransportKey contextKey = "kit_transport"
	// RequestIDKey carries the per-request ID assigned by the transport.
	RequestIDKey contextKey = "kit_request_id"
	// TraceIDKey carries the trace ID propagated from the HTTP middleware.
	TraceIDKey contextKey = "kit_trace_id"
)

func WithTransport(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, TransportKey, t)
}

func GetTransport(ctx context.Context) string {
	v, _ := ctx.Value(TransportKey).(string)
	return v
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(RequestIDKey).(string)
	return v
}

func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, TraceIDKey, id)
}

func GetTraceID(ctx context.Context) string {
	v, _ := ctx.Value(TraceIDKey).(string)
	return v
}

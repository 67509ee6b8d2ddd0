package ctxutil

import "context"

type requestIDsKey struct{}

// RequestIDs identifies one inbound request. The same values appear on the
// access line, on service log lines and in error bodies returned to clients.
type RequestIDs struct {
	TraceID   string
	RequestID string
}

func WithRequestIDs(ctx context.Context, ids RequestIDs) context.Context {
	return context.WithValue(ctx, requestIDsKey{}, ids)
}

// RequestIDsFrom returns the ids attached to ctx, or the zero value.
func RequestIDsFrom(ctx context.Context) RequestIDs {
	if ctx == nil {
		return RequestIDs{}
	}
	ids, _ := ctx.Value(requestIDsKey{}).(RequestIDs)
	return ids
}

// LogFields renders the ids as logger key/value pairs, skipping empty ones.
func LogFields(ctx context.Context) []interface{} {
	ids := RequestIDsFrom(ctx)
	var kv []interface{}
	if ids.RequestID != "" {
		kv = append(kv, "request_id", ids.RequestID)
	}
	if ids.TraceID != "" {
		kv = append(kv, "trace_id", ids.TraceID)
	}
	return kv
}

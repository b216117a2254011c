package log

import "context"

type ctxKey struct{}

// ctxValues is what the logger pulls out of a request context.
type ctxValues struct {
	requestID string
	fields    map[string]any
}

func valuesFrom(ctx context.Context) ctxValues {
	if ctx == nil {
		return ctxValues{}
	}
	v, _ := ctx.Value(ctxKey{}).(ctxValues)
	return v
}

// WithRequestID returns a context carrying the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	v := valuesFrom(ctx)
	v.requestID = id
	return context.WithValue(ctx, ctxKey{}, v)
}

// RequestIDFromContext returns the request ID, or "" when none is set.
func RequestIDFromContext(ctx context.Context) string {
	return valuesFrom(ctx).requestID
}

// WithFields returns a context whose entries carry the extra fields.
// Existing fields are kept unless overwritten by the same key.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	v := valuesFrom(ctx)
	fields := make(map[string]any, len(v.fields)+len(keysAndValues)/2)
	for k, val := range v.fields {
		fields[k] = val
	}
	mergeFields(fields, keysAndValues)
	v.fields = fields
	return context.WithValue(ctx, ctxKey{}, v)
}

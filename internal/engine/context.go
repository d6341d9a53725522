package engine

import "context"

type contextKey string

const suppressHeaderKey contextKey = "suppressHeader"

// WithSuppressHeader returns a context that suppresses the scoring header.
// Used by programmatic consumers such as the MCP server, where banner output
// would corrupt the protocol stream.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader reports whether header output is suppressed.
func shouldSuppressHeader(ctx context.Context) bool {
	v, _ := ctx.Value(suppressHeaderKey).(bool)
	return v
}

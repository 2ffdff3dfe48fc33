package identity

import "context"

type contextKey struct{}

// NewContext returns a context carrying the caller's user id.
func NewContext(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// FromContext returns the caller's user id, if one was extracted.
func FromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(contextKey{}).(string)
	return userID, ok && userID != ""
}

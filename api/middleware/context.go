package middleware

import "context"

type contextKey string

const cartIDKey contextKey = "cart_id"

// CartIDFromContext returns the cart session ID attached by CartSession,
// or empty when the middleware did not run.
func CartIDFromContext(ctx context.Context) string {
	if value, ok := ctx.Value(cartIDKey).(string); ok {
		return value
	}
	return ""
}

// WithCartID attaches a cart session ID to the context.
func WithCartID(ctx context.Context, cartID string) context.Context {
	return context.WithValue(ctx, cartIDKey, cartID)
}

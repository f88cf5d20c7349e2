package virtualclock

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying c.
func NewContext(ctx context.Context, c *Clock) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the Clock stored in ctx by NewContext.
func FromContext(ctx context.Context) (*Clock, bool) {
	c, ok := ctx.Value(contextKey{}).(*Clock)
	return c, ok && c != nil
}

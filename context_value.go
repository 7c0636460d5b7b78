package sig

import "github.com/nodegraph-dev/sig/internal"

// Context is a dependency-injection-style value inherited down the Owner
// tree: a descendant Owner sees the nearest ancestor's Set value, or the
// Context's initial value if none was ever Set. Not to be confused with the
// engine's own internal.Context (the single per-process reactive object);
// this is purely a public convenience layered on top of the Owner tree.
type Context[T any] struct {
	key     *int
	initial T
}

// NewContext creates a context carrying initial until some Owner calls Set.
func NewContext[T any](initial T) *Context[T] {
	return &Context[T]{key: new(int), initial: initial}
}

// Value returns the nearest ancestor Owner's Set value, or initial if none
// was ever set along the current owner chain.
func (c *Context[T]) Value() T {
	if v, ok := internal.ContextValue(ctx(), c.key); ok {
		return v.(T)
	}
	return c.initial
}

// Set stores value on the currently active Owner.
func (c *Context[T]) Set(value T) {
	internal.SetContextValue(ctx(), c.key, value)
}

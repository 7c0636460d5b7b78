package sig

import "github.com/nodegraph-dev/sig/internal"

// Computed is a derived cell: a pure function of other signals/computeds,
// eagerly evaluated once at construction and memoized with equality.
type Computed[T any] struct {
	node *internal.Computed
}

// NewComputed creates a memoized derived cell using == as its equality.
// Must be called inside a root scope (Owner.Run / CreateRoot), or from
// within another node's own recompute.
func NewComputed[T any](compute func() T) *Computed[T] {
	return NewComputedWithEqual(compute, defaultEqual[T])
}

// NewComputedWithEqual creates a memoized derived cell with a custom
// equality function gating whether dependents see a change.
func NewComputedWithEqual[T any](compute func() T, equal func(a, b T) bool) *Computed[T] {
	c := internal.NewComputed(ctx(), func() any {
		return compute()
	}, func(a, b any) bool {
		return equal(a.(T), b.(T))
	})
	return &Computed[T]{node: c}
}

// Read returns the last computed value, tracking the dependency if called
// from within a reactive context.
func (c *Computed[T]) Read() T {
	return as[T](c.node.Read(ctx()))
}

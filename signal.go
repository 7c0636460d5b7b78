package sig

import "github.com/nodegraph-dev/sig/internal"

// Signal is a source cell: a value mutated externally, whose reads register
// as dependencies when called from inside a tracking frame (a Computed
// recompute or an Effect run).
type Signal[T any] struct {
	node *internal.Signal
}

// NewSignal creates a source cell holding initial, using == as its
// change-detection equality.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{node: internal.NewSignal(ctx(), initial, func(a, b any) bool {
		return defaultEqual(a.(T), b.(T))
	})}
}

// NewSignalWithEqual creates a source cell using a custom equality function
// to decide whether a Write is a no-op.
func NewSignalWithEqual[T any](initial T, equal func(a, b T) bool) *Signal[T] {
	return &Signal[T]{node: internal.NewSignal(ctx(), initial, func(a, b any) bool {
		return equal(a.(T), b.(T))
	})}
}

// Read returns the current value, tracking the dependency if called from
// within a reactive context.
func (s *Signal[T]) Read() T {
	return as[T](s.node.Read(ctx()))
}

// Write replaces the value, triggering dependents if it differs under the
// signal's equality.
func (s *Signal[T]) Write(v T) {
	s.node.Write(ctx(), v)
}

// Update replaces the value with mut(current value).
func (s *Signal[T]) Update(mut func(T) T) {
	c := ctx()
	current := as[T](s.node.Peek())
	s.node.Write(c, mut(current))
}

// Package sig is a fine-grained reactive runtime: signals, memoized derived
// cells, and deferred effects over a dependency graph, with root-scope
// ownership for bulk disposal.
package sig

import "github.com/nodegraph-dev/sig/internal"

// Accessor lets a host retrieve the engine's Context from whatever
// container it already uses (an ECS resource slot, a service locator)
// instead of the package-wide default. This is host integration point 1
// from SPEC_FULL.md §6.
type Accessor interface {
	ReactiveContext() *internal.Context
}

var accessor Accessor

// SetAccessor installs a host-supplied Accessor. Passing nil reverts to the
// process-wide default Context.
func SetAccessor(a Accessor) { accessor = a }

func ctx() *internal.Context {
	if accessor != nil {
		return accessor.ReactiveContext()
	}
	return internal.Default()
}

// SetDebug sets the debug flag on the current Context (off by default). The
// engine emits no trace output whether the flag is on or off.
func SetDebug(on bool) { ctx().SetDebug(on) }

// Tick fires the per-tick source so OnUpdate-style effects re-run; this is
// host integration point 2 from SPEC_FULL.md §6.
func Tick() { ctx().Tick() }

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

package sig

import "github.com/nodegraph-dev/sig/internal"

// NewEffect creates a deferred side-effecting sink: fn runs once the graph
// settles (on its own first creation, and again whenever a dependency it
// read on its last run changes). Must be called inside a root scope.
func NewEffect(fn func()) {
	internal.NewEffect(ctx(), fn)
}

// OnCleanup attaches fn to the current scope — whichever node is currently
// recomputing, or the enclosing root scope if none is. It runs exactly once
// when that scope disposes. For a node's scope that is just before the
// node's next recompute or, when the node itself is disposed, after the
// node's own dependency edges have been severed.
func OnCleanup(fn func()) {
	internal.OnCleanup(ctx(), fn)
}

// OnUpdate creates an effect that runs fn, untracked, every time Tick is
// called — a convenience for host event loops that want a per-frame hook
// without wiring their own signal for it.
func OnUpdate(fn func()) {
	internal.OnUpdate(ctx(), fn)
}

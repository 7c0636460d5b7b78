package sig

import "github.com/nodegraph-dev/sig/internal"

// Owner is a disposable scope: the handle spec.md calls a root scope,
// generalized to nest (an Owner created while another Owner's Run is
// executing becomes its child, disposed when the parent is).
type Owner struct {
	node *internal.Owner
}

// NewOwner creates an Owner. If called while another Owner's Run is
// executing, the new Owner is registered as that Owner's child.
func NewOwner() *Owner {
	return &Owner{node: internal.NewOwner(ctx())}
}

// CreateRoot creates an Owner, runs fn inside it, and returns the handle —
// the single-call form of spec.md §4.F's create_root(ctx, f).
func CreateRoot(fn func()) *Owner {
	o := NewOwner()
	o.Run(fn)
	return o
}

// Run executes fn with this Owner as the current scope, inside an implicit
// batch. Every node fn creates directly becomes one of this Owner's nodes.
func (o *Owner) Run(fn func()) {
	o.node.Run(ctx(), fn)
}

// Dispose disposes this Owner's child owners, then its own nodes, then its
// dispose hooks, in that order.
func (o *Owner) Dispose() {
	o.node.Dispose(ctx())
}

// OnCleanup registers fn to run once, when this Owner is the currently
// active scope and it is disposed. Equivalent to calling the package-level
// OnCleanup from inside this Owner's Run.
func (o *Owner) OnCleanup(fn func()) {
	OnCleanup(fn)
}

// OnDispose registers a raw closure run once when this Owner disposes, for
// lifecycle hooks that are not part of the reactive graph.
func (o *Owner) OnDispose(fn func()) {
	o.node.OnDispose(fn)
}

// OnError registers a panic catcher for this Owner. A panic raised inside
// this Owner's Run, or by an effect owned (directly or transitively) by this
// Owner — including an effect that runs long after Run has returned — is
// caught here unless a more deeply nested Owner already caught it. A panic
// from a Computed recomputed by a later write is not routed to any catcher;
// it propagates to the caller of that write.
func (o *Owner) OnError(fn func(any)) {
	o.node.OnError(fn)
}

package internal

// track appends n to the observed-nodes list iff witness_observe is set
// (spec.md §4.C). Deduplication happens implicitly via appendUnique.
func (ctx *Context) track(n Node) {
	if ctx.witnessObserve {
		ctx.observedNodes = appendUnique(ctx.observedNodes, n)
	}
}

// registerCreated appends n to the created-nodes list iff witness_created is
// set (spec.md §4.C).
func (ctx *Context) registerCreated(n Node) {
	if ctx.witnessCreated {
		ctx.createdNodes = append(ctx.createdNodes, n)
	}
}

// Untrack runs fn with the observed-nodes list swapped out for an empty one,
// so reads inside fn do not register as dependencies; created nodes are
// unaffected. Grounded on original_source/src/fgr.rs's fgr_untrack, which
// swaps the list rather than toggling witness_observe itself.
func (ctx *Context) Untrack(fn func()) {
	saved := ctx.observedNodes
	ctx.observedNodes = nil
	fn()
	ctx.observedNodes = saved
}

// runTracked is the shared wrapper spec.md §4.E describes for "a node that
// participates in tracking": dispose the node's previous scoped children,
// enable both witness flags, run body, disable them, diff the freshly
// observed set against the node's dependencies, and move whatever was
// created during body into the node's scoped list. Used by the scheduler
// for Computed recompute and by the deferred-effect drain for Effect runs —
// the two node kinds spec.md §4.E says get this treatment ("neither a pure
// source nor a pure sink" for the scheduler path; effects get the identical
// treatment explicitly at drain time per §4.E's closing paragraph).
func (ctx *Context) runTracked(n Node, body func()) {
	disposeScoped(ctx, n)

	prevObserve, prevCreated := ctx.witnessObserve, ctx.witnessCreated
	savedObserved, savedCreated := ctx.observedNodes, ctx.createdNodes
	ctx.observedNodes = nil
	ctx.createdNodes = nil
	ctx.witnessObserve = true
	ctx.witnessCreated = true

	prevOwner := ctx.currentOwner
	if o, ok := n.(ownedScope); ok {
		ctx.currentOwner = o.scopeOwner()
	}

	// Deferred so that the Context is restored even when body panics and the
	// panic is caught further up (an Owner's OnError catcher).
	defer func() {
		ctx.currentOwner = prevOwner
		ctx.witnessObserve = prevObserve
		ctx.witnessCreated = prevCreated

		observed := ctx.observedNodes
		created := ctx.createdNodes
		ctx.observedNodes = savedObserved
		ctx.createdNodes = savedCreated

		diffDependencies(n, observed)
		n.Header().scoped = created
	}()

	body()
}

// ownedScope is implemented by node kinds that remember which Owner was
// active when they were created (currently only Effect, for panic dispatch
// — see owner.go), so runTracked can keep ctx.currentOwner correct while a
// node's body runs.
type ownedScope interface {
	scopeOwner() *Owner
}

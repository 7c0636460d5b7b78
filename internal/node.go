// Package internal implements the reactive dependency graph: node headers,
// the four node variants, the tracking harness, the staleness propagator and
// the settle-phase scheduler. None of this is part of the public surface;
// the root package type-erases user values in and out of it.
package internal

// Flag is a node's settle-phase state for the current tick.
type Flag uint8

const (
	// Ready means the node has been brought up to date this tick (or never
	// needed to be).
	Ready Flag = iota
	// Stale means the node may need to recompute before it can be read
	// safely.
	Stale
)

// Header is held by a named field in every node variant, each of which
// exposes it through its own Header() accessor (a field and a method of the
// same name cannot coexist at the same depth). Dependency/dependent/scoped
// lists are kept as ordered slices, matching the original reference
// implementation's Vec<NodeRef> fields rather than a linked-list
// representation.
type Header struct {
	id uint64

	flag    Flag
	changed bool

	dependencies []Node
	dependents   []Node

	scoped []Node
}

func (h *Header) ID() uint64 { return h.id }

// Node is the capability interface every variant implements: a shared
// header plus source/sink classification and the recompute/dispose
// contracts from spec.md §4.A.
type Node interface {
	Header() *Header
	IsSource() bool
	IsSink() bool
	// Recompute runs this node's variant-specific behavior and reports
	// whether its externally-visible value changed. Called only by the
	// scheduler, which wraps non-source/non-sink nodes in an observation
	// frame (see runTracked in tracker.go).
	Recompute(ctx *Context) bool
	// Teardown drops owned closures, or runs a cleanup's tear-down
	// closure. Called once, immediately before Dispose severs this node's
	// edges.
	Teardown(ctx *Context)
}

func sameNode(a, b Node) bool { return a.Header() == b.Header() }

func containsNode(list []Node, n Node) bool {
	for _, x := range list {
		if sameNode(x, n) {
			return true
		}
	}
	return false
}

func appendUnique(list []Node, n Node) []Node {
	if containsNode(list, n) {
		return list
	}
	return append(list, n)
}

func removeNode(list []Node, n Node) []Node {
	out := list[:0]
	for _, x := range list {
		if !sameNode(x, n) {
			out = append(out, x)
		}
	}
	return out
}

// link records a dependency edge in both directions (invariant 2: every
// edge is bidirectional).
func link(sub, dep Node) {
	sh, dh := sub.Header(), dep.Header()
	sh.dependencies = appendUnique(sh.dependencies, dep)
	dh.dependents = appendUnique(dh.dependents, sub)
}

func unlink(sub, dep Node) {
	sh, dh := sub.Header(), dep.Header()
	sh.dependencies = removeNode(sh.dependencies, dep)
	dh.dependents = removeNode(dh.dependents, sub)
}

// diffDependencies replaces n's dependency set with observed, adding and
// removing edges (both directions) so only the edges actually read during
// the last run survive.
func diffDependencies(n Node, observed []Node) {
	h := n.Header()
	for _, old := range h.dependencies {
		if !containsNode(observed, old) {
			unlink(n, old)
		}
	}
	for _, fresh := range observed {
		if !containsNode(h.dependencies, fresh) {
			link(n, fresh)
		}
	}
}

// Dispose drops n's closures (Teardown), severs n's edges from live
// neighbors, then recursively disposes its scoped children. Teardown runs before edges are
// severed (spec.md §9's resolution of its own open question about dispose
// ordering).
func Dispose(ctx *Context, n Node) {
	n.Teardown(ctx)

	h := n.Header()

	deps := h.dependencies
	h.dependencies = nil
	for _, d := range deps {
		d.Header().dependents = removeNode(d.Header().dependents, n)
	}

	dependents := h.dependents
	h.dependents = nil
	for _, u := range dependents {
		u.Header().dependencies = removeNode(u.Header().dependencies, n)
	}

	scoped := h.scoped
	h.scoped = nil
	for _, c := range scoped {
		Dispose(ctx, c)
	}
}

// disposeScoped disposes n's scoped children without disposing n itself;
// used immediately before a node's own recompute, which will repopulate
// scoped from whatever it creates this run.
func disposeScoped(ctx *Context, n Node) {
	h := n.Header()
	scoped := h.scoped
	h.scoped = nil
	for _, c := range scoped {
		Dispose(ctx, c)
	}
}

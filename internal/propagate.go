package internal

// propagateStale walks outward from whatever nodes are already on ctx.stack
// (seeded by a just-written source, plus whatever earlier writes in the same
// batch left there) over dependents edges, marking Stale, and puts those
// nodes and every node reached onto the settle-phase work list. Grounded on
// original_source/src/fgr.rs's propergate_dependents_flags_to_stale: the
// walk reuses ctx.stack for its own traversal and ctx.scratchA/scratchB to
// separate "still need to walk further" from "final settle seed list",
// rather than using two independently allocated stacks.
//
// Tolerates diamonds: a node reached by two paths is pushed onto scratchB
// (and hence the settle stack) more than once, but setting flag=Stale twice
// is idempotent, and the settle loop's Ready-skip guard (spec.md §4.E step
// 2) ensures it is still recomputed at most once.
func (ctx *Context) propagateStale() {
	work := ctx.stack
	ctx.stack = nil
	ctx.scratchB = append(ctx.scratchB, work...)

	for len(work) > 0 {
		n := work[len(work)-1]
		work = work[:len(work)-1]

		for _, d := range n.Header().dependents {
			ctx.scratchA = append(ctx.scratchA, d)
			ctx.scratchB = append(ctx.scratchB, d)
		}

		toMark := ctx.scratchA
		ctx.scratchA = nil
		for _, d := range toMark {
			d.Header().flag = Stale
			work = append(work, d)
		}
	}

	toSettle := ctx.scratchB
	ctx.scratchB = nil
	ctx.stack = append(ctx.stack, toSettle...)
}

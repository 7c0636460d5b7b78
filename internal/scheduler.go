package internal

// settle drains ctx.stack (seeded by propagateStale) using the exact
// stack-based Ready/Stale algorithm from spec.md §4.E, grounded
// line-for-line on original_source/src/fgr.rs's update_graph. It is always
// followed by draining the deferred-effects queue.
func (ctx *Context) settle() {
	stack := ctx.stack
	ctx.stack = nil

	var needsReset []Node

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		h := n.Header()
		if h.flag == Ready {
			continue // settled already this tick via another path
		}

		hasStaleDep := false
		anyChanged := false
		for _, d := range h.dependencies {
			dh := d.Header()
			if dh.flag == Stale {
				// Defer N until its input is ready: push N back, then the
				// stale dependency on top so it is processed first.
				stack = append(stack, n)
				stack = append(stack, d)
				hasStaleDep = true
				break
			}
			if dh.changed {
				anyChanged = true
			}
		}

		if hasStaleDep {
			continue
		}

		if anyChanged || n.IsSource() {
			var changed bool
			if !n.IsSource() && !n.IsSink() {
				ctx.runTracked(n, func() { changed = n.Recompute(ctx) })
			} else {
				changed = n.Recompute(ctx)
			}

			h.flag = Ready
			h.changed = changed

			stack = append(stack, h.dependents...)

			if changed {
				needsReset = append(needsReset, n)
			}
		} else {
			// Stable upstream implies stable downstream.
			h.flag = Ready
		}
	}

	for _, n := range needsReset {
		n.Header().changed = false
	}

	ctx.drainEffects()
}

// drainEffects moves the deferred-effects queue out and runs each closure
// in FIFO order inside an observation+creation frame, per spec.md §4.E's
// closing paragraph. Effects enqueued while draining (for example an effect
// creating a nested effect) land in a fresh ctx.deferredEffects, which is
// moved out and drained in turn until it stays empty. An effect that writes
// a source re-enters settle via Batch, and that nested settle drains the
// queue as it stands at that point before this loop resumes.
func (ctx *Context) drainEffects() {
	for len(ctx.deferredEffects) > 0 {
		queue := ctx.deferredEffects
		ctx.deferredEffects = nil
		for _, e := range queue {
			ctx.runEffectSafely(e)
		}
	}
}

package internal

// Batch coalesces writes: nested calls only increment a transaction depth;
// the settle-phase scheduler runs once, when the outermost call returns.
// Grounded on the teacher's internal/batcher.go Batcher.Batch depth-counter
// shape.
//
// A panic raised by fn is spec.md §7(c): engine scratch state must be
// restored so the Context remains reusable, but the panic itself still
// propagates outward (Owner.Run, not Batch, is where a host-visible catch
// happens — see owner.go).
func (ctx *Context) Batch(fn func()) {
	ctx.enter()
	defer ctx.leave()

	ctx.txDepth++
	completed := false
	defer func() {
		ctx.txDepth--
		if r := recover(); r != nil {
			if ctx.txDepth == 0 {
				ctx.resetTransient()
			}
			panic(r)
		}
		if completed && ctx.txDepth == 0 {
			ctx.settle()
		}
	}()

	fn()
	completed = true
}

// resetTransient clears every piece of per-tick bookkeeping after a panic
// has aborted the outermost batch, so the engine can be used again
// (spec.md §7(c)'s "swap-in/swap-out discipline").
func (ctx *Context) resetTransient() {
	ctx.witnessObserve = false
	ctx.witnessCreated = false
	ctx.observedNodes = nil
	ctx.createdNodes = nil
	ctx.stack = nil
	ctx.scratchA = nil
	ctx.scratchB = nil
	ctx.deferredEffects = nil
	ctx.txDepth = 0
}

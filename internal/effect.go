package internal

// Effect is the sink node variant: a side-effecting closure that never has
// dependents and, on recompute, defers running its closure until the graph
// settles. Grounded on original_source/src/fgr.rs's EffectImpl /
// fgr_create_effect.
type Effect struct {
	hdr Header

	fn    func()
	owner *Owner
}

// NewEffect must run inside a root scope. Its first run cannot go through
// the ordinary Stale/Ready recompute gate (a brand-new effect has no
// dependencies yet and is not a source, so spec.md §4.E's gating condition
// is vacuously false for it) — instead it is enqueued directly onto the
// deferred-effects queue at construction time, matching
// original_source/src/fgr.rs's fgr_create_effect and spec.md §4.F's "first
// run is deferred to the next settle drain".
func NewEffect(ctx *Context, fn func()) *Effect {
	requireScope(ctx, "Effect")

	e := &Effect{fn: fn, owner: ctx.currentOwner}
	e.hdr.id = ctx.allocID()
	e.hdr.flag = Ready

	ctx.registerCreated(e)
	ctx.deferredEffects = append(ctx.deferredEffects, e)
	return e
}

func (e *Effect) Header() *Header    { return &e.hdr }
func (e *Effect) IsSource() bool     { return false }
func (e *Effect) IsSink() bool       { return true }
func (e *Effect) scopeOwner() *Owner { return e.owner }

func (e *Effect) Teardown(ctx *Context) {
	e.fn = nil
}

// Recompute pushes the effect's closure onto the deferred-effects queue and
// reports false: effects never mark themselves changed, since they are
// sinks (spec.md §4.A).
func (e *Effect) Recompute(ctx *Context) bool {
	ctx.deferredEffects = append(ctx.deferredEffects, e)
	return false
}

// runEffectSafely runs e inside an observation+creation frame (so its
// dependencies are re-recorded and anything it creates attaches to it),
// recovering a panic and dispatching it up e's owning Owner's static parent
// chain rather than the live call stack — an effect may run long after the
// Owner.Run call that created it has returned, so the call stack at drain
// time is not where the catching Owner necessarily sits.
func (ctx *Context) runEffectSafely(e *Effect) {
	defer func() {
		if r := recover(); r != nil {
			if !dispatchPanic(e.owner, r) {
				panic(r)
			}
		}
	}()
	ctx.runTracked(e, func() {
		if e.fn != nil {
			e.fn()
		}
	})
}

// OnUpdate creates an effect that tracks the per-tick source and runs fn
// untracked each time Tick is called. Supplemental feature carried over
// from original_source/src/fgr.rs's fgr_on_update (not named in spec.md's
// §4.F operation table, but the reason spec.md §9 gives for the per-tick
// source existing in the first place).
func OnUpdate(ctx *Context, fn func()) {
	ts := ctx.tickSignalNode()
	NewEffect(ctx, func() {
		ts.Read(ctx)
		ctx.Untrack(fn)
	})
}

func (ctx *Context) tickSignalNode() *Signal {
	if ctx.tickSignal == nil {
		ctx.tickSignal = &Signal{value: false}
		ctx.tickSignal.hdr.id = ctx.allocID()
		ctx.tickSignal.hdr.flag = Ready
	}
	return ctx.tickSignal
}

// Tick fires the per-tick source so OnUpdate-style effects re-run (spec.md
// §4.F: "Fires the per-tick source so on_update-style effects re-run").
func (ctx *Context) Tick() {
	ts := ctx.tickSignalNode()
	ts.Write(ctx, !ts.value.(bool))
}

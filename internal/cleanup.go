package internal

// Cleanup is the tear-down-closure node variant: it never recomputes, only
// its Teardown (invoked from Dispose) does work. Grounded on
// original_source/src/fgr.rs's CleanupImpl / fgr_on_cleanup.
type Cleanup struct {
	hdr Header

	fn func()
}

// OnCleanup attaches fn to the current scope: whatever creation frame is
// active (a recomputing node's frame, or a root scope's frame) when
// OnCleanup is called. It is invoked exactly once, when that scope
// disposes (spec.md §4.F).
func OnCleanup(ctx *Context, fn func()) {
	requireScope(ctx, "OnCleanup")

	c := &Cleanup{fn: fn}
	c.hdr.id = ctx.allocID()
	c.hdr.flag = Ready

	ctx.registerCreated(c)
}

func (c *Cleanup) Header() *Header { return &c.hdr }
func (c *Cleanup) IsSource() bool  { return false }
func (c *Cleanup) IsSink() bool    { return true }

// Recompute never runs: a Cleanup has no dependencies or dependents, so it
// is never reached by the staleness propagator or pushed onto the settle
// stack. Present only to satisfy the Node interface.
func (c *Cleanup) Recompute(ctx *Context) bool { return false }

func (c *Cleanup) Teardown(ctx *Context) {
	if c.fn != nil {
		fn := c.fn
		c.fn = nil
		fn()
	}
}

package internal

// Computed is the derived-cell node variant: an optional last value, a
// recompute function, and an equality function. Grounded on
// original_source/src/fgr.rs's MemoImpl / Memo::new_with_diff.
type Computed struct {
	hdr Header

	compute func() any
	equal   func(a, b any) bool

	value    any
	hasValue bool
}

// NewComputed eagerly runs compute once, inside an observation+creation
// frame, registering whatever it reads as dependencies and attaching to the
// current scope (spec.md §4.F: "Eagerly computes once; registers
// dependencies observed during first run; attaches to the current scope").
func NewComputed(ctx *Context, compute func() any, equal func(a, b any) bool) *Computed {
	requireScope(ctx, "Computed")

	c := &Computed{}
	c.hdr.id = ctx.allocID()
	c.hdr.flag = Ready
	c.compute = compute
	c.equal = equal

	ctx.registerCreated(c)

	ctx.runTracked(c, func() {
		c.value = c.compute()
		c.hasValue = true
	})

	return c
}

func (c *Computed) Header() *Header { return &c.hdr }
func (c *Computed) IsSource() bool  { return false }
func (c *Computed) IsSink() bool    { return false }

func (c *Computed) Teardown(ctx *Context) {
	c.compute = nil
}

// Recompute invokes the recompute function, compares the new value with the
// stored value using the equality function, stores the new value, and
// reports whether they differ (spec.md §4.A). The caller (the scheduler, via
// runTracked) is responsible for the observation frame; Recompute itself
// only does the raw compute-and-diff.
func (c *Computed) Recompute(ctx *Context) bool {
	newValue := c.compute()
	changed := !c.hasValue || !c.equal(newValue, c.value)
	c.value = newValue
	c.hasValue = true
	return changed
}

// Read registers this computed as a dependency when tracking, and returns
// its last computed value.
func (c *Computed) Read(ctx *Context) any {
	ctx.track(c)
	return c.value
}

package internal

// Signal is the source-cell node variant: a value of some type plus a
// value_changed bit set by external writes. Grounded on
// original_source/src/fgr.rs's SignalImpl / Signal::update_value.
type Signal struct {
	hdr Header

	value   any
	changed bool // "value_changed" bit, distinct from Header.changed

	equal func(a, b any) bool
}

func NewSignal(ctx *Context, initial any, equal func(a, b any) bool) *Signal {
	s := &Signal{}
	s.hdr.id = ctx.allocID()
	s.hdr.flag = Ready
	s.value = initial
	s.equal = equal

	ctx.registerCreated(s)
	return s
}

func (s *Signal) Header() *Header { return &s.hdr }
func (s *Signal) IsSource() bool  { return true }
func (s *Signal) IsSink() bool    { return false }

func (s *Signal) Teardown(ctx *Context) {}

// Recompute returns value_changed then clears it (spec.md §4.A: "Source:
// returns value_changed, then clears it").
func (s *Signal) Recompute(ctx *Context) bool {
	changed := s.changed
	s.changed = false
	return changed
}

// Read registers this signal as a dependency when tracking, and returns the
// current value.
func (s *Signal) Read(ctx *Context) any {
	ctx.track(s)
	return s.value
}

// Peek returns the current value without registering a dependency.
func (s *Signal) Peek() any {
	return s.value
}

// Write mutates the value (equality-gated), wraps the transition in a
// batch, marks the signal Stale, and propagates. Grounded on
// Signal::update_value in original_source/src/fgr.rs.
func (s *Signal) Write(ctx *Context, v any) {
	ctx.Batch(func() {
		if s.equal != nil && s.equal(s.value, v) {
			return
		}
		s.value = v
		s.changed = true
		s.hdr.flag = Stale
		ctx.pushStale(s)
		ctx.propagateStale()
	})
}

package internal

import (
	"runtime"
	"sync"

	"github.com/petermattis/goid"
)

// Context is the single logical engine object described by spec.md §2: it
// owns the allocation counter, the witness flags and their scratch lists,
// the shared propagation/settle work stack, the transaction depth, the
// deferred-effects queue and the optional per-tick source.
type Context struct {
	lockMu    sync.Mutex
	owningGID int64
	depth     int

	nextID uint64

	witnessObserve bool
	witnessCreated bool
	observedNodes  []Node
	createdNodes   []Node

	stack    []Node
	scratchA []Node
	scratchB []Node

	txDepth         int
	deferredEffects []*Effect

	currentOwner *Owner
	tickSignal   *Signal

	debug bool
}

// NewContext builds an independent engine instance. Most hosts use Default()
// instead; NewContext exists for tests and for hosts that want more than one
// isolated reactive world.
func NewContext() *Context { return &Context{} }

var (
	defaultOnce sync.Once
	defaultCtx  *Context
)

// Default returns the process-wide singleton Context, realizing spec.md
// §2's "single logical object per process" when no host-supplied Accessor
// overrides it.
func Default() *Context {
	defaultOnce.Do(func() { defaultCtx = NewContext() })
	return defaultCtx
}

// SetDebug records the debug flag. No engine code reads it: the engine emits
// no output whether it is on or off.
func (ctx *Context) SetDebug(on bool) { ctx.debug = on }

func (ctx *Context) allocID() uint64 {
	ctx.nextID++
	return ctx.nextID
}

// enter acquires the engine for the calling goroutine, blocking until no
// other goroutine holds it. Re-entry from the goroutine that already holds
// it (a nested batch, or an effect writing a signal during its own run) is
// a no-op acquire: spec.md §5 requires exclusive, serialized access across
// goroutines while still allowing the same logical call chain to recurse.
// Grounded on the teacher's internal/tracker.go goid-based ownership check,
// repurposed here from "per-goroutine runtime key" to "recursive lock
// token".
func (ctx *Context) enter() {
	gid := goid.Get()
	for {
		ctx.lockMu.Lock()
		if ctx.owningGID == 0 || ctx.owningGID == gid {
			ctx.owningGID = gid
			ctx.depth++
			ctx.lockMu.Unlock()
			return
		}
		ctx.lockMu.Unlock()
		runtime.Gosched()
	}
}

func (ctx *Context) leave() {
	ctx.lockMu.Lock()
	ctx.depth--
	if ctx.depth == 0 {
		ctx.owningGID = 0
	}
	ctx.lockMu.Unlock()
}

// CurrentOwner returns the Owner active for whatever scope is currently
// running (an Owner.Run body, or a recomputing node's frame), or nil at the
// top level.
func (ctx *Context) CurrentOwner() *Owner { return ctx.currentOwner }

// pushStale seeds the shared work stack, used both to seed propagation and
// (indirectly, via propagateStale's own seeding of the settle work-list) the
// settle loop.
func (ctx *Context) pushStale(n Node) {
	ctx.stack = append(ctx.stack, n)
}

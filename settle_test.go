package sig_test

import (
	"strconv"
	"testing"

	"github.com/nodegraph-dev/sig"
	"github.com/stretchr/testify/assert"
)

// TestDiamond is the concrete scenario from SPEC_FULL.md §8: a single write
// to the top of a diamond must recompute the bottom exactly once, not once
// per path.
func TestDiamond(t *testing.T) {
	owner := sig.NewOwner()
	defer owner.Dispose()

	var log []int
	dRuns := 0
	var a *sig.Signal[int]
	owner.Run(func() {
		a = sig.NewSignal(1)
		b := sig.NewComputed(func() int { return a.Read() * 2 })
		c := sig.NewComputed(func() int { return a.Read() * 3 })
		d := sig.NewComputed(func() int {
			dRuns++
			return b.Read() + c.Read()
		})
		sig.NewEffect(func() {
			log = append(log, d.Read())
		})
	})

	assert.Equal(t, []int{5}, log)
	assert.Equal(t, 1, dRuns)

	a.Write(2)

	assert.Equal(t, []int{5, 10}, log, "exactly one additional entry")
	assert.Equal(t, 2, dRuns, "d recomputed exactly once despite two paths from a")
}

// TestBatchedWrites: SPEC_FULL.md §8 "downstream effect observing a fires
// once with value 3" for two writes coalesced in one batch.
func TestBatchedWrites(t *testing.T) {
	owner := sig.NewOwner()
	defer owner.Dispose()

	var log []int
	var a *sig.Signal[int]
	owner.Run(func() {
		a = sig.NewSignal(1)
		sig.NewEffect(func() {
			log = append(log, a.Read())
		})
	})
	assert.Equal(t, []int{1}, log)

	sig.Batch(func() {
		a.Write(2)
		a.Write(3)
	})

	assert.Equal(t, []int{1, 3}, log)
}

// TestEffectCreatedInsideEffect: a newly-created effect must fire once
// before the outer batch returns (SPEC_FULL.md §8).
func TestEffectCreatedInsideEffect(t *testing.T) {
	owner := sig.NewOwner()
	defer owner.Dispose()

	var log []string
	var trigger *sig.Signal[int]
	var other *sig.Signal[int]
	spawned := false

	owner.Run(func() {
		trigger = sig.NewSignal(0)
		other = sig.NewSignal(100)
		sig.NewEffect(func() {
			if trigger.Read() == 1 && !spawned {
				spawned = true
				sig.NewEffect(func() {
					log = append(log, "inner saw "+strconv.Itoa(other.Read()))
				})
			}
		})
	})

	assert.Empty(t, log)
	trigger.Write(1)
	assert.Equal(t, []string{"inner saw 100"}, log)
}

// TestNestedScopeDisposal: SPEC_FULL.md §8 — a computed that stops creating
// a child computed on recompute must dispose that child, and the child must
// never run again even if a source it used to observe is written.
func TestNestedScopeDisposal(t *testing.T) {
	owner := sig.NewOwner()
	defer owner.Dispose()

	var childRuns int
	var mode *sig.Signal[bool]
	var inner *sig.Signal[int]

	owner.Run(func() {
		mode = sig.NewSignal(true)
		inner = sig.NewSignal(1)
		sig.NewComputed(func() int {
			if mode.Read() {
				sig.NewComputed(func() int {
					childRuns++
					return inner.Read()
				})
			}
			return 0
		})
	})

	assert.Equal(t, 1, childRuns)

	mode.Write(false)
	assert.Equal(t, 1, childRuns, "child not recreated, so it does not run again")

	inner.Write(2)
	assert.Equal(t, 1, childRuns, "disposed child must not react to its old dependency")
}

// TestCleanupOrdering: SPEC_FULL.md §8 — two cleanups registered X then Y on
// a root run in that order when the root disposes, neither more than once.
func TestCleanupOrdering(t *testing.T) {
	owner := sig.NewOwner()

	var log []string
	owner.Run(func() {
		sig.OnCleanup(func() { log = append(log, "X") })
		sig.OnCleanup(func() { log = append(log, "Y") })
	})

	assert.Empty(t, log)
	owner.Dispose()
	assert.Equal(t, []string{"X", "Y"}, log)

	owner.Dispose()
	assert.Equal(t, []string{"X", "Y"}, log, "disposing twice must not re-run cleanups")
}

// TestNoStaleOrChangedAfterBatch is invariants 2 and 3 from SPEC_FULL.md §8:
// after batch returns, nothing is left Stale or changed=true. We cannot
// observe node flags directly through the public API, so this is verified
// indirectly: a long chain settles fully (every effect sees the final
// value, never an intermediate one) after a single batch call.
func TestNoStaleOrChangedAfterBatch(t *testing.T) {
	owner := sig.NewOwner()
	defer owner.Dispose()

	var log []int
	var a *sig.Signal[int]
	owner.Run(func() {
		a = sig.NewSignal(1)
		b := sig.NewComputed(func() int { return a.Read() + 1 })
		c := sig.NewComputed(func() int { return b.Read() + 1 })
		d := sig.NewComputed(func() int { return c.Read() + 1 })
		sig.NewEffect(func() {
			log = append(log, d.Read())
		})
	})

	assert.Equal(t, []int{4}, log)
	a.Write(10)
	assert.Equal(t, []int{4, 13}, log)
}


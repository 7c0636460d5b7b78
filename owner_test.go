package sig_test

import (
	"testing"

	"github.com/nodegraph-dev/sig"
	"github.com/stretchr/testify/assert"
)

func TestOwner(t *testing.T) {
	t.Run("runs and disposes its nodes", func(t *testing.T) {
		owner := sig.NewOwner()

		disposed := false
		var a *sig.Signal[int]
		owner.Run(func() {
			a = sig.NewSignal(1)
			sig.OnCleanup(func() { disposed = true })
		})

		assert.Equal(t, 1, a.Read())
		assert.False(t, disposed)

		owner.Dispose()
		assert.True(t, disposed)
	})

	t.Run("nested owners are disposed with their parent", func(t *testing.T) {
		parent := sig.NewOwner()

		childDisposed := false
		parent.Run(func() {
			child := sig.NewOwner()
			child.OnDispose(func() { childDisposed = true })
			child.Run(func() {})
		})

		assert.False(t, childDisposed)
		parent.Dispose()
		assert.True(t, childDisposed)
	})

	t.Run("sibling effects are disposed in the order their owner registered them", func(t *testing.T) {
		owner := sig.NewOwner()

		var log []string
		owner.Run(func() {
			a := sig.NewSignal(1)
			sig.NewEffect(func() {
				a.Read()
				sig.OnCleanup(func() { log = append(log, "first") })
			})
			sig.NewEffect(func() {
				a.Read()
				sig.OnCleanup(func() { log = append(log, "second") })
			})
		})

		owner.Dispose()
		assert.Equal(t, []string{"first", "second"}, log)
	})

	t.Run("OnError catches a panic from a deferred effect run after Run returned", func(t *testing.T) {
		owner := sig.NewOwner()
		defer owner.Dispose()

		var caught any
		owner.OnError(func(r any) { caught = r })

		var trigger *sig.Signal[int]
		owner.Run(func() {
			trigger = sig.NewSignal(0)
			sig.NewEffect(func() {
				if trigger.Read() == 1 {
					panic("boom")
				}
			})
		})

		assert.Nil(t, caught)
		trigger.Write(1)
		assert.Equal(t, "boom", caught)
	})

	t.Run("disposal prevents further effect re-runs", func(t *testing.T) {
		owner := sig.NewOwner()

		runs := 0
		var a *sig.Signal[int]
		owner.Run(func() {
			a = sig.NewSignal(1)
			sig.NewEffect(func() {
				a.Read()
				runs++
			})
		})
		assert.Equal(t, 1, runs)

		owner.Dispose()
		a.Write(2)
		assert.Equal(t, 1, runs, "disposed effect must not react to further writes")
	})

	t.Run("disposed runtime is reusable: a fresh root behaves normally", func(t *testing.T) {
		first := sig.NewOwner()
		var a *sig.Signal[int]
		first.Run(func() { a = sig.NewSignal(1) })
		first.Dispose()

		second := sig.NewOwner()
		defer second.Dispose()

		var log []int
		second.Run(func() {
			b := sig.NewSignal(10)
			sig.NewEffect(func() { log = append(log, b.Read()) })
		})

		assert.Equal(t, []int{10}, log)
		assert.Equal(t, 1, a.Read(), "the disposed root's own signal is still readable directly")
	})
}

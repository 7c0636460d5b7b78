package internal

import "fmt"

// MisuseError is raised (via panic) for spec.md §7(a): constructing a
// Computed, Effect or Cleanup outside a root scope.
type MisuseError struct {
	Op string
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("sig: %s called outside of a root scope", e.Op)
}

func requireScope(ctx *Context, op string) {
	if !ctx.witnessCreated {
		panic(&MisuseError{Op: op})
	}
}

// invariant panics with a formatted message when cond is false: the
// fatal-assertion form for spec.md §7(b) (internal edge desynchrony or a flag
// seen in an impossible state). No engine code calls it, so such states are
// not checked for.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("sig: invariant violated: "+format, args...))
	}
}

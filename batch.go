package sig

// Batch coalesces any writes made inside fn into a single settle pass: the
// scheduler only runs once, when the outermost Batch call returns.
func Batch(fn func()) {
	ctx().Batch(fn)
}

// Untrack runs fn without registering any reads inside it as dependencies,
// returning fn's result.
func Untrack[T any](fn func() T) T {
	var result T
	ctx().Untrack(func() { result = fn() })
	return result
}

// UntrackFunc is Untrack for a side-effecting fn with no return value.
func UntrackFunc(fn func()) {
	ctx().Untrack(fn)
}

package sig

// defaultEqual compares two values of any type T via the interface ==
// operator, matching original_source/src/fgr.rs's default compare_fn
// (`a == b`). T is not constrained to comparable because Signal/Computed
// must accept any value type (slices, maps, funcs included); a value whose
// dynamic type does not support == is simply treated as always-changed,
// which is a safe (if slightly less efficient) fallback.
func defaultEqual[T any](a, b T) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	var ai, bi any = a, b
	eq = ai == bi
	return
}

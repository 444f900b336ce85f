package value

// Clone returns a copy of v safe to store in a different variable
// without aliasing the original. Go's struct assignment already copies
// scalars correctly; Array is the only kind whose backing storage would
// otherwise alias across two variables after a plain `=`, which would
// violate the value-copy-on-assignment rule (spec.md §3.1). Every other
// kind is either a scalar or an intentionally shared reference-counted
// handle, so it is returned unchanged.
func (v Value) Clone() Value {
	if v.kind != KindArray {
		return v
	}
	cp := make([]Value, len(v.arr))
	for i, e := range v.arr {
		cp[i] = e.Clone()
	}
	return Value{kind: KindArray, arr: cp}
}

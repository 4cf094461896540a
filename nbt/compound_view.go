package nbt

// CompoundView is a read-only, string-keyed view over a parsed Compound.
// It does not own the data and must not outlive the root Node the
// Compound belongs to.
type CompoundView struct {
	src *Compound
}

// AsCompound returns a view over n, failing with ErrTypeMismatch if n is
// not a Compound.
func AsCompound(n Node) (CompoundView, error) {
	if n.tag != TagCompound {
		return CompoundView{}, mismatch(TagCompound, n.tag)
	}
	return CompoundView{src: n.compound}, nil
}

// Len reports the number of entries.
func (v CompoundView) Len() int {
	if v.src == nil {
		return 0
	}
	return v.src.Len()
}

// IsEmpty reports whether the compound has no entries.
func (v CompoundView) IsEmpty() bool { return v.Len() == 0 }

// Get returns the child named key, or ok=false if absent.
func (v CompoundView) Get(key string) (Node, bool) {
	if v.src == nil {
		return Node{}, false
	}
	n, ok := v.src.entries[key]
	return n, ok
}

// At is like Get but fails with ErrOutOfRange when key is absent.
func (v CompoundView) At(key string) (Node, error) {
	n, ok := v.Get(key)
	if !ok {
		return Node{}, wrapf(ErrOutOfRange, "no such compound key %q", key)
	}
	return n, nil
}

// Keys returns the entry names in stable (first-insertion) order.
func (v CompoundView) Keys() []string {
	if v.src == nil {
		return nil
	}
	out := make([]string, len(v.src.keys))
	copy(out, v.src.keys)
	return out
}

// Range calls fn for each (key, node) pair in stable order, stopping
// early if fn returns false.
func (v CompoundView) Range(fn func(key string, value Node) bool) {
	if v.src == nil {
		return
	}
	for _, k := range v.src.keys {
		if !fn(k, v.src.entries[k]) {
			return
		}
	}
}

// Equal reports whether v and o have the same keys mapping to
// structurally equal values, regardless of order. Views over the same
// underlying Compound (by address) are equal without per-key comparison.
func (v CompoundView) Equal(o CompoundView) bool {
	if v.src == o.src {
		return true
	}
	if v.src == nil || o.src == nil {
		return v.Len() == 0 && o.Len() == 0
	}
	return v.src.equal(o.src)
}

package nbt

// The As* functions extract a primitive field from a Node by tag, failing
// with ErrTypeMismatch (wrapped with the node's actual tag for context)
// when the variant does not match. Aggregate tags (List, Compound) are
// extracted through AsList/AsListOf/AsCompound instead, since they return
// views rather than plain values.

func mismatch(want Tag, got Tag) error {
	return wrapf(ErrTypeMismatch, "expected %s, got %s", want, got)
}

// AsByte returns the payload of a Byte node.
func AsByte(n Node) (int8, error) {
	if n.tag != TagByte {
		return 0, mismatch(TagByte, n.tag)
	}
	return n.i8, nil
}

// AsShort returns the payload of a Short node.
func AsShort(n Node) (int16, error) {
	if n.tag != TagShort {
		return 0, mismatch(TagShort, n.tag)
	}
	return n.i16, nil
}

// AsInt returns the payload of an Int node.
func AsInt(n Node) (int32, error) {
	if n.tag != TagInt {
		return 0, mismatch(TagInt, n.tag)
	}
	return n.i32, nil
}

// AsLong returns the payload of a Long node.
func AsLong(n Node) (int64, error) {
	if n.tag != TagLong {
		return 0, mismatch(TagLong, n.tag)
	}
	return n.i64, nil
}

// AsFloat returns the payload of a Float node.
func AsFloat(n Node) (float32, error) {
	if n.tag != TagFloat {
		return 0, mismatch(TagFloat, n.tag)
	}
	return n.f32, nil
}

// AsDouble returns the payload of a Double node.
func AsDouble(n Node) (float64, error) {
	if n.tag != TagDouble {
		return 0, mismatch(TagDouble, n.tag)
	}
	return n.f64, nil
}

// AsByteArray returns the payload of a ByteArray node. The returned slice
// aliases the node's storage; callers must not mutate it.
func AsByteArray(n Node) ([]byte, error) {
	if n.tag != TagByteArray {
		return nil, mismatch(TagByteArray, n.tag)
	}
	return n.bytes, nil
}

// AsString returns the payload of a String node.
func AsString(n Node) (string, error) {
	if n.tag != TagString {
		return "", mismatch(TagString, n.tag)
	}
	return n.str, nil
}

// AsIntArray returns the payload of an IntArray node. The returned slice
// aliases the node's storage.
func AsIntArray(n Node) ([]int32, error) {
	if n.tag != TagIntArray {
		return nil, mismatch(TagIntArray, n.tag)
	}
	return n.ints, nil
}

// AsLongArray returns the payload of a LongArray node. The returned slice
// aliases the node's storage.
func AsLongArray(n Node) ([]int64, error) {
	if n.tag != TagLongArray {
		return nil, mismatch(TagLongArray, n.tag)
	}
	return n.longs, nil
}

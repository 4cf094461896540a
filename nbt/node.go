package nbt

import "fmt"

// Node is the tagged-union value produced by the parser. Exactly one of its
// payload fields is meaningful, selected by Tag. Node is returned by value;
// List and Compound are reference-like (they hold slices/maps) but the tree
// as a whole is only ever constructed once, by a parse call, and is never
// mutated afterwards.
type Node struct {
	tag Tag

	i8  int8
	i16 int16
	i32 int32
	i64 int64
	f32 float32
	f64 float64

	str   string
	bytes []byte
	ints  []int32
	longs []int64

	list     *List
	compound *Compound
}

// Tag reports the wire type of the node.
func (n Node) Tag() Tag { return n.tag }

func newByte(v int8) Node      { return Node{tag: TagByte, i8: v} }
func newShort(v int16) Node    { return Node{tag: TagShort, i16: v} }
func newInt(v int32) Node      { return Node{tag: TagInt, i32: v} }
func newLong(v int64) Node     { return Node{tag: TagLong, i64: v} }
func newFloat(v float32) Node  { return Node{tag: TagFloat, f32: v} }
func newDouble(v float64) Node { return Node{tag: TagDouble, f64: v} }

func newByteArray(v []byte) Node { return Node{tag: TagByteArray, bytes: v} }
func newString(v string) Node    { return Node{tag: TagString, str: v} }
func newIntArray(v []int32) Node { return Node{tag: TagIntArray, ints: v} }
func newLongArray(v []int64) Node { return Node{tag: TagLongArray, longs: v} }

func newList(l *List) Node         { return Node{tag: TagList, list: l} }
func newCompound(c *Compound) Node { return Node{tag: TagCompound, compound: c} }

// List is the owning backing store of a TagList node: a homogeneous,
// wire-ordered sequence of children all matching elem, plus the declared
// element tag itself. An empty list's element tag is always TagEnd: the
// parser normalises it whatever tag the wire declared.
type List struct {
	elem     Tag
	children []Node
}

// Compound is the owning backing store of a TagCompound node: a
// string-keyed, duplicate-free map of named children. Insertion order is
// retained internally (first-write-wins on duplicate keys) purely so that
// repeated iteration over one Compound/CompoundView is stable; the wire
// format itself does not promise any particular order.
type Compound struct {
	keys    []string
	entries map[string]Node
}

func newEmptyCompound() *Compound {
	return &Compound{entries: make(map[string]Node)}
}

// insert adds name -> value if name is not already present. Returns false
// (and does nothing) if name is a duplicate key: the first write for a
// given key wins.
func (c *Compound) insert(name string, value Node) bool {
	if _, exists := c.entries[name]; exists {
		return false
	}
	c.keys = append(c.keys, name)
	c.entries[name] = value
	return true
}

// Len reports the number of distinct keys in the compound.
func (c *Compound) Len() int { return len(c.keys) }

// Clone deep-copies n and everything it transitively owns.
func (n Node) Clone() Node {
	switch n.tag {
	case TagByteArray:
		out := make([]byte, len(n.bytes))
		copy(out, n.bytes)
		n.bytes = out
	case TagIntArray:
		out := make([]int32, len(n.ints))
		copy(out, n.ints)
		n.ints = out
	case TagLongArray:
		out := make([]int64, len(n.longs))
		copy(out, n.longs)
		n.longs = out
	case TagList:
		children := make([]Node, len(n.list.children))
		for i, c := range n.list.children {
			children[i] = c.Clone()
		}
		n.list = &List{elem: n.list.elem, children: children}
	case TagCompound:
		keys := make([]string, len(n.compound.keys))
		copy(keys, n.compound.keys)
		entries := make(map[string]Node, len(n.compound.entries))
		for k, v := range n.compound.entries {
			entries[k] = v.Clone()
		}
		n.compound = &Compound{keys: keys, entries: entries}
	}
	return n
}

// Equal reports whether n and other are structurally identical: same tag,
// same payload, and (for List/Compound) element-wise equal children.
// Compound equality ignores key order, since the wire format does not
// define one.
func (n Node) Equal(other Node) bool {
	if n.tag != other.tag {
		return false
	}
	switch n.tag {
	case TagByte:
		return n.i8 == other.i8
	case TagShort:
		return n.i16 == other.i16
	case TagInt:
		return n.i32 == other.i32
	case TagLong:
		return n.i64 == other.i64
	case TagFloat:
		return f32bits(n.f32) == f32bits(other.f32)
	case TagDouble:
		return f64bits(n.f64) == f64bits(other.f64)
	case TagByteArray:
		return bytesEqual(n.bytes, other.bytes)
	case TagString:
		return n.str == other.str
	case TagIntArray:
		return int32sEqual(n.ints, other.ints)
	case TagLongArray:
		return int64sEqual(n.longs, other.longs)
	case TagList:
		return n.list.equal(other.list)
	case TagCompound:
		return n.compound.equal(other.compound)
	default:
		return true
	}
}

func (l *List) equal(o *List) bool {
	if l == o {
		return true
	}
	if l.elem != o.elem || len(l.children) != len(o.children) {
		return false
	}
	for i := range l.children {
		if !l.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func (c *Compound) equal(o *Compound) bool {
	if c == o {
		return true
	}
	if len(c.entries) != len(o.entries) {
		return false
	}
	for k, v := range c.entries {
		ov, ok := o.entries[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// String renders a compact, human-readable form of the node, for
// debugging. It is not a wire format and has no stability guarantees.
func (n Node) String() string {
	switch n.tag {
	case TagByte:
		return fmt.Sprintf("Byte(%d)", n.i8)
	case TagShort:
		return fmt.Sprintf("Short(%d)", n.i16)
	case TagInt:
		return fmt.Sprintf("Int(%d)", n.i32)
	case TagLong:
		return fmt.Sprintf("Long(%d)", n.i64)
	case TagFloat:
		return fmt.Sprintf("Float(%g)", n.f32)
	case TagDouble:
		return fmt.Sprintf("Double(%g)", n.f64)
	case TagByteArray:
		return fmt.Sprintf("ByteArray(%d bytes)", len(n.bytes))
	case TagString:
		return fmt.Sprintf("String(%q)", n.str)
	case TagIntArray:
		return fmt.Sprintf("IntArray(%d ints)", len(n.ints))
	case TagLongArray:
		return fmt.Sprintf("LongArray(%d longs)", len(n.longs))
	case TagList:
		return fmt.Sprintf("List[%s](%d)", n.list.elem, len(n.list.children))
	case TagCompound:
		return fmt.Sprintf("Compound(%d)", n.compound.Len())
	default:
		return "End"
	}
}

package nbt

import (
	"errors"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// parser decodes an NBT byte stream via a set of mutually recursive
// methods rather than an explicit stack of parse frames: Go's own call
// stack plays that role directly (each call to parseValue/parseList/
// parseCompoundBody is one push; returning is one pop). This mirrors the
// natural recursive-descent shape of the format, since List and Compound
// are themselves recursive containers.
type parser struct {
	r io.Reader
}

func newParser(r io.Reader) *parser {
	return &parser{r: r}
}

// read reads exactly n bytes, classifying any failure into one of the
// package's sentinel error kinds.
func (p *parser) read(n int, context string) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(p.r, buf); err != nil {
		return nil, classifyReadErr(err, context)
	}
	return buf, nil
}

func classifyReadErr(err error, context string) error {
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return wrapf(ErrTruncatedInput, "%s", context)
	case errors.Is(err, gzip.ErrHeader), errors.Is(err, gzip.ErrChecksum),
		errors.Is(err, zlib.ErrHeader), errors.Is(err, zlib.ErrChecksum):
		return wrapf(ErrCorruptInput, "%s", context)
	case errors.As(err, new(flate.CorruptInputError)):
		return wrapf(ErrCorruptInput, "%s: %v", context, err)
	default:
		return wrapf(ErrIoError, "%s: %v", context, err)
	}
}

// readRawTag reads a single tag byte, shared by top-level dispatch, the
// next-entry-or-end read inside a Compound body, and a List's element
// tag. 0x00 is a structurally valid byte here (End, or the empty-list
// marker); anything outside 0x00..0x0C is UnknownTag.
func (p *parser) readRawTag(context string) (Tag, error) {
	b, err := p.read(1, context)
	if err != nil {
		return 0, err
	}
	t := Tag(b[0])
	if !t.valid() {
		return 0, wrapf(ErrUnknownTag, "%s: byte %#x", context, b[0])
	}
	return t, nil
}

// readInt32 reads a big-endian 4-byte length or count prefix.
func (p *parser) readInt32(context string) (int32, error) {
	b, err := p.read(4, context)
	if err != nil {
		return 0, err
	}
	return beInt32(b), nil
}

// readName reads a Compound entry name: a u16 length (treated as an
// unsigned byte count) followed by that many UTF-8 bytes.
func (p *parser) readName(context string) (string, error) {
	lenBuf, err := p.read(2, context+": name length")
	if err != nil {
		return "", err
	}
	n := int(beUint16(lenBuf))
	nameBuf, err := p.read(n, context+": name bytes")
	if err != nil {
		return "", err
	}
	return string(nameBuf), nil
}

// parseValue decodes the payload for tag, which the caller has already
// consumed. Fixed-width scalars are read inline; the remaining variants
// delegate to their own parse* helper.
func (p *parser) parseValue(tag Tag) (Node, error) {
	switch tag {
	case TagByte:
		b, err := p.read(1, "Byte")
		if err != nil {
			return Node{}, err
		}
		return newByte(int8(b[0])), nil

	case TagShort:
		b, err := p.read(2, "Short")
		if err != nil {
			return Node{}, err
		}
		return newShort(beInt16(b)), nil

	case TagInt:
		v, err := p.readInt32("Int")
		if err != nil {
			return Node{}, err
		}
		return newInt(v), nil

	case TagLong:
		b, err := p.read(8, "Long")
		if err != nil {
			return Node{}, err
		}
		return newLong(beInt64(b)), nil

	case TagFloat:
		b, err := p.read(4, "Float")
		if err != nil {
			return Node{}, err
		}
		return newFloat(beFloat32(b)), nil

	case TagDouble:
		b, err := p.read(8, "Double")
		if err != nil {
			return Node{}, err
		}
		return newDouble(beFloat64(b)), nil

	case TagByteArray:
		return p.parseByteArray()

	case TagString:
		return p.parseString()

	case TagList:
		return p.parseList()

	case TagCompound:
		body, err := p.parseCompoundBody()
		if err != nil {
			return Node{}, err
		}
		return newCompound(body), nil

	case TagIntArray:
		return p.parseIntArray()

	case TagLongArray:
		return p.parseLongArray()

	default:
		// Only reachable if a caller passes TagEnd, which never names a
		// value payload.
		return Node{}, wrapf(ErrUnexpectedEnd, "value expected")
	}
}

// parseByteArray reads an Int length followed by that many raw bytes. A
// negative length is clamped to zero.
func (p *parser) parseByteArray() (Node, error) {
	n, err := p.readInt32("ByteArray length")
	if err != nil {
		return Node{}, err
	}
	if n < 0 {
		n = 0
	}
	data, err := p.read(int(n), "ByteArray body")
	if err != nil {
		return Node{}, err
	}
	return newByteArray(data), nil
}

// parseString reads a Short length followed by that many UTF-8 bytes.
func (p *parser) parseString() (Node, error) {
	lenBuf, err := p.read(2, "String length")
	if err != nil {
		return Node{}, err
	}
	n := int(beUint16(lenBuf))
	data, err := p.read(n, "String body")
	if err != nil {
		return Node{}, err
	}
	return newString(string(data)), nil
}

// parseIntArray reads an Int count followed by that many big-endian
// Ints. A negative count is clamped to zero.
func (p *parser) parseIntArray() (Node, error) {
	n, err := p.readInt32("IntArray length")
	if err != nil {
		return Node{}, err
	}
	if n < 0 {
		n = 0
	}
	out := make([]int32, n)
	for i := range out {
		v, err := p.readInt32("IntArray element")
		if err != nil {
			return Node{}, err
		}
		out[i] = v
	}
	return newIntArray(out), nil
}

// parseLongArray reads an Int count followed by that many big-endian
// Longs. A negative count is clamped to zero.
func (p *parser) parseLongArray() (Node, error) {
	n, err := p.readInt32("LongArray length")
	if err != nil {
		return Node{}, err
	}
	if n < 0 {
		n = 0
	}
	out := make([]int64, n)
	for i := range out {
		b, err := p.read(8, "LongArray element")
		if err != nil {
			return Node{}, err
		}
		out[i] = beInt64(b)
	}
	return newLongArray(out), nil
}

// parseList reads the element tag and Int count, then parses that many
// children of the declared element type.
func (p *parser) parseList() (Node, error) {
	elem, err := p.readRawTag("List element tag")
	if err != nil {
		return Node{}, err
	}

	count, err := p.readInt32("List count")
	if err != nil {
		return Node{}, err
	}
	if count < 0 {
		count = 0
	}

	// Element tag End only makes sense for a declared count of zero; a
	// nonzero count with no element type is malformed.
	if elem == TagEnd && count != 0 {
		return Node{}, wrapf(ErrUnexpectedEnd, "List declares tag End with count %d", count)
	}

	if count == 0 {
		return newList(&List{elem: TagEnd}), nil
	}

	children := make([]Node, 0, count)
	for i := int32(0); i < count; i++ {
		child, err := p.parseValue(elem)
		if err != nil {
			return Node{}, err
		}
		children = append(children, child)
	}
	return newList(&List{elem: elem, children: children}), nil
}

// parseCompoundBody reads entries until a bare End tag: each entry is a
// tag byte, a name, and a value for that tag. First-write-wins on a
// duplicate key: the duplicate's value is still parsed, to keep the byte
// stream advancing correctly, and then dropped.
func (p *parser) parseCompoundBody() (*Compound, error) {
	c := newEmptyCompound()
	for {
		tag, err := p.readRawTag("Compound entry tag")
		if err != nil {
			return nil, err
		}
		if tag == TagEnd {
			return c, nil
		}

		name, err := p.readName("Compound entry name")
		if err != nil {
			return nil, err
		}

		value, err := p.parseValue(tag)
		if err != nil {
			return nil, err
		}

		c.insert(name, value) // first-write-wins
	}
}

// parseImplicitRoot implements the implicit-root entry policy: the
// document is presumed to be a single Compound body with its outer tag
// byte and name already stripped, so parsing goes straight to the
// Compound entry loop.
func (p *parser) parseImplicitRoot() (Node, error) {
	body, err := p.parseCompoundBody()
	if err != nil {
		return Node{}, err
	}
	return newCompound(body), nil
}

// parseExplicitRoot implements the explicit entry policy: the stream
// begins with a tag byte. A root Compound is followed by its own name,
// mirroring every Compound entry; any other root tag is followed directly
// by its payload. A top-level End tag is not a valid explicit document.
func (p *parser) parseExplicitRoot() (Node, error) {
	tag, err := p.readRawTag("root tag")
	if err != nil {
		return Node{}, err
	}
	if tag == TagEnd {
		return Node{}, wrapf(ErrUnexpectedEnd, "top-level End tag (explicit policy)")
	}

	if tag == TagCompound {
		if _, err := p.readName("root name"); err != nil {
			return Node{}, err
		}
	}

	return p.parseValue(tag)
}

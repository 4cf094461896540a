package nbt

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Parse decodes r under the implicit-root policy: the stream is presumed
// to be a single Compound body whose outer tag byte and name have already
// been stripped (the common on-disk convention once a wrapping tool has
// peeled it). No decompression is attempted; r must already be raw NBT.
func Parse(r io.Reader) (Node, error) {
	return newParser(r).parseImplicitRoot()
}

// ParseExplicit decodes r under the explicit policy: the first byte of
// the stream is a tag byte. A root Compound is followed by the root's
// name before the compound body; any other root tag is followed directly
// by its payload. No decompression is attempted.
func ParseExplicit(r io.Reader) (Node, error) {
	return newParser(r).parseExplicitRoot()
}

// ParseAuto autodetects raw/gzip/zlib framing on r and then parses the
// decompressed stream under the implicit-root policy.
func ParseAuto(r io.Reader) (Node, error) {
	plain, err := detectFraming(r)
	if err != nil {
		return Node{}, err
	}
	return Parse(plain)
}

// ParseBytes is a convenience wrapper over Parse for an in-memory buffer.
func ParseBytes(b []byte) (Node, error) {
	return Parse(bytes.NewReader(b))
}

// ParseFile opens path and parses it with ParseAuto.
func ParseFile(path string) (Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return Node{}, fmt.Errorf("nbt: open %s: %w", path, err)
	}
	defer f.Close()

	return ParseAuto(f)
}

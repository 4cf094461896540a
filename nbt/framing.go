package nbt

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// pushbackReader re-delivers a small number of already-consumed bytes
// before resuming reads from the wrapped reader. It exists so the framing
// detector can peek one or two bytes and then hand an equivalent,
// unconsumed stream to whichever decoder it picks.
type pushbackReader struct {
	r   io.Reader
	buf []byte
}

func (p *pushbackReader) Read(b []byte) (int, error) {
	if len(p.buf) == 0 {
		return p.r.Read(b)
	}
	n := copy(b, p.buf)
	p.buf = p.buf[n:]
	if n == len(b) {
		return n, nil
	}
	m, err := p.r.Read(b[n:])
	if err == io.EOF {
		// The pushed-back bytes are data; EOF is reported by the next Read.
		err = nil
	}
	return n + m, err
}

// detectFraming peeks at the first one or two bytes of r to decide whether
// the stream is raw NBT, gzip (RFC 1952) or zlib (RFC 1950), and returns a
// reader over the plain (decompressed) NBT byte stream. The peeked bytes
// are always logically pushed back, whichever path is taken.
func detectFraming(r io.Reader) (io.Reader, error) {
	var head [2]byte
	n, err := io.ReadFull(r, head[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, wrapf(ErrIoError, "framing detection")
	}

	switch {
	case n == 0:
		// Empty stream; let the parser discover end-of-input itself.
		return r, nil

	case n == 1:
		return &pushbackReader{r: r, buf: head[:1]}, nil

	case head[0] == 0x1F && head[1] == 0x8B:
		gz, err := gzip.NewReader(&pushbackReader{r: r, buf: head[:]})
		if err != nil {
			return nil, wrapf(ErrCorruptInput, "gzip header")
		}
		return gz, nil

	case head[0] == 0x78 && (head[1] == 0x01 || head[1] == 0x9C || head[1] == 0xDA):
		zr, err := zlib.NewReader(&pushbackReader{r: r, buf: head[:]})
		if err != nil {
			return nil, wrapf(ErrCorruptInput, "zlib header")
		}
		return zr, nil

	default:
		return &pushbackReader{r: r, buf: head[:]}, nil
	}
}

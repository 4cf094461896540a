package nbt

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the fault kinds of the NBT decoder. Callers
// match against these with errors.Is; the error returned from a failing
// call also carries a short context string naming the state that detected
// the fault.
var (
	// ErrTruncatedInput means the end of the stream was reached while a
	// declared field still had bytes to read.
	ErrTruncatedInput = errors.New("nbt: truncated input")

	// ErrUnknownTag means a tag byte outside 0x00..0x0C was encountered
	// where a tag was expected.
	ErrUnknownTag = errors.New("nbt: unknown tag")

	// ErrUnexpectedEnd means a 0x00 End tag was encountered where a tag in
	// 0x01..0x0C was required.
	ErrUnexpectedEnd = errors.New("nbt: unexpected end tag")

	// ErrCorruptInput means the gzip/zlib decompressor reported corrupt
	// data: a bad header, corrupt deflate data, or a CRC/Adler-32 mismatch.
	// A compressed stream that ends early is reported as ErrTruncatedInput.
	ErrCorruptInput = errors.New("nbt: corrupt input")

	// ErrTypeMismatch means a typed accessor or typed list view was asked
	// for a tag that does not match the node's actual tag.
	ErrTypeMismatch = errors.New("nbt: type mismatch")

	// ErrOutOfRange means indexed list access beyond length, or keyed
	// compound access to an absent key via the failing accessor.
	ErrOutOfRange = errors.New("nbt: out of range")

	// ErrIoError means the underlying byte source reported an OS-level
	// error while being read.
	ErrIoError = errors.New("nbt: io error")
)

// wrapf wraps sentinel with a short context string, e.g. "List count".
func wrapf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("nbt: %s: %w", fmt.Sprintf(format, args...), sentinel)
}

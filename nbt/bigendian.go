package nbt

import "math"

// beUint16 decodes a big-endian uint16 from the first two bytes of b.
func beUint16(b []byte) uint16 {
	_ = b[1]
	return uint16(b[0])<<8 | uint16(b[1])
}

// beUint32 decodes a big-endian uint32 from the first four bytes of b.
func beUint32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// beUint64 decodes a big-endian uint64 from the first eight bytes of b.
func beUint64(b []byte) uint64 {
	_ = b[7]
	hi := beUint32(b[0:4])
	lo := beUint32(b[4:8])
	return uint64(hi)<<32 | uint64(lo)
}

// beInt16 reinterprets a big-endian uint16 as two's-complement int16.
func beInt16(b []byte) int16 { return int16(beUint16(b)) }

// beInt32 reinterprets a big-endian uint32 as two's-complement int32.
func beInt32(b []byte) int32 { return int32(beUint32(b)) }

// beInt64 reinterprets a big-endian uint64 as two's-complement int64.
func beInt64(b []byte) int64 { return int64(beUint64(b)) }

// beFloat32 bit-reinterprets a big-endian uint32 as IEEE-754 binary32.
// NaN bit patterns, signaling or quiet, round-trip verbatim.
func beFloat32(b []byte) float32 { return math.Float32frombits(beUint32(b)) }

// beFloat64 bit-reinterprets a big-endian uint64 as IEEE-754 binary64.
func beFloat64(b []byte) float64 { return math.Float64frombits(beUint64(b)) }

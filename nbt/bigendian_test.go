package nbt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigEndianIntegers(t *testing.T) {
	require.EqualValues(t, 0x1020, beUint16([]byte{0x10, 0x20}))
	require.EqualValues(t, 0x10203040, beUint32([]byte{0x10, 0x20, 0x30, 0x40}))
	require.EqualValues(t, 0x1020304050607080, beUint64([]byte{0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80}))

	require.EqualValues(t, -1, beInt16([]byte{0xFF, 0xFF}))
	require.EqualValues(t, -1, beInt32([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	require.EqualValues(t, -1, beInt64([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}))
}

func TestBigEndianFloatsPreserveNaNBits(t *testing.T) {
	signalingBits := uint32(0x7F800001)
	b := []byte{
		byte(signalingBits >> 24), byte(signalingBits >> 16),
		byte(signalingBits >> 8), byte(signalingBits),
	}
	got := beFloat32(b)
	require.True(t, math.IsNaN(float64(got)))
	require.Equal(t, signalingBits, math.Float32bits(got))

	quietBits := uint64(0x7FF8000000000001)
	b8 := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b8[i] = byte(quietBits >> uint(56-8*i))
	}
	gotD := beFloat64(b8)
	require.True(t, math.IsNaN(gotD))
	require.Equal(t, quietBits, math.Float64bits(gotD))
}

package nbt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectFramingEmptyStream(t *testing.T) {
	r, err := detectFraming(bytes.NewReader(nil))
	require.NoError(t, err)
	buf := make([]byte, 1)
	n, err := r.Read(buf)
	require.Zero(t, n)
	require.Error(t, err)
}

func TestDetectFramingSingleByteStreamIsRaw(t *testing.T) {
	r, err := detectFraming(bytes.NewReader([]byte{0x01}))
	require.NoError(t, err)
	buf := make([]byte, 4)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0x01), buf[0])
}

func TestDetectFramingRawTagBytePassesThrough(t *testing.T) {
	r, err := detectFraming(bytes.NewReader([]byte{0x0A, 0x00, 0x00, 0x00}))
	require.NoError(t, err)
	buf := make([]byte, 4)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0x0A, 0x00, 0x00, 0x00}, buf[:n])
}

func TestDetectFramingBadGzipMagicIsCorrupt(t *testing.T) {
	// Valid gzip magic but garbage afterwards: header parse should fail.
	_, err := detectFraming(bytes.NewReader([]byte{0x1F, 0x8B, 0xFF, 0xFF, 0xFF, 0xFF}))
	require.ErrorIs(t, err, ErrCorruptInput)
}

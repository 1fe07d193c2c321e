package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/errs"
)

func TestCursor_RoundTrip(t *testing.T) {
	buf := make([]byte, 32)
	w := NewWriter(buf)

	require.NoError(t, w.WriteU8(0x11))
	require.NoError(t, w.WriteU16(0x2233))
	require.NoError(t, w.WriteU32(0x44556677))
	require.NoError(t, w.WriteU64(0x8899AABBCCDDEEFF))
	require.NoError(t, w.WriteF32(1.5))
	require.NoError(t, w.WriteF64(2.5))
	require.NoError(t, w.WriteBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF}))

	r := NewReader(buf)

	u8, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0x11), u8)

	u16, err := r.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x2233), u16)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x44556677), u32)

	u64, err := r.ReadU64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x8899AABBCCDDEEFF), u64)

	f32, err := r.ReadF32()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f32)

	f64, err := r.ReadF64()
	require.NoError(t, err)
	require.Equal(t, 2.5, f64)

	raw, err := r.ReadBytes(4)
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, raw)
}

func TestCursor_ReadTruncated(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})

	_, err := r.ReadU32()
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestCursor_WriteBufferOverflow(t *testing.T) {
	w := NewWriter(make([]byte, 2))

	err := w.WriteU32(1)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBufferOverflow)
}

func TestCursor_Skip(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	require.NoError(t, r.Skip(3))
	require.Equal(t, 3, r.Pos())

	v, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(4), v)
}

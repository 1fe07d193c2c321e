package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// roundTrip encodes rec through its registered (or fallback) encoder, then
// decodes the resulting bytes back through the catalogue, returning the
// decoded Record for comparison against rec.
func roundTrip(t *testing.T, rec Record) Record {
	t.Helper()

	n := Size(rec)
	buf := make([]byte, n)
	require.NoError(t, Encode(rec, codec.NewWriter(buf)))

	got, err := Decode(rec.Type(), *rec.Header(), codec.NewReader(buf), n)
	require.NoError(t, err)
	return got
}

func TestIsKnown(t *testing.T) {
	require.True(t, IsKnown(format.ObjectTypeCanMessage))
	require.False(t, IsKnown(format.ObjectTypeReserved52))
}

func TestDecode_UnregisteredTagFallsBackToRaw(t *testing.T) {
	hdr := object.Header{Base: object.Base{ObjectType: format.ObjectTypeMostPkt}}
	payload := []byte{1, 2, 3, 4}
	got, err := Decode(format.ObjectTypeMostPkt, hdr, codec.NewReader(payload), len(payload))
	require.NoError(t, err)
	raw, ok := got.(*Raw)
	require.True(t, ok)
	require.Equal(t, payload, raw.Payload)
}

func TestEncode_RawFallback(t *testing.T) {
	raw := &Raw{base: base{ObjType: format.ObjectTypeMostPkt}, Payload: []byte{9, 8, 7}}
	buf := make([]byte, Size(raw))
	require.NoError(t, Encode(raw, codec.NewWriter(buf)))
	require.Equal(t, raw.Payload, buf)
}

func TestEncode_UnknownTypeWithoutRawErrors(t *testing.T) {
	u := &unregisteredRecord{}
	err := Encode(u, codec.NewWriter(nil))
	require.Error(t, err)
}

type unregisteredRecord struct{ base }

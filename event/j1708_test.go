package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

func TestJ1708Message_RoundTrip(t *testing.T) {
	m := &J1708Message{
		base:    base{ObjType: format.ObjectTypeJ1708Message},
		Channel: 1,
		DataLen: 3,
		Data:    []byte{1, 2, 3},
	}
	got := roundTrip(t, m).(*J1708Message)
	require.Equal(t, m.Channel, got.Channel)
	require.Equal(t, m.DataLen, got.DataLen)
	require.Equal(t, m.Data, got.Data)
}

func TestJ1708Message_DataLenExceedsBoundsErrors(t *testing.T) {
	m := &J1708Message{base: base{ObjType: format.ObjectTypeJ1708Message}, DataLen: 50, Data: []byte{1}}
	buf := make([]byte, sizeJ1708Message(m))
	require.NoError(t, encodeJ1708Message(m, codec.NewWriter(buf)))

	_, err := Decode(format.ObjectTypeJ1708Message, object.Header{}, codec.NewReader(buf), 5)
	require.Error(t, err)
}

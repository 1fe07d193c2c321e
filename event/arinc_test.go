package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/format"
)

func TestArinc429Message_RoundTrip(t *testing.T) {
	m := &Arinc429Message{
		base:    base{ObjType: format.ObjectTypeArinc429Message},
		Channel: 1,
		Dir:     1,
		Label:   0x17,
		SDI:     2,
		Payload: [4]byte{1, 2, 3, 4},
	}
	got := roundTrip(t, m).(*Arinc429Message)
	require.Equal(t, m.Channel, got.Channel)
	require.Equal(t, m.Dir, got.Dir)
	require.Equal(t, m.Label, got.Label)
	require.Equal(t, m.SDI, got.SDI)
	require.Equal(t, m.Payload, got.Payload)
}

package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/format"
)

func TestKLineStatusEvent_RoundTrip(t *testing.T) {
	e := &KLineStatusEvent{
		base:    base{ObjType: format.ObjectTypeKLineStatusEvent},
		Type:    1,
		Channel: 2,
		Data:    [8]byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
	got := roundTrip(t, e).(*KLineStatusEvent)
	require.Equal(t, e.Type, got.Type)
	require.Equal(t, e.Channel, got.Channel)
	require.Equal(t, e.Data, got.Data)
}

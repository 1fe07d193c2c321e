package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/format"
)

func TestLinStatisticEvent_RoundTrip(t *testing.T) {
	e := &LinStatisticEvent{
		base:             base{ObjType: format.ObjectTypeLinStatisticEvent},
		Channel:          1,
		BusLoad:          42.5,
		BurstsTotal:      10,
		BurstsOverrun:    1,
		FramesSent:       100,
		FramesReceived:   95,
		FramesUnanswered: 5,
	}
	got := roundTrip(t, e).(*LinStatisticEvent)
	require.Equal(t, e.Channel, got.Channel)
	require.Equal(t, e.BusLoad, got.BusLoad)
	require.Equal(t, e.BurstsTotal, got.BurstsTotal)
	require.Equal(t, e.BurstsOverrun, got.BurstsOverrun)
	require.Equal(t, e.FramesSent, got.FramesSent)
	require.Equal(t, e.FramesReceived, got.FramesReceived)
	require.Equal(t, e.FramesUnanswered, got.FramesUnanswered)
}

func TestLinMessage_RoundTrip(t *testing.T) {
	m := &LinMessage{
		base:    base{ObjType: format.ObjectTypeLinMessage},
		Channel: 1,
		ID:      0x10,
		DLC:     4,
		Data:    [8]byte{0xAA, 0xBB, 0xCC, 0xDD},
	}
	got := roundTrip(t, m).(*LinMessage)
	require.Equal(t, m.Channel, got.Channel)
	require.Equal(t, m.ID, got.ID)
	require.Equal(t, m.DLC, got.DLC)
	require.Equal(t, m.Data, got.Data)
}

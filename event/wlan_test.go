package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/format"
)

func TestWlanFrame_RoundTrip(t *testing.T) {
	f := &WlanFrame{
		base:           base{ObjType: format.ObjectTypeWlanFrame},
		Channel:        1,
		Flags:          2,
		SignalStrength: 80,
		FrameLength:    4,
		FrameData:      []byte{1, 2, 3, 4},
	}
	got := roundTrip(t, f).(*WlanFrame)
	require.Equal(t, f.Channel, got.Channel)
	require.Equal(t, f.Flags, got.Flags)
	require.Equal(t, f.SignalStrength, got.SignalStrength)
	require.Equal(t, f.FrameLength, got.FrameLength)
	require.Equal(t, f.FrameData, got.FrameData)
}

package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/format"
)

func TestEthernetFrameForwarded_RoundTrip(t *testing.T) {
	f := &EthernetFrameForwarded{
		base:            base{ObjType: format.ObjectTypeEthernetFrameForwarded},
		StructLength:    32,
		Flags:           1,
		Channel:         1,
		HardwareChannel: 1,
		FrameDuration:   12345,
		FrameChecksum:   0xDEADBEEF,
		Dir:             0,
		FrameLength:     6,
		FrameHandle:     7,
		FrameData:       []byte{1, 2, 3, 4, 5, 6},
	}
	got := roundTrip(t, f).(*EthernetFrameForwarded)
	require.Equal(t, f.StructLength, got.StructLength)
	require.Equal(t, f.FrameDuration, got.FrameDuration)
	require.Equal(t, f.FrameChecksum, got.FrameChecksum)
	require.Equal(t, f.FrameLength, got.FrameLength)
	require.Equal(t, f.FrameHandle, got.FrameHandle)
	require.Equal(t, f.FrameData, got.FrameData)
}

func TestEthernetFrame_RoundTrip(t *testing.T) {
	f := &EthernetFrame{
		base:          base{ObjType: format.ObjectTypeEthernetFrame},
		SourceAddress: [6]byte{1, 2, 3, 4, 5, 6},
		Channel:       1,
		DestAddress:   [6]byte{6, 5, 4, 3, 2, 1},
		EtherType:     0x0800,
		PayLoad:       []byte{0xAA, 0xBB, 0xCC},
	}
	got := roundTrip(t, f).(*EthernetFrame)
	require.Equal(t, f.SourceAddress, got.SourceAddress)
	require.Equal(t, f.DestAddress, got.DestAddress)
	require.Equal(t, f.EtherType, got.EtherType)
	require.Equal(t, f.PayLoad, got.PayLoad)
}

package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/format"
)

func TestMost150Pkt_RoundTrip(t *testing.T) {
	p := &Most150Pkt{
		base:          base{ObjType: format.ObjectTypeMost150Pkt},
		Channel:       1,
		Dir:           1,
		SourceAdr:     0x100,
		DestAdr:       0x200,
		TransferType:  1,
		State:         0,
		AckNack:       0,
		CRC:           0xABCD,
		PAck:          1,
		CAck:          1,
		Priority:      0,
		PIndex:        0,
		PktDataLength: 4,
		PktData:       []byte{1, 2, 3, 4},
	}
	got := roundTrip(t, p).(*Most150Pkt)
	require.Equal(t, p.Channel, got.Channel)
	require.Equal(t, p.SourceAdr, got.SourceAdr)
	require.Equal(t, p.DestAdr, got.DestAdr)
	require.Equal(t, p.CRC, got.CRC)
	require.Equal(t, p.PktDataLength, got.PktDataLength)
	require.Equal(t, p.PktData, got.PktData)
}

func TestMost150Pkt_PktDataLengthExceedsBoundsErrors(t *testing.T) {
	p := &Most150Pkt{
		base:          base{ObjType: format.ObjectTypeMost150Pkt},
		PktDataLength: 100,
		PktData:       []byte{1},
	}
	n := sizeMost150Pkt(p)
	buf := make([]byte, n)
	require.NoError(t, encodeMost150Pkt(p, codec.NewWriter(buf)))

	_, err := Decode(format.ObjectTypeMost150Pkt, *p.Header(), codec.NewReader(buf), 5)
	require.Error(t, err)
}

func TestMostSpy_RoundTrip(t *testing.T) {
	s := &MostSpy{base: base{ObjType: format.ObjectTypeMostSpy}, Channel: 2, Data: [4]byte{1, 2, 3, 4}}
	got := roundTrip(t, s).(*MostSpy)
	require.Equal(t, s.Channel, got.Channel)
	require.Equal(t, s.Data, got.Data)
}

package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/format"
)

func TestAfdxFrame_RoundTrip(t *testing.T) {
	f := &AfdxFrame{
		base:               base{ObjType: format.ObjectTypeAfdxFrame},
		SourceAddress:      [6]byte{1, 2, 3, 4, 5, 6},
		Channel:            1,
		DestinationAddress: [6]byte{6, 5, 4, 3, 2, 1},
		Dir:                AfdxDirTx,
		EtherType:          0x0800,
		TPID:               0x8100,
		TCI:                1,
		EthChannel:         1,
		AfdxFlags:          AfdxFlagRedundant | AfdxFlagFragment,
		BagUsec:            2000,
		PayLoadLength:      3,
		PayLoad:            []byte{0xDE, 0xAD, 0xBE},
	}
	got := roundTrip(t, f).(*AfdxFrame)
	require.Equal(t, f.Dir, got.Dir)
	require.Equal(t, f.AfdxFlags, got.AfdxFlags)
	require.Equal(t, f.BagUsec, got.BagUsec)
	require.Equal(t, f.PayLoadLength, got.PayLoadLength)
	require.Equal(t, f.PayLoad, got.PayLoad)
}

package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/format"
)

func TestUnknown115_RoundTrip(t *testing.T) {
	u := NewUnknown115(format.HeaderVersion1, 42)
	got := roundTrip(t, u)
	require.Equal(t, format.ObjectTypeUnknown115, got.Type())
	require.IsType(t, &Unknown115{}, got)
}

func TestUnknown115_SkipsTrailingPadding(t *testing.T) {
	u := NewUnknown115(format.HeaderVersion1, 1)
	buf := make([]byte, 4)
	got, err := Decode(format.ObjectTypeUnknown115, *u.Header(), codec.NewReader(buf), len(buf))
	require.NoError(t, err)
	require.IsType(t, &Unknown115{}, got)
}

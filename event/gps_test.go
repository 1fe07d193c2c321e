package event

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/format"
)

func TestGpsEvent_RoundTrip(t *testing.T) {
	e := &GpsEvent{
		base:      base{ObjType: format.ObjectTypeGpsEvent},
		Flags:     1,
		Latitude:  48.1351,
		Longitude: 11.5820,
		Altitude:  519.0,
		Speed:     13.4,
		Course:    270.0,
	}
	got := roundTrip(t, e).(*GpsEvent)
	require.Equal(t, e.Flags, got.Flags)
	require.Equal(t, e.Latitude, got.Latitude)
	require.Equal(t, e.Longitude, got.Longitude)
	require.Equal(t, e.Altitude, got.Altitude)
	require.Equal(t, e.Speed, got.Speed)
	require.Equal(t, e.Course, got.Course)
}

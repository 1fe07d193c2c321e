package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
)

func TestStatistics_RoundTrip(t *testing.T) {
	s := New()
	s.ApplicationID = 5
	s.ApplicationMajor = 1
	s.FileSize = 1024
	s.UncompressedFileSize = 2048
	s.ObjectCount = 7
	s.MeasurementStartTime = SystemTime{Year: 2024, Month: 1, Day: 1, Hour: 12}
	s.FileSizeWithoutUnknown115 = 900

	buf, err := Write(&s)
	require.NoError(t, err)
	require.Len(t, buf, Size)

	got, err := Read(codec.NewReader(buf))
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestStatistics_BadSignature(t *testing.T) {
	buf := make([]byte, Size)
	_, err := Read(codec.NewReader(buf))
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrBadSignature)
}

package bytequeue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueue_WriteReadRoundTrip(t *testing.T) {
	q := New()
	q.Write([]byte("hello "))
	q.Write([]byte("world"))
	require.Equal(t, 11, q.Unread())

	got, err := q.Read(5)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)
	require.Equal(t, 6, q.Unread())
}

func TestQueue_PeekDoesNotAdvance(t *testing.T) {
	q := New()
	q.Write([]byte("abcdef"))

	got, err := q.Peek(3)
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), got)
	require.Equal(t, 6, q.Unread())
}

func TestQueue_ReadPastUnreadErrors(t *testing.T) {
	q := New()
	q.Write([]byte("ab"))
	_, err := q.Read(3)
	require.Error(t, err)
}

func TestQueue_RewindRestoresUnread(t *testing.T) {
	q := New()
	q.Write([]byte("abcdef"))
	_, err := q.Read(4)
	require.NoError(t, err)
	require.Equal(t, 2, q.Unread())

	require.NoError(t, q.Rewind(4))
	require.Equal(t, 6, q.Unread())
}

func TestQueue_RewindPastStartErrors(t *testing.T) {
	q := New()
	q.Write([]byte("ab"))
	require.Error(t, q.Rewind(5))
}

func TestQueue_DropOldDataCompacts(t *testing.T) {
	q := New()
	q.Write([]byte("0123456789"))
	_, err := q.Read(6)
	require.NoError(t, err)

	q.DropOldData(4)
	require.Equal(t, 4, q.Unread())
	got, err := q.Read(4)
	require.NoError(t, err)
	require.Equal(t, []byte("6789"), got)
}

func TestQueue_DropOldDataHonoursHintBelowReadPos(t *testing.T) {
	q := New()
	q.Write([]byte("0123456789"))
	_, err := q.Read(8)
	require.NoError(t, err)

	q.DropOldData(3)
	require.Equal(t, 2, q.Unread())
	require.Equal(t, 5, q.TellR())
	require.Equal(t, 10, q.TellW())
}

func TestQueue_GrowsAcrossManyWrites(t *testing.T) {
	q := New()
	chunk := make([]byte, 4096)
	for i := range chunk {
		chunk[i] = byte(i)
	}
	for i := 0; i < 10; i++ {
		q.Write(chunk)
	}
	require.Equal(t, 40960, q.Unread())

	got, err := q.Read(4096)
	require.NoError(t, err)
	require.Equal(t, chunk, got)
}

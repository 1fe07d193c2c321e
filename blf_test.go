package blf

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carlosdem/vector-blf/event"
	"github.com/carlosdem/vector-blf/format"
)

func openForCorruption(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	require.NoError(t, err)
	return f
}

func newCanMessage(id uint32) *event.CanMessage {
	m := &event.CanMessage{ID: id, Channel: 1, DLC: 8, Data: [8]byte{1, 2, 3, 4, 5, 6, 7, 8}}
	m.ObjType = format.ObjectTypeCanMessage
	return m
}

func TestFile_OpenWriteCloseThenReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.blf")

	wf, err := Open(path, ModeWrite, WithCompressionLevel(6))
	require.NoError(t, err)
	for i := uint32(0); i < 10; i++ {
		require.NoError(t, wf.Write(newCanMessage(i)))
	}
	require.NoError(t, wf.Close())
	require.False(t, wf.IsOpen())

	rf, err := Open(path, ModeRead)
	require.NoError(t, err)
	defer rf.Close()

	// The Unknown115 end-of-file sentinel Close appends is delivered as an
	// ordinary record after the ten messages.
	var ids []uint32
	sentinels := 0
	for {
		rec, err := rf.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if rec.Type() == format.ObjectTypeUnknown115 {
			require.Len(t, ids, 10)
			sentinels++
			continue
		}
		msg, ok := rec.(*event.CanMessage)
		require.True(t, ok)
		ids = append(ids, msg.ID)
	}
	require.True(t, rf.EOF())
	require.Equal(t, 1, sentinels)
	require.Len(t, ids, 10)
	for i, id := range ids {
		require.Equal(t, uint32(i), id)
	}
}

func TestFile_BadSignatureOnOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notblf.bin")

	wf, err := Open(path, ModeWrite)
	require.NoError(t, err)
	require.NoError(t, wf.Close())

	// Corrupt the magic so the reopened file no longer starts with 'LOGG'.
	corrupted := make([]byte, 4)
	f := openForCorruption(t, path)
	_, err = f.WriteAt(corrupted, 0)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = Open(path, ModeRead)
	require.Error(t, err)
}

func TestFile_WriteOnReadModeErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "writeguard.blf")
	wf, err := Open(path, ModeWrite)
	require.NoError(t, err)
	require.NoError(t, wf.Close())

	rf, err := Open(path, ModeRead)
	require.NoError(t, err)
	defer rf.Close()

	err = rf.Write(newCanMessage(0))
	require.Error(t, err)
}

func TestFile_ConfigAccessorsReflectOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.blf")
	wf, err := Open(path, ModeWrite,
		WithCompressionLevel(0),
		WithDefaultLogContainerSize(4096),
		WithWriteUnknown115(false),
	)
	require.NoError(t, err)
	defer wf.Close()

	require.Equal(t, 0, wf.CompressionLevel())
	require.Equal(t, 4096, wf.DefaultLogContainerSize())
	require.False(t, wf.WriteUnknown115())
}

// Package blf implements reading and writing of Vector's Binary Logging
// Format: a zlib-compressed container stream wrapping a self-describing
// sequence of bus-event objects, preceded by a fixed 144-byte
// FileStatistics header.
//
// Package-level wrapper functions mirror mebo.go's facade style: the
// domain logic lives in the internal codec/object/event/container/
// pipeline packages, and File here is a thin, heavily-documented wrapper
// that opens the right internal.pipeline.Pipeline for the requested Mode
// and exposes open/is_open/eof/read/write/close plus three configuration
// accessors.
package blf

import (
	"io"
	"os"

	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/compress"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/event"
	"github.com/carlosdem/vector-blf/internal/options"
	"github.com/carlosdem/vector-blf/internal/pipeline"
	"github.com/carlosdem/vector-blf/stats"
)

// Mode selects whether an opened File reads or writes.
type Mode int

const (
	// ModeRead opens an existing file for reading.
	ModeRead Mode = iota
	// ModeWrite creates (or truncates) a file for writing.
	ModeWrite
)

// config holds the write-mode tunables an Option may adjust.
type config struct {
	compressionLevel        int
	defaultLogContainerSize int
	writeUnknown115         bool
}

func defaultConfig() *config {
	return &config{
		compressionLevel:        compress.DefaultLevel,
		defaultLogContainerSize: pipeline.DefaultLogContainerSize,
		writeUnknown115:         true,
	}
}

// Option configures a File opened with ModeWrite. Unrecognised for
// ModeRead since the reader has no tunables; an Option passed to a
// read-mode Open is accepted but has no effect.
type Option = options.Option[*config]

// WithCompressionLevel sets the zlib deflate level (1-9) used when
// flushing LogContainers, or 0 to disable compression and store payloads
// verbatim.
func WithCompressionLevel(level int) Option {
	return options.NoError(func(c *config) { c.compressionLevel = level })
}

// WithDefaultLogContainerSize sets the uncompressed byte threshold that
// triggers flushing a LogContainer, overriding the 128 KiB default.
func WithDefaultLogContainerSize(size int) Option {
	return options.NoError(func(c *config) { c.defaultLogContainerSize = size })
}

// WithWriteUnknown115 controls whether Close appends the Unknown115
// end-of-file sentinel. Defaults to enabled, matching the original
// writer's behaviour.
func WithWriteUnknown115(enabled bool) Option {
	return options.NoError(func(c *config) { c.writeUnknown115 = enabled })
}

// File is an open BLF file: either a reader positioned to deliver decoded
// event.Records one at a time, or a writer buffering and compressing them.
type File struct {
	f      *os.File
	mode   Mode
	pipe   *pipeline.Pipeline
	cfg    *config
	closed bool
}

// Open opens path in the given Mode. In ModeRead it parses and validates
// the 144-byte FileStatistics header immediately, failing BAD_SIGNATURE if
// the magic does not read 'LOGG'. In ModeWrite it creates (or truncates)
// the file and reserves the FileStatistics region with a zeroed
// placeholder, to be backpatched by Close.
func Open(path string, mode Mode, opts ...Option) (*File, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	switch mode {
	case ModeRead:
		return openRead(path, cfg)
	case ModeWrite:
		return openWrite(path, cfg)
	default:
		return nil, errs.New(errs.KindIOError, "blf: unknown mode")
	}
}

func openRead(path string, cfg *config) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindIOError, "blf: open for read", err)
	}

	header := make([]byte, stats.Size)
	if _, err := io.ReadFull(f, header); err != nil {
		f.Close()
		return nil, errs.Wrap(errs.KindTruncated, "blf: file statistics header", err)
	}

	st, err := stats.Read(codec.NewReader(header))
	if err != nil {
		f.Close()
		return nil, err
	}

	pcfg := pipeline.Config{
		CompressionLevel:        cfg.compressionLevel,
		DefaultLogContainerSize: cfg.defaultLogContainerSize,
		WriteUnknown115:         cfg.writeUnknown115,
	}
	return &File{
		f:    f,
		mode: ModeRead,
		pipe: pipeline.New(f, pipeline.ModeRead, st, pcfg),
		cfg:  cfg,
	}, nil
}

func openWrite(path string, cfg *config) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindIOError, "blf: open for write", err)
	}

	placeholder := make([]byte, stats.Size)
	if _, err := f.Write(placeholder); err != nil {
		f.Close()
		return nil, errs.Wrap(errs.KindIOError, "blf: reserve file statistics region", err)
	}

	pcfg := pipeline.Config{
		CompressionLevel:        cfg.compressionLevel,
		DefaultLogContainerSize: cfg.defaultLogContainerSize,
		WriteUnknown115:         cfg.writeUnknown115,
	}
	return &File{
		f:    f,
		mode: ModeWrite,
		pipe: pipeline.New(f, pipeline.ModeWrite, stats.New(), pcfg),
		cfg:  cfg,
	}, nil
}

// IsOpen reports whether Close has not yet been called.
func (bf *File) IsOpen() bool { return !bf.closed }

// EOF reports whether a ModeRead File has no more events to deliver.
func (bf *File) EOF() bool {
	if bf.mode != ModeRead {
		return false
	}
	return bf.pipe.EOF()
}

// Read returns the next decoded event record. It returns io.EOF once the
// file is cleanly exhausted; any other error aborts the read pass.
func (bf *File) Read() (event.Record, error) {
	if bf.mode != ModeRead {
		return nil, errs.New(errs.KindIOError, "blf: Read called on a write-mode File")
	}
	return bf.pipe.Read()
}

// Write buffers rec for the next LogContainer flush.
func (bf *File) Write(rec event.Record) error {
	if bf.mode != ModeWrite {
		return errs.New(errs.KindIOError, "blf: Write called on a read-mode File")
	}
	return bf.pipe.Write(rec)
}

// Close is idempotent. In ModeWrite it flushes any buffered bytes,
// optionally appends the Unknown115 sentinel, backpatches the
// FileStatistics header, and closes the underlying OS handle; failing to
// call it on a write-mode File leaves the statistics block zeroed.
func (bf *File) Close() error {
	if bf.closed {
		return nil
	}
	bf.closed = true

	if err := bf.pipe.Close(); err != nil {
		bf.f.Close()
		return err
	}
	if err := bf.f.Close(); err != nil {
		return errs.Wrap(errs.KindIOError, "blf: close", err)
	}
	return nil
}

// CompressionLevel returns the zlib level this File was configured with.
func (bf *File) CompressionLevel() int { return bf.cfg.compressionLevel }

// DefaultLogContainerSize returns the uncompressed flush threshold this
// File was configured with.
func (bf *File) DefaultLogContainerSize() int { return bf.cfg.defaultLogContainerSize }

// WriteUnknown115 reports whether Close will append the end-of-file
// sentinel.
func (bf *File) WriteUnknown115() bool { return bf.cfg.writeUnknown115 }

// Stats returns a snapshot of the current FileStatistics: live counters in
// ModeRead, the values Close will (or did) write in ModeWrite.
func (bf *File) Stats() stats.Statistics { return bf.pipe.Stats() }

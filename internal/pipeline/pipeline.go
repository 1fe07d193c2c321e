// Package pipeline implements the compression pipeline that sits between
// the on-disk container stream and the decoded event stream: the
// compressedFile/uncompressedFile/readWriteQueue design, collapsed to
// synchronous method calls on a single goroutine rather than the
// original's cooperating threads, since every call site in this module
// only ever has one reader and one writer per direction outstanding at a
// time.
package pipeline

import (
	"io"
	"os"

	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/container"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/event"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/internal/bytequeue"
	"github.com/carlosdem/vector-blf/object"
	"github.com/carlosdem/vector-blf/stats"
)

// align4 rounds n up to the next multiple of 4. Some real-world producers
// pad an object's on-disk bytes to a 4-byte boundary and some don't; this
// module resolves that by always rounding up on write and always
// discarding the padding on read, regardless of what a given event
// variant's decoder itself consumed (spec's objectSize/headerSize
// invariants are about the declared sizes, not the physical framing
// between objects).
func align4(n int) int { return (n + 3) &^ 3 }

// DefaultLogContainerSize is the uncompressed payload size a write-mode
// Pipeline accumulates before flushing a LogContainer, matching the
// original writer's default.
const DefaultLogContainerSize = 0x20000 // 128 KiB

// Mode selects which half of the pipeline a Pipeline drives: a given
// instance is either a reader or a writer, never both, matching the
// single-writer/single-reader-per-direction discipline.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

// Config carries the write-mode tunables. A zero DefaultLogContainerSize
// falls back to the package's DefaultLogContainerSize, a zero
// CompressionLevel writes stored (uncompressed) containers, and a zero
// WriteUnknown115 writes no sentinel; the File facade fills in its own
// defaults before constructing a Pipeline.
type Config struct {
	CompressionLevel        int
	DefaultLogContainerSize int
	WriteUnknown115         bool
}

// Pipeline drives one open BLF file: reading, it inflates LogContainers on
// demand and hands back decoded event.Records one at a time; writing, it
// buffers encoded records and flushes them as compressed LogContainers
// once DefaultLogContainerSize uncompressed bytes have accumulated.
type Pipeline struct {
	file *os.File
	mode Mode
	cfg  Config

	uncompressed *bytequeue.Queue
	readWrite    []event.Record

	stats stats.Statistics

	// compressedPos tracks bytes consumed from (read mode) or written to
	// (write mode) file, since os.File offers no cheap "bytes consumed so
	// far" query that survives buffered reads.
	compressedPos int64

	// containerBytes/uncompressedBytes accumulate write-mode totals past
	// the 144-byte FileStatistics header; fileSize and uncompressedFileSize
	// are defined as the full on-disk/plaintext totals including that
	// header, so Close adds it back in when finalising the statistics.
	containerBytes    int64
	uncompressedBytes int64
}

// New opens a Pipeline over an already-positioned file (immediately past
// the 144-byte FileStatistics header) for the given mode.
//
// In read mode st is the FileStatistics this module already parsed from
// the file; in write mode st is a freshly zeroed stats.New() that Close
// will finalise and rewrite.
func New(f *os.File, mode Mode, st stats.Statistics, cfg Config) *Pipeline {
	p := &Pipeline{
		file:         f,
		mode:         mode,
		cfg:          cfg,
		uncompressed: bytequeue.New(),
		stats:        st,
	}
	if mode == ModeRead {
		// The FileStatistics header itself was already consumed by the
		// caller before constructing the pipeline; account for it so EOF
		// compares against the same tellg() origin fileStatistics.fileSize
		// was measured from.
		p.compressedPos = int64(stats.Size)
	}
	return p
}

// Stats returns the pipeline's current FileStatistics snapshot.
func (p *Pipeline) Stats() stats.Statistics { return p.stats }

// EOF reports whether a read-mode Pipeline has nothing left to deliver:
// no buffered records, no unread uncompressed bytes, and the compressed
// stream exhausted up to the size FileStatistics promised.
func (p *Pipeline) EOF() bool {
	if len(p.readWrite) > 0 || p.uncompressed.Unread() > 0 {
		return false
	}
	return p.compressedPos >= int64(p.stats.FileSize)
}

// Read returns the next decoded event record, pulling and inflating
// LogContainers from the compressed stream as needed. It returns io.EOF
// once the file is cleanly exhausted.
func (p *Pipeline) Read() (event.Record, error) {
	for {
		if len(p.readWrite) > 0 {
			rec := p.readWrite[0]
			p.readWrite = p.readWrite[1:]
			return rec, nil
		}

		rec, err := p.decodeNext()
		if err != nil {
			return nil, err
		}
		if rec != nil {
			return rec, nil
		}
		// rec == nil, err == nil: a reserved tag was skipped. Loop for the
		// next object.
	}
}

// decodeNext pulls exactly one on-disk object from the uncompressed
// buffer, refilling it from the compressed stream as needed, and decodes
// it. It returns (nil, nil) for a reserved tag that must be silently
// skipped, and (nil, io.EOF) once the stream is cleanly exhausted.
func (p *Pipeline) decodeNext() (event.Record, error) {
	if err := p.ensureUncompressed(object.BaseSize); err != nil {
		return nil, err
	}

	peeked, err := p.uncompressed.Peek(object.BaseSize)
	if err != nil {
		return nil, err
	}
	var base object.Base
	if err := base.Read(codec.NewReader(peeked)); err != nil {
		return nil, err
	}

	framedSize := align4(int(base.ObjectSize))
	if err := p.ensureUncompressed(framedSize); err != nil {
		return nil, err
	}

	framed, err := p.uncompressed.Read(framedSize)
	if err != nil {
		return nil, err
	}
	objBytes := framed[:base.ObjectSize]

	c := codec.NewReader(objBytes)
	hdr, err := object.ReadHeader(c)
	if err != nil {
		return nil, err
	}

	if format.IsReserved(hdr.ObjectType) {
		p.uncompressed.DropOldData(p.logContainerSize())
		return nil, nil
	}

	payloadLen := int(hdr.ObjectSize) - c.Pos()
	if payloadLen < 0 {
		return nil, errs.New(errs.KindTruncatedPayload, "pipeline: objectSize smaller than header")
	}

	rec, err := event.Decode(hdr.ObjectType, hdr, c, payloadLen)

	// objBytes aliases the uncompressed buffer's backing array; only compact
	// the buffer once the record has been fully decoded, or DropOldData's
	// in-place copy corrupts the bytes event.Decode is still reading.
	p.uncompressed.DropOldData(p.logContainerSize())

	if err != nil {
		return nil, err
	}

	if hdr.ObjectType != format.ObjectTypeUnknown115 {
		p.stats.ObjectsRead++
	}
	return rec, nil
}

// ensureUncompressed pulls and inflates LogContainers until at least n
// bytes are available to read from the uncompressed buffer. If the
// compressed stream is exhausted first it returns io.EOF when no unread
// bytes remain, and a TRUNCATED error when the stream ends inside an
// object.
func (p *Pipeline) ensureUncompressed(n int) error {
	for p.uncompressed.Unread() < n {
		if err := p.pullContainer(); err != nil {
			if err == io.EOF {
				if p.uncompressed.Unread() == 0 {
					return io.EOF
				}
				return errs.New(errs.KindTruncated, "pipeline: stream ends inside an object")
			}
			return err
		}
	}
	return nil
}

// pullContainer reads exactly one LogContainer object from the compressed
// file and appends its inflated payload to the uncompressed buffer. It
// returns io.EOF if the compressed stream ends cleanly at an object
// boundary (no bytes read at all).
func (p *Pipeline) pullContainer() error {
	baseBytes := make([]byte, object.BaseSize)
	n, err := io.ReadFull(p.file, baseBytes)
	p.compressedPos += int64(n)
	if err == io.EOF && n == 0 {
		return io.EOF
	}
	if err != nil {
		return errs.Wrap(errs.KindTruncated, "pipeline: log container base header", err)
	}

	var base object.Base
	if err := base.Read(codec.NewReader(baseBytes)); err != nil {
		return err
	}

	remaining := int(base.ObjectSize) - object.BaseSize
	if remaining < 0 {
		return errs.New(errs.KindTruncatedPayload, "pipeline: log container objectSize too small")
	}

	rest := make([]byte, remaining)
	n, err = io.ReadFull(p.file, rest)
	p.compressedPos += int64(n)
	if err != nil {
		return errs.Wrap(errs.KindTruncated, "pipeline: log container body", err)
	}

	ct, err := container.Read(codec.NewReader(rest), base)
	if err != nil {
		return err
	}

	p.uncompressed.Write(ct.Payload)
	return nil
}

// Write appends rec to the write-mode record queue and flushes it into
// the uncompressed buffer, emitting a compressed LogContainer each time
// DefaultLogContainerSize bytes have accumulated.
func (p *Pipeline) Write(rec event.Record) error {
	p.readWrite = append(p.readWrite, rec)
	if err := p.flushReadWriteToUncompressed(); err != nil {
		return err
	}
	return p.flushUncompressedToCompressed(false)
}

// flushReadWriteToUncompressed serialises every queued record and appends
// its on-disk bytes to the uncompressed buffer.
func (p *Pipeline) flushReadWriteToUncompressed() error {
	for len(p.readWrite) > 0 {
		rec := p.readWrite[0]
		p.readWrite = p.readWrite[1:]

		hdr := *rec.Header()
		if hdr.HeaderVersion != format.HeaderVersion1 && hdr.HeaderVersion != format.HeaderVersion2 {
			hdr.HeaderVersion = format.HeaderVersion1
		}
		hdr.ObjectType = rec.Type()
		hdr.HeaderSize = hdr.CalcHeaderSize()

		payloadSize := event.Size(rec)
		hdr.ObjectSize = uint32(int(hdr.HeaderSize) + payloadSize)

		framedSize := align4(int(hdr.ObjectSize))
		buf := make([]byte, framedSize)
		c := codec.NewWriter(buf[:hdr.ObjectSize])
		if err := object.WriteHeader(c, &hdr); err != nil {
			return err
		}
		if err := event.Encode(rec, c); err != nil {
			return err
		}

		p.uncompressed.Write(buf)
		if rec.Type() != format.ObjectTypeUnknown115 {
			p.stats.ObjectCount++
		}
	}
	return nil
}

// flushUncompressedToCompressed emits one compressed LogContainer per
// DefaultLogContainerSize uncompressed bytes buffered. When final is true
// (at Close) it also flushes any smaller remainder as one last container.
func (p *Pipeline) flushUncompressedToCompressed(final bool) error {
	size := p.logContainerSize()
	for p.uncompressed.Unread() >= size {
		chunk, err := p.uncompressed.Read(size)
		if err != nil {
			return err
		}
		if err := p.writeContainer(chunk); err != nil {
			return err
		}
	}
	if final && p.uncompressed.Unread() > 0 {
		chunk, err := p.uncompressed.Read(p.uncompressed.Unread())
		if err != nil {
			return err
		}
		if err := p.writeContainer(chunk); err != nil {
			return err
		}
	}
	return nil
}

// writeContainer compresses chunk and appends the resulting LogContainer
// object directly to the compressed file, updating the running
// FileStatistics counters.
func (p *Pipeline) writeContainer(chunk []byte) error {
	method := format.CompressionZlib
	if p.cfg.CompressionLevel == 0 {
		method = format.CompressionStored
	}

	objBytes, err := container.Encode(chunk, method, p.cfg.CompressionLevel)
	if err != nil {
		return err
	}

	n, err := p.file.Write(objBytes)
	p.compressedPos += int64(n)
	if err != nil {
		return errs.Wrap(errs.KindIOError, "pipeline: write log container", err)
	}

	p.containerBytes += int64(n)
	p.uncompressedBytes += int64(len(chunk))
	return nil
}

func (p *Pipeline) logContainerSize() int {
	if p.cfg.DefaultLogContainerSize > 0 {
		return p.cfg.DefaultLogContainerSize
	}
	return DefaultLogContainerSize
}

// Close finalises a write-mode Pipeline: flushes any buffered bytes as a
// last LogContainer, optionally appends the Unknown115 end-of-file
// sentinel, and rewrites the FileStatistics header now that the final
// sizes and counts are known. Read-mode Close is a no-op.
func (p *Pipeline) Close() error {
	if p.mode != ModeWrite {
		return nil
	}

	if err := p.flushReadWriteToUncompressed(); err != nil {
		return err
	}
	if err := p.flushUncompressedToCompressed(true); err != nil {
		return err
	}

	// fileSize/uncompressedFileSize are defined as full on-disk/plaintext
	// totals, including the 144-byte statistics block itself.
	p.stats.FileSize = uint64(stats.Size) + uint64(p.containerBytes)
	p.stats.UncompressedFileSize = uint64(stats.Size) + uint64(p.uncompressedBytes)
	p.stats.FileSizeWithoutUnknown115 = p.stats.FileSize

	if p.cfg.WriteUnknown115 {
		sentinel := event.NewUnknown115(format.HeaderVersion1, 0)
		p.readWrite = append(p.readWrite, sentinel)
		if err := p.flushReadWriteToUncompressed(); err != nil {
			return err
		}
		if err := p.flushUncompressedToCompressed(true); err != nil {
			return err
		}
		p.stats.FileSize = uint64(stats.Size) + uint64(p.containerBytes)
		p.stats.UncompressedFileSize = uint64(stats.Size) + uint64(p.uncompressedBytes)
	}

	buf, err := stats.Write(&p.stats)
	if err != nil {
		return err
	}
	if _, err := p.file.Seek(0, io.SeekStart); err != nil {
		return errs.Wrap(errs.KindIOError, "pipeline: seek to rewrite file statistics", err)
	}
	if _, err := p.file.Write(buf); err != nil {
		return errs.Wrap(errs.KindIOError, "pipeline: rewrite file statistics", err)
	}

	return nil
}

// Package compress implements the two LogContainer compression methods:
// stored (passthrough) and zlib deflate.
//
// Interface split grounded on compress.Codec/Compressor/Decompressor; the
// zlib implementation itself uses github.com/klauspost/compress/zlib
// rather than the stdlib compress/zlib, for its faster deflate/inflate
// paths.
package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
)

// Compressor turns plaintext container bytes into their on-disk form.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor recovers plaintext container bytes from their on-disk form.
// uncompressedSize is the exact plaintext length recorded in the
// LogContainer header; implementations validate against it rather than
// trusting the compressed stream alone.
type Decompressor interface {
	Decompress(data []byte, uncompressedSize int) ([]byte, error)
}

// Codec combines both directions for one CompressionMethod.
type Codec interface {
	Compressor
	Decompressor
	Method() format.CompressionMethod
}

// storedCodec implements CompressionStored: the payload is carried as-is.
type storedCodec struct{}

func (storedCodec) Method() format.CompressionMethod { return format.CompressionStored }

func (storedCodec) Compress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (storedCodec) Decompress(data []byte, uncompressedSize int) ([]byte, error) {
	if len(data) != uncompressedSize {
		return nil, errs.New(errs.KindTruncatedPayload, "stored container: size mismatch")
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// zlibCodec implements CompressionZlib via klauspost/compress/zlib.
type zlibCodec struct {
	level int
}

func (zlibCodec) Method() format.CompressionMethod { return format.CompressionZlib }

func (c zlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, errs.Wrap(errs.KindCompressionError, "zlib writer", err)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, errs.Wrap(errs.KindCompressionError, "zlib write", err)
	}
	if err := w.Close(); err != nil {
		return nil, errs.Wrap(errs.KindCompressionError, "zlib close", err)
	}
	return buf.Bytes(), nil
}

func (zlibCodec) Decompress(data []byte, uncompressedSize int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errs.Wrap(errs.KindCompressionError, "zlib reader", err)
	}
	defer r.Close()

	out := make([]byte, uncompressedSize)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, errs.Wrap(errs.KindTruncatedPayload, "zlib container: short inflate", err)
	}

	// A well-formed container has no trailing bytes beyond uncompressedSize;
	// confirm the stream is exhausted rather than silently truncating extra
	// data that would indicate a corrupt uncompressedFileSize field.
	var extra [1]byte
	if _, err := r.Read(extra[:]); err != io.EOF {
		return nil, errs.New(errs.KindTruncatedPayload, "zlib container: trailing data beyond uncompressedFileSize")
	}

	return out, nil
}

// DefaultLevel is the zlib compression level used when none is configured,
// matching the original writer's default.
const DefaultLevel = 6

// NewStored returns the passthrough codec.
func NewStored() Codec { return storedCodec{} }

// NewZlib returns a zlib codec at the given compression level (1-9, or
// zlib.DefaultCompression).
func NewZlib(level int) Codec { return zlibCodec{level: level} }

// For reports the codec to use for a LogContainer whose header names
// method.
func For(method format.CompressionMethod) (Codec, error) {
	switch method {
	case format.CompressionStored:
		return NewStored(), nil
	case format.CompressionZlib:
		return NewZlib(DefaultLevel), nil
	default:
		return nil, errs.New(errs.KindCompressionError, "unsupported compression method")
	}
}

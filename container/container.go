// Package container implements LogContainer: the pseudo-event whose
// payload is a compressed block of event bytes. Every BLF file body is a
// contiguous sequence of these after the fixed FileStatistics header.
//
// Grounded on section.NumericHeader's Parse/Bytes shape and on the
// LogContainer read/write methods in original_source/src/Vector/BLF/File.cpp.
package container

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/compress"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// HeaderSize is the size in bytes of the container-specific header that
// follows ObjectHeaderBase: compressionMethod(2) + reserved[6](12) +
// uncompressedFileSize(4) + reserved2(4).
const HeaderSize = 22

// Container is one decoded LogContainer: its header plus the inflated
// plaintext payload (the concatenation of one or more event objects).
type Container struct {
	CompressionMethod    format.CompressionMethod
	Reserved             [6]uint16
	UncompressedFileSize uint32
	Reserved2            uint32
	Payload              []byte
}

// Read decodes one LogContainer object, given its already-parsed
// ObjectHeaderBase (headerVersion is always 1 for a container per the
// format, so no extended ObjectHeader follows). c must be positioned
// immediately after the base header.
func Read(c *codec.Cursor, base object.Base) (Container, error) {
	if base.ObjectType != format.ObjectTypeLogContainer {
		return Container{}, errs.New(errs.KindContainerExpected, "expected LOG_CONTAINER object")
	}

	var ct Container

	method, err := c.ReadU16()
	if err != nil {
		return Container{}, errs.Wrap(errs.KindTruncated, "log container: compressionMethod", err)
	}
	ct.CompressionMethod = format.CompressionMethod(method)

	for i := range ct.Reserved {
		v, err := c.ReadU16()
		if err != nil {
			return Container{}, errs.Wrap(errs.KindTruncated, "log container: reserved", err)
		}
		ct.Reserved[i] = v
	}

	ct.UncompressedFileSize, err = c.ReadU32()
	if err != nil {
		return Container{}, errs.Wrap(errs.KindTruncated, "log container: uncompressedFileSize", err)
	}

	ct.Reserved2, err = c.ReadU32()
	if err != nil {
		return Container{}, errs.Wrap(errs.KindTruncated, "log container: reserved2", err)
	}

	compressedFileSize := int(base.ObjectSize) - int(base.HeaderSize)
	if compressedFileSize < 0 {
		return Container{}, errs.New(errs.KindTruncatedPayload, "log container: objectSize too small for header")
	}

	compressedBytes, err := c.ReadBytes(compressedFileSize)
	if err != nil {
		return Container{}, errs.Wrap(errs.KindTruncated, "log container: compressedFile", err)
	}

	cc, err := compress.For(ct.CompressionMethod)
	if err != nil {
		return Container{}, err
	}

	ct.Payload, err = cc.Decompress(compressedBytes, int(ct.UncompressedFileSize))
	if err != nil {
		return Container{}, err
	}

	return ct, nil
}

// Encode compresses payload at the given level (compress.DefaultLevel for
// zlib, or format.CompressionStored to skip compression) and returns the
// complete on-disk object bytes: base header, container header and the
// compressed block.
func Encode(payload []byte, method format.CompressionMethod, level int) ([]byte, error) {
	var cc compress.Codec
	var err error
	if method == format.CompressionZlib {
		cc = compress.NewZlib(level)
	} else {
		cc, err = compress.For(method)
		if err != nil {
			return nil, err
		}
	}

	compressed, err := cc.Compress(payload)
	if err != nil {
		return nil, err
	}

	headerSize := object.BaseSize + HeaderSize
	objectSize := headerSize + len(compressed)

	buf := make([]byte, objectSize)
	w := codec.NewWriter(buf)

	base := object.Base{
		HeaderSize:    uint16(headerSize),
		HeaderVersion: format.HeaderVersion1,
		ObjectSize:    uint32(objectSize),
		ObjectType:    format.ObjectTypeLogContainer,
	}
	if err := base.Write(w); err != nil {
		return nil, err
	}

	if err := w.WriteU16(uint16(method)); err != nil {
		return nil, err
	}
	for i := 0; i < 6; i++ {
		if err := w.WriteU16(0); err != nil {
			return nil, err
		}
	}
	if err := w.WriteU32(uint32(len(payload))); err != nil {
		return nil, err
	}
	if err := w.WriteU32(0); err != nil {
		return nil, err
	}
	if err := w.WriteBytes(compressed); err != nil {
		return nil, err
	}

	return buf, nil
}

// Package object implements the object header protocol shared by every
// on-disk event: ObjectHeaderBase, the two extended header shapes
// (ObjectHeader / ObjectHeader2) and the unified Header the rest of this
// module decodes against.
//
// Grounded on section.NumericHeader's Parse([]byte)/Bytes() shape from the
// teacher repo, adapted to a codec.Cursor since objects stream one after
// another rather than living in a single fixed-size slice.
package object

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
)

// SignatureLobj is the 4-byte magic every object header begins with.
const SignatureLobj uint32 = 0x4A424F4C // "LOBJ" little-endian

// Object flag bits carried in both header versions.
const (
	FlagTimeTenMics uint32 = 1 << 0
	FlagTimeOneNans uint32 = 1 << 1
)

// BaseSize is the fixed, version-independent size of ObjectHeaderBase.
const BaseSize = 16

// HeaderV1Size is the size of the v1 extension past the base header.
const HeaderV1Size = 16

// HeaderV2Size is the size of the v2 extension past the base header.
const HeaderV2Size = 26

// Base is ObjectHeaderBase: the 16-byte prefix present on every on-disk
// object.
type Base struct {
	Signature     uint32
	HeaderSize    uint16
	HeaderVersion format.HeaderVersion
	ObjectSize    uint32
	ObjectType    format.ObjectType
	reserved      uint16
}

// Read parses a Base from c, validating the signature.
func (b *Base) Read(c *codec.Cursor) error {
	sig, err := c.ReadU32()
	if err != nil {
		return errs.Wrap(errs.KindTruncated, "object header base: signature", err)
	}
	if sig != SignatureLobj {
		return errs.New(errs.KindBadSignature, "object header base: expected LOBJ")
	}
	b.Signature = sig

	headerSize, err := c.ReadU16()
	if err != nil {
		return errs.Wrap(errs.KindTruncated, "object header base: headerSize", err)
	}
	b.HeaderSize = headerSize

	headerVersion, err := c.ReadU16()
	if err != nil {
		return errs.Wrap(errs.KindTruncated, "object header base: headerVersion", err)
	}
	b.HeaderVersion = format.HeaderVersion(headerVersion)

	objectSize, err := c.ReadU32()
	if err != nil {
		return errs.Wrap(errs.KindTruncated, "object header base: objectSize", err)
	}
	b.ObjectSize = objectSize

	objectType, err := c.ReadU16()
	if err != nil {
		return errs.Wrap(errs.KindTruncated, "object header base: objectType", err)
	}
	b.ObjectType = format.ObjectType(objectType)

	reserved, err := c.ReadU16()
	if err != nil {
		return errs.Wrap(errs.KindTruncated, "object header base: reserved", err)
	}
	b.reserved = reserved

	return nil
}

// Write serialises b, always emitting SignatureLobj. Callers must set
// HeaderSize (see Header.CalcHeaderSize) and ObjectSize before calling
// Write.
func (b *Base) Write(c *codec.Cursor) error {
	if err := c.WriteU32(SignatureLobj); err != nil {
		return err
	}
	if err := c.WriteU16(b.HeaderSize); err != nil {
		return err
	}
	if err := c.WriteU16(uint16(b.HeaderVersion)); err != nil {
		return err
	}
	if err := c.WriteU32(b.ObjectSize); err != nil {
		return err
	}
	if err := c.WriteU16(uint16(b.ObjectType)); err != nil {
		return err
	}
	return c.WriteU16(b.reserved)
}

// V1 is ObjectHeader (headerVersion=1): the extension past Base.
type V1 struct {
	ObjectFlags    uint32
	ClientIndex    uint16
	ObjectVersion  uint16
	ObjectTimeStamp uint64
}

func (h *V1) Read(c *codec.Cursor) error {
	var err error
	if h.ObjectFlags, err = c.ReadU32(); err != nil {
		return errs.Wrap(errs.KindTruncated, "object header v1: objectFlags", err)
	}
	if h.ClientIndex, err = c.ReadU16(); err != nil {
		return errs.Wrap(errs.KindTruncated, "object header v1: clientIndex", err)
	}
	if h.ObjectVersion, err = c.ReadU16(); err != nil {
		return errs.Wrap(errs.KindTruncated, "object header v1: objectVersion", err)
	}
	if h.ObjectTimeStamp, err = c.ReadU64(); err != nil {
		return errs.Wrap(errs.KindTruncated, "object header v1: objectTimeStamp", err)
	}
	return nil
}

func (h *V1) Write(c *codec.Cursor) error {
	if err := c.WriteU32(h.ObjectFlags); err != nil {
		return err
	}
	if err := c.WriteU16(h.ClientIndex); err != nil {
		return err
	}
	if err := c.WriteU16(h.ObjectVersion); err != nil {
		return err
	}
	return c.WriteU64(h.ObjectTimeStamp)
}

// V2 is ObjectHeader2 (headerVersion=2): the extension past Base.
type V2 struct {
	ObjectFlags       uint32
	TimeStampStatus   uint8
	reserved          [3]byte
	ObjectVersion     uint16
	ObjectTimeStamp   uint64
	OriginalTimeStamp uint64
}

func (h *V2) Read(c *codec.Cursor) error {
	var err error
	if h.ObjectFlags, err = c.ReadU32(); err != nil {
		return errs.Wrap(errs.KindTruncated, "object header v2: objectFlags", err)
	}
	status, err := c.ReadU8()
	if err != nil {
		return errs.Wrap(errs.KindTruncated, "object header v2: timeStampStatus", err)
	}
	h.TimeStampStatus = status
	for i := range h.reserved {
		b, err := c.ReadU8()
		if err != nil {
			return errs.Wrap(errs.KindTruncated, "object header v2: reserved", err)
		}
		h.reserved[i] = b
	}
	if h.ObjectVersion, err = c.ReadU16(); err != nil {
		return errs.Wrap(errs.KindTruncated, "object header v2: objectVersion", err)
	}
	if h.ObjectTimeStamp, err = c.ReadU64(); err != nil {
		return errs.Wrap(errs.KindTruncated, "object header v2: objectTimeStamp", err)
	}
	if h.OriginalTimeStamp, err = c.ReadU64(); err != nil {
		return errs.Wrap(errs.KindTruncated, "object header v2: originalTimeStamp", err)
	}
	return nil
}

func (h *V2) Write(c *codec.Cursor) error {
	if err := c.WriteU32(h.ObjectFlags); err != nil {
		return err
	}
	if err := c.WriteU8(h.TimeStampStatus); err != nil {
		return err
	}
	for _, b := range h.reserved {
		if err := c.WriteU8(b); err != nil {
			return err
		}
	}
	if err := c.WriteU16(h.ObjectVersion); err != nil {
		return err
	}
	if err := c.WriteU64(h.ObjectTimeStamp); err != nil {
		return err
	}
	return c.WriteU64(h.OriginalTimeStamp)
}

// Header is the superset of every field either extended header carries.
// The dispatcher always trusts the on-disk HeaderVersion byte rather than
// a given event type's nominal expectation (some real-world producers
// write v1 headers for event types documented as v2), so every decoder in
// the event package receives one of these regardless of which extended
// header shape it nominally expects.
type Header struct {
	Base

	ObjectFlags       uint32
	ClientIndex       uint16 // v1 only
	TimeStampStatus   uint8  // v2 only
	ObjectVersion     uint16
	ObjectTimeStamp   uint64
	OriginalTimeStamp uint64 // v2 only
}

// ReadHeader reads the base header plus whichever extended header its
// on-disk HeaderVersion byte names, returning the unified superset.
func ReadHeader(c *codec.Cursor) (Header, error) {
	var h Header
	if err := h.Base.Read(c); err != nil {
		return Header{}, err
	}

	switch h.HeaderVersion {
	case format.HeaderVersion1:
		var v1 V1
		if err := v1.Read(c); err != nil {
			return Header{}, err
		}
		h.ObjectFlags = v1.ObjectFlags
		h.ClientIndex = v1.ClientIndex
		h.ObjectVersion = v1.ObjectVersion
		h.ObjectTimeStamp = v1.ObjectTimeStamp
	case format.HeaderVersion2:
		var v2 V2
		if err := v2.Read(c); err != nil {
			return Header{}, err
		}
		h.ObjectFlags = v2.ObjectFlags
		h.TimeStampStatus = v2.TimeStampStatus
		h.ObjectVersion = v2.ObjectVersion
		h.ObjectTimeStamp = v2.ObjectTimeStamp
		h.OriginalTimeStamp = v2.OriginalTimeStamp
	default:
		return Header{}, errs.New(errs.KindBadSignature, "object header: unsupported headerVersion")
	}

	return h, nil
}

// WriteHeader emits h's base header followed by the extended header
// matching h.HeaderVersion.
func WriteHeader(c *codec.Cursor, h *Header) error {
	if err := h.Base.Write(c); err != nil {
		return err
	}

	switch h.HeaderVersion {
	case format.HeaderVersion1:
		v1 := V1{
			ObjectFlags:     h.ObjectFlags,
			ClientIndex:     h.ClientIndex,
			ObjectVersion:   h.ObjectVersion,
			ObjectTimeStamp: h.ObjectTimeStamp,
		}
		return v1.Write(c)
	case format.HeaderVersion2:
		v2 := V2{
			ObjectFlags:       h.ObjectFlags,
			TimeStampStatus:   h.TimeStampStatus,
			ObjectVersion:     h.ObjectVersion,
			ObjectTimeStamp:   h.ObjectTimeStamp,
			OriginalTimeStamp: h.OriginalTimeStamp,
		}
		return v2.Write(c)
	default:
		return errs.New(errs.KindBadSignature, "object header: unsupported headerVersion")
	}
}

// ExtSize returns the size in bytes of the extended header for v,
// independent of any particular Header value.
func ExtSize(v format.HeaderVersion) uint16 {
	switch v {
	case format.HeaderVersion1:
		return HeaderV1Size
	case format.HeaderVersion2:
		return HeaderV2Size
	default:
		return 0
	}
}

// CalcHeaderSize returns BaseSize plus the extended header size implied by
// h.HeaderVersion.
func (h *Header) CalcHeaderSize() uint16 {
	return BaseSize + ExtSize(h.HeaderVersion)
}

// HasTenMicroTimestamp reports whether ObjectTimeStamp is in 10us units.
func (h *Header) HasTenMicroTimestamp() bool {
	return h.ObjectFlags&FlagTimeTenMics != 0
}

// HasNanoTimestamp reports whether ObjectTimeStamp is in 1ns units.
func (h *Header) HasNanoTimestamp() bool {
	return h.ObjectFlags&FlagTimeOneNans != 0
}

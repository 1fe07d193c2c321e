// Package event implements the catalogue of BLF event records: one Go
// type per representative member of each bus family, plus every event
// named in a concrete end-to-end scenario, dispatched through a tag-keyed
// table in the manner of compress.CreateCodec/GetCodec's factory-by-enum
// pattern.
//
// Exhaustive field-by-field layouts for the full ~100-member upstream
// enumeration are out of scope (see format.ObjectType); every tag not
// given a named type here round-trips through Raw, which preserves its
// payload bytes opaquely.
package event

import (
	"fmt"

	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// Record is the common interface every decoded event satisfies.
type Record interface {
	// Header returns the object header this record was read with (or will
	// be written with).
	Header() *object.Header
	// Type returns the ObjectType tag identifying this record's variant.
	Type() format.ObjectType
}

// base is embedded by every concrete event type to satisfy Header()/Type()
// without repeating the boilerplate.
type base struct {
	Hdr     object.Header
	ObjType format.ObjectType
}

func (b *base) Header() *object.Header  { return &b.Hdr }
func (b *base) Type() format.ObjectType { return b.ObjType }

// decodeFunc reads a record's variant-specific payload. c is positioned
// immediately after the extended header; payloadLen is the number of bytes
// remaining up to the object's declared objectSize (the decoder must not
// read beyond it).
type decodeFunc func(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error)

// encodeFunc writes a record's variant-specific payload (everything past
// the extended header).
type encodeFunc func(r Record, c *codec.Cursor) error

// sizeFunc returns the variant-specific payload size in bytes, used to
// compute objectSize before encoding.
type sizeFunc func(r Record) int

type entry struct {
	decode decodeFunc
	encode encodeFunc
	size   sizeFunc
}

var catalogue = map[format.ObjectType]entry{}

// register adds a catalogue entry. Called from each bus family file's
// init(); panics on a duplicate tag since that would indicate a
// programming error in this package, not a runtime/input condition.
func register(t format.ObjectType, e entry) {
	if _, exists := catalogue[t]; exists {
		panic(fmt.Sprintf("event: duplicate catalogue registration for tag %d", t))
	}
	catalogue[t] = e
}

// Decode dispatches on objType to the registered decoder, or falls back to
// Raw for unregistered (but non-reserved) tags.
func Decode(objType format.ObjectType, hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	if e, ok := catalogue[objType]; ok {
		return e.decode(hdr, c, payloadLen)
	}
	return decodeRaw(hdr, c, payloadLen)
}

// Encode dispatches on r.Type() to the registered encoder, or falls back to
// Raw encoding.
func Encode(r Record, c *codec.Cursor) error {
	if e, ok := catalogue[r.Type()]; ok {
		return e.encode(r, c)
	}
	if raw, ok := r.(*Raw); ok {
		return encodeRaw(raw, c)
	}
	return errs.New(errs.KindUnknownType, "event: no encoder registered for type")
}

// Size returns the variant-specific payload size for r, used by the
// pipeline to compute objectSize before encoding.
func Size(r Record) int {
	if e, ok := catalogue[r.Type()]; ok {
		return e.size(r)
	}
	if raw, ok := r.(*Raw); ok {
		return len(raw.Payload)
	}
	return 0
}

// IsKnown reports whether objType has a named catalogue entry (as opposed
// to falling back to Raw).
func IsKnown(objType format.ObjectType) bool {
	_, ok := catalogue[objType]
	return ok
}

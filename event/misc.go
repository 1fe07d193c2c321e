package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// Raw is the fallback record for any ObjectType tag not given a named Go
// type: its payload is preserved byte-for-byte, letting the pipeline
// round-trip files that use variants outside this catalogue's coverage.
type Raw struct {
	base
	Payload []byte
}

func decodeRaw(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	payload, err := c.ReadBytes(payloadLen)
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "raw event: payload", err)
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return &Raw{base: base{Hdr: hdr, ObjType: hdr.ObjectType}, Payload: cp}, nil
}

func encodeRaw(r *Raw, c *codec.Cursor) error {
	return c.WriteBytes(r.Payload)
}

// Unknown115 is the zero-payload sentinel event written at end-of-file to
// mark a clean close.
type Unknown115 struct {
	base
}

func decodeUnknown115(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	if payloadLen > 0 {
		if err := c.Skip(payloadLen); err != nil {
			return nil, errs.Wrap(errs.KindTruncated, "unknown115: payload", err)
		}
	}
	return &Unknown115{base: base{Hdr: hdr, ObjType: format.ObjectTypeUnknown115}}, nil
}

func encodeUnknown115(r Record, c *codec.Cursor) error {
	return nil
}

func sizeUnknown115(r Record) int { return 0 }

// NewUnknown115 builds a ready-to-encode end-of-file sentinel with the
// given object timestamp.
func NewUnknown115(headerVersion format.HeaderVersion, timestamp uint64) *Unknown115 {
	return &Unknown115{base: base{
		Hdr: object.Header{
			Base: object.Base{
				HeaderVersion: headerVersion,
				ObjectType:    format.ObjectTypeUnknown115,
			},
			ObjectTimeStamp: timestamp,
		},
		ObjType: format.ObjectTypeUnknown115,
	}}
}

func init() {
	register(format.ObjectTypeUnknown115, entry{
		decode: decodeUnknown115,
		encode: encodeUnknown115,
		size:   sizeUnknown115,
	})
}

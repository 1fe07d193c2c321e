package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// Arinc429Message is one ARINC-429 bus word (tag 113).
type Arinc429Message struct {
	base
	Channel uint16
	Dir     uint8
	reserved uint8
	Label   uint8
	SDI     uint8
	Payload [4]byte
}

func decodeArinc429Message(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	m := &Arinc429Message{base: base{Hdr: hdr, ObjType: format.ObjectTypeArinc429Message}}
	var err error
	if m.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "arinc429 message: channel", err)
	}
	if m.Dir, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "arinc429 message: dir", err)
	}
	if m.reserved, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "arinc429 message: reserved", err)
	}
	if m.Label, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "arinc429 message: label", err)
	}
	if m.SDI, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "arinc429 message: sdi", err)
	}
	payload, err := c.ReadBytes(4)
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "arinc429 message: payload", err)
	}
	copy(m.Payload[:], payload)
	return m, nil
}

func encodeArinc429Message(r Record, c *codec.Cursor) error {
	m := r.(*Arinc429Message)
	if err := c.WriteU16(m.Channel); err != nil {
		return err
	}
	if err := c.WriteU8(m.Dir); err != nil {
		return err
	}
	if err := c.WriteU8(m.reserved); err != nil {
		return err
	}
	if err := c.WriteU8(m.Label); err != nil {
		return err
	}
	if err := c.WriteU8(m.SDI); err != nil {
		return err
	}
	return c.WriteBytes(m.Payload[:])
}

func sizeArinc429Message(r Record) int { return 2 + 1 + 1 + 1 + 1 + 4 }

func init() {
	register(format.ObjectTypeArinc429Message, entry{
		decode: decodeArinc429Message,
		encode: encodeArinc429Message,
		size:   sizeArinc429Message,
	})
}

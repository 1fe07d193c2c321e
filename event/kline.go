package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// KLineStatusEvent reports a K-Line diagnostic bus status change (tag 99).
type KLineStatusEvent struct {
	base
	Type    uint16
	Channel uint16
	Data    [8]byte
}

func decodeKLineStatusEvent(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	e := &KLineStatusEvent{base: base{Hdr: hdr, ObjType: format.ObjectTypeKLineStatusEvent}}
	var err error
	if e.Type, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "kline status event: type", err)
	}
	if e.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "kline status event: channel", err)
	}
	data, err := c.ReadBytes(8)
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "kline status event: data", err)
	}
	copy(e.Data[:], data)
	return e, nil
}

func encodeKLineStatusEvent(r Record, c *codec.Cursor) error {
	e := r.(*KLineStatusEvent)
	if err := c.WriteU16(e.Type); err != nil {
		return err
	}
	if err := c.WriteU16(e.Channel); err != nil {
		return err
	}
	return c.WriteBytes(e.Data[:])
}

func sizeKLineStatusEvent(r Record) int { return 2 + 2 + 8 }

func init() {
	register(format.ObjectTypeKLineStatusEvent, entry{
		decode: decodeKLineStatusEvent,
		encode: encodeKLineStatusEvent,
		size:   sizeKLineStatusEvent,
	})
}

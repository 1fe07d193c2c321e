package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// J1708Message is a received/transmitted SAE J1708 message (tag 37).
type J1708Message struct {
	base
	Channel uint16
	DataLen uint16
	Data    []byte
}

func decodeJ1708Message(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	m := &J1708Message{base: base{Hdr: hdr, ObjType: format.ObjectTypeJ1708Message}}
	var err error
	if m.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "j1708 message: channel", err)
	}
	if m.DataLen, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "j1708 message: dataLen", err)
	}

	consumed := 2 + 2
	if int(m.DataLen) > payloadLen-consumed {
		return nil, errs.New(errs.KindTruncatedPayload, "j1708 message: dataLen exceeds object bounds")
	}

	data, err := c.ReadBytes(int(m.DataLen))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "j1708 message: data", err)
	}
	m.Data = make([]byte, len(data))
	copy(m.Data, data)
	return m, nil
}

func encodeJ1708Message(r Record, c *codec.Cursor) error {
	m := r.(*J1708Message)
	if err := c.WriteU16(m.Channel); err != nil {
		return err
	}
	if err := c.WriteU16(m.DataLen); err != nil {
		return err
	}
	return c.WriteBytes(m.Data)
}

func sizeJ1708Message(r Record) int {
	m := r.(*J1708Message)
	return 2 + 2 + len(m.Data)
}

func init() {
	register(format.ObjectTypeJ1708Message, entry{decode: decodeJ1708Message, encode: encodeJ1708Message, size: sizeJ1708Message})
}

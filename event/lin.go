package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// LinStatisticEvent carries periodic LIN bus-load statistics (tag 54).
type LinStatisticEvent struct {
	base
	Channel            uint16
	reserved1          uint16
	reserved2          uint32
	BusLoad            float64
	BurstsTotal        uint32
	BurstsOverrun      uint32
	FramesSent         uint32
	FramesReceived     uint32
	FramesUnanswered   uint32
	reserved3          uint32
}

func decodeLinStatisticEvent(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	e := &LinStatisticEvent{base: base{Hdr: hdr, ObjType: format.ObjectTypeLinStatisticEvent}}
	var err error
	if e.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin statistic: channel", err)
	}
	if e.reserved1, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin statistic: reserved1", err)
	}
	if e.reserved2, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin statistic: reserved2", err)
	}
	if e.BusLoad, err = c.ReadF64(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin statistic: busLoad", err)
	}
	if e.BurstsTotal, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin statistic: burstsTotal", err)
	}
	if e.BurstsOverrun, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin statistic: burstsOverrun", err)
	}
	if e.FramesSent, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin statistic: framesSent", err)
	}
	if e.FramesReceived, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin statistic: framesReceived", err)
	}
	if e.FramesUnanswered, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin statistic: framesUnanswered", err)
	}
	if e.reserved3, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin statistic: reserved3", err)
	}
	return e, nil
}

func encodeLinStatisticEvent(r Record, c *codec.Cursor) error {
	e := r.(*LinStatisticEvent)
	for _, w := range []func() error{
		func() error { return c.WriteU16(e.Channel) },
		func() error { return c.WriteU16(e.reserved1) },
		func() error { return c.WriteU32(e.reserved2) },
		func() error { return c.WriteF64(e.BusLoad) },
		func() error { return c.WriteU32(e.BurstsTotal) },
		func() error { return c.WriteU32(e.BurstsOverrun) },
		func() error { return c.WriteU32(e.FramesSent) },
		func() error { return c.WriteU32(e.FramesReceived) },
		func() error { return c.WriteU32(e.FramesUnanswered) },
		func() error { return c.WriteU32(e.reserved3) },
	} {
		if err := w(); err != nil {
			return err
		}
	}
	return nil
}

func sizeLinStatisticEvent(r Record) int { return 2 + 2 + 4 + 8 + 4*6 }

// LinMessage is a received/transmitted LIN frame (tag 11).
type LinMessage struct {
	base
	Channel uint16
	ID      uint8
	DLC     uint8
	Data    [8]byte
}

func decodeLinMessage(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	m := &LinMessage{base: base{Hdr: hdr, ObjType: format.ObjectTypeLinMessage}}
	var err error
	if m.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin message: channel", err)
	}
	if m.ID, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin message: id", err)
	}
	if m.DLC, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin message: dlc", err)
	}
	data, err := c.ReadBytes(8)
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "lin message: data", err)
	}
	copy(m.Data[:], data)
	return m, nil
}

func encodeLinMessage(r Record, c *codec.Cursor) error {
	m := r.(*LinMessage)
	if err := c.WriteU16(m.Channel); err != nil {
		return err
	}
	if err := c.WriteU8(m.ID); err != nil {
		return err
	}
	if err := c.WriteU8(m.DLC); err != nil {
		return err
	}
	return c.WriteBytes(m.Data[:])
}

func sizeLinMessage(r Record) int { return 2 + 1 + 1 + 8 }

func init() {
	register(format.ObjectTypeLinStatisticEvent, entry{decode: decodeLinStatisticEvent, encode: encodeLinStatisticEvent, size: sizeLinStatisticEvent})
	register(format.ObjectTypeLinMessage, entry{decode: decodeLinMessage, encode: encodeLinMessage, size: sizeLinMessage})
}

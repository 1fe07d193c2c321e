package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// Most150Pkt is a MOST150 control/async packet (tag 77).
type Most150Pkt struct {
	base
	Channel       uint8
	Dir           uint8
	reserved1     uint8
	SourceAdr     uint16
	DestAdr       uint16
	TransferType  uint8
	State         uint8
	AckNack       uint8
	reserved2     uint8
	CRC           uint16
	PAck          uint8
	CAck          uint8
	Priority      uint8
	PIndex        uint8
	PktDataLength uint16
	reserved3     uint16
	PktData       []byte
}

func decodeMost150Pkt(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	p := &Most150Pkt{base: base{Hdr: hdr, ObjType: format.ObjectTypeMost150Pkt}}
	var err error
	if p.Channel, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: channel", err)
	}
	if p.Dir, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: dir", err)
	}
	if p.reserved1, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: reserved1", err)
	}
	if p.SourceAdr, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: sourceAdr", err)
	}
	if p.DestAdr, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: destAdr", err)
	}
	if p.TransferType, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: transferType", err)
	}
	if p.State, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: state", err)
	}
	if p.AckNack, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: ackNack", err)
	}
	if p.reserved2, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: reserved2", err)
	}
	if p.CRC, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: crc", err)
	}
	if p.PAck, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: pAck", err)
	}
	if p.CAck, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: cAck", err)
	}
	if p.Priority, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: priority", err)
	}
	if p.PIndex, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: pIndex", err)
	}
	if p.PktDataLength, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: pktDataLength", err)
	}
	if p.reserved3, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: reserved3", err)
	}

	consumed := 1 + 1 + 1 + 2 + 2 + 1 + 1 + 1 + 1 + 2 + 1 + 1 + 1 + 1 + 2 + 2
	if int(p.PktDataLength) > payloadLen-consumed {
		return nil, errs.New(errs.KindTruncatedPayload, "most150pkt: pktDataLength exceeds object bounds")
	}

	data, err := c.ReadBytes(int(p.PktDataLength))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most150pkt: pktData", err)
	}
	p.PktData = make([]byte, len(data))
	copy(p.PktData, data)

	return p, nil
}

func encodeMost150Pkt(r Record, c *codec.Cursor) error {
	p := r.(*Most150Pkt)
	writes := []func() error{
		func() error { return c.WriteU8(p.Channel) },
		func() error { return c.WriteU8(p.Dir) },
		func() error { return c.WriteU8(p.reserved1) },
		func() error { return c.WriteU16(p.SourceAdr) },
		func() error { return c.WriteU16(p.DestAdr) },
		func() error { return c.WriteU8(p.TransferType) },
		func() error { return c.WriteU8(p.State) },
		func() error { return c.WriteU8(p.AckNack) },
		func() error { return c.WriteU8(p.reserved2) },
		func() error { return c.WriteU16(p.CRC) },
		func() error { return c.WriteU8(p.PAck) },
		func() error { return c.WriteU8(p.CAck) },
		func() error { return c.WriteU8(p.Priority) },
		func() error { return c.WriteU8(p.PIndex) },
		func() error { return c.WriteU16(p.PktDataLength) },
		func() error { return c.WriteU16(p.reserved3) },
		func() error { return c.WriteBytes(p.PktData) },
	}
	for _, w := range writes {
		if err := w(); err != nil {
			return err
		}
	}
	return nil
}

func sizeMost150Pkt(r Record) int {
	p := r.(*Most150Pkt)
	return 1 + 1 + 1 + 2 + 2 + 1 + 1 + 1 + 1 + 2 + 1 + 1 + 1 + 1 + 2 + 2 + len(p.PktData)
}

// MostSpy is a raw MOST bus spy frame (tag 21).
type MostSpy struct {
	base
	Channel uint16
	Data    [4]byte
}

func decodeMostSpy(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	s := &MostSpy{base: base{Hdr: hdr, ObjType: format.ObjectTypeMostSpy}}
	var err error
	if s.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most spy: channel", err)
	}
	data, err := c.ReadBytes(4)
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "most spy: data", err)
	}
	copy(s.Data[:], data)
	return s, nil
}

func encodeMostSpy(r Record, c *codec.Cursor) error {
	s := r.(*MostSpy)
	if err := c.WriteU16(s.Channel); err != nil {
		return err
	}
	return c.WriteBytes(s.Data[:])
}

func sizeMostSpy(r Record) int { return 2 + 4 }

func init() {
	register(format.ObjectTypeMost150Pkt, entry{decode: decodeMost150Pkt, encode: encodeMost150Pkt, size: sizeMost150Pkt})
	register(format.ObjectTypeMostSpy, entry{decode: decodeMostSpy, encode: encodeMostSpy, size: sizeMostSpy})
}

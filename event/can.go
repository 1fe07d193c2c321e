package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// CanMessage is a classic CAN frame (tag 1).
type CanMessage struct {
	base
	Channel uint16
	Flags   uint8
	DLC     uint8
	ID      uint32
	Data    [8]byte
}

func decodeCanMessage(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	m := &CanMessage{base: base{Hdr: hdr, ObjType: format.ObjectTypeCanMessage}}
	var err error
	if m.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "can message: channel", err)
	}
	if m.Flags, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "can message: flags", err)
	}
	if m.DLC, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "can message: dlc", err)
	}
	if m.ID, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "can message: id", err)
	}
	data, err := c.ReadBytes(8)
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "can message: data", err)
	}
	copy(m.Data[:], data)
	return m, nil
}

func encodeCanMessage(r Record, c *codec.Cursor) error {
	m := r.(*CanMessage)
	if err := c.WriteU16(m.Channel); err != nil {
		return err
	}
	if err := c.WriteU8(m.Flags); err != nil {
		return err
	}
	if err := c.WriteU8(m.DLC); err != nil {
		return err
	}
	if err := c.WriteU32(m.ID); err != nil {
		return err
	}
	return c.WriteBytes(m.Data[:])
}

func sizeCanMessage(r Record) int { return 2 + 1 + 1 + 4 + 8 }

// CanErrorFrame reports a CAN controller error frame (tag 2).
type CanErrorFrame struct {
	base
	Channel uint16
	Length  uint16
}

func decodeCanErrorFrame(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	e := &CanErrorFrame{base: base{Hdr: hdr, ObjType: format.ObjectTypeCanErrorFrame}}
	var err error
	if e.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "can error frame: channel", err)
	}
	if e.Length, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "can error frame: length", err)
	}
	return e, nil
}

func encodeCanErrorFrame(r Record, c *codec.Cursor) error {
	e := r.(*CanErrorFrame)
	if err := c.WriteU16(e.Channel); err != nil {
		return err
	}
	return c.WriteU16(e.Length)
}

func sizeCanErrorFrame(r Record) int { return 2 + 2 }

// CanDriverError reports a CAN driver-level error (tag 31).
type CanDriverError struct {
	base
	Channel   uint16
	TxErrors  uint8
	RxErrors  uint8
	ErrorCode uint32
}

func decodeCanDriverError(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	e := &CanDriverError{base: base{Hdr: hdr, ObjType: format.ObjectTypeCanDriverError}}
	var err error
	if e.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "can driver error: channel", err)
	}
	if e.TxErrors, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "can driver error: txErrors", err)
	}
	if e.RxErrors, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "can driver error: rxErrors", err)
	}
	if e.ErrorCode, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "can driver error: errorCode", err)
	}
	return e, nil
}

func encodeCanDriverError(r Record, c *codec.Cursor) error {
	e := r.(*CanDriverError)
	if err := c.WriteU16(e.Channel); err != nil {
		return err
	}
	if err := c.WriteU8(e.TxErrors); err != nil {
		return err
	}
	if err := c.WriteU8(e.RxErrors); err != nil {
		return err
	}
	return c.WriteU32(e.ErrorCode)
}

func sizeCanDriverError(r Record) int { return 2 + 1 + 1 + 4 }

func init() {
	register(format.ObjectTypeCanMessage, entry{decode: decodeCanMessage, encode: encodeCanMessage, size: sizeCanMessage})
	register(format.ObjectTypeCanErrorFrame, entry{decode: decodeCanErrorFrame, encode: encodeCanErrorFrame, size: sizeCanErrorFrame})
	register(format.ObjectTypeCanDriverError, entry{decode: decodeCanDriverError, encode: encodeCanDriverError, size: sizeCanDriverError})
}

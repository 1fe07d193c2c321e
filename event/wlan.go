package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// WlanFrame is a captured 802.11 frame (tag 93).
type WlanFrame struct {
	base
	Channel   uint16
	Flags     uint16
	SignalStrength uint32
	FrameLength uint16
	reserved uint16
	FrameData []byte
}

func decodeWlanFrame(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	f := &WlanFrame{base: base{Hdr: hdr, ObjType: format.ObjectTypeWlanFrame}}
	var err error
	if f.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "wlan frame: channel", err)
	}
	if f.Flags, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "wlan frame: flags", err)
	}
	if f.SignalStrength, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "wlan frame: signalStrength", err)
	}
	if f.FrameLength, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "wlan frame: frameLength", err)
	}
	if f.reserved, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "wlan frame: reserved", err)
	}

	consumed := 2 + 2 + 4 + 2 + 2
	if int(f.FrameLength) > payloadLen-consumed {
		return nil, errs.New(errs.KindTruncatedPayload, "wlan frame: frameLength exceeds object bounds")
	}

	data, err := c.ReadBytes(int(f.FrameLength))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "wlan frame: frameData", err)
	}
	f.FrameData = make([]byte, len(data))
	copy(f.FrameData, data)
	return f, nil
}

func encodeWlanFrame(r Record, c *codec.Cursor) error {
	f := r.(*WlanFrame)
	if err := c.WriteU16(f.Channel); err != nil {
		return err
	}
	if err := c.WriteU16(f.Flags); err != nil {
		return err
	}
	if err := c.WriteU32(f.SignalStrength); err != nil {
		return err
	}
	if err := c.WriteU16(f.FrameLength); err != nil {
		return err
	}
	if err := c.WriteU16(f.reserved); err != nil {
		return err
	}
	return c.WriteBytes(f.FrameData)
}

func sizeWlanFrame(r Record) int {
	f := r.(*WlanFrame)
	return 2 + 2 + 4 + 2 + 2 + len(f.FrameData)
}

func init() {
	register(format.ObjectTypeWlanFrame, entry{decode: decodeWlanFrame, encode: encodeWlanFrame, size: sizeWlanFrame})
}

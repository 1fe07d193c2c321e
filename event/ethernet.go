package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// EthernetFrameForwarded is a switch/forwarded Ethernet frame record (tag
// 121), the event named in the forwarded-frame interoperability scenario.
// Field layout grounded on test_EthernetFrameForwarded.cpp.
type EthernetFrameForwarded struct {
	base
	StructLength    uint32
	Flags           uint16
	Channel         uint16
	HardwareChannel uint16
	FrameDuration   uint64
	FrameChecksum   uint32
	Dir             uint16
	FrameLength     uint16
	FrameHandle     uint32
	reserved        uint32
	FrameData       []byte
}

func decodeEthernetFrameForwarded(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	f := &EthernetFrameForwarded{base: base{Hdr: hdr, ObjType: format.ObjectTypeEthernetFrameForwarded}}
	var err error
	if f.StructLength, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame forwarded: structLength", err)
	}
	if f.Flags, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame forwarded: flags", err)
	}
	if f.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame forwarded: channel", err)
	}
	if f.HardwareChannel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame forwarded: hardwareChannel", err)
	}
	if f.FrameDuration, err = c.ReadU64(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame forwarded: frameDuration", err)
	}
	if f.FrameChecksum, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame forwarded: frameChecksum", err)
	}
	if f.Dir, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame forwarded: dir", err)
	}
	if f.FrameLength, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame forwarded: frameLength", err)
	}
	if f.FrameHandle, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame forwarded: frameHandle", err)
	}
	if f.reserved, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame forwarded: reserved", err)
	}

	consumed := 4 + 2 + 2 + 2 + 8 + 4 + 2 + 2 + 4 + 4
	if int(f.FrameLength) > payloadLen-consumed {
		return nil, errs.New(errs.KindTruncatedPayload, "ethernet frame forwarded: frameLength exceeds object bounds")
	}

	data, err := c.ReadBytes(int(f.FrameLength))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame forwarded: frameData", err)
	}
	f.FrameData = make([]byte, len(data))
	copy(f.FrameData, data)

	return f, nil
}

func encodeEthernetFrameForwarded(r Record, c *codec.Cursor) error {
	f := r.(*EthernetFrameForwarded)
	if err := c.WriteU32(f.StructLength); err != nil {
		return err
	}
	if err := c.WriteU16(f.Flags); err != nil {
		return err
	}
	if err := c.WriteU16(f.Channel); err != nil {
		return err
	}
	if err := c.WriteU16(f.HardwareChannel); err != nil {
		return err
	}
	if err := c.WriteU64(f.FrameDuration); err != nil {
		return err
	}
	if err := c.WriteU32(f.FrameChecksum); err != nil {
		return err
	}
	if err := c.WriteU16(f.Dir); err != nil {
		return err
	}
	if err := c.WriteU16(f.FrameLength); err != nil {
		return err
	}
	if err := c.WriteU32(f.FrameHandle); err != nil {
		return err
	}
	if err := c.WriteU32(f.reserved); err != nil {
		return err
	}
	return c.WriteBytes(f.FrameData)
}

func sizeEthernetFrameForwarded(r Record) int {
	f := r.(*EthernetFrameForwarded)
	return 4 + 2 + 2 + 2 + 8 + 4 + 2 + 2 + 4 + 4 + len(f.FrameData)
}

// EthernetFrame is a plain captured Ethernet frame (tag 71).
type EthernetFrame struct {
	base
	SourceAddress [6]byte
	Channel       uint16
	DestAddress   [6]byte
	EtherType     uint16
	PayLoad       []byte
}

func decodeEthernetFrame(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	f := &EthernetFrame{base: base{Hdr: hdr, ObjType: format.ObjectTypeEthernetFrame}}
	src, err := c.ReadBytes(6)
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame: sourceAddress", err)
	}
	copy(f.SourceAddress[:], src)
	if f.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame: channel", err)
	}
	dst, err := c.ReadBytes(6)
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame: destAddress", err)
	}
	copy(f.DestAddress[:], dst)
	if f.EtherType, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame: etherType", err)
	}

	consumed := 6 + 2 + 6 + 2
	remaining := payloadLen - consumed
	if remaining < 0 {
		return nil, errs.New(errs.KindTruncatedPayload, "ethernet frame: object too small")
	}
	payload, err := c.ReadBytes(remaining)
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "ethernet frame: payload", err)
	}
	f.PayLoad = make([]byte, len(payload))
	copy(f.PayLoad, payload)

	return f, nil
}

func encodeEthernetFrame(r Record, c *codec.Cursor) error {
	f := r.(*EthernetFrame)
	if err := c.WriteBytes(f.SourceAddress[:]); err != nil {
		return err
	}
	if err := c.WriteU16(f.Channel); err != nil {
		return err
	}
	if err := c.WriteBytes(f.DestAddress[:]); err != nil {
		return err
	}
	if err := c.WriteU16(f.EtherType); err != nil {
		return err
	}
	return c.WriteBytes(f.PayLoad)
}

func sizeEthernetFrame(r Record) int {
	f := r.(*EthernetFrame)
	return 6 + 2 + 6 + 2 + len(f.PayLoad)
}

func init() {
	register(format.ObjectTypeEthernetFrameForwarded, entry{
		decode: decodeEthernetFrameForwarded,
		encode: encodeEthernetFrameForwarded,
		size:   sizeEthernetFrameForwarded,
	})
	register(format.ObjectTypeEthernetFrame, entry{
		decode: decodeEthernetFrame,
		encode: encodeEthernetFrame,
		size:   sizeEthernetFrame,
	})
}

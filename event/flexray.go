package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// FlexRayVFrReceiveMsgEx is an extended FlexRay receive message with an
// inline payload buffer, sized the way the real driver records it (tag
// 25): a fixed 254-byte dataBytes array regardless of the frame's actual
// payload length, grounded on FlexRayVFrReceiveMsgEx.h.
type FlexRayVFrReceiveMsgEx struct {
	base
	Channel     uint16
	Version     uint16
	ChannelMask uint16
	Dir         uint16
	ClientIndex uint32
	ClusterTime uint32
	FrameID     uint16
	HeaderCRC1  uint16
	HeaderCRC2  uint16
	ByteCount   uint16
	DataCount   uint16
	Cycle       uint32
	DataBytes   [254]byte
}

func decodeFlexRayVFrReceiveMsgEx(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	m := &FlexRayVFrReceiveMsgEx{base: base{Hdr: hdr, ObjType: format.ObjectTypeFlexRayVFrReceiveMsgEx}}
	fields := []*uint16{&m.Channel, &m.Version, &m.ChannelMask, &m.Dir}
	for _, f := range fields {
		v, err := c.ReadU16()
		if err != nil {
			return nil, errs.Wrap(errs.KindTruncated, "flexray vfr receive msg ex: header field", err)
		}
		*f = v
	}
	var err error
	if m.ClientIndex, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "flexray vfr receive msg ex: clientIndex", err)
	}
	if m.ClusterTime, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "flexray vfr receive msg ex: clusterTime", err)
	}
	for _, f := range []*uint16{&m.FrameID, &m.HeaderCRC1, &m.HeaderCRC2, &m.ByteCount, &m.DataCount} {
		v, err := c.ReadU16()
		if err != nil {
			return nil, errs.Wrap(errs.KindTruncated, "flexray vfr receive msg ex: frame field", err)
		}
		*f = v
	}
	if m.Cycle, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "flexray vfr receive msg ex: cycle", err)
	}
	data, err := c.ReadBytes(len(m.DataBytes))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "flexray vfr receive msg ex: dataBytes", err)
	}
	copy(m.DataBytes[:], data)
	return m, nil
}

func encodeFlexRayVFrReceiveMsgEx(r Record, c *codec.Cursor) error {
	m := r.(*FlexRayVFrReceiveMsgEx)
	for _, v := range []uint16{m.Channel, m.Version, m.ChannelMask, m.Dir} {
		if err := c.WriteU16(v); err != nil {
			return err
		}
	}
	if err := c.WriteU32(m.ClientIndex); err != nil {
		return err
	}
	if err := c.WriteU32(m.ClusterTime); err != nil {
		return err
	}
	for _, v := range []uint16{m.FrameID, m.HeaderCRC1, m.HeaderCRC2, m.ByteCount, m.DataCount} {
		if err := c.WriteU16(v); err != nil {
			return err
		}
	}
	if err := c.WriteU32(m.Cycle); err != nil {
		return err
	}
	return c.WriteBytes(m.DataBytes[:])
}

func sizeFlexRayVFrReceiveMsgEx(r Record) int {
	return 2*4 + 4 + 4 + 2*5 + 4 + 254
}

func init() {
	register(format.ObjectTypeFlexRayVFrReceiveMsgEx, entry{
		decode: decodeFlexRayVFrReceiveMsgEx,
		encode: encodeFlexRayVFrReceiveMsgEx,
		size:   sizeFlexRayVFrReceiveMsgEx,
	})
}

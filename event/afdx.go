package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// AfdxFrame direction values, matching AfdxFrame.h's Dir enum.
const (
	AfdxDirRx   uint16 = 0
	AfdxDirTx   uint16 = 1
	AfdxDirTxRq uint16 = 2
)

// AFDX status/error flag bits, per AfdxFrame.h's afdxFlags documentation.
const (
	AfdxFlagLineB              uint16 = 1 << 0
	AfdxFlagRedundant          uint16 = 1 << 1
	AfdxFlagFragment           uint16 = 1 << 2
	AfdxFlagReassembled        uint16 = 1 << 3
	AfdxFlagInvalidFrame       uint16 = 1 << 4
	AfdxFlagInvalidSequenceNo  uint16 = 1 << 5
	AfdxFlagRedundancyTimeout  uint16 = 1 << 6
	AfdxFlagRedundancyError    uint16 = 1 << 7
	AfdxFlagInterfaceMismatch  uint16 = 1 << 8
	AfdxFlagFragmentationError uint16 = 1 << 11
)

// AfdxFrame is an AFDX (ARINC 664) frame record (tag 97).
type AfdxFrame struct {
	base
	SourceAddress      [6]byte
	Channel            uint16
	DestinationAddress [6]byte
	Dir                uint16
	EtherType          uint16
	TPID               uint16
	TCI                uint16
	EthChannel         uint8
	AfdxFlags          uint16
	BagUsec            uint32
	PayLoadLength      uint16
	PayLoad            []byte
}

func decodeAfdxFrame(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	f := &AfdxFrame{base: base{Hdr: hdr, ObjType: format.ObjectTypeAfdxFrame}}
	src, err := c.ReadBytes(6)
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: sourceAddress", err)
	}
	copy(f.SourceAddress[:], src)
	if f.Channel, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: channel", err)
	}
	dst, err := c.ReadBytes(6)
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: destinationAddress", err)
	}
	copy(f.DestinationAddress[:], dst)
	if f.Dir, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: dir", err)
	}
	if f.EtherType, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: type", err)
	}
	if f.TPID, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: tpid", err)
	}
	if f.TCI, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: tci", err)
	}
	if f.EthChannel, err = c.ReadU8(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: ethChannel", err)
	}
	if f.AfdxFlags, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: afdxFlags", err)
	}
	if f.BagUsec, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: bagUsec", err)
	}
	if f.PayLoadLength, err = c.ReadU16(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: payLoadLength", err)
	}

	consumed := 6 + 2 + 6 + 2 + 2 + 2 + 2 + 1 + 2 + 4 + 2
	if int(f.PayLoadLength) > payloadLen-consumed {
		return nil, errs.New(errs.KindTruncatedPayload, "afdx frame: payLoadLength exceeds object bounds")
	}

	payload, err := c.ReadBytes(int(f.PayLoadLength))
	if err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "afdx frame: payLoad", err)
	}
	f.PayLoad = make([]byte, len(payload))
	copy(f.PayLoad, payload)

	return f, nil
}

func encodeAfdxFrame(r Record, c *codec.Cursor) error {
	f := r.(*AfdxFrame)
	if err := c.WriteBytes(f.SourceAddress[:]); err != nil {
		return err
	}
	if err := c.WriteU16(f.Channel); err != nil {
		return err
	}
	if err := c.WriteBytes(f.DestinationAddress[:]); err != nil {
		return err
	}
	if err := c.WriteU16(f.Dir); err != nil {
		return err
	}
	if err := c.WriteU16(f.EtherType); err != nil {
		return err
	}
	if err := c.WriteU16(f.TPID); err != nil {
		return err
	}
	if err := c.WriteU16(f.TCI); err != nil {
		return err
	}
	if err := c.WriteU8(f.EthChannel); err != nil {
		return err
	}
	if err := c.WriteU16(f.AfdxFlags); err != nil {
		return err
	}
	if err := c.WriteU32(f.BagUsec); err != nil {
		return err
	}
	if err := c.WriteU16(f.PayLoadLength); err != nil {
		return err
	}
	return c.WriteBytes(f.PayLoad)
}

func sizeAfdxFrame(r Record) int {
	f := r.(*AfdxFrame)
	return 6 + 2 + 6 + 2 + 2 + 2 + 2 + 1 + 2 + 4 + 2 + len(f.PayLoad)
}

func init() {
	register(format.ObjectTypeAfdxFrame, entry{decode: decodeAfdxFrame, encode: encodeAfdxFrame, size: sizeAfdxFrame})
}

package event

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
	"github.com/carlosdem/vector-blf/format"
	"github.com/carlosdem/vector-blf/object"
)

// GpsEvent carries a GPS fix (tag 50).
type GpsEvent struct {
	base
	Flags     uint32
	Latitude  float64
	Longitude float64
	Altitude  float64
	Speed     float64
	Course    float64
}

func decodeGpsEvent(hdr object.Header, c *codec.Cursor, payloadLen int) (Record, error) {
	e := &GpsEvent{base: base{Hdr: hdr, ObjType: format.ObjectTypeGpsEvent}}
	var err error
	if e.Flags, err = c.ReadU32(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "gps event: flags", err)
	}
	if e.Latitude, err = c.ReadF64(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "gps event: latitude", err)
	}
	if e.Longitude, err = c.ReadF64(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "gps event: longitude", err)
	}
	if e.Altitude, err = c.ReadF64(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "gps event: altitude", err)
	}
	if e.Speed, err = c.ReadF64(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "gps event: speed", err)
	}
	if e.Course, err = c.ReadF64(); err != nil {
		return nil, errs.Wrap(errs.KindTruncated, "gps event: course", err)
	}
	return e, nil
}

func encodeGpsEvent(r Record, c *codec.Cursor) error {
	e := r.(*GpsEvent)
	if err := c.WriteU32(e.Flags); err != nil {
		return err
	}
	for _, v := range []float64{e.Latitude, e.Longitude, e.Altitude, e.Speed, e.Course} {
		if err := c.WriteF64(v); err != nil {
			return err
		}
	}
	return nil
}

func sizeGpsEvent(r Record) int { return 4 + 8*5 }

func init() {
	register(format.ObjectTypeGpsEvent, entry{decode: decodeGpsEvent, encode: encodeGpsEvent, size: sizeGpsEvent})
}

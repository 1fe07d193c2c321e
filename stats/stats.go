// Package stats implements FileStatistics: the fixed 144-byte header at
// offset 0 of every BLF file. Distinct from the ObjectHeaderBase protocol
// used by the rest of the stream.
//
// Grounded on section.NumericHeader's Parse/Bytes shape and on the real
// field layout in original_source/src/Vector/BLF/File.cpp.
package stats

import (
	"github.com/carlosdem/vector-blf/codec"
	"github.com/carlosdem/vector-blf/errs"
)

// Size is the fixed on-disk size of FileStatistics.
const Size = 144

// Signature is the 4-byte magic at the start of the file.
const Signature uint32 = 0x47474F4C // "LOGG" little-endian

// SystemTime is the 8-field wall-clock timestamp BLF embeds for
// measurement start time and last object time.
type SystemTime struct {
	Year      uint16
	Month     uint16
	DayOfWeek uint16
	Day       uint16
	Hour      uint16
	Minute    uint16
	Second    uint16
	MilliSec  uint16
}

func (s *SystemTime) read(c *codec.Cursor) error {
	fields := []*uint16{&s.Year, &s.Month, &s.DayOfWeek, &s.Day, &s.Hour, &s.Minute, &s.Second, &s.MilliSec}
	for _, f := range fields {
		v, err := c.ReadU16()
		if err != nil {
			return err
		}
		*f = v
	}
	return nil
}

func (s *SystemTime) write(c *codec.Cursor) error {
	fields := []uint16{s.Year, s.Month, s.DayOfWeek, s.Day, s.Hour, s.Minute, s.Second, s.MilliSec}
	for _, v := range fields {
		if err := c.WriteU16(v); err != nil {
			return err
		}
	}
	return nil
}

// Statistics is FileStatistics.
type Statistics struct {
	Signature              uint32
	StatisticsSize         uint32
	ApplicationID          uint8
	ApplicationMajor       uint8
	ApplicationMinor       uint8
	ApplicationBuild       uint8
	APIMajor               uint8
	APIMinor               uint8
	APIBuild               uint8
	APIPatch               uint8
	FileSize               uint64
	UncompressedFileSize   uint64
	ObjectCount            uint32
	ObjectsRead            uint32
	MeasurementStartTime   SystemTime
	LastObjectTime         SystemTime
	FileSizeWithoutUnknown115 uint64
}

// New returns a Statistics with Signature/StatisticsSize pre-filled and
// every count/size field zeroed, ready to be written as a placeholder on
// open-for-write and rewritten on close.
func New() Statistics {
	return Statistics{
		Signature:      Signature,
		StatisticsSize: Size,
	}
}

// Read parses a Statistics from the first Size bytes of c.
func Read(c *codec.Cursor) (Statistics, error) {
	var s Statistics
	var err error

	if s.Signature, err = c.ReadU32(); err != nil {
		return Statistics{}, errs.Wrap(errs.KindTruncated, "file statistics: signature", err)
	}
	if s.Signature != Signature {
		return Statistics{}, errs.New(errs.KindBadSignature, "file statistics: expected LOGG")
	}

	if s.StatisticsSize, err = c.ReadU32(); err != nil {
		return Statistics{}, errs.Wrap(errs.KindTruncated, "file statistics: statisticsSize", err)
	}

	if s.ApplicationID, err = c.ReadU8(); err != nil {
		return Statistics{}, errs.Wrap(errs.KindTruncated, "file statistics: applicationID", err)
	}
	if s.ApplicationMajor, err = c.ReadU8(); err != nil {
		return Statistics{}, err
	}
	if s.ApplicationMinor, err = c.ReadU8(); err != nil {
		return Statistics{}, err
	}
	if s.ApplicationBuild, err = c.ReadU8(); err != nil {
		return Statistics{}, err
	}
	if s.APIMajor, err = c.ReadU8(); err != nil {
		return Statistics{}, err
	}
	if s.APIMinor, err = c.ReadU8(); err != nil {
		return Statistics{}, err
	}
	if s.APIBuild, err = c.ReadU8(); err != nil {
		return Statistics{}, err
	}
	if s.APIPatch, err = c.ReadU8(); err != nil {
		return Statistics{}, err
	}

	if s.FileSize, err = c.ReadU64(); err != nil {
		return Statistics{}, errs.Wrap(errs.KindTruncated, "file statistics: fileSize", err)
	}
	if s.UncompressedFileSize, err = c.ReadU64(); err != nil {
		return Statistics{}, errs.Wrap(errs.KindTruncated, "file statistics: uncompressedFileSize", err)
	}
	if s.ObjectCount, err = c.ReadU32(); err != nil {
		return Statistics{}, errs.Wrap(errs.KindTruncated, "file statistics: objectCount", err)
	}
	if s.ObjectsRead, err = c.ReadU32(); err != nil {
		return Statistics{}, errs.Wrap(errs.KindTruncated, "file statistics: objectsRead", err)
	}

	if err := s.MeasurementStartTime.read(c); err != nil {
		return Statistics{}, errs.Wrap(errs.KindTruncated, "file statistics: measurementStartTime", err)
	}
	if err := s.LastObjectTime.read(c); err != nil {
		return Statistics{}, errs.Wrap(errs.KindTruncated, "file statistics: lastObjectTime", err)
	}

	if s.FileSizeWithoutUnknown115, err = c.ReadU64(); err != nil {
		return Statistics{}, errs.Wrap(errs.KindTruncated, "file statistics: fileSizeWithoutUnknown115", err)
	}

	// Remainder up to Size is padding; skip it unconditionally.
	if err := c.Skip(c.Remaining()); err != nil {
		return Statistics{}, err
	}

	return s, nil
}

// Write serialises s into a Size-byte buffer, zero-padded to Size.
func Write(s *Statistics) ([]byte, error) {
	buf := make([]byte, Size)
	c := codec.NewWriter(buf)

	if err := c.WriteU32(Signature); err != nil {
		return nil, err
	}
	if err := c.WriteU32(Size); err != nil {
		return nil, err
	}
	for _, v := range []uint8{
		s.ApplicationID, s.ApplicationMajor, s.ApplicationMinor, s.ApplicationBuild,
		s.APIMajor, s.APIMinor, s.APIBuild, s.APIPatch,
	} {
		if err := c.WriteU8(v); err != nil {
			return nil, err
		}
	}
	if err := c.WriteU64(s.FileSize); err != nil {
		return nil, err
	}
	if err := c.WriteU64(s.UncompressedFileSize); err != nil {
		return nil, err
	}
	if err := c.WriteU32(s.ObjectCount); err != nil {
		return nil, err
	}
	if err := c.WriteU32(s.ObjectsRead); err != nil {
		return nil, err
	}
	if err := s.MeasurementStartTime.write(c); err != nil {
		return nil, err
	}
	if err := s.LastObjectTime.write(c); err != nil {
		return nil, err
	}
	if err := c.WriteU64(s.FileSizeWithoutUnknown115); err != nil {
		return nil, err
	}
	// Remaining bytes are already zero from make([]byte, Size).

	return buf, nil
}

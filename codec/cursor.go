// Package codec provides bounds-checked little-endian primitives over a
// byte slice. Every object header, log container header and event payload
// in this module is read and written through a Cursor rather than ad hoc
// slicing, so a truncated buffer always surfaces as errs.ErrTruncated /
// errs.ErrBufferOverflow instead of a panic.
package codec

import (
	"encoding/binary"
	"math"

	"github.com/carlosdem/vector-blf/errs"
)

// Cursor is a read or write position over a fixed byte slice. BLF is
// defined as little-endian throughout, so unlike mebo's pluggable
// endian.EndianEngine, Cursor hardwires binary.LittleEndian.
type Cursor struct {
	buf []byte
	pos int
}

// NewReader returns a Cursor that reads from buf starting at offset 0.
func NewReader(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// NewWriter returns a Cursor that writes into buf starting at offset 0.
// buf must already be sized to the intended payload; writes past len(buf)
// return errs.ErrBufferOverflow rather than growing it.
func NewWriter(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current offset into the underlying buffer.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the size of the underlying buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of unread/unwritten bytes left.
func (c *Cursor) Remaining() int { return len(c.buf) - c.pos }

// Bytes returns the full underlying buffer.
func (c *Cursor) Bytes() []byte { return c.buf }

func (c *Cursor) need(n int) error {
	if c.pos+n > len(c.buf) {
		return errs.New(errs.KindTruncated, "not enough bytes remaining")
	}
	return nil
}

func (c *Cursor) room(n int) error {
	if c.pos+n > len(c.buf) {
		return errs.New(errs.KindBufferOverflow, "buffer too small for write")
	}
	return nil
}

// ReadU8 reads an unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// ReadU16 reads a little-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadU64 reads a little-endian uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}

// ReadI8 reads a signed byte.
func (c *Cursor) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

// ReadI16 reads a little-endian int16.
func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadI32 reads a little-endian int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadI64 reads a little-endian int64.
func (c *Cursor) ReadI64() (int64, error) {
	v, err := c.ReadU64()
	return int64(v), err
}

// ReadF32 reads a little-endian IEEE-754 float32.
func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF64 reads a little-endian IEEE-754 float64.
func (c *Cursor) ReadF64() (float64, error) {
	v, err := c.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBytes reads n raw bytes and advances past them. The returned slice
// aliases the underlying buffer; callers that retain it beyond the
// lifetime of the source buffer must copy.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errs.New(errs.KindTruncated, "negative length")
	}
	if err := c.need(n); err != nil {
		return nil, err
	}
	v := c.buf[c.pos : c.pos+n]
	c.pos += n
	return v, nil
}

// Skip advances the cursor by n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// WriteU8 writes an unsigned byte.
func (c *Cursor) WriteU8(v uint8) error {
	if err := c.room(1); err != nil {
		return err
	}
	c.buf[c.pos] = v
	c.pos++
	return nil
}

// WriteU16 writes a little-endian uint16.
func (c *Cursor) WriteU16(v uint16) error {
	if err := c.room(2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(c.buf[c.pos:], v)
	c.pos += 2
	return nil
}

// WriteU32 writes a little-endian uint32.
func (c *Cursor) WriteU32(v uint32) error {
	if err := c.room(4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(c.buf[c.pos:], v)
	c.pos += 4
	return nil
}

// WriteU64 writes a little-endian uint64.
func (c *Cursor) WriteU64(v uint64) error {
	if err := c.room(8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(c.buf[c.pos:], v)
	c.pos += 8
	return nil
}

// WriteI8 writes a signed byte.
func (c *Cursor) WriteI8(v int8) error { return c.WriteU8(uint8(v)) }

// WriteI16 writes a little-endian int16.
func (c *Cursor) WriteI16(v int16) error { return c.WriteU16(uint16(v)) }

// WriteI32 writes a little-endian int32.
func (c *Cursor) WriteI32(v int32) error { return c.WriteU32(uint32(v)) }

// WriteI64 writes a little-endian int64.
func (c *Cursor) WriteI64(v int64) error { return c.WriteU64(uint64(v)) }

// WriteF32 writes a little-endian IEEE-754 float32.
func (c *Cursor) WriteF32(v float32) error { return c.WriteU32(math.Float32bits(v)) }

// WriteF64 writes a little-endian IEEE-754 float64.
func (c *Cursor) WriteF64(v float64) error { return c.WriteU64(math.Float64bits(v)) }

// WriteBytes copies v into the buffer at the current position.
func (c *Cursor) WriteBytes(v []byte) error {
	if err := c.room(len(v)); err != nil {
		return err
	}
	copy(c.buf[c.pos:], v)
	c.pos += len(v)
	return nil
}

// Package stream provides binary reading utilities for metafile parsing.
package stream

import (
	"encoding/binary"
	"errors"
	"math"
)

// Errors returned by Reader
var (
	ErrUnexpectedEOF  = errors.New("stream: unexpected end of data")
	ErrNegativeOffset = errors.New("stream: negative offset")
)

// Reader provides methods for reading binary data from a record buffer.
// All multi-byte values are read in little-endian order. A Reader never
// reads past the slice it was created with.
type Reader struct {
	data   []byte
	offset int
}

// NewReader creates a Reader from a byte slice.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, offset: 0}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.offset
}

// SetOffset sets the read position.
func (r *Reader) SetOffset(offset int) error {
	if offset < 0 {
		return ErrNegativeOffset
	}
	r.offset = offset
	return nil
}

// Len returns the total length of the underlying data.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of bytes remaining.
func (r *Reader) Remaining() int {
	if r.offset >= len(r.data) {
		return 0
	}
	return len(r.data) - r.offset
}

// Has reports whether n more bytes can be read.
func (r *Reader) Has(n int) bool {
	return n >= 0 && r.offset+n <= len(r.data)
}

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int) error {
	if !r.Has(n) {
		return ErrUnexpectedEOF
	}
	r.offset += n
	return nil
}

// ReadU8 reads an unsigned 8-bit integer.
func (r *Reader) ReadU8() (uint8, error) {
	if r.offset >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	v := r.data[r.offset]
	r.offset++
	return v, nil
}

// ReadU16 reads an unsigned 16-bit integer.
func (r *Reader) ReadU16() (uint16, error) {
	if !r.Has(2) {
		return 0, ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint16(r.data[r.offset:])
	r.offset += 2
	return v, nil
}

// ReadU32 reads an unsigned 32-bit integer.
func (r *Reader) ReadU32() (uint32, error) {
	if !r.Has(4) {
		return 0, ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint32(r.data[r.offset:])
	r.offset += 4
	return v, nil
}

// ReadI16 reads a signed 16-bit integer.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadI32 reads a signed 32-bit integer.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadFloat32 reads a 32-bit float.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadBytes reads n bytes into a fresh slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if !r.Has(n) {
		return nil, ErrUnexpectedEOF
	}
	v := make([]byte, n)
	copy(v, r.data[r.offset:r.offset+n])
	r.offset += n
	return v, nil
}

// ReadBytesRef returns a reference to n bytes without copying.
// The returned slice is only valid as long as the underlying data.
func (r *Reader) ReadBytesRef(n int) ([]byte, error) {
	if !r.Has(n) {
		return nil, ErrUnexpectedEOF
	}
	v := r.data[r.offset : r.offset+n]
	r.offset += n
	return v, nil
}

// ReadUTF16 reads n UTF-16LE code units and decodes them, stopping at the
// first NUL.
func (r *Reader) ReadUTF16(n int) (string, error) {
	if n < 0 || !r.Has(n*2) {
		return "", ErrUnexpectedEOF
	}
	b := r.data[r.offset : r.offset+n*2]
	r.offset += n * 2
	return DecodeUTF16(b), nil
}

// PeekU32 returns the next 32-bit integer without advancing the position.
func (r *Reader) PeekU32() (uint32, error) {
	if !r.Has(4) {
		return 0, ErrUnexpectedEOF
	}
	return binary.LittleEndian.Uint32(r.data[r.offset:]), nil
}

// Slice returns a new Reader for a subset of the data.
func (r *Reader) Slice(offset, length int) (*Reader, error) {
	if offset < 0 || length < 0 || offset+length > len(r.data) {
		return nil, ErrUnexpectedEOF
	}
	return NewReader(r.data[offset : offset+length]), nil
}

// SubReader returns a new Reader starting at the current position with the given length.
func (r *Reader) SubReader(length int) (*Reader, error) {
	if !r.Has(length) {
		return nil, ErrUnexpectedEOF
	}
	sub := NewReader(r.data[r.offset : r.offset+length])
	r.offset += length
	return sub, nil
}

// Data returns the underlying byte slice.
func (r *Reader) Data() []byte {
	return r.data
}

// RemainingData returns the remaining unread data.
func (r *Reader) RemainingData() []byte {
	if r.offset >= len(r.data) {
		return nil
	}
	return r.data[r.offset:]
}

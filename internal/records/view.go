// Package records frames a metafile byte stream into records and decodes
// record layouts into property trees.
package records

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/skdltmxn/emf-go/internal/stream"
)

// HeaderSize is the size of the type and size fields that start every record.
const HeaderSize = 8

// Errors
var (
	ErrZeroLength  = errors.New("records: record length is zero")
	ErrShortLength = errors.New("records: record length is shorter than its header")
	ErrOverrun     = errors.New("records: record length exceeds remaining data")
	ErrTruncated   = errors.New("records: record is shorter than its layout")
)

// View is a bounds-checked window over one record. The bytes are borrowed
// from the stream buffer and never copied.
type View struct {
	Index  int
	Offset int
	Type   uint32
	Size   uint32
	data   []byte
}

// NewView wraps a complete record, header included.
func NewView(index, offset int, data []byte) View {
	v := View{Index: index, Offset: offset, data: data}
	if len(data) >= HeaderSize {
		v.Type = binary.LittleEndian.Uint32(data)
		v.Size = binary.LittleEndian.Uint32(data[4:])
	}
	return v
}

// Bytes returns the record bytes, header included.
func (v View) Bytes() []byte { return v.data }

// DataSize returns the number of bytes after the record header.
func (v View) DataSize() int {
	if len(v.data) < HeaderSize {
		return 0
	}
	return len(v.data) - HeaderSize
}

// Reader returns a reader over the record positioned after the header.
func (v View) Reader() *stream.Reader {
	r := stream.NewReader(v.data)
	_ = r.Skip(min(HeaderSize, len(v.data)))
	return r
}

// Span returns n bytes starting at off, both relative to the record start.
// It reports false when the range leaves the record.
func (v View) Span(off, n uint32) ([]byte, bool) {
	end := uint64(off) + uint64(n)
	if end > uint64(len(v.data)) {
		return nil, false
	}
	return v.data[off:end], true
}

// U32 reads a 32-bit value at off relative to the record start.
func (v View) U32(off int) (uint32, bool) {
	if off < 0 || off+4 > len(v.data) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(v.data[off:]), true
}

// I32 reads a signed 32-bit value at off relative to the record start.
func (v View) I32(off int) (int32, bool) {
	u, ok := v.U32(off)
	return int32(u), ok
}

// Check reports ErrTruncated when the record cannot hold the fixed part of l.
func (v View) Check(l *Layout) error {
	if v.DataSize() < l.Size() {
		return ErrTruncated
	}
	return nil
}

// StreamLength returns the number of bytes to scan. A leading header record
// may declare a shorter total length, which caps the scan. A declared length
// that cannot even hold the first record is ignored.
func StreamLength(data []byte) int {
	const nBytesOffset = 48
	if len(data) < nBytesOffset+4 || binary.LittleEndian.Uint32(data) != 1 {
		return len(data)
	}
	first := binary.LittleEndian.Uint32(data[4:])
	declared := binary.LittleEndian.Uint32(data[nBytesOffset:])
	if declared < first || uint64(declared) >= uint64(len(data)) {
		return len(data)
	}
	return int(declared)
}

// Iterator walks the records of a stream in order.
type Iterator struct {
	data   []byte
	end    int
	offset int
	index  int
}

// NewIterator creates an iterator over data, bounded by StreamLength.
func NewIterator(data []byte) *Iterator {
	return &Iterator{data: data, end: StreamLength(data)}
}

// Offset returns the position of the next record.
func (it *Iterator) Offset() int { return it.offset }

// Index returns the index the next record will get.
func (it *Iterator) Index() int { return it.index }

// Next returns the next record. It returns io.EOF at the end of the stream
// and a framing error when the next record header is unusable; both end the
// iteration.
func (it *Iterator) Next() (View, error) {
	remaining := it.end - it.offset
	if remaining <= 0 {
		return View{}, io.EOF
	}
	if remaining < HeaderSize {
		return View{}, ErrOverrun
	}

	size := binary.LittleEndian.Uint32(it.data[it.offset+4:])
	switch {
	case size == 0:
		return View{}, ErrZeroLength
	case size < HeaderSize:
		return View{}, ErrShortLength
	case uint64(size) > uint64(remaining):
		return View{}, ErrOverrun
	}

	v := NewView(it.index, it.offset, it.data[it.offset:it.offset+int(size)])
	it.offset += int(size)
	it.index++
	return v, nil
}

// PeekSize returns the declared size at the iterator position, for error
// reporting after Next fails.
func (it *Iterator) PeekSize() uint32 {
	if it.offset+HeaderSize > len(it.data) {
		return 0
	}
	return binary.LittleEndian.Uint32(it.data[it.offset+4:])
}

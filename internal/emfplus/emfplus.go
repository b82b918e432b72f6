// Package emfplus reads the EMF+ records embedded in EMF comment records.
package emfplus

import (
	"errors"
	"io"

	"github.com/skdltmxn/emf-go/internal/stream"
)

// RecordHeaderSize is the size of the Type, Flags, Size and DataSize fields.
const RecordHeaderSize = 12

// Record types with dedicated handling.
const (
	TypeHeader = 0x4001
	TypeObject = 0x4008
)

// Errors
var (
	ErrInvalidRecord = errors.New("emfplus: invalid record")
	ErrNotHeader     = errors.New("emfplus: record is not a header")
)

// Record is one EMF+ record. Data is borrowed from the comment payload.
type Record struct {
	Type     uint16
	Flags    uint16
	Size     uint32
	DataSize uint32
	Offset   int // relative to the start of the EMF+ payload
	Data     []byte
}

// ObjectType returns the object type carried in the flags of an Object record.
func (r Record) ObjectType() uint32 { return uint32(r.Flags>>8) & 0x7F }

// ObjectID returns the object table index carried in the flags of an Object record.
func (r Record) ObjectID() uint32 { return uint32(r.Flags & 0xFF) }

// Continued reports whether an Object record continues in the next record.
func (r Record) Continued() bool { return r.Flags&0x8000 != 0 }

// Iterator walks the EMF+ records of one comment payload.
type Iterator struct {
	r *stream.Reader
}

// NewIterator creates an iterator over an EMF+ payload, the bytes that
// follow the "EMF+" comment identifier.
func NewIterator(payload []byte) *Iterator {
	return &Iterator{r: stream.NewReader(payload)}
}

// Next returns the next record or io.EOF.
func (it *Iterator) Next() (Record, error) {
	if it.r.Remaining() == 0 {
		return Record{}, io.EOF
	}
	start := it.r.Offset()
	typ, err := it.r.ReadU16()
	if err != nil {
		return Record{}, err
	}
	flags, err := it.r.ReadU16()
	if err != nil {
		return Record{}, err
	}
	size, err := it.r.ReadU32()
	if err != nil {
		return Record{}, err
	}
	dataSize, err := it.r.ReadU32()
	if err != nil {
		return Record{}, err
	}
	if size < RecordHeaderSize || uint64(dataSize) > uint64(size-RecordHeaderSize) {
		return Record{}, ErrInvalidRecord
	}
	if !it.r.Has(int(size - RecordHeaderSize)) {
		return Record{}, stream.ErrUnexpectedEOF
	}
	data, _ := it.r.ReadBytesRef(int(dataSize))
	_ = it.r.Skip(int(size-RecordHeaderSize) - int(dataSize))

	return Record{
		Type:     typ,
		Flags:    flags,
		Size:     size,
		DataSize: dataSize,
		Offset:   start,
		Data:     data,
	}, nil
}

// Records collects the records of a payload. It returns what was read
// before the first error together with that error.
func Records(payload []byte) ([]Record, error) {
	var out []Record
	it := NewIterator(payload)
	for {
		rec, err := it.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}

// Header is the EMF+ header record.
type Header struct {
	Flags        uint16 // record flags; bit 0 marks a dual EMF/EMF+ file
	Version      uint32
	EmfPlusFlags uint32
	DpiX         uint32
	DpiY         uint32
}

// Dual reports whether the metafile also carries plain EMF drawing records.
func (h *Header) Dual() bool { return h.Flags&0x1 != 0 }

// Signature returns the version signature, 0xDBC01 in valid files.
func (h *Header) Signature() uint32 { return h.Version >> 12 }

// GraphicsVersion returns the graphics library version number.
func (h *Header) GraphicsVersion() uint32 { return h.Version & 0xFFF }

// ParseHeader decodes a header record.
func ParseHeader(rec Record) (*Header, error) {
	if rec.Type != TypeHeader {
		return nil, ErrNotHeader
	}
	r := stream.NewReader(rec.Data)
	h := &Header{Flags: rec.Flags}
	var err error
	if h.Version, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.EmfPlusFlags, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.DpiX, err = r.ReadU32(); err != nil {
		return nil, err
	}
	if h.DpiY, err = r.ReadU32(); err != nil {
		return nil, err
	}
	return h, nil
}

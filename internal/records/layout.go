package records

import "github.com/skdltmxn/emf-go/enums"

// Kind is the storage and display type of a layout field.
type Kind uint8

const (
	U8 Kind = iota
	U16
	U32
	I16
	I32
	F32
	Hex    // enumerated value with no textual mapping, shown as %08X
	Handle // object handle, stock objects named
	Rect   // RECTL
	Size   // SIZEL
	Point  // POINTL
	PointS // POINTS
	XForm  // XFORM
	Struct
	Chars // fixed-length UTF-16 string
	Ansi  // fixed-length 8-bit string
	Bytes // fixed-length opaque bytes, shown as hex
)

var kindSizes = [...]int{
	U8:     1,
	U16:    2,
	U32:    4,
	I16:    2,
	I32:    4,
	F32:    4,
	Hex:    4,
	Handle: 4,
	Rect:   16,
	Size:   8,
	Point:  8,
	PointS: 4,
	XForm:  24,
	Chars:  2,
	Ansi:   1,
	Bytes:  1,
}

// Field describes one member of a record layout.
type Field struct {
	Name string
	Kind Kind

	// Enum renders integer fields symbolically.
	Enum enums.Formatter
	// Layout is the nested layout of a Struct field.
	Layout *Layout
	// Count repeats the field a fixed number of times. For Chars, Ansi and
	// Bytes it is the element count of the single value.
	Count int
	// CountOf names an earlier integer field holding the repeat count.
	CountOf string
	// MinSize includes the field only when the declared record size is at
	// least this many bytes.
	MinSize int
}

// Layout is the structural description of a record or nested structure.
type Layout struct {
	Name   string
	Fields []Field
}

// elemSize returns the size of one element of f.
func (f *Field) elemSize() int {
	if f.Kind == Struct {
		return f.Layout.Size()
	}
	return kindSizes[f.Kind]
}

// fixedSize returns the bytes f always occupies, or 0 for variable and
// gated fields.
func (f *Field) fixedSize() int {
	if f.CountOf != "" || f.MinSize > 0 {
		return 0
	}
	n := f.elemSize()
	if f.Count > 0 {
		n *= f.Count
	}
	return n
}

// Size returns the size of the fixed portion of the layout.
func (l *Layout) Size() int {
	n := 0
	for i := range l.Fields {
		n += l.Fields[i].fixedSize()
	}
	return n
}

// F declares a plain field.
func F(name string, k Kind) Field { return Field{Name: name, Kind: k} }

// E declares a 32-bit field rendered through an enum formatter.
func E(name string, e enums.Formatter) Field { return Field{Name: name, Kind: U32, Enum: e} }

// E8 declares an 8-bit field rendered through an enum formatter.
func E8(name string, e enums.Formatter) Field { return Field{Name: name, Kind: U8, Enum: e} }

// S declares a nested structure.
func S(name string, l *Layout) Field { return Field{Name: name, Kind: Struct, Layout: l} }

// A declares a fixed-count array.
func A(name string, k Kind, count int) Field { return Field{Name: name, Kind: k, Count: count} }

// V declares an array whose count is held by an earlier field.
func V(name string, k Kind, countOf string) Field {
	return Field{Name: name, Kind: k, CountOf: countOf}
}

// Gate returns f restricted to records of at least minSize bytes.
func Gate(f Field, minSize int) Field {
	f.MinSize = minSize
	return f
}

func (k Kind) isString() bool {
	return k == Chars || k == Ansi || k == Bytes
}

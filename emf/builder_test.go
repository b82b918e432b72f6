package emf

import (
	"encoding/binary"
	"math"
	"testing"
	"unicode/utf16"

	"github.com/skdltmxn/emf-go/props"
)

// payload accumulates little-endian record fields.
type payload []byte

func (p payload) u32(vs ...uint32) payload {
	for _, v := range vs {
		p = binary.LittleEndian.AppendUint32(p, v)
	}
	return p
}

func (p payload) i32(vs ...int32) payload {
	for _, v := range vs {
		p = binary.LittleEndian.AppendUint32(p, uint32(v))
	}
	return p
}

func (p payload) u16(vs ...uint16) payload {
	for _, v := range vs {
		p = binary.LittleEndian.AppendUint16(p, v)
	}
	return p
}

func (p payload) f32(vs ...float32) payload {
	for _, v := range vs {
		p = binary.LittleEndian.AppendUint32(p, math.Float32bits(v))
	}
	return p
}

func (p payload) rect(l, t, r, b int32) payload { return p.i32(l, t, r, b) }

func (p payload) bytes(b ...byte) payload { return append(p, b...) }

func (p payload) utf16(s string) payload {
	return p.u16(utf16.Encode([]rune(s))...)
}

// pad aligns the payload to four bytes.
func (p payload) pad() payload {
	for len(p)%4 != 0 {
		p = append(p, 0)
	}
	return p
}

// rec frames a record of type t around data.
func rec(t RecordType, data payload) []byte {
	b := payload(nil).u32(uint32(t), uint32(8+len(data)))
	return append(b, data...)
}

// headerData returns the body of a base-size header record.
func headerData(bounds props.RectL) payload {
	return payload(nil).
		rect(bounds.Left, bounds.Top, bounds.Right, bounds.Bottom).
		rect(0, 0, 2540, 2540).
		u32(Signature, 0x10000, 0, 0).
		u16(4, 0).
		u32(0, 0, 0).
		i32(1024, 768, 320, 240)
}

// buildStream concatenates records and patches the header's nBytes and
// nRecords when the first record is a header.
func buildStream(recs ...[]byte) []byte {
	var out []byte
	for _, r := range recs {
		out = append(out, r...)
	}
	if len(out) >= 56 && binary.LittleEndian.Uint32(out) == uint32(EMR_HEADER) {
		binary.LittleEndian.PutUint32(out[48:], uint32(len(out)))
		binary.LittleEndian.PutUint32(out[52:], uint32(len(recs)))
	}
	return out
}

func header() []byte {
	return rec(EMR_HEADER, headerData(props.RectL{Right: 100, Bottom: 100}))
}

func createPen(h, color uint32) []byte {
	return rec(EMR_CREATEPEN, payload(nil).u32(h, 0, 1, 0, color))
}

func createBrush(h, style, color, hatch uint32) []byte {
	return rec(EMR_CREATEBRUSHINDIRECT, payload(nil).u32(h, style, color, hatch))
}

func selectObject(h uint32) []byte { return rec(EMR_SELECTOBJECT, payload(nil).u32(h)) }

func deleteObject(h uint32) []byte { return rec(EMR_DELETEOBJECT, payload(nil).u32(h)) }

func saveDC() []byte { return rec(EMR_SAVEDC, nil) }

func restoreDC(rel int32) []byte { return rec(EMR_RESTOREDC, payload(nil).i32(rel)) }

// createFont builds an EXTCREATEFONTINDIRECTW record holding a bare
// LOGFONTW.
func createFont(h uint32, charset uint8, face string) []byte {
	p := payload(nil).u32(h).i32(-12, 0, 0, 0, 400).
		bytes(0, 0, 0, charset, 0, 0, 0, 0)
	name := payload(nil).utf16(face)
	name = append(name, make([]byte, 64-len(name))...)
	return rec(EMR_EXTCREATEFONTINDIRECTW, append(p, name...))
}

// textOut builds a single-string text record with the string placed right
// after the fixed part.
func textOut(t RecordType, options, nChars uint32, str payload) []byte {
	const fixed = 76
	p := payload(nil).
		rect(0, 0, 50, 20).
		u32(2).f32(1, 1).
		i32(10, 10).
		u32(nChars, fixed, options).
		rect(0, 0, 50, 20).
		u32(0)
	return rec(t, append(p, str.pad()...))
}

// comment builds a GDICOMMENT record around body, which starts with the
// identifier.
func comment(body payload) []byte {
	return rec(EMR_GDICOMMENT, payload(nil).u32(uint32(len(body))).bytes(body.pad()...))
}

// plusRecord frames one EMF+ record.
func plusRecord(typ, flags uint16, data payload) payload {
	return payload(nil).u16(typ, flags).u32(uint32(12+len(data)), uint32(len(data))).bytes(data...)
}

func mustOpen(t *testing.T, data []byte) *File {
	t.Helper()
	f, err := New(data, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func mustRecord(t *testing.T, f *File, i int) *Record {
	t.Helper()
	r, err := f.Record(i)
	if err != nil {
		t.Fatalf("Record(%d): %v", i, err)
	}
	return r
}

// linkTargets returns the indices of the link targets of r.
func linkTargets(r *Record) []int {
	var out []int
	for _, l := range r.Links() {
		out = append(out, l.Target.Index())
	}
	return out
}

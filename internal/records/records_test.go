package records

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/skdltmxn/emf-go/enums"
	"github.com/skdltmxn/emf-go/props"
)

// record assembles a record with the given type and 32-bit payload words.
func record(typ uint32, words ...uint32) []byte {
	b := make([]byte, 8+4*len(words))
	binary.LittleEndian.PutUint32(b, typ)
	binary.LittleEndian.PutUint32(b[4:], uint32(len(b)))
	for i, w := range words {
		binary.LittleEndian.PutUint32(b[8+4*i:], w)
	}
	return b
}

func TestIteratorFraming(t *testing.T) {
	var data []byte
	data = append(data, record(17, 8)...)
	data = append(data, record(200)...)

	it := NewIterator(data)
	v, err := it.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if v.Type != 17 || v.Size != 12 || v.Index != 0 || v.Offset != 0 {
		t.Errorf("first = type %d size %d index %d offset %d", v.Type, v.Size, v.Index, v.Offset)
	}
	v, err = it.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if v.Type != 200 || v.Offset != 12 || v.DataSize() != 0 {
		t.Errorf("second = type %d offset %d datasize %d", v.Type, v.Offset, v.DataSize())
	}
	if _, err := it.Next(); err != io.EOF {
		t.Errorf("Next at end: err = %v, want io.EOF", err)
	}
}

func TestIteratorErrors(t *testing.T) {
	tests := []struct {
		name string
		size uint32
		want error
	}{
		{"zero", 0, ErrZeroLength},
		{"short", 4, ErrShortLength},
		{"overrun", 64, ErrOverrun},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append(record(17, 8), 9, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
			binary.LittleEndian.PutUint32(data[16:], tt.size)

			it := NewIterator(data)
			if _, err := it.Next(); err != nil {
				t.Fatalf("first Next: %v", err)
			}
			_, err := it.Next()
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if it.Offset() != 12 || it.Index() != 1 {
				t.Errorf("position = %d/%d, want 12/1", it.Offset(), it.Index())
			}
			if it.PeekSize() != tt.size {
				t.Errorf("PeekSize = %d, want %d", it.PeekSize(), tt.size)
			}
		})
	}
}

func TestStreamLengthCapsScan(t *testing.T) {
	hdr := make([]byte, 88)
	binary.LittleEndian.PutUint32(hdr, 1)
	binary.LittleEndian.PutUint32(hdr[4:], 88)
	binary.LittleEndian.PutUint32(hdr[48:], 88+12)
	data := append(hdr, record(17, 1)...)
	data = append(data, 0xFF, 0xFF, 0xFF, 0xFF) // trailing junk past nBytes

	if got := StreamLength(data); got != 100 {
		t.Errorf("StreamLength = %d, want 100", got)
	}
	// a declared length smaller than the header itself is ignored
	binary.LittleEndian.PutUint32(data[48:], 10)
	if got := StreamLength(data); got != len(data) {
		t.Errorf("StreamLength = %d, want %d", got, len(data))
	}
}

func TestViewSpan(t *testing.T) {
	v := NewView(0, 0, record(1, 1, 2, 3))
	if b, ok := v.Span(8, 8); !ok || len(b) != 8 {
		t.Errorf("Span(8, 8) = %d bytes, %v", len(b), ok)
	}
	if _, ok := v.Span(16, 8); ok {
		t.Error("Span past end succeeded")
	}
	if _, ok := v.Span(0xFFFFFFFF, 2); ok {
		t.Error("Span with overflowing offset succeeded")
	}
	if x, ok := v.U32(12); !ok || x != 2 {
		t.Errorf("U32(12) = %d, %v, want 2", x, ok)
	}
}

var testPoly = &Layout{Name: "poly", Fields: []Field{
	F("rclBounds", Rect),
	F("cptl", U32),
	V("aptl", Point, "cptl"),
}}

func TestWalkVariableArray(t *testing.T) {
	v := NewView(0, 0, record(3, 0, 0, 10, 10, 2, 1, 2, 3, 4))
	root := props.NewBranch("root")
	vals, err := Walk(v.Reader(), testPoly, v.Size, root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if vals["cptl"] != 2 {
		t.Errorf("cptl = %d, want 2", vals["cptl"])
	}
	pts := root.Child("aptl")
	if pts == nil || len(pts.Points) != 2 || pts.Points[1] != (props.PointL{X: 3, Y: 4}) {
		t.Errorf("aptl = %+v", pts)
	}
	if r := root.Child("rclBounds"); r == nil || r.Rect.Right != 10 {
		t.Errorf("rclBounds = %+v", r)
	}
}

func TestWalkArrayCountBeyondData(t *testing.T) {
	v := NewView(0, 0, record(3, 0, 0, 10, 10, 1000, 1, 2))
	root := props.NewBranch("root")
	if _, err := Walk(v.Reader(), testPoly, v.Size, root); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if root.Child("aptl") != nil {
		t.Error("oversized point array was decoded")
	}
	if root.Child("cptl") == nil {
		t.Error("count field missing")
	}
}

func TestWalkStopsAfterUnplacedArray(t *testing.T) {
	l := &Layout{Name: "polypoly", Fields: []Field{
		F("rclBounds", Rect),
		F("nPolys", U32),
		F("cptl", U32),
		V("aPolyCounts", U32, "nPolys"),
		V("aptl", Point, "cptl"),
	}}
	// the counts array claims 1000 entries; the bytes after it are 7, (3,4)
	v := NewView(0, 0, record(4, 0, 0, 10, 10, 1000, 1, 7, 3, 4))
	root := props.NewBranch("root")
	vals, err := Walk(v.Reader(), l, v.Size, root)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if vals["nPolys"] != 1000 || vals["cptl"] != 1 {
		t.Errorf("counts = %d, %d", vals["nPolys"], vals["cptl"])
	}
	if n := root.Child("aPolyCounts"); n != nil {
		t.Errorf("aPolyCounts = %v, want none", n)
	}
	if n := root.Child("aptl"); n != nil {
		t.Errorf("aptl read from the skipped array: %v", n)
	}
}

func TestWalkStopsInsideNestedLayout(t *testing.T) {
	l := &Layout{Name: "outer", Fields: []Field{
		S("inner", &Layout{Name: "inner", Fields: []Field{
			F("n", U32),
			V("items", U32, "n"),
		}}),
		F("after", U32),
	}}
	v := NewView(0, 0, record(1, 50, 9))
	root := props.NewBranch("root")
	if _, err := Walk(v.Reader(), l, v.Size, root); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if n := root.Find("inner", "n"); n == nil || n.Raw != 50 {
		t.Errorf("inner.n = %v", n)
	}
	if n := root.Child("after"); n != nil {
		t.Errorf("after = %v, want none", n)
	}
}

func TestWalkMarksTruncatedArray(t *testing.T) {
	l := &Layout{Name: "bytes", Fields: []Field{
		F("n", U32),
		V("ab", U8, "n"),
	}}
	n := maxArrayItems + 3
	b := make([]byte, 12+(n+3)&^3)
	binary.LittleEndian.PutUint32(b, 1)
	binary.LittleEndian.PutUint32(b[4:], uint32(len(b)))
	binary.LittleEndian.PutUint32(b[8:], uint32(n))

	v := NewView(0, 0, b)
	root := props.NewBranch("root")
	if _, err := Walk(v.Reader(), l, v.Size, root); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if got := len(root.Child("ab").Items); got != maxArrayItems {
		t.Errorf("ab holds %d items, want %d", got, maxArrayItems)
	}
	m := root.Child("ab (truncated)")
	if m == nil || m.Raw != int64(n) {
		t.Fatalf("truncation marker = %v", m)
	}
	if want := fmt.Sprintf("%d of %d shown", maxArrayItems, n); m.Str != want {
		t.Errorf("marker = %q, want %q", m.Str, want)
	}
}

func TestWalkFullArrayHasNoMarker(t *testing.T) {
	v := NewView(0, 0, record(3, 0, 0, 10, 10, 2, 1, 2, 3, 4))
	root := props.NewBranch("root")
	if _, err := Walk(v.Reader(), testPoly, v.Size, root); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if root.Child("aptl (truncated)") != nil {
		t.Error("complete array marked as truncated")
	}
}

func TestWalkGatedFields(t *testing.T) {
	l := &Layout{Name: "gated", Fields: []Field{
		E("iMode", enums.MapMode),
		Gate(F("extra", U32), 16),
	}}
	short := NewView(0, 0, record(1, 8))
	root := props.NewBranch("root")
	if _, err := Walk(short.Reader(), l, short.Size, root); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if root.Child("extra") != nil {
		t.Error("gated field present in short record")
	}
	if got := root.Child("iMode").Str; got != "8  MM_ANISOTROPIC" {
		t.Errorf("iMode = %q", got)
	}

	long := NewView(0, 0, record(1, 8, 5))
	root = props.NewBranch("root")
	if _, err := Walk(long.Reader(), l, long.Size, root); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if n := root.Child("extra"); n == nil || n.Raw != 5 {
		t.Errorf("extra = %+v, want 5", n)
	}
}

func TestCheckTruncated(t *testing.T) {
	v := NewView(0, 0, record(3, 0, 0))
	if err := v.Check(testPoly); !errors.Is(err, ErrTruncated) {
		t.Errorf("Check = %v, want ErrTruncated", err)
	}
	if testPoly.Size() != 20 {
		t.Errorf("Size = %d, want 20", testPoly.Size())
	}
}

func TestWalkColorAndHandle(t *testing.T) {
	l := &Layout{Name: "pen", Fields: []Field{
		F("ihPen", Handle),
		F("lopnColor", U32),
		F("iMystery", Hex),
	}}
	v := NewView(0, 0, record(38, 0x80000007, 0x000000FF, 0xAB))
	root := props.NewBranch("root")
	if _, err := Walk(v.Reader(), l, v.Size, root); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if got := root.Child("ihPen").Str; got != "BLACK_PEN (80000007)" {
		t.Errorf("ihPen = %q", got)
	}
	c := root.Child("lopnColor")
	if c.Kind != props.Color || c.Color.R != 0xFF || c.Color.B != 0 {
		t.Errorf("lopnColor = %+v", c)
	}
	if got := root.Child("iMystery").Str; got != "000000AB" {
		t.Errorf("iMystery = %q", got)
	}
}

func TestIsColorName(t *testing.T) {
	for name, want := range map[string]bool{
		"crColor":        true,
		"lbColor":        true,
		"crBkColorSrc":   true,
		"cropped":        false,
		"caColorfulness": false,
		"nColors":        false,
	} {
		if got := IsColorName(name); got != want {
			t.Errorf("IsColorName(%q) = %v, want %v", name, got, want)
		}
	}
}

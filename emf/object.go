package emf

import (
	"encoding/binary"
	"fmt"

	"github.com/skdltmxn/emf-go/enums"
	"github.com/skdltmxn/emf-go/internal/records"
	"github.com/skdltmxn/emf-go/props"
)

// bsHatched is the BS_HATCHED brush style; only hatched brushes give the
// hatch field a meaning.
const bsHatched = 2

// Font record sizes: a bare LOGFONTW, or a full EXTLOGFONTW.
const (
	fontSizeLogFont    = records.HeaderSize + 4 + 92
	fontSizeExtLogFont = records.HeaderSize + 4 + 320
)

var (
	layoutFontLogFont = &records.Layout{Name: "EMREXTCREATEFONTINDIRECTW", Fields: []records.Field{
		records.F("ihFont", records.U32),
		records.S("LogFont", layoutLogFontW),
	}}
	layoutFontExtLogFont = &records.Layout{Name: "EMREXTCREATEFONTINDIRECTW", Fields: []records.Field{
		records.F("ihFont", records.U32),
		records.S("elfw", layoutExtLogFontW),
	}}
)

func buildFont(r *Record, root *props.Node) {
	switch {
	case r.Size() >= fontSizeExtLogFont:
		r.walk(root, layoutFontExtLogFont)
	case r.Size() >= fontSizeLogFont:
		r.walk(root, layoutFontLogFont)
	default:
		if h, ok := r.view.U32(records.HeaderSize); ok {
			root.AddUint("ihFont", h)
		}
	}
}

// relabelHatch shows a hatch field symbolically.
func relabelHatch(parent *props.Node, name string) {
	if parent == nil {
		return
	}
	if n := parent.Child(name); n != nil {
		v := uint32(n.Raw)
		parent.Replace(name, &props.Node{Name: name, Kind: props.Value, Raw: n.Raw, Str: enums.HatchStyle.Format(v)})
	}
}

func buildBrush(r *Record, root *props.Node) {
	vals := r.walk(root, layoutCreateBrush)
	if vals["lb.lbStyle"] == bsHatched {
		relabelHatch(root.Child("lb"), "lbHatch")
	}
}

func buildExtPen(r *Record, root *props.Node) {
	vals := r.walk(root, layoutExtCreatePen)
	if vals["elp.elpBrushStyle"] == bsHatched {
		relabelHatch(root.Child("elp"), "elpHatch")
	}
	r.addBitmapInfo(root, "BMP", vals, dibBrush)
}

// Gradient fill modes selecting the shape of the gradient entries.
const (
	gradientFillRectH    = 0
	gradientFillRectV    = 1
	gradientFillTriangle = 2
)

func buildGradientFill(r *Record, root *props.Node) {
	vals := r.walk(root, layoutGradientFill)
	nVer, okVer := vals["nVer"]
	nTri, okTri := vals["nTri"]
	if !okVer || !okTri {
		return
	}

	var per int
	switch vals["ulMode"] {
	case gradientFillRectH, gradientFillRectV:
		per = 2
	case gradientFillTriangle:
		per = 3
	default:
		return
	}
	off := uint64(records.HeaderSize+16+12) + uint64(nVer)*uint64(layoutTriVertex.Size())
	if off > uint64(r.Size()) {
		return
	}
	if uint64(nTri)*uint64(per)*4 > uint64(r.Size()) {
		return
	}
	b, ok := r.view.Span(uint32(off), nTri*uint32(per)*4)
	if !ok {
		return
	}

	g := root.AddBranch("Gradients")
	for i := 0; i < int(nTri); i++ {
		items := make([]string, per)
		for j := range items {
			items[j] = fmt.Sprintf("%d", binary.LittleEndian.Uint32(b[(i*per+j)*4:]))
		}
		g.AddArray(fmt.Sprintf("[%d]", i), items)
	}
}

func buildEOF(r *Record, root *props.Node) {
	vals := r.walk(root, layoutEOF)
	if n, off := vals["nPalEntries"], vals["offPalEntries"]; n > 0 && off > 0 && n <= r.Size()/4 {
		if b, ok := r.view.Span(off, n*4); ok {
			items := make([]string, n)
			for i := range items {
				items[i] = enums.Hex(binary.LittleEndian.Uint32(b[i*4:]))
			}
			root.AddArray("PalEntries", items)
		}
	}
	// nSizeLast repeats the record size in the last four bytes
	if last, ok := r.view.U32(int(r.Size()) - 4); ok && r.Size() >= records.HeaderSize+12 {
		root.AddUint("nSizeLast", last)
	}
}

package emf

import (
	"image"

	"github.com/skdltmxn/emf-go/internal/records"
	"github.com/skdltmxn/emf-go/props"
)

// PreviewRequest asks a record for a preview inside Rect. With CalcOnly set
// only the preferred size is computed.
type PreviewRequest struct {
	Rect     image.Rectangle
	CalcOnly bool
}

// PreviewKind identifies the geometry a preview carries.
type PreviewKind uint8

const (
	PreviewPolyline PreviewKind = iota + 1
	PreviewPolygon
	PreviewBezier
	PreviewBitmap
)

func (k PreviewKind) String() string {
	switch k {
	case PreviewPolyline:
		return "polyline"
	case PreviewPolygon:
		return "polygon"
	case PreviewBezier:
		return "bezier"
	case PreviewBitmap:
		return "bitmap"
	default:
		return "none"
	}
}

// Preview holds the decoded parameters a renderer needs to draw a record.
// Nothing is drawn here.
type Preview struct {
	Kind PreviewKind
	// Size is the preferred preview size.
	Size image.Point
	// Fit is the area inside the request rectangle the drawing occupies.
	// It keeps the aspect ratio of Bounds and is centred. Empty in calc-only
	// mode.
	Fit image.Rectangle
	// Bounds is the logical extent of the geometry.
	Bounds props.RectL
	// Figures holds the point lists in logical units, one per polygon or
	// polyline.
	Figures [][]props.PointL
	// DIB is the bitmap of a bitmap preview.
	DIB *DIB
}

// Map converts a logical point to a point inside Fit.
func (p *Preview) Map(pt props.PointL) image.Point {
	w, h := int64(p.Bounds.Width()), int64(p.Bounds.Height())
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	x := int64(p.Fit.Min.X) + (int64(pt.X)-int64(p.Bounds.Left))*int64(p.Fit.Dx())/w
	y := int64(p.Fit.Min.Y) + (int64(pt.Y)-int64(p.Bounds.Top))*int64(p.Fit.Dy())/h
	return image.Pt(int(x), int(y))
}

// Preview returns the preview parameters of a drawing or bitmap record. It
// reports false for records that have no preview.
func (r *Record) Preview(req PreviewRequest) (*Preview, bool) {
	if r.entry == nil || r.entry.preview == nil {
		return nil, false
	}
	return r.entry.preview(r, req)
}

// polyCountsOffset is where aPolyCounts starts in poly-poly records:
// header, rclBounds, nPolys and the point count.
const polyCountsOffset = records.HeaderSize + 16 + 8

// emptyBounds is the marker rectangle writers use when bounds are unknown.
var emptyBounds = props.RectL{Left: 0, Top: 0, Right: -1, Bottom: -1}

// fitRect returns the largest rectangle with the aspect ratio of w:h centred
// inside dst.
func fitRect(dst image.Rectangle, w, h int64) image.Rectangle {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	dw, dh := int64(dst.Dx()), int64(dst.Dy())
	if dw <= 0 || dh <= 0 {
		return image.Rectangle{Min: dst.Min, Max: dst.Min}
	}
	fw, fh := dw, dw*h/w
	if fh > dh {
		fw, fh = dh*w/h, dh
	}
	x := int64(dst.Min.X) + (dw-fw)/2
	y := int64(dst.Min.Y) + (dh-fh)/2
	return image.Rect(int(x), int(y), int(x+fw), int(y+fh))
}

func previewKind(t RecordType) PreviewKind {
	switch t {
	case EMR_POLYGON, EMR_POLYGON16, EMR_POLYPOLYGON, EMR_POLYPOLYGON16:
		return PreviewPolygon
	case EMR_POLYBEZIER, EMR_POLYBEZIER16, EMR_POLYBEZIERTO, EMR_POLYBEZIERTO16:
		return PreviewBezier
	default:
		return PreviewPolyline
	}
}

func previewPolygon(r *Record, req PreviewRequest) (*Preview, bool) {
	if r.view.Check(r.entry.layout) != nil {
		return nil, false
	}
	p := &Preview{Kind: previewKind(r.Type()), Size: r.file.opts.PreviewSize}
	if req.CalcOnly {
		return p, true
	}

	root := props.NewBranch("")
	vals, err := records.Walk(r.view.Reader(), r.entry.layout, r.Size(), root)
	if err != nil {
		return nil, false
	}
	pts := root.Child("aptl")
	if pts == nil {
		pts = root.Child("apts")
	}
	if pts == nil || len(pts.Points) == 0 {
		return nil, false
	}

	// split poly-poly records into their figures
	if n, ok := vals["nPolys"]; ok {
		rest := pts.Points
		for i := 0; i < int(n); i++ {
			c, ok := r.view.U32(polyCountsOffset + i*4)
			if !ok || c == 0 || int64(c) > int64(len(rest)) {
				break
			}
			p.Figures = append(p.Figures, rest[:c])
			rest = rest[c:]
		}
	} else {
		p.Figures = [][]props.PointL{pts.Points}
	}
	if len(p.Figures) == 0 {
		return nil, false
	}

	p.Bounds = root.Child("rclBounds").Rect
	if p.Bounds == emptyBounds {
		p.Bounds = extents(p.Figures)
	}
	p.Fit = fitRect(req.Rect, int64(p.Bounds.Width()), int64(p.Bounds.Height()))
	return p, true
}

// extents returns the smallest rectangle holding every point.
func extents(figs [][]props.PointL) props.RectL {
	first := true
	var b props.RectL
	for _, fig := range figs {
		for _, pt := range fig {
			if first {
				b = props.RectL{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y}
				first = false
				continue
			}
			b.Left = min(b.Left, pt.X)
			b.Top = min(b.Top, pt.Y)
			b.Right = max(b.Right, pt.X)
			b.Bottom = max(b.Bottom, pt.Y)
		}
	}
	return b
}

func previewDIB(r *Record, req PreviewRequest) (*Preview, bool) {
	d, ok := r.DIB()
	if !ok || len(d.Bits) == 0 {
		return nil, false
	}
	p := &Preview{Kind: PreviewBitmap, Size: r.file.opts.PreviewSize, DIB: d}
	if req.CalcOnly {
		return p, true
	}
	h := d.Height
	if h < 0 {
		h = -h
	}
	p.Bounds = props.RectL{Right: d.Width, Bottom: h}
	p.Fit = fitRect(req.Rect, int64(d.Width), int64(h))
	return p, true
}

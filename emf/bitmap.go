package emf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/skdltmxn/emf-go/internal/records"
	"github.com/skdltmxn/emf-go/internal/stream"
	"github.com/skdltmxn/emf-go/props"
)

const (
	bitmapInfoHeaderSize = 40
	bitmapFileHeaderSize = 14
)

// DIB is a device-independent bitmap embedded in a record. Both slices are
// borrowed from the record.
type DIB struct {
	Info []byte // BITMAPINFO: header followed by the colour table
	Bits []byte

	Width       int32
	Height      int32 // negative for top-down bitmaps
	BitCount    uint16
	Compression uint32
}

// dibSource names the offset and size fields locating a bitmap.
type dibSource struct {
	offBmi, cbBmi, offBits, cbBits string
}

var (
	dibSrc   = dibSource{"offBmiSrc", "cbBmiSrc", "offBitsSrc", "cbBitsSrc"}
	dibMask  = dibSource{"offBmiMask", "cbBmiMask", "offBitsMask", "cbBitsMask"}
	dibBrush = dibSource{"offBmi", "cbBmi", "offBits", "cbBits"}
)

// dib locates a bitmap through the decoded field values. Both ranges are
// bounds-checked against the record.
func (r *Record) dib(vals records.Values, src dibSource) (*DIB, bool) {
	offBmi, cbBmi := vals[src.offBmi], vals[src.cbBmi]
	if offBmi == 0 || cbBmi < bitmapInfoHeaderSize {
		return nil, false
	}
	info, ok := r.view.Span(offBmi, cbBmi)
	if !ok {
		return nil, false
	}
	d := &DIB{
		Info:        info,
		Width:       int32(binary.LittleEndian.Uint32(info[4:])),
		Height:      int32(binary.LittleEndian.Uint32(info[8:])),
		BitCount:    binary.LittleEndian.Uint16(info[14:]),
		Compression: binary.LittleEndian.Uint32(info[16:]),
	}
	if offBits, cbBits := vals[src.offBits], vals[src.cbBits]; offBits != 0 && cbBits != 0 {
		d.Bits, _ = r.view.Span(offBits, cbBits)
	}
	return d, true
}

// DIB returns the source bitmap of a bitmap record, or the pattern of a
// brush or extended pen.
func (r *Record) DIB() (*DIB, bool) {
	if r.entry == nil || r.entry.layout == nil {
		return nil, false
	}
	switch r.Category() {
	case CategoryBitmap:
		return r.dib(r.values(r.entry.layout), dibSrc)
	case CategoryObject:
		return r.dib(r.values(r.entry.layout), dibBrush)
	}
	return nil, false
}

// Image decodes the bitmap. The bytes are wrapped in a BMP file header so
// the standard BMP decoder can read them.
func (d *DIB) Image() (image.Image, error) {
	if len(d.Bits) == 0 {
		return nil, fmt.Errorf("emf: bitmap has no pixel data")
	}
	size := bitmapFileHeaderSize + len(d.Info) + len(d.Bits)
	buf := make([]byte, bitmapFileHeaderSize, size)
	buf[0], buf[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(buf[2:], uint32(size))
	binary.LittleEndian.PutUint32(buf[10:], uint32(bitmapFileHeaderSize+len(d.Info)))
	buf = append(buf, d.Info...)
	buf = append(buf, d.Bits...)

	img, err := bmp.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("emf: failed to decode bitmap: %w", err)
	}
	return img, nil
}

// Fit draws the bitmap scaled into rect of dst.
func (d *DIB) Fit(dst draw.Image, rect image.Rectangle) error {
	img, err := d.Image()
	if err != nil {
		return err
	}
	draw.ApproxBiLinear.Scale(dst, rect, img, img.Bounds(), draw.Over, nil)
	return nil
}

// addBitmapInfo decodes the BITMAPINFOHEADER a record points at.
func (r *Record) addBitmapInfo(root *props.Node, name string, vals records.Values, src dibSource) {
	d, ok := r.dib(vals, src)
	if !ok {
		return
	}
	b := root.AddBranch(name)
	if _, err := records.Walk(stream.NewReader(d.Info), layoutBitmapInfoHeader, uint32(len(d.Info)), b); err != nil {
		r.file.log.Debug("bitmap header truncated", "index", r.Index(), "err", err)
	}
}

func buildBitmap(r *Record, root *props.Node) {
	vals := r.walk(root, r.entry.layout)

	if r.Type() == EMR_TRANSPARENTBLT {
		// the raster operation slot holds the transparent colour
		if n := root.Child("dwRop"); n != nil {
			root.Replace("dwRop", &props.Node{
				Name:  "dwRop",
				Kind:  props.Color,
				Raw:   n.Raw,
				Color: props.ColorRef(uint32(n.Raw)),
			})
		}
	}

	r.addBitmapInfo(root, "BMP", vals, dibSrc)
	if _, ok := vals["offBmiMask"]; ok {
		r.addBitmapInfo(root, "BMP Mask", vals, dibMask)
	}
}

func buildPatternBrush(r *Record, root *props.Node) {
	vals := r.walk(root, r.entry.layout)
	r.addBitmapInfo(root, "BMP", vals, dibBrush)
}

package emf

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/skdltmxn/emf-go/enums"
	"github.com/skdltmxn/emf-go/internal/records"
	"github.com/skdltmxn/emf-go/internal/stream"
	"github.com/skdltmxn/emf-go/props"
)

const (
	// emrTextOffset is where EMRTEXT starts in single-string text records:
	// header, rclBounds, iGraphicsMode, exScale and eyScale.
	emrTextOffset = records.HeaderSize + 16 + 12
	emrTextSize   = 40

	// polyTextOffset is where the EMRTEXT array starts in POLYTEXTOUT.
	polyTextOffset = emrTextOffset + 4

	smallTextFixed = records.HeaderSize + 28
)

var layoutSmallTextOut = &records.Layout{Name: "EMRSMALLTEXTOUT", Fields: []records.Field{
	records.F("x", records.I32),
	records.F("y", records.I32),
	records.F("cChars", records.U32),
	records.E("fuOptions", enums.ExtTextOutOptions),
	records.E("iGraphicsMode", enums.GraphicsMode),
	records.F("exScale", records.F32),
	records.F("eyScale", records.F32),
}}

// decodedText is the string or glyph run of one text output.
type decodedText struct {
	text    string
	glyphs  []uint16
	dx      []int32
	options uint32
}

func (t decodedText) isGlyphs() bool { return t.options&enums.ETO_GLYPH_INDEX != 0 }

// emrText decodes the EMRTEXT structure at base. Offsets inside it are
// relative to the record start.
func (r *Record) emrText(base int) (decodedText, bool) {
	nChars, ok1 := r.view.U32(base + 8)
	offString, ok2 := r.view.U32(base + 12)
	options, ok3 := r.view.U32(base + 16)
	offDx, ok4 := r.view.U32(base + 36)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return decodedText{}, false
	}
	if nChars > r.Size() {
		return decodedText{}, false
	}

	t := decodedText{options: options}
	ok := r.decodeChars(&t, offString, nChars, r.ansi())

	if offDx != 0 {
		n := nChars
		if options&enums.ETO_PDY != 0 {
			n *= 2
		}
		if b, ok := r.view.Span(offDx, n*4); ok {
			t.dx = make([]int32, n)
			for i := range t.dx {
				t.dx[i] = int32(binary.LittleEndian.Uint32(b[i*4:]))
			}
		}
	}
	return t, ok
}

// decodeChars reads n characters or glyph indices at off into t.
func (r *Record) decodeChars(t *decodedText, off, n uint32, ansi bool) bool {
	switch {
	case t.options&enums.ETO_GLYPH_INDEX != 0:
		b, ok := r.view.Span(off, n*2)
		if !ok {
			return false
		}
		t.glyphs = make([]uint16, n)
		for i := range t.glyphs {
			t.glyphs[i] = binary.LittleEndian.Uint16(b[i*2:])
		}
	case ansi:
		b, ok := r.view.Span(off, n)
		if !ok {
			return false
		}
		t.text = stream.DecodeANSI(b, enums.Encoding(r.charset))
	default:
		b, ok := r.view.Span(off, n*2)
		if !ok {
			return false
		}
		t.text = stream.DecodeUTF16(b)
	}
	return true
}

// polyTexts decodes every EMRTEXT of a POLYTEXTOUT record that fits.
func (r *Record) polyTexts() []decodedText {
	n, ok := r.view.U32(emrTextOffset)
	if !ok {
		return nil
	}
	limit := (int(r.Size()) - polyTextOffset) / emrTextSize
	if int64(n) > int64(limit) {
		n = uint32(max(limit, 0))
	}
	texts := make([]decodedText, 0, n)
	for i := 0; i < int(n); i++ {
		t, ok := r.emrText(polyTextOffset + i*emrTextSize)
		if !ok {
			break
		}
		texts = append(texts, t)
	}
	return texts
}

func joinTexts(texts []decodedText) string {
	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		if !t.isGlyphs() {
			parts = append(parts, t.text)
		}
	}
	return strings.Join(parts, " ")
}

// smallText decodes the text of a SMALLTEXTOUT record. The bounds rectangle
// is present unless ETO_NO_RECT is set; the characters are 8-bit when
// ETO_SMALL_CHARS is set and UTF-16 otherwise.
func (r *Record) smallText() (decodedText, bool) {
	n, ok1 := r.view.U32(records.HeaderSize + 8)
	options, ok2 := r.view.U32(records.HeaderSize + 12)
	if !ok1 || !ok2 || n > r.Size() {
		return decodedText{}, false
	}
	off := uint32(smallTextFixed)
	if options&enums.ETO_NO_RECT == 0 {
		off += 16
	}
	t := decodedText{options: options}
	ok := r.decodeChars(&t, off, n, options&enums.ETO_SMALL_CHARS != 0)
	return t, ok
}

func addText(n *props.Node, t decodedText) {
	if t.isGlyphs() {
		items := make([]string, len(t.glyphs))
		for i, g := range t.glyphs {
			items[i] = strconv.Itoa(int(g))
		}
		n.AddArray("Glyphs", items)
	} else {
		n.AddText("Text", t.text)
	}
	if len(t.dx) > 0 {
		items := make([]string, len(t.dx))
		for i, d := range t.dx {
			items[i] = strconv.Itoa(int(d))
		}
		n.AddArray("Dx", items)
	}
}

func buildExtTextOut(r *Record, root *props.Node) {
	r.walk(root, layoutExtTextOut)
	if r.ansi() {
		root.AddValue("Charset", int64(r.charset), enums.Charset.Format(uint32(r.charset)))
	}
	if t, ok := r.emrText(emrTextOffset); ok {
		addText(root, t)
	}
}

func buildPolyTextOut(r *Record, root *props.Node) {
	r.walk(root, layoutPolyTextOut)
	if r.ansi() {
		root.AddValue("Charset", int64(r.charset), enums.Charset.Format(uint32(r.charset)))
	}

	texts := r.polyTexts()
	for i, t := range texts {
		b := root.AddBranch(fmt.Sprintf("aemrtext[%d]", i))
		rd := r.view.Reader()
		if err := rd.SetOffset(polyTextOffset + i*emrTextSize); err != nil {
			break
		}
		if _, err := records.Walk(rd, layoutEmrText, r.Size(), b); err != nil {
			break
		}
		addText(b, t)
	}
	if len(texts) > 0 {
		root.AddText("Text", joinTexts(texts))
	}
}

func buildSmallTextOut(r *Record, root *props.Node) {
	r.walk(root, layoutSmallTextOut)

	options, ok := r.view.U32(records.HeaderSize + 12)
	if !ok {
		return
	}
	if options&enums.ETO_NO_RECT == 0 {
		rd := r.view.Reader()
		if rd.SetOffset(smallTextFixed) == nil {
			if rect, err := records.ReadRect(rd); err == nil {
				root.AddRect("rclBounds", rect)
			}
		}
	}
	if t, ok := r.smallText(); ok {
		addText(root, t)
	}
}

package emf

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/skdltmxn/emf-go/internal/records"
	"github.com/skdltmxn/emf-go/props"
)

// Record is one record of the stream. The payload is borrowed from the
// file buffer. Links are fixed by the scan; the property tree is built on
// first request and cached.
type Record struct {
	file  *File
	view  records.View
	entry *entry

	links     []Link
	referrers []Link

	stock   string // stock object named by a select
	charset uint8  // charset of the font selected when an 8-bit text record was scanned

	propsOnce sync.Once
	props     *props.Node
}

// Index returns the position of the record in the stream.
func (r *Record) Index() int { return r.view.Index }

// Type returns the record type.
func (r *Record) Type() RecordType { return RecordType(r.view.Type) }

// Name returns the record type name.
func (r *Record) Name() string { return r.Type().String() }

// Category returns the record category.
func (r *Record) Category() Category {
	if r.entry == nil {
		return CategoryUnknown
	}
	return r.entry.cat
}

// Offset returns the byte offset of the record in the stream.
func (r *Record) Offset() int64 { return int64(r.view.Offset) }

// Size returns the declared record size, header included.
func (r *Record) Size() uint32 { return r.view.Size }

// Bytes returns the record bytes, header included.
func (r *Record) Bytes() []byte { return r.view.Bytes() }

// Data returns the record payload after the 8-byte header.
func (r *Record) Data() []byte { return r.view.Bytes()[min(records.HeaderSize, len(r.view.Bytes())):] }

// Links returns the references from this record to earlier records.
func (r *Record) Links() []Link { return r.links }

// Referrers returns the references from later records to this one.
func (r *Record) Referrers() []Link { return r.referrers }

// StockObject returns the stock object selected by this record.
func (r *Record) StockObject() (string, bool) {
	return r.stock, r.stock != ""
}

// Properties returns the property tree of the record. The tree is built on
// the first call; later calls return the same tree.
func (r *Record) Properties() *props.Node {
	r.propsOnce.Do(func() {
		r.props = r.buildProperties()
	})
	return r.props
}

func (r *Record) buildProperties() *props.Node {
	t := r.Type()
	root := props.NewBranch(t.String())
	root.AddValue("iType", int64(t), fmt.Sprintf("%d  EMR_%s", uint32(t), t))
	root.AddUint("nSize", r.view.Size)

	e := r.entry
	switch {
	case e == nil:
	case e.build != nil:
		e.build(r, root)
	case e.layout != nil:
		r.walk(root, e.layout)
	}
	return root
}

// walk decodes the record body through l into root. A truncated body keeps
// whatever was decoded before the first field that did not fit.
func (r *Record) walk(root *props.Node, l *records.Layout) records.Values {
	vals, err := records.Walk(r.view.Reader(), l, r.view.Size, root)
	if err != nil {
		r.file.log.Debug("record truncated",
			"index", r.Index(), "offset", r.Offset(), "type", r.Name(), "err", err)
	}
	return vals
}

// values decodes l without keeping the tree.
func (r *Record) values(l *records.Layout) records.Values {
	vals, _ := records.Walk(r.view.Reader(), l, r.view.Size, props.NewBranch(""))
	return vals
}

// Color returns the colour a record carries: the pen, brush or extended pen
// colour of creation records and the colour set by text and background
// colour records.
func (r *Record) Color() (color.NRGBA, bool) {
	var off int
	switch r.Type() {
	case EMR_CREATEPEN:
		off = 24
	case EMR_CREATEBRUSHINDIRECT:
		off = 16
	case EMR_EXTCREATEPEN:
		off = 40
	case EMR_SETTEXTCOLOR, EMR_SETBKCOLOR:
		off = 8
	default:
		return color.NRGBA{}, false
	}
	v, ok := r.view.U32(off)
	if !ok {
		return color.NRGBA{}, false
	}
	return props.ColorRef(v), true
}

// Text returns the decoded string of a text output record.
func (r *Record) Text() (string, bool) {
	switch r.Type() {
	case EMR_EXTTEXTOUTA, EMR_EXTTEXTOUTW:
		t, ok := r.emrText(emrTextOffset)
		return t.text, ok && !t.isGlyphs()
	case EMR_POLYTEXTOUTA, EMR_POLYTEXTOUTW:
		texts := r.polyTexts()
		return joinTexts(texts), len(texts) > 0
	case EMR_SMALLTEXTOUT:
		t, ok := r.smallText()
		return t.text, ok && !t.isGlyphs()
	}
	return "", false
}

// ansi reports whether the record stores 8-bit text.
func (r *Record) ansi() bool {
	switch r.Type() {
	case EMR_EXTTEXTOUTA, EMR_POLYTEXTOUTA:
		return true
	}
	return false
}

func (r *Record) String() string {
	return fmt.Sprintf("#%d %s (%s) @0x%x size %d", r.Index(), r.Name(), r.Category(), r.Offset(), r.Size())
}


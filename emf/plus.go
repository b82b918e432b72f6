package emf

import (
	"fmt"

	"github.com/skdltmxn/emf-go/enums"
	"github.com/skdltmxn/emf-go/internal/emfplus"
	"github.com/skdltmxn/emf-go/internal/records"
	"github.com/skdltmxn/emf-go/internal/stream"
	"github.com/skdltmxn/emf-go/props"
)

// EMF+ object types carried by Object records.
const (
	plusObjectBrush          = 1
	plusObjectPen            = 2
	plusObjectPath           = 3
	plusObjectRegion         = 4
	plusObjectImage          = 5
	plusObjectFont           = 6
	plusObjectStringFormat   = 7
	plusObjectCustomLineCap  = 9
	plusImageBitmap          = 1
	plusImageMetafile        = 2
	plusBrushSolid           = 0
	plusBrushHatch           = 1
	plusPenDataDashedLine    = 0x0100
	plusPenDataDashedLineCap = 0x0040
)

var (
	layoutPlusBrush = &records.Layout{Name: "EmfPlusBrush", Fields: []records.Field{
		records.F("Version", records.Hex),
		records.E("Type", enums.PlusBrushType),
	}}

	layoutPlusHatch = &records.Layout{Name: "EmfPlusHatchBrushData", Fields: []records.Field{
		records.E("HatchStyle", enums.PlusHatchStyle),
	}}

	layoutPlusPen = &records.Layout{Name: "EmfPlusPen", Fields: []records.Field{
		records.F("Version", records.Hex),
		records.F("Type", records.U32),
		records.F("PenDataFlags", records.Hex),
		records.E("PenUnit", enums.PlusUnitType),
		records.F("PenWidth", records.F32),
	}}

	layoutPlusPath = &records.Layout{Name: "EmfPlusPath", Fields: []records.Field{
		records.F("Version", records.Hex),
		records.F("PathPointCount", records.U32),
		records.F("PathPointFlags", records.Hex),
	}}

	layoutPlusRegion = &records.Layout{Name: "EmfPlusRegion", Fields: []records.Field{
		records.F("Version", records.Hex),
		records.F("RegionNodeCount", records.U32),
		records.E("RegionNode", enums.PlusRegionNodeType),
	}}

	layoutPlusImage = &records.Layout{Name: "EmfPlusImage", Fields: []records.Field{
		records.F("Version", records.Hex),
		records.E("Type", enums.PlusImageDataType),
	}}

	layoutPlusBitmap = &records.Layout{Name: "EmfPlusBitmap", Fields: []records.Field{
		records.F("Width", records.I32),
		records.F("Height", records.I32),
		records.F("Stride", records.I32),
		records.E("PixelFormat", enums.PlusPixelFormat),
		records.E("Type", enums.PlusBitmapDataType),
	}}

	layoutPlusMetafile = &records.Layout{Name: "EmfPlusMetafile", Fields: []records.Field{
		records.E("Type", enums.PlusMetafileType),
		records.F("MetafileDataSize", records.U32),
	}}

	layoutPlusFont = &records.Layout{Name: "EmfPlusFont", Fields: []records.Field{
		records.F("Version", records.Hex),
		records.F("EmSize", records.F32),
		records.E("SizeUnit", enums.PlusUnitType),
		records.F("FontStyleFlags", records.Hex),
		records.F("Reserved", records.U32),
		records.F("Length", records.U32),
	}}

	layoutPlusStringFormat = &records.Layout{Name: "EmfPlusStringFormat", Fields: []records.Field{
		records.F("Version", records.Hex),
		records.F("StringFormatFlags", records.Hex),
		records.F("Language", records.Hex),
		records.E("StringAlignment", enums.PlusStringAlignment),
		records.E("LineAlign", enums.PlusStringAlignment),
		records.E("DigitSubstitution", enums.PlusDigitSubstitution),
		records.F("DigitLanguage", records.Hex),
		records.F("FirstTabOffset", records.F32),
		records.E("HotkeyPrefix", enums.PlusHotkeyPrefix),
		records.F("LeadingMargin", records.F32),
		records.F("TrailingMargin", records.F32),
		records.F("Tracking", records.F32),
		records.E("Trimming", enums.PlusStringTrimming),
		records.F("TabStopCount", records.I32),
		records.F("RangeCount", records.I32),
	}}

	layoutPlusCustomLineCap = &records.Layout{Name: "EmfPlusCustomLineCap", Fields: []records.Field{
		records.F("Version", records.Hex),
		records.E("Type", enums.PlusCustomLineCapData),
	}}
)

// penOptional lists the optional pen fields in stream order with the
// PenDataFlags bit that enables each.
var penOptional = []struct {
	bit   uint32
	field records.Field
}{
	{0x0001, records.F("TransformMatrix", records.XForm)},
	{0x0002, records.E("StartCap", enums.PlusLineCap)},
	{0x0004, records.E("EndCap", enums.PlusLineCap)},
	{0x0008, records.E("Join", enums.PlusLineJoin)},
	{0x0010, records.F("MiterLimit", records.F32)},
	{0x0020, records.E("LineStyle", enums.PlusLineStyle)},
	{plusPenDataDashedLineCap, records.E("DashedLineCapType", enums.PlusDashedLineCap)},
	{0x0080, records.F("DashOffset", records.F32)},
	{plusPenDataDashedLine, records.F("DashedLineDataSize", records.U32)},
	{0x0200, records.E("PenAlignment", enums.PlusPenAlignment)},
}

// buildPlusRecords lists the EMF+ records carried by a comment.
func buildPlusRecords(r *Record, root *props.Node, payload []byte) {
	list := root.AddBranch("EMF+ Records")
	it := emfplus.NewIterator(payload)
	for {
		rec, err := it.Next()
		if err != nil {
			break
		}
		b := list.AddBranch(plusRecordName(rec.Type))
		b.AddValue("Type", int64(rec.Type), enums.PlusRecordType.Format(uint32(rec.Type)))
		b.AddValue("Flags", int64(rec.Flags), fmt.Sprintf("0x%04X", rec.Flags))
		b.AddUint("Size", rec.Size)
		b.AddUint("DataSize", rec.DataSize)

		switch rec.Type {
		case emfplus.TypeHeader:
			if h, err := emfplus.ParseHeader(rec); err == nil {
				buildPlusHeader(b.AddBranch("Header"), h)
			}
		case emfplus.TypeObject:
			buildPlusObject(r, b, rec)
		}
	}
}

func buildPlusObject(r *Record, n *props.Node, rec emfplus.Record) {
	typ := rec.ObjectType()
	n.AddValue("ObjectType", int64(typ), enums.PlusObjectType.Format(typ))
	n.AddUint("ObjectID", rec.ObjectID())
	if rec.Continued() {
		// continuation records carry a total size before the object data
		n.AddText("Continued", "yes")
		return
	}

	rd := stream.NewReader(rec.Data)
	size := uint32(len(rec.Data))
	obj := n.AddBranch("Object")
	walk := func(l *records.Layout) records.Values {
		vals, err := records.Walk(rd, l, size, obj)
		if err != nil {
			r.file.log.Debug("EMF+ object truncated", "index", r.Index(), "object", typ, "err", err)
		}
		return vals
	}

	switch typ {
	case plusObjectBrush:
		vals := walk(layoutPlusBrush)
		switch vals["Type"] {
		case plusBrushSolid:
			if v, err := rd.ReadU32(); err == nil {
				obj.AddColor("SolidColor", props.ARGB(v))
			}
		case plusBrushHatch:
			walk(layoutPlusHatch)
			for _, name := range []string{"ForeColor", "BackColor"} {
				if v, err := rd.ReadU32(); err == nil {
					obj.AddColor(name, props.ARGB(v))
				}
			}
		}
	case plusObjectPen:
		vals := walk(layoutPlusPen)
		if _, ok := vals["PenWidth"]; ok {
			buildPlusPenOptional(rd, obj, vals["PenDataFlags"])
		}
	case plusObjectPath:
		walk(layoutPlusPath)
	case plusObjectRegion:
		walk(layoutPlusRegion)
	case plusObjectImage:
		vals := walk(layoutPlusImage)
		switch vals["Type"] {
		case plusImageBitmap:
			walk(layoutPlusBitmap)
		case plusImageMetafile:
			walk(layoutPlusMetafile)
		}
	case plusObjectFont:
		vals := walk(layoutPlusFont)
		if n := vals["Length"]; n > 0 && int(n) <= rd.Remaining()/2 {
			if s, err := rd.ReadUTF16(int(n)); err == nil {
				obj.AddText("FamilyName", s)
			}
		}
	case plusObjectStringFormat:
		walk(layoutPlusStringFormat)
	case plusObjectCustomLineCap:
		walk(layoutPlusCustomLineCap)
	}
}

// buildPlusPenOptional decodes the optional pen fields selected by flags.
// It stops at the first field it cannot represent.
func buildPlusPenOptional(rd *stream.Reader, n *props.Node, flags uint32) {
	for _, opt := range penOptional {
		if flags&opt.bit == 0 {
			continue
		}
		l := &records.Layout{Name: opt.field.Name, Fields: []records.Field{opt.field}}
		vals, err := records.Walk(rd, l, uint32(rd.Len()), n)
		if err != nil {
			return
		}
		if opt.bit == plusPenDataDashedLine {
			count := vals["DashedLineDataSize"]
			if int(count) > rd.Remaining()/4 {
				return
			}
			items := make([]string, count)
			for i := range items {
				v, _ := rd.ReadFloat32()
				items[i] = fmt.Sprintf("%g", v)
			}
			n.AddArray("DashedLineData", items)
		}
	}
}

package emf

import (
	"slices"

	"github.com/skdltmxn/emf-go/internal/records"
	"github.com/skdltmxn/emf-go/props"
)

// entry is the catalog description of one record type.
type entry struct {
	name   string
	cat    Category
	layout *records.Layout

	// build replaces the generic layout walk when set.
	build func(r *Record, root *props.Node)
	// scan runs in stream order during the forward pass.
	scan func(s *scanner, r *Record)
	// preview extracts drawable parameters.
	preview func(r *Record, req PreviewRequest) (*Preview, bool)
}

// catalog is filled in init because RecordType.String reads it and several
// builders refer back to record types.
var catalog map[RecordType]*entry

func def(t RecordType, name string, cat Category, l *records.Layout) *entry {
	e := &entry{name: name, cat: cat, layout: l}
	catalog[t] = e
	return e
}

func init() {
	catalog = make(map[RecordType]*entry, 128)

	// control
	e := def(EMR_HEADER, "HEADER", CategoryControl, nil)
	e.build = buildHeader
	def(EMR_EOF, "EOF", CategoryControl, layoutEOF).build = buildEOF
	e = def(EMR_GDICOMMENT, "GDICOMMENT", CategoryControl, nil)
	e.build = buildComment
	e.scan = scanComment
	def(EMR_DRAWESCAPE, "DRAWESCAPE", CategoryControl, layoutEscape)
	def(EMR_EXTESCAPE, "EXTESCAPE", CategoryControl, layoutEscape)
	def(EMR_NAMEDESCAPE, "NAMEDESCAPE", CategoryControl, layoutNamedEscape)

	// polygons
	for _, p := range []struct {
		t    RecordType
		name string
		l    *records.Layout
	}{
		{EMR_POLYBEZIER, "POLYBEZIER", layoutPoly},
		{EMR_POLYGON, "POLYGON", layoutPoly},
		{EMR_POLYLINE, "POLYLINE", layoutPoly},
		{EMR_POLYBEZIERTO, "POLYBEZIERTO", layoutPoly},
		{EMR_POLYLINETO, "POLYLINETO", layoutPoly},
		{EMR_POLYPOLYLINE, "POLYPOLYLINE", layoutPolyPoly},
		{EMR_POLYPOLYGON, "POLYPOLYGON", layoutPolyPoly},
		{EMR_POLYBEZIER16, "POLYBEZIER16", layoutPoly16},
		{EMR_POLYGON16, "POLYGON16", layoutPoly16},
		{EMR_POLYLINE16, "POLYLINE16", layoutPoly16},
		{EMR_POLYBEZIERTO16, "POLYBEZIERTO16", layoutPoly16},
		{EMR_POLYLINETO16, "POLYLINETO16", layoutPoly16},
		{EMR_POLYPOLYLINE16, "POLYPOLYLINE16", layoutPolyPoly16},
		{EMR_POLYPOLYGON16, "POLYPOLYGON16", layoutPolyPoly16},
	} {
		def(p.t, p.name, CategoryDrawing, p.l).preview = previewPolygon
	}
	def(EMR_POLYDRAW, "POLYDRAW", CategoryDrawing, layoutPolyDraw)
	def(EMR_POLYDRAW16, "POLYDRAW16", CategoryDrawing, layoutPolyDraw16)

	// state
	def(EMR_SETWINDOWEXTEX, "SETWINDOWEXTEX", CategoryState, layoutExtent)
	def(EMR_SETWINDOWORGEX, "SETWINDOWORGEX", CategoryState, layoutOrigin)
	def(EMR_SETVIEWPORTEXTEX, "SETVIEWPORTEXTEX", CategoryState, layoutExtent)
	def(EMR_SETVIEWPORTORGEX, "SETVIEWPORTORGEX", CategoryState, layoutOrigin)
	def(EMR_SETBRUSHORGEX, "SETBRUSHORGEX", CategoryState, layoutOrigin)
	def(EMR_SETMAPPERFLAGS, "SETMAPPERFLAGS", CategoryState, layoutMapperFlags)
	def(EMR_SETMAPMODE, "SETMAPMODE", CategoryState, layoutMapMode)
	def(EMR_SETBKMODE, "SETBKMODE", CategoryState, layoutBkMode)
	def(EMR_SETPOLYFILLMODE, "SETPOLYFILLMODE", CategoryState, layoutPolyFill)
	def(EMR_SETROP2, "SETROP2", CategoryState, layoutROP2)
	def(EMR_SETSTRETCHBLTMODE, "SETSTRETCHBLTMODE", CategoryState, layoutStretchMode)
	def(EMR_SETTEXTALIGN, "SETTEXTALIGN", CategoryState, layoutTextAlign)
	def(EMR_SETCOLORADJUSTMENT, "SETCOLORADJUSTMENT", CategoryState, layoutColorAdj)
	def(EMR_SETTEXTCOLOR, "SETTEXTCOLOR", CategoryState, layoutSetColor)
	def(EMR_SETBKCOLOR, "SETBKCOLOR", CategoryState, layoutSetColor)
	def(EMR_MOVETOEX, "MOVETOEX", CategoryState, layoutPoint)
	def(EMR_SCALEVIEWPORTEXTEX, "SCALEVIEWPORTEXTEX", CategoryState, layoutScaleExt)
	def(EMR_SCALEWINDOWEXTEX, "SCALEWINDOWEXTEX", CategoryState, layoutScaleExt)
	def(EMR_SAVEDC, "SAVEDC", CategoryState, layoutEmpty).scan = scanSaveDC
	def(EMR_RESTOREDC, "RESTOREDC", CategoryState, layoutRestoreDC).scan = scanRestoreDC
	def(EMR_SETARCDIRECTION, "SETARCDIRECTION", CategoryState, layoutArcDir)
	def(EMR_SETMITERLIMIT, "SETMITERLIMIT", CategoryState, layoutMiterLimit)
	def(EMR_SETICMMODE, "SETICMMODE", CategoryState, layoutICMMode)
	def(EMR_PIXELFORMAT, "PIXELFORMAT", CategoryState, layoutPixelFormatRec)
	def(EMR_FORCEUFIMAPPING, "FORCEUFIMAPPING", CategoryState, layoutForceUFI)
	def(EMR_SETICMPROFILEA, "SETICMPROFILEA", CategoryState, layoutICMProfile)
	def(EMR_SETICMPROFILEW, "SETICMPROFILEW", CategoryState, layoutICMProfile)
	def(EMR_SETLAYOUT, "SETLAYOUT", CategoryState, layoutSetLayout)
	def(EMR_SETLINKEDUFIS, "SETLINKEDUFIS", CategoryState, layoutLinkedUFIs)
	def(EMR_SETTEXTJUSTIFICATION, "SETTEXTJUSTIFICATION", CategoryState, layoutTextJustification)
	def(EMR_COLORMATCHTOTARGETW, "COLORMATCHTOTARGETW", CategoryState, layoutColorMatchToTarget)

	// clipping
	def(EMR_OFFSETCLIPRGN, "OFFSETCLIPRGN", CategoryClipping, layoutOffset)
	def(EMR_SETMETARGN, "SETMETARGN", CategoryClipping, layoutEmpty)
	def(EMR_EXCLUDECLIPRECT, "EXCLUDECLIPRECT", CategoryClipping, layoutClipRect)
	def(EMR_INTERSECTCLIPRECT, "INTERSECTCLIPRECT", CategoryClipping, layoutClipRect)
	def(EMR_SELECTCLIPPATH, "SELECTCLIPPATH", CategoryClipping, layoutClipPath)
	def(EMR_EXTSELECTCLIPRGN, "EXTSELECTCLIPRGN", CategoryClipping, layoutExtSelectClipRgn)

	// transform
	def(EMR_SETWORLDTRANSFORM, "SETWORLDTRANSFORM", CategoryTransform, layoutSetXForm)
	def(EMR_MODIFYWORLDTRANSFORM, "MODIFYWORLDTRANSFORM", CategoryTransform, layoutModifyXForm)

	// object creation
	def(EMR_CREATEPEN, "CREATEPEN", CategoryObject, layoutCreatePen).scan = scanCreate
	e = def(EMR_CREATEBRUSHINDIRECT, "CREATEBRUSHINDIRECT", CategoryObject, layoutCreateBrush)
	e.build = buildBrush
	e.scan = scanCreate
	def(EMR_CREATEPALETTE, "CREATEPALETTE", CategoryObject, layoutCreatePalette).scan = scanCreate
	e = def(EMR_EXTCREATEFONTINDIRECTW, "EXTCREATEFONTINDIRECTW", CategoryObject, nil)
	e.build = buildFont
	e.scan = scanCreate
	e = def(EMR_CREATEMONOBRUSH, "CREATEMONOBRUSH", CategoryObject, layoutCreateBrushDIB)
	e.build = buildPatternBrush
	e.scan = scanCreate
	e.preview = previewDIB
	e = def(EMR_CREATEDIBPATTERNBRUSHPT, "CREATEDIBPATTERNBRUSHPT", CategoryObject, layoutCreateBrushDIB)
	e.build = buildPatternBrush
	e.scan = scanCreate
	e.preview = previewDIB
	e = def(EMR_EXTCREATEPEN, "EXTCREATEPEN", CategoryObject, layoutExtCreatePen)
	e.build = buildExtPen
	e.scan = scanCreate
	def(EMR_CREATECOLORSPACE, "CREATECOLORSPACE", CategoryObject, layoutCreateColorSpace).scan = scanCreate
	def(EMR_CREATECOLORSPACEW, "CREATECOLORSPACEW", CategoryObject, layoutCreateColorSpaceW).scan = scanCreate

	// object manipulation
	def(EMR_SELECTOBJECT, "SELECTOBJECT", CategoryObjManipulation, layoutObject).scan = scanSelectObject
	def(EMR_DELETEOBJECT, "DELETEOBJECT", CategoryObjManipulation, layoutObject).scan = scanDeleteObject
	def(EMR_SELECTPALETTE, "SELECTPALETTE", CategoryObjManipulation, layoutSelectPalette).scan = scanUse(KindPalette)
	def(EMR_SETPALETTEENTRIES, "SETPALETTEENTRIES", CategoryObjManipulation, layoutSetPaletteEntries).scan = scanUse(KindPalette)
	def(EMR_RESIZEPALETTE, "RESIZEPALETTE", CategoryObjManipulation, layoutResizePalette).scan = scanUse(KindPalette)
	def(EMR_REALIZEPALETTE, "REALIZEPALETTE", CategoryObjManipulation, layoutEmpty)
	def(EMR_COLORCORRECTPALETTE, "COLORCORRECTPALETTE", CategoryObjManipulation, layoutColorCorrectPalette).scan = scanUse(KindPalette)
	def(EMR_SETCOLORSPACE, "SETCOLORSPACE", CategoryObjManipulation, layoutColorSpace).scan = scanUse(KindColorSpace)
	def(EMR_DELETECOLORSPACE, "DELETECOLORSPACE", CategoryObjManipulation, layoutColorSpace).scan = scanDeleteColorSpace

	// drawing
	def(EMR_SETPIXELV, "SETPIXELV", CategoryDrawing, layoutSetPixelV)
	def(EMR_ANGLEARC, "ANGLEARC", CategoryDrawing, layoutAngleArc)
	def(EMR_ELLIPSE, "ELLIPSE", CategoryDrawing, layoutBox)
	def(EMR_RECTANGLE, "RECTANGLE", CategoryDrawing, layoutBox)
	def(EMR_ROUNDRECT, "ROUNDRECT", CategoryDrawing, layoutRoundRect)
	def(EMR_ARC, "ARC", CategoryDrawing, layoutArc)
	def(EMR_CHORD, "CHORD", CategoryDrawing, layoutArc)
	def(EMR_PIE, "PIE", CategoryDrawing, layoutArc)
	def(EMR_ARCTO, "ARCTO", CategoryDrawing, layoutArc)
	def(EMR_EXTFLOODFILL, "EXTFLOODFILL", CategoryDrawing, layoutFloodFill)
	def(EMR_LINETO, "LINETO", CategoryDrawing, layoutPoint)
	def(EMR_BEGINPATH, "BEGINPATH", CategoryDrawing, layoutEmpty)
	def(EMR_ENDPATH, "ENDPATH", CategoryDrawing, layoutEmpty)
	def(EMR_CLOSEFIGURE, "CLOSEFIGURE", CategoryDrawing, layoutEmpty)
	def(EMR_FILLPATH, "FILLPATH", CategoryDrawing, layoutBounds)
	def(EMR_STROKEANDFILLPATH, "STROKEANDFILLPATH", CategoryDrawing, layoutBounds)
	def(EMR_STROKEPATH, "STROKEPATH", CategoryDrawing, layoutBounds)
	def(EMR_FLATTENPATH, "FLATTENPATH", CategoryDrawing, layoutEmpty)
	def(EMR_WIDENPATH, "WIDENPATH", CategoryDrawing, layoutEmpty)
	def(EMR_ABORTPATH, "ABORTPATH", CategoryDrawing, layoutEmpty)
	def(EMR_FILLRGN, "FILLRGN", CategoryDrawing, layoutFillRgn).scan = scanRegionBrush
	def(EMR_FRAMERGN, "FRAMERGN", CategoryDrawing, layoutFrameRgn).scan = scanRegionBrush
	def(EMR_INVERTRGN, "INVERTRGN", CategoryDrawing, layoutInvertRgn)
	def(EMR_PAINTRGN, "PAINTRGN", CategoryDrawing, layoutInvertRgn)
	e = def(EMR_EXTTEXTOUTA, "EXTTEXTOUTA", CategoryDrawing, layoutExtTextOut)
	e.build = buildExtTextOut
	e.scan = scanText
	e = def(EMR_EXTTEXTOUTW, "EXTTEXTOUTW", CategoryDrawing, layoutExtTextOut)
	e.build = buildExtTextOut
	e = def(EMR_POLYTEXTOUTA, "POLYTEXTOUTA", CategoryDrawing, layoutPolyTextOut)
	e.build = buildPolyTextOut
	e.scan = scanText
	def(EMR_POLYTEXTOUTW, "POLYTEXTOUTW", CategoryDrawing, layoutPolyTextOut).build = buildPolyTextOut
	e = def(EMR_SMALLTEXTOUT, "SMALLTEXTOUT", CategoryDrawing, nil)
	e.build = buildSmallTextOut
	e.scan = scanText
	def(EMR_GRADIENTFILL, "GRADIENTFILL", CategoryDrawing, layoutGradientFill).build = buildGradientFill
	def(EMR_GLSRECORD, "GLSRECORD", CategoryDrawing, layoutGLSRecord)
	def(EMR_GLSBOUNDEDRECORD, "GLSBOUNDEDRECORD", CategoryDrawing, layoutGLSBoundedRecord)

	// bitmaps
	for _, b := range []struct {
		t    RecordType
		name string
		l    *records.Layout
	}{
		{EMR_BITBLT, "BITBLT", layoutBitBlt},
		{EMR_STRETCHBLT, "STRETCHBLT", layoutStretchBlt},
		{EMR_MASKBLT, "MASKBLT", layoutMaskBlt},
		{EMR_PLGBLT, "PLGBLT", layoutPlgBlt},
		{EMR_SETDIBITSTODEVICE, "SETDIBITSTODEVICE", layoutSetDIBits},
		{EMR_STRETCHDIBITS, "STRETCHDIBITS", layoutStretchDIBits},
		{EMR_ALPHABLEND, "ALPHABLEND", layoutAlphaBlend},
		{EMR_TRANSPARENTBLT, "TRANSPARENTBLT", layoutTransparentBlt},
	} {
		e := def(b.t, b.name, CategoryBitmap, b.l)
		e.build = buildBitmap
		e.preview = previewDIB
	}
}

// lookup returns the catalog entry for t.
func lookup(t RecordType) (*entry, bool) {
	e, ok := catalog[t]
	return e, ok
}

// Types returns every record type the catalog knows, in ascending order.
func Types() []RecordType {
	types := make([]RecordType, 0, len(catalog))
	for t := range catalog {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Category returns the category of a record type.
func (t RecordType) Category() Category {
	if e, ok := catalog[t]; ok {
		return e.cat
	}
	return CategoryUnknown
}

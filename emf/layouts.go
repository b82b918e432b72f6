package emf

import (
	"github.com/skdltmxn/emf-go/enums"
	"github.com/skdltmxn/emf-go/internal/records"
)

// Nested structures.
var (
	layoutColorAdjustment = &records.Layout{Name: "COLORADJUSTMENT", Fields: []records.Field{
		records.F("caSize", records.U16),
		records.F("caFlags", records.U16),
		records.F("caIlluminantIndex", records.U16),
		records.F("caRedGamma", records.U16),
		records.F("caGreenGamma", records.U16),
		records.F("caBlueGamma", records.U16),
		records.F("caReferenceBlack", records.U16),
		records.F("caReferenceWhite", records.U16),
		records.F("caContrast", records.I16),
		records.F("caBrightness", records.I16),
		records.F("caColorfulness", records.I16),
		records.F("caRedGreenTint", records.I16),
	}}

	layoutLogPen = &records.Layout{Name: "LOGPEN", Fields: []records.Field{
		records.E("lopnStyle", enums.PenStyle),
		records.F("lopnWidth", records.Point),
		records.F("lopnColor", records.U32),
	}}

	layoutBitmapInfoHeader = &records.Layout{Name: "BITMAPINFOHEADER", Fields: []records.Field{
		records.F("biSize", records.U32),
		records.F("biWidth", records.I32),
		records.F("biHeight", records.I32),
		records.F("biPlanes", records.U16),
		records.F("biBitCount", records.U16),
		records.E("biCompression", enums.Compression),
		records.F("biSizeImage", records.U32),
		records.F("biXPelsPerMeter", records.I32),
		records.F("biYPelsPerMeter", records.I32),
		records.F("biClrUsed", records.U32),
		records.F("biClrImportant", records.U32),
	}}

	layoutPixelFormat = &records.Layout{Name: "PIXELFORMATDESCRIPTOR", Fields: []records.Field{
		records.F("nSize", records.U16),
		records.F("nVersion", records.U16),
		records.F("dwFlags", records.Hex),
		records.F("iPixelType", records.U8),
		records.F("cColorBits", records.U8),
		records.F("cRedBits", records.U8),
		records.F("cRedShift", records.U8),
		records.F("cGreenBits", records.U8),
		records.F("cGreenShift", records.U8),
		records.F("cBlueBits", records.U8),
		records.F("cBlueShift", records.U8),
		records.F("cAlphaBits", records.U8),
		records.F("cAlphaShift", records.U8),
		records.F("cAccumBits", records.U8),
		records.F("cAccumRedBits", records.U8),
		records.F("cAccumGreenBits", records.U8),
		records.F("cAccumBlueBits", records.U8),
		records.F("cAccumAlphaBits", records.U8),
		records.F("cDepthBits", records.U8),
		records.F("cStencilBits", records.U8),
		records.F("cAuxBuffers", records.U8),
		records.F("iLayerType", records.U8),
		records.F("bReserved", records.U8),
		records.F("dwLayerMask", records.Hex),
		records.F("dwVisibleMask", records.Hex),
		records.F("dwDamageMask", records.Hex),
	}}

	layoutCIEXYZ = &records.Layout{Name: "CIEXYZ", Fields: []records.Field{
		records.F("ciexyzX", records.I32),
		records.F("ciexyzY", records.I32),
		records.F("ciexyzZ", records.I32),
	}}

	layoutCIEXYZTriple = &records.Layout{Name: "CIEXYZTRIPLE", Fields: []records.Field{
		records.S("ciexyzRed", layoutCIEXYZ),
		records.S("ciexyzGreen", layoutCIEXYZ),
		records.S("ciexyzBlue", layoutCIEXYZ),
	}}

	layoutLogColorSpaceA = &records.Layout{Name: "LOGCOLORSPACEA", Fields: logColorSpace(records.Field{Name: "lcsFilename", Kind: records.Ansi, Count: 260})}
	layoutLogColorSpaceW = &records.Layout{Name: "LOGCOLORSPACEW", Fields: logColorSpace(records.Field{Name: "lcsFilename", Kind: records.Chars, Count: 260})}

	layoutLogFontW = &records.Layout{Name: "LOGFONTW", Fields: []records.Field{
		records.F("lfHeight", records.I32),
		records.F("lfWidth", records.I32),
		records.F("lfEscapement", records.I32),
		records.F("lfOrientation", records.I32),
		{Name: "lfWeight", Kind: records.I32, Enum: enums.FontWeight},
		records.F("lfItalic", records.U8),
		records.F("lfUnderline", records.U8),
		records.F("lfStrikeOut", records.U8),
		records.E8("lfCharSet", enums.Charset),
		records.F("lfOutPrecision", records.U8),
		records.F("lfClipPrecision", records.U8),
		records.E8("lfQuality", enums.FontQuality),
		records.F("lfPitchAndFamily", records.U8),
		{Name: "lfFaceName", Kind: records.Chars, Count: 32},
	}}

	layoutPanose = &records.Layout{Name: "PANOSE", Fields: []records.Field{
		records.F("bFamilyType", records.U8),
		records.F("bSerifStyle", records.U8),
		records.F("bWeight", records.U8),
		records.F("bProportion", records.U8),
		records.F("bContrast", records.U8),
		records.F("bStrokeVariation", records.U8),
		records.F("bArmStyle", records.U8),
		records.F("bLetterform", records.U8),
		records.F("bMidline", records.U8),
		records.F("bXHeight", records.U8),
	}}

	// layoutExtLogFontW omits the two padding bytes after elfPanose.
	layoutExtLogFontW = &records.Layout{Name: "EXTLOGFONTW", Fields: []records.Field{
		records.S("elfLogFont", layoutLogFontW),
		{Name: "elfFullName", Kind: records.Chars, Count: 64},
		{Name: "elfStyle", Kind: records.Chars, Count: 32},
		records.F("elfVersion", records.U32),
		records.F("elfStyleSize", records.U32),
		records.F("elfMatch", records.U32),
		records.F("elfReserved", records.U32),
		{Name: "elfVendorId", Kind: records.Bytes, Count: 4},
		records.F("elfCulture", records.U32),
		records.S("elfPanose", layoutPanose),
	}}

	layoutEmrText = &records.Layout{Name: "EMRTEXT", Fields: []records.Field{
		records.F("ptlReference", records.Point),
		records.F("nChars", records.U32),
		records.F("offString", records.U32),
		records.E("fOptions", enums.ExtTextOutOptions),
		records.F("rcl", records.Rect),
		records.F("offDx", records.U32),
	}}

	layoutRgnDataHeader = &records.Layout{Name: "RGNDATAHEADER", Fields: []records.Field{
		records.F("dwSize", records.U32),
		records.F("iType", records.U32),
		records.F("nCount", records.U32),
		records.F("nRgnSize", records.U32),
		records.F("rcBound", records.Rect),
	}}

	layoutUniversalFontID = &records.Layout{Name: "UniversalFontId", Fields: []records.Field{
		records.F("Checksum", records.Hex),
		records.F("Index", records.U32),
	}}

	layoutTriVertex = &records.Layout{Name: "TRIVERTEX", Fields: []records.Field{
		records.F("x", records.I32),
		records.F("y", records.I32),
		records.F("Red", records.U16),
		records.F("Green", records.U16),
		records.F("Blue", records.U16),
		records.F("Alpha", records.U16),
	}}
)

func logColorSpace(filename records.Field) []records.Field {
	return []records.Field{
		records.F("lcsSignature", records.Hex),
		records.F("lcsVersion", records.Hex),
		records.F("lcsSize", records.U32),
		records.E("lcsCSType", enums.ColorSpaceType),
		records.E("lcsIntent", enums.ColorSpaceIntent),
		records.S("lcsEndpoints", layoutCIEXYZTriple),
		records.F("lcsGammaRed", records.U32),
		records.F("lcsGammaGreen", records.U32),
		records.F("lcsGammaBlue", records.U32),
		filename,
	}
}

// Record layouts, the fields after the 8-byte record header.
var (
	layoutEmpty = &records.Layout{Name: "EMR"}

	layoutPoly = &records.Layout{Name: "EMRPOLYLINE", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("cptl", records.U32),
		records.V("aptl", records.Point, "cptl"),
	}}

	layoutPoly16 = &records.Layout{Name: "EMRPOLYLINE16", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("cpts", records.U32),
		records.V("apts", records.PointS, "cpts"),
	}}

	layoutPolyPoly = &records.Layout{Name: "EMRPOLYPOLYLINE", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("nPolys", records.U32),
		records.F("cptl", records.U32),
		records.V("aPolyCounts", records.U32, "nPolys"),
		records.V("aptl", records.Point, "cptl"),
	}}

	layoutPolyPoly16 = &records.Layout{Name: "EMRPOLYPOLYLINE16", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("nPolys", records.U32),
		records.F("cpts", records.U32),
		records.V("aPolyCounts", records.U32, "nPolys"),
		records.V("apts", records.PointS, "cpts"),
	}}

	layoutPolyDraw = &records.Layout{Name: "EMRPOLYDRAW", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("cptl", records.U32),
		records.V("aptl", records.Point, "cptl"),
		records.V("abTypes", records.U8, "cptl"),
	}}

	layoutPolyDraw16 = &records.Layout{Name: "EMRPOLYDRAW16", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("cpts", records.U32),
		records.V("apts", records.PointS, "cpts"),
		records.V("abTypes", records.U8, "cpts"),
	}}

	layoutExtent = &records.Layout{Name: "EMRSETWINDOWEXTEX", Fields: []records.Field{records.F("szlExtent", records.Size)}}
	layoutOrigin = &records.Layout{Name: "EMRSETWINDOWORGEX", Fields: []records.Field{records.F("ptlOrigin", records.Point)}}
	layoutPoint  = &records.Layout{Name: "EMRLINETO", Fields: []records.Field{records.F("ptl", records.Point)}}

	layoutEOF = &records.Layout{Name: "EMREOF", Fields: []records.Field{
		records.F("nPalEntries", records.U32),
		records.F("offPalEntries", records.U32),
	}}

	layoutSetPixelV = &records.Layout{Name: "EMRSETPIXELV", Fields: []records.Field{
		records.F("ptlPixel", records.Point),
		records.F("crColor", records.U32),
	}}

	layoutMapperFlags = &records.Layout{Name: "EMRSETMAPPERFLAGS", Fields: []records.Field{records.F("dwFlags", records.Hex)}}
	layoutMapMode     = &records.Layout{Name: "EMRSETMAPMODE", Fields: []records.Field{records.E("iMode", enums.MapMode)}}
	layoutBkMode      = &records.Layout{Name: "EMRSETBKMODE", Fields: []records.Field{records.E("iMode", enums.BkMode)}}
	layoutPolyFill    = &records.Layout{Name: "EMRSETPOLYFILLMODE", Fields: []records.Field{records.E("iMode", enums.PolyFillMode)}}
	layoutROP2        = &records.Layout{Name: "EMRSETROP2", Fields: []records.Field{records.E("iMode", enums.ROP2)}}
	layoutStretchMode = &records.Layout{Name: "EMRSETSTRETCHBLTMODE", Fields: []records.Field{records.E("iMode", enums.StretchBltMode)}}
	layoutTextAlign   = &records.Layout{Name: "EMRSETTEXTALIGN", Fields: []records.Field{records.E("iMode", enums.TextAlign)}}
	layoutArcDir      = &records.Layout{Name: "EMRSETARCDIRECTION", Fields: []records.Field{records.E("iArcDirection", enums.ArcDirection)}}
	layoutICMMode     = &records.Layout{Name: "EMRSETICMMODE", Fields: []records.Field{records.E("iMode", enums.ICMMode)}}
	layoutSetLayout   = &records.Layout{Name: "EMRSETLAYOUT", Fields: []records.Field{records.E("iMode", enums.Layout)}}
	layoutClipPath    = &records.Layout{Name: "EMRSELECTCLIPPATH", Fields: []records.Field{records.E("iMode", enums.RegionMode)}}

	layoutColorAdj = &records.Layout{Name: "EMRSETCOLORADJUSTMENT", Fields: []records.Field{
		records.S("ColorAdjustment", layoutColorAdjustment),
	}}

	layoutSetColor = &records.Layout{Name: "EMRSETTEXTCOLOR", Fields: []records.Field{records.F("crColor", records.U32)}}
	layoutOffset   = &records.Layout{Name: "EMROFFSETCLIPRGN", Fields: []records.Field{records.F("ptlOffset", records.Point)}}
	layoutClipRect = &records.Layout{Name: "EMREXCLUDECLIPRECT", Fields: []records.Field{records.F("rclClip", records.Rect)}}

	layoutScaleExt = &records.Layout{Name: "EMRSCALEVIEWPORTEXTEX", Fields: []records.Field{
		records.F("xNum", records.I32),
		records.F("xDenom", records.I32),
		records.F("yNum", records.I32),
		records.F("yDenom", records.I32),
	}}

	layoutRestoreDC = &records.Layout{Name: "EMRRESTOREDC", Fields: []records.Field{records.F("iRelative", records.I32)}}

	layoutSetXForm    = &records.Layout{Name: "EMRSETWORLDTRANSFORM", Fields: []records.Field{records.F("xform", records.XForm)}}
	layoutModifyXForm = &records.Layout{Name: "EMRMODIFYWORLDTRANSFORM", Fields: []records.Field{
		records.F("xform", records.XForm),
		records.E("iMode", enums.WorldTransformMode),
	}}

	layoutObject = &records.Layout{Name: "EMRSELECTOBJECT", Fields: []records.Field{records.F("ihObject", records.Handle)}}

	layoutCreatePen = &records.Layout{Name: "EMRCREATEPEN", Fields: []records.Field{
		records.F("ihPen", records.U32),
		records.S("lopn", layoutLogPen),
	}}

	layoutCreateBrush = &records.Layout{Name: "EMRCREATEBRUSHINDIRECT", Fields: []records.Field{
		records.F("ihBrush", records.U32),
		records.S("lb", &records.Layout{Name: "LOGBRUSH32", Fields: []records.Field{
			records.E("lbStyle", enums.BrushStyle),
			records.F("lbColor", records.U32),
			records.F("lbHatch", records.U32),
		}}),
	}}

	layoutAngleArc = &records.Layout{Name: "EMRANGLEARC", Fields: []records.Field{
		records.F("ptlCenter", records.Point),
		records.F("nRadius", records.U32),
		records.F("eStartAngle", records.F32),
		records.F("eSweepAngle", records.F32),
	}}

	layoutBox       = &records.Layout{Name: "EMRELLIPSE", Fields: []records.Field{records.F("rclBox", records.Rect)}}
	layoutRoundRect = &records.Layout{Name: "EMRROUNDRECT", Fields: []records.Field{
		records.F("rclBox", records.Rect),
		records.F("szlCorner", records.Size),
	}}
	layoutArc = &records.Layout{Name: "EMRARC", Fields: []records.Field{
		records.F("rclBox", records.Rect),
		records.F("ptlStart", records.Point),
		records.F("ptlEnd", records.Point),
	}}

	layoutSelectPalette = &records.Layout{Name: "EMRSELECTPALETTE", Fields: []records.Field{records.F("ihPal", records.Handle)}}

	layoutCreatePalette = &records.Layout{Name: "EMRCREATEPALETTE", Fields: []records.Field{
		records.F("ihPal", records.U32),
		records.S("lgpl", &records.Layout{Name: "LOGPALETTE", Fields: []records.Field{
			records.F("palVersion", records.U16),
			records.F("palNumEntries", records.U16),
			records.V("palPalEntry", records.Hex, "palNumEntries"),
		}}),
	}}

	layoutSetPaletteEntries = &records.Layout{Name: "EMRSETPALETTEENTRIES", Fields: []records.Field{
		records.F("ihPal", records.U32),
		records.F("iStart", records.U32),
		records.F("cEntries", records.U32),
		records.V("aPalEntries", records.Hex, "cEntries"),
	}}

	layoutResizePalette = &records.Layout{Name: "EMRRESIZEPALETTE", Fields: []records.Field{
		records.F("ihPal", records.U32),
		records.F("cEntries", records.U32),
	}}

	layoutFloodFill = &records.Layout{Name: "EMREXTFLOODFILL", Fields: []records.Field{
		records.F("ptlStart", records.Point),
		records.F("crColor", records.U32),
		records.E("iMode", enums.FloodFillMode),
	}}

	layoutMiterLimit = &records.Layout{Name: "EMRSETMITERLIMIT", Fields: []records.Field{records.F("eMiterLimit", records.F32)}}
	layoutBounds     = &records.Layout{Name: "EMRFILLPATH", Fields: []records.Field{records.F("rclBounds", records.Rect)}}

	layoutFillRgn = &records.Layout{Name: "EMRFILLRGN", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("cbRgnData", records.U32),
		records.F("ihBrush", records.U32),
		records.Gate(records.S("rdh", layoutRgnDataHeader), 8+24+32),
		records.V("Buffer", records.Rect, "rdh.nCount"),
	}}

	layoutFrameRgn = &records.Layout{Name: "EMRFRAMERGN", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("cbRgnData", records.U32),
		records.F("ihBrush", records.U32),
		records.F("szlStroke", records.Size),
		records.Gate(records.S("rdh", layoutRgnDataHeader), 8+32+32),
		records.V("Buffer", records.Rect, "rdh.nCount"),
	}}

	layoutInvertRgn = &records.Layout{Name: "EMRINVERTRGN", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("cbRgnData", records.U32),
		records.Gate(records.S("rdh", layoutRgnDataHeader), 8+20+32),
		records.V("Buffer", records.Rect, "rdh.nCount"),
	}}

	layoutExtSelectClipRgn = &records.Layout{Name: "EMREXTSELECTCLIPRGN", Fields: []records.Field{
		records.F("cbRgnData", records.U32),
		records.E("iMode", enums.RegionMode),
		records.Gate(records.S("rdh", layoutRgnDataHeader), 8+8+32),
		records.V("Buffer", records.Rect, "rdh.nCount"),
	}}

	layoutBitBlt = &records.Layout{Name: "EMRBITBLT", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("xDest", records.I32),
		records.F("yDest", records.I32),
		records.F("cxDest", records.I32),
		records.F("cyDest", records.I32),
		records.E("dwRop", enums.RasterOp),
		records.F("xSrc", records.I32),
		records.F("ySrc", records.I32),
		records.F("xformSrc", records.XForm),
		records.F("crBkColorSrc", records.U32),
		records.E("iUsageSrc", enums.DIBColors),
		records.F("offBmiSrc", records.U32),
		records.F("cbBmiSrc", records.U32),
		records.F("offBitsSrc", records.U32),
		records.F("cbBitsSrc", records.U32),
	}}

	layoutStretchBlt = &records.Layout{Name: "EMRSTRETCHBLT", Fields: append(fieldsOf(layoutBitBlt),
		records.F("cxSrc", records.I32),
		records.F("cySrc", records.I32),
	)}

	layoutMaskBlt = &records.Layout{Name: "EMRMASKBLT", Fields: append(fieldsOf(layoutBitBlt),
		records.F("xMask", records.I32),
		records.F("yMask", records.I32),
		records.E("iUsageMask", enums.DIBColors),
		records.F("offBmiMask", records.U32),
		records.F("cbBmiMask", records.U32),
		records.F("offBitsMask", records.U32),
		records.F("cbBitsMask", records.U32),
	)}

	layoutPlgBlt = &records.Layout{Name: "EMRPLGBLT", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.A("aptlDest", records.Point, 3),
		records.F("xSrc", records.I32),
		records.F("ySrc", records.I32),
		records.F("cxSrc", records.I32),
		records.F("cySrc", records.I32),
		records.F("xformSrc", records.XForm),
		records.F("crBkColorSrc", records.U32),
		records.E("iUsageSrc", enums.DIBColors),
		records.F("offBmiSrc", records.U32),
		records.F("cbBmiSrc", records.U32),
		records.F("offBitsSrc", records.U32),
		records.F("cbBitsSrc", records.U32),
		records.F("xMask", records.I32),
		records.F("yMask", records.I32),
		records.E("iUsageMask", enums.DIBColors),
		records.F("offBmiMask", records.U32),
		records.F("cbBmiMask", records.U32),
		records.F("offBitsMask", records.U32),
		records.F("cbBitsMask", records.U32),
	}}

	layoutSetDIBits = &records.Layout{Name: "EMRSETDIBITSTODEVICE", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("xDest", records.I32),
		records.F("yDest", records.I32),
		records.F("xSrc", records.I32),
		records.F("ySrc", records.I32),
		records.F("cxSrc", records.I32),
		records.F("cySrc", records.I32),
		records.F("offBmiSrc", records.U32),
		records.F("cbBmiSrc", records.U32),
		records.F("offBitsSrc", records.U32),
		records.F("cbBitsSrc", records.U32),
		records.E("iUsageSrc", enums.DIBColors),
		records.F("iStartScan", records.U32),
		records.F("cScans", records.U32),
	}}

	layoutStretchDIBits = &records.Layout{Name: "EMRSTRETCHDIBITS", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("xDest", records.I32),
		records.F("yDest", records.I32),
		records.F("xSrc", records.I32),
		records.F("ySrc", records.I32),
		records.F("cxSrc", records.I32),
		records.F("cySrc", records.I32),
		records.F("offBmiSrc", records.U32),
		records.F("cbBmiSrc", records.U32),
		records.F("offBitsSrc", records.U32),
		records.F("cbBitsSrc", records.U32),
		records.E("iUsageSrc", enums.DIBColors),
		records.E("dwRop", enums.RasterOp),
		records.F("cxDest", records.I32),
		records.F("cyDest", records.I32),
	}}

	layoutAlphaBlend = &records.Layout{Name: "EMRALPHABLEND", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("xDest", records.I32),
		records.F("yDest", records.I32),
		records.F("cxDest", records.I32),
		records.F("cyDest", records.I32),
		records.E("dwRop", enums.BlendFunction),
		records.F("xSrc", records.I32),
		records.F("ySrc", records.I32),
		records.F("xformSrc", records.XForm),
		records.F("crBkColorSrc", records.U32),
		records.E("iUsageSrc", enums.DIBColors),
		records.F("offBmiSrc", records.U32),
		records.F("cbBmiSrc", records.U32),
		records.F("offBitsSrc", records.U32),
		records.F("cbBitsSrc", records.U32),
		records.F("cxSrc", records.I32),
		records.F("cySrc", records.I32),
	}}

	layoutTransparentBlt = &records.Layout{Name: "EMRTRANSPARENTBLT", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("xDest", records.I32),
		records.F("yDest", records.I32),
		records.F("cxDest", records.I32),
		records.F("cyDest", records.I32),
		records.F("dwRop", records.U32),
		records.F("xSrc", records.I32),
		records.F("ySrc", records.I32),
		records.F("xformSrc", records.XForm),
		records.F("crBkColorSrc", records.U32),
		records.E("iUsageSrc", enums.DIBColors),
		records.F("offBmiSrc", records.U32),
		records.F("cbBmiSrc", records.U32),
		records.F("offBitsSrc", records.U32),
		records.F("cbBitsSrc", records.U32),
		records.F("cxSrc", records.I32),
		records.F("cySrc", records.I32),
	}}

	layoutExtTextOut = &records.Layout{Name: "EMREXTTEXTOUTW", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.E("iGraphicsMode", enums.GraphicsMode),
		records.F("exScale", records.F32),
		records.F("eyScale", records.F32),
		records.S("emrtext", layoutEmrText),
	}}

	layoutPolyTextOut = &records.Layout{Name: "EMRPOLYTEXTOUTW", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.E("iGraphicsMode", enums.GraphicsMode),
		records.F("exScale", records.F32),
		records.F("eyScale", records.F32),
		records.F("cStrings", records.U32),
	}}

	layoutCreateBrushDIB = &records.Layout{Name: "EMRCREATEDIBPATTERNBRUSHPT", Fields: []records.Field{
		records.F("ihBrush", records.U32),
		records.E("iUsage", enums.DIBColors),
		records.F("offBmi", records.U32),
		records.F("cbBmi", records.U32),
		records.F("offBits", records.U32),
		records.F("cbBits", records.U32),
	}}

	layoutExtCreatePen = &records.Layout{Name: "EMREXTCREATEPEN", Fields: []records.Field{
		records.F("ihPen", records.U32),
		records.F("offBmi", records.U32),
		records.F("cbBmi", records.U32),
		records.F("offBits", records.U32),
		records.F("cbBits", records.U32),
		records.S("elp", &records.Layout{Name: "EXTLOGPEN32", Fields: []records.Field{
			records.E("elpPenStyle", enums.ExtPenStyle),
			records.F("elpWidth", records.U32),
			records.E("elpBrushStyle", enums.BrushStyle),
			records.F("elpColor", records.U32),
			records.F("elpHatch", records.U32),
			records.F("elpNumEntries", records.U32),
			records.V("elpStyleEntry", records.U32, "elpNumEntries"),
		}}),
	}}

	layoutCreateColorSpace = &records.Layout{Name: "EMRCREATECOLORSPACE", Fields: []records.Field{
		records.F("ihCS", records.U32),
		records.S("lcs", layoutLogColorSpaceA),
	}}

	layoutCreateColorSpaceW = &records.Layout{Name: "EMRCREATECOLORSPACEW", Fields: []records.Field{
		records.F("ihCS", records.U32),
		records.S("lcs", layoutLogColorSpaceW),
		records.F("dwFlags", records.Hex),
		records.F("cbData", records.U32),
	}}

	layoutColorSpace = &records.Layout{Name: "EMRSETCOLORSPACE", Fields: []records.Field{records.F("ihCS", records.Handle)}}

	layoutGLSRecord        = &records.Layout{Name: "EMRGLSRECORD", Fields: []records.Field{records.F("cbData", records.U32)}}
	layoutGLSBoundedRecord = &records.Layout{Name: "EMRGLSBOUNDEDRECORD", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("cbData", records.U32),
	}}

	layoutPixelFormatRec = &records.Layout{Name: "EMRPIXELFORMAT", Fields: []records.Field{records.S("pfd", layoutPixelFormat)}}

	layoutEscape = &records.Layout{Name: "EMREXTESCAPE", Fields: []records.Field{
		records.F("iEscape", records.I32),
		records.F("cjIn", records.U32),
	}}

	layoutNamedEscape = &records.Layout{Name: "EMRNAMEDESCAPE", Fields: []records.Field{
		records.F("iEscape", records.I32),
		records.F("cbDriver", records.U32),
		records.F("cbEscData", records.U32),
	}}

	layoutForceUFI = &records.Layout{Name: "EMRFORCEUFIMAPPING", Fields: []records.Field{records.S("ufi", layoutUniversalFontID)}}

	layoutColorCorrectPalette = &records.Layout{Name: "EMRCOLORCORRECTPALETTE", Fields: []records.Field{
		records.F("ihPalette", records.U32),
		records.F("nFirstEntry", records.U32),
		records.F("nPalEntries", records.U32),
		records.F("nReserved", records.U32),
	}}

	layoutICMProfile = &records.Layout{Name: "EMRSETICMPROFILE", Fields: []records.Field{
		records.F("dwFlags", records.Hex),
		records.F("cbName", records.U32),
		records.F("cbData", records.U32),
	}}

	layoutGradientFill = &records.Layout{Name: "EMRGRADIENTFILL", Fields: []records.Field{
		records.F("rclBounds", records.Rect),
		records.F("nVer", records.U32),
		records.F("nTri", records.U32),
		records.E("ulMode", enums.GradientFillMode),
		{Name: "Ver", Kind: records.Struct, Layout: layoutTriVertex, CountOf: "nVer"},
	}}

	layoutLinkedUFIs = &records.Layout{Name: "EMRSETLINKEDUFIS", Fields: []records.Field{
		records.F("uNumLinkedUFI", records.U32),
		{Name: "ufis", Kind: records.Struct, Layout: layoutUniversalFontID, CountOf: "uNumLinkedUFI"},
	}}

	layoutTextJustification = &records.Layout{Name: "EMRSETTEXTJUSTIFICATION", Fields: []records.Field{
		records.F("nBreakExtra", records.I32),
		records.F("nBreakCount", records.I32),
	}}

	layoutColorMatchToTarget = &records.Layout{Name: "EMRCOLORMATCHTOTARGET", Fields: []records.Field{
		records.F("dwAction", records.U32),
		records.F("dwFlags", records.Hex),
		records.F("cbName", records.U32),
		records.F("cbData", records.U32),
	}}
)

func fieldsOf(l *records.Layout) []records.Field {
	return append([]records.Field(nil), l.Fields...)
}

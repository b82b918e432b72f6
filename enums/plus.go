package enums

import (
	"fmt"
	"strings"
)

func sequence(first uint32, names ...string) map[uint32]string {
	m := make(map[uint32]string, len(names))
	for i, n := range names {
		m[first+uint32(i)] = n
	}
	return m
}

// EMF+ field roles.
var (
	PlusRecordType = register(&Table{Name: "PlusRecordType", Hex: true, Labels: sequence(0x4001,
		"Header", "EndOfFile", "Comment", "GetDC",
		"MultiFormatStart", "MultiFormatSection", "MultiFormatEnd",
		"Object", "Clear", "FillRects", "DrawRects", "FillPolygon", "DrawLines",
		"FillEllipse", "DrawEllipse", "FillPie", "DrawPie", "DrawArc",
		"FillRegion", "FillPath", "DrawPath", "FillClosedCurve", "DrawClosedCurve",
		"DrawCurve", "DrawBeziers", "DrawImage", "DrawImagePoints", "DrawString",
		"SetRenderingOrigin", "SetAntiAliasMode", "SetTextRenderingHint",
		"SetTextContrast", "SetInterpolationMode", "SetPixelOffsetMode",
		"SetCompositingMode", "SetCompositingQuality",
		"Save", "Restore", "BeginContainer", "BeginContainerNoParams", "EndContainer",
		"SetWorldTransform", "ResetWorldTransform", "MultiplyWorldTransform",
		"TranslateWorldTransform", "ScaleWorldTransform", "RotateWorldTransform",
		"SetPageTransform", "ResetClip", "SetClipRect", "SetClipPath", "SetClipRegion",
		"OffsetClip", "DrawDriverString", "StrokeFillPath", "SerializableObject",
		"SetTSGraphics", "SetTSClip",
	)})

	PlusObjectType = register(&Table{Name: "PlusObjectType", Labels: sequence(0,
		"Invalid", "Brush", "Pen", "Path", "Region", "Image", "Font",
		"StringFormat", "ImageAttributes", "CustomLineCap",
	)})

	PlusMetafileType = register(&Table{Name: "PlusMetafileType", Labels: sequence(0,
		"Invalid", "Wmf", "WmfPlaceable", "Emf", "EmfPlusOnly", "EmfPlusDual",
	)})

	PlusHatchStyle = register(&Table{Name: "PlusHatchStyle", Labels: sequence(0,
		"StyleHorizontal", "StyleVertical", "StyleForwardDiagonal",
		"StyleBackwardDiagonal", "StyleLargeGrid", "StyleDiagonalCross",
		"Style05Percent", "Style10Percent", "Style20Percent", "Style25Percent",
		"Style30Percent", "Style40Percent", "Style50Percent", "Style60Percent",
		"Style70Percent", "Style75Percent", "Style80Percent", "Style90Percent",
		"StyleLightDownwardDiagonal", "StyleLightUpwardDiagonal",
		"StyleDarkDownwardDiagonal", "StyleDarkUpwardDiagonal",
		"StyleWideDownwardDiagonal", "StyleWideUpwardDiagonal",
		"StyleLightVertical", "StyleLightHorizontal",
		"StyleNarrowVertical", "StyleNarrowHorizontal",
		"StyleDarkVertical", "StyleDarkHorizontal",
		"StyleDashedDownwardDiagonal", "StyleDashedUpwardDiagonal",
		"StyleDashedHorizontal", "StyleDashedVertical",
		"StyleSmallConfetti", "StyleLargeConfetti", "StyleZigZag", "StyleWave",
		"StyleDiagonalBrick", "StyleHorizontalBrick", "StyleWeave", "StylePlaid",
		"StyleDivot", "StyleDottedGrid", "StyleDottedDiamond", "StyleShingle",
		"StyleTrellis", "StyleSphere", "StyleSmallGrid",
		"StyleSmallCheckerBoard", "StyleLargeCheckerBoard",
		"StyleOutlinedDiamond", "StyleSolidDiamond",
	)})

	PlusWrapMode = register(&Table{Name: "PlusWrapMode", Labels: sequence(0,
		"Tile", "TileFlipX", "TileFlipY", "TileFlipXY", "Clamp",
	)})

	PlusBrushType = register(&Table{Name: "PlusBrushType", Labels: sequence(0,
		"SolidColor", "HatchFill", "TextureFill", "PathGradient", "LinearGradient",
	)})

	PlusImageDataType = register(&Table{Name: "PlusImageDataType", Labels: sequence(0,
		"Unknown", "Bitmap", "Metafile",
	)})

	PlusBitmapDataType = register(&Table{Name: "PlusBitmapDataType", Labels: sequence(0,
		"Pixel", "Compressed",
	)})

	PlusUnitType = register(&Table{Name: "PlusUnitType", Labels: sequence(0,
		"World", "Display", "Pixel", "Point", "Inch", "Document", "Millimeter",
	)})

	PlusLineJoin = register(&Table{Name: "PlusLineJoin", Labels: sequence(0,
		"Miter", "Bevel", "Round", "MiterClipped",
	)})

	PlusLineStyle = register(&Table{Name: "PlusLineStyle", Labels: sequence(0,
		"Solid", "Dash", "Dot", "DashDot", "DashDotDot", "Custom",
	)})

	PlusDashedLineCap = register(&Table{Name: "PlusDashedLineCap", Labels: map[uint32]string{
		0: "Flat",
		2: "Round",
		3: "Triangle",
	}})

	PlusPenAlignment = register(&Table{Name: "PlusPenAlignment", Labels: sequence(0,
		"Center", "Inset", "Left", "Outset", "Right",
	)})

	PlusCustomLineCapData = register(&Table{Name: "PlusCustomLineCapData", Labels: sequence(0,
		"Default", "AdjustableArrow",
	)})

	PlusStringAlignment = register(&Table{Name: "PlusStringAlignment", Labels: sequence(0,
		"Near", "Center", "Far",
	)})

	PlusDigitSubstitution = register(&Table{Name: "PlusDigitSubstitution", Labels: sequence(0,
		"User", "None", "National", "Traditional",
	)})

	PlusHotkeyPrefix = register(&Table{Name: "PlusHotkeyPrefix", Labels: sequence(0,
		"None", "Show", "Hide",
	)})

	PlusStringTrimming = register(&Table{Name: "PlusStringTrimming", Labels: sequence(0,
		"None", "Character", "Word", "EllipsisCharacter", "EllipsisWord", "EllipsisPath",
	)})

	PlusPathPointType = register(&Table{Name: "PlusPathPointType", Labels: map[uint32]string{
		0: "Start",
		1: "Line",
		3: "Bezier",
	}})

	PlusRegionNodeType = register(&Table{Name: "PlusRegionNodeType", Hex: true, Labels: map[uint32]string{
		0x00000001: "And",
		0x00000002: "Or",
		0x00000003: "Xor",
		0x00000004: "Exclude",
		0x00000005: "Complement",
		0x10000000: "Rect",
		0x10000001: "Path",
		0x10000002: "Empty",
		0x10000003: "Infinite",
	}})

	PlusLineCap = register(&Table{Name: "PlusLineCap", Labels: map[uint32]string{
		0x00: "Flat",
		0x01: "Square",
		0x02: "Round",
		0x03: "Triangle",
		0x10: "NoAnchor",
		0x11: "SquareAnchor",
		0x12: "RoundAnchor",
		0x13: "DiamondAnchor",
		0x14: "ArrowAnchor",
		0xFF: "Custom",
	}})

	PlusPixelFormat = register(&Table{Name: "PlusPixelFormat", Hex: true, Labels: map[uint32]string{
		0x00000000: "Undefined",
		0x00030101: "1bppIndexed",
		0x00030402: "4bppIndexed",
		0x00030803: "8bppIndexed",
		0x00101004: "16bppGrayScale",
		0x00021005: "16bppRGB555",
		0x00021006: "16bppRGB565",
		0x00061007: "16bppARGB1555",
		0x00021808: "24bppRGB",
		0x00022009: "32bppRGB",
		0x0026200A: "32bppARGB",
		0x000E200B: "32bppPARGB",
		0x0010300C: "48bppRGB",
		0x0034400D: "64bppARGB",
		0x001A400E: "64bppPARGB",
	}})
)

var plusBrushData = []struct {
	bit  uint32
	name string
}{
	{0x001, "Path"},
	{0x002, "Transform"},
	{0x004, "PresetColors"},
	{0x008, "BlendFactorsH"},
	{0x010, "BlendFactorsV"},
	{0x040, "FocusScales"},
	{0x080, "IsGammaCorrected"},
	{0x100, "DoNotTransform"},
}

// PlusBrushData renders the optional-data flags of an EMF+ brush.
var PlusBrushData = FormatFunc(func(v uint32) string {
	var parts []string
	for _, f := range plusBrushData {
		if v&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	s := fmt.Sprintf("0x%08X", v)
	if len(parts) > 0 {
		s += "  " + strings.Join(parts, " | ")
	}
	return s
})

// PlusHeaderFlags renders the EmfPlusFlags field of an EMF+ header.
var PlusHeaderFlags = FormatFunc(func(v uint32) string {
	s := fmt.Sprintf("0x%08X", v)
	if v&0x1 != 0 {
		s += "  Video display"
	} else {
		s += "  Printer"
	}
	return s
})

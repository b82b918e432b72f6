package enums

// GDI field roles.
var (
	MapMode = register(&Table{Name: "MapMode", Labels: map[uint32]string{
		1: "MM_TEXT",
		2: "MM_LOMETRIC",
		3: "MM_HIMETRIC",
		4: "MM_LOENGLISH",
		5: "MM_HIENGLISH",
		6: "MM_TWIPS",
		7: "MM_ISOTROPIC",
		8: "MM_ANISOTROPIC",
	}})

	BkMode = register(&Table{Name: "BkMode", Labels: map[uint32]string{
		1: "TRANSPARENT",
		2: "OPAQUE",
	}})

	PolyFillMode = register(&Table{Name: "PolyFillMode", Labels: map[uint32]string{
		1: "ALTERNATE",
		2: "WINDING",
	}})

	ROP2 = register(&Table{Name: "ROP2", Labels: map[uint32]string{
		1:  "R2_BLACK",
		2:  "R2_NOTMERGEPEN",
		3:  "R2_MASKNOTPEN",
		4:  "R2_NOTCOPYPEN",
		5:  "R2_MASKPENNOT",
		6:  "R2_NOT",
		7:  "R2_XORPEN",
		8:  "R2_NOTMASKPEN",
		9:  "R2_MASKPEN",
		10: "R2_NOTXORPEN",
		11: "R2_NOP",
		12: "R2_MERGENOTPEN",
		13: "R2_COPYPEN",
		14: "R2_MERGEPENNOT",
		15: "R2_MERGEPEN",
		16: "R2_WHITE",
	}})

	StretchBltMode = register(&Table{Name: "StretchBltMode", Labels: map[uint32]string{
		1: "BLACKONWHITE",
		2: "WHITEONBLACK",
		3: "COLORONCOLOR",
		4: "HALFTONE",
	}})

	ArcDirection = register(&Table{Name: "ArcDirection", Labels: map[uint32]string{
		1: "AD_COUNTERCLOCKWISE",
		2: "AD_CLOCKWISE",
	}})

	RegionMode = register(&Table{Name: "RegionMode", Labels: map[uint32]string{
		1: "RGN_AND",
		2: "RGN_OR",
		3: "RGN_XOR",
		4: "RGN_DIFF",
		5: "RGN_COPY",
	}})

	WorldTransformMode = register(&Table{Name: "WorldTransformMode", Labels: map[uint32]string{
		1: "MWT_IDENTITY",
		2: "MWT_LEFTMULTIPLY",
		3: "MWT_RIGHTMULTIPLY",
		4: "MWT_SET",
	}})

	FloodFillMode = register(&Table{Name: "FloodFillMode", Labels: map[uint32]string{
		0: "FLOODFILLBORDER",
		1: "FLOODFILLSURFACE",
	}})

	GradientFillMode = register(&Table{Name: "GradientFillMode", Labels: map[uint32]string{
		0: "GRADIENT_FILL_RECT_H",
		1: "GRADIENT_FILL_RECT_V",
		2: "GRADIENT_FILL_TRIANGLE",
	}})

	BrushStyle = register(&Table{Name: "BrushStyle", Labels: map[uint32]string{
		0: "BS_SOLID",
		1: "BS_NULL",
		2: "BS_HATCHED",
		3: "BS_PATTERN",
		4: "BS_INDEXED",
		5: "BS_DIBPATTERN",
		6: "BS_DIBPATTERNPT",
		7: "BS_PATTERN8X8",
		8: "BS_DIBPATTERN8X8",
		9: "BS_MONOPATTERN",
	}})

	HatchStyle = register(&Table{Name: "HatchStyle", Labels: map[uint32]string{
		0:  "HS_HORIZONTAL",
		1:  "HS_VERTICAL",
		2:  "HS_FDIAGONAL",
		3:  "HS_BDIAGONAL",
		4:  "HS_CROSS",
		5:  "HS_DIAGCROSS",
		6:  "HS_SOLIDCLR",
		7:  "HS_DITHEREDCLR",
		8:  "HS_SOLIDTEXTCLR",
		9:  "HS_DITHEREDTEXTCLR",
		10: "HS_SOLIDBKCLR",
		11: "HS_DITHEREDBKCLR",
	}})

	PenStyle = register(&Table{Name: "PenStyle", Labels: map[uint32]string{
		0: "PS_SOLID",
		1: "PS_DASH",
		2: "PS_DOT",
		3: "PS_DASHDOT",
		4: "PS_DASHDOTDOT",
		5: "PS_NULL",
		6: "PS_INSIDEFRAME",
	}})

	FontWeight = register(&Table{Name: "FontWeight", Signed: true, Labels: map[uint32]string{
		100: "FW_THIN",
		200: "FW_EXTRALIGHT",
		300: "FW_LIGHT",
		400: "FW_NORMAL",
		500: "FW_MEDIUM",
		600: "FW_SEMIBOLD",
		700: "FW_BOLD",
		800: "FW_EXTRABOLD",
		900: "FW_HEAVY",
	}})

	Charset = register(&Table{Name: "Charset", Labels: map[uint32]string{
		ANSI_CHARSET:        "ANSI_CHARSET",
		DEFAULT_CHARSET:     "DEFAULT_CHARSET",
		SYMBOL_CHARSET:      "SYMBOL_CHARSET",
		MAC_CHARSET:         "MAC_CHARSET",
		SHIFTJIS_CHARSET:    "SHIFTJIS_CHARSET",
		HANGUL_CHARSET:      "HANGUL_CHARSET",
		JOHAB_CHARSET:       "JOHAB_CHARSET",
		GB2312_CHARSET:      "GB2312_CHARSET",
		CHINESEBIG5_CHARSET: "CHINESEBIG5_CHARSET",
		GREEK_CHARSET:       "GREEK_CHARSET",
		TURKISH_CHARSET:     "TURKISH_CHARSET",
		VIETNAMESE_CHARSET:  "VIETNAMESE_CHARSET",
		HEBREW_CHARSET:      "HEBREW_CHARSET",
		ARABIC_CHARSET:      "ARABIC_CHARSET",
		BALTIC_CHARSET:      "BALTIC_CHARSET",
		RUSSIAN_CHARSET:     "RUSSIAN_CHARSET",
		THAI_CHARSET:        "THAI_CHARSET",
		EASTEUROPE_CHARSET:  "EASTEUROPE_CHARSET",
		OEM_CHARSET:         "OEM_CHARSET",
	}})

	FontQuality = register(&Table{Name: "FontQuality", Labels: map[uint32]string{
		0: "DEFAULT_QUALITY",
		1: "DRAFT_QUALITY",
		2: "PROOF_QUALITY",
		3: "NONANTIALIASED_QUALITY",
		4: "ANTIALIASED_QUALITY",
		5: "CLEARTYPE_QUALITY",
		6: "CLEARTYPE_NATURAL_QUALITY",
	}})

	GraphicsMode = register(&Table{Name: "GraphicsMode", Labels: map[uint32]string{
		1: "GM_COMPATIBLE",
		2: "GM_ADVANCED",
	}})

	DIBColors = register(&Table{Name: "DIBColors", Labels: map[uint32]string{
		0: "DIB_RGB_COLORS",
		1: "DIB_PAL_COLORS",
		2: "DIB_PAL_INDICES",
	}})

	Compression = register(&Table{Name: "Compression", Labels: map[uint32]string{
		0: "BI_RGB",
		1: "BI_RLE8",
		2: "BI_RLE4",
		3: "BI_BITFIELDS",
		4: "BI_JPEG",
		5: "BI_PNG",
	}})

	ICMMode = register(&Table{Name: "ICMMode", Labels: map[uint32]string{
		1: "ICM_OFF",
		2: "ICM_ON",
		3: "ICM_QUERY",
		4: "ICM_DONE_OUTSIDEDC",
	}})

	ColorSpaceType = register(&Table{Name: "ColorSpaceType", Hex: true, Labels: map[uint32]string{
		0:          "LCS_CALIBRATED_RGB",
		0x73524742: "LCS_sRGB",
		0x57696E20: "LCS_WINDOWS_COLOR_SPACE",
		0x4C494E4B: "PROFILE_LINKED",
		0x4D424544: "PROFILE_EMBEDDED",
	}})

	ColorSpaceIntent = register(&Table{Name: "ColorSpaceIntent", Labels: map[uint32]string{
		1: "LCS_GM_BUSINESS",
		2: "LCS_GM_GRAPHICS",
		4: "LCS_GM_IMAGES",
		8: "LCS_GM_ABS_COLORIMETRIC",
	}})

	Layout = register(&Table{Name: "Layout", Hex: true, Labels: map[uint32]string{
		0: "LAYOUT_LTR",
		1: "LAYOUT_RTL",
		8: "LAYOUT_BITMAPORIENTATIONPRESERVED",
	}})

	RasterOps = register(&Table{Name: "RasterOp", Hex: true, Labels: map[uint32]string{
		0x00CC0020: "SRCCOPY",
		0x00EE0086: "SRCPAINT",
		0x008800C6: "SRCAND",
		0x00660046: "SRCINVERT",
		0x00440328: "SRCERASE",
		0x00330008: "NOTSRCCOPY",
		0x001100A6: "NOTSRCERASE",
		0x00C000CA: "MERGECOPY",
		0x00BB0226: "MERGEPAINT",
		0x00F00021: "PATCOPY",
		0x00FB0A09: "PATPAINT",
		0x005A0049: "PATINVERT",
		0x00550009: "DSTINVERT",
		0x00000042: "BLACKNESS",
		0x00FF0062: "WHITENESS",
	}})

	CommentIdentifier = register(&Table{Name: "CommentIdentifier", Hex: true, Labels: map[uint32]string{
		CommentEMFSpool: "EMF Spool",
		CommentEMFPlus:  "EMF+",
		CommentPublic:   "Public",
	}})

	PublicComment = register(&Table{Name: "PublicComment", Hex: true, Labels: map[uint32]string{
		0x00000002: "Begin group",
		0x00000003: "End group",
		0x40000004: "Multiformats",
		0x80000001: "Windows Metafile",
		0x00000040: "Unicode String",
		0x00000080: "Unicode End",
	}})
)

// Comment identifiers found in the first four bytes of a comment payload.
const (
	CommentEMFSpool uint32 = 0x00000000
	CommentEMFPlus  uint32 = 0x2B464D45
	CommentPublic   uint32 = 0x43494447
)

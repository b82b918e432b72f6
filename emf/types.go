package emf

import "fmt"

// RecordType identifies the layout of a record.
type RecordType uint32

// Record types (EMR_*)
const (
	EMR_HEADER                  RecordType = 1
	EMR_POLYBEZIER              RecordType = 2
	EMR_POLYGON                 RecordType = 3
	EMR_POLYLINE                RecordType = 4
	EMR_POLYBEZIERTO            RecordType = 5
	EMR_POLYLINETO              RecordType = 6
	EMR_POLYPOLYLINE            RecordType = 7
	EMR_POLYPOLYGON             RecordType = 8
	EMR_SETWINDOWEXTEX          RecordType = 9
	EMR_SETWINDOWORGEX          RecordType = 10
	EMR_SETVIEWPORTEXTEX        RecordType = 11
	EMR_SETVIEWPORTORGEX        RecordType = 12
	EMR_SETBRUSHORGEX           RecordType = 13
	EMR_EOF                     RecordType = 14
	EMR_SETPIXELV               RecordType = 15
	EMR_SETMAPPERFLAGS          RecordType = 16
	EMR_SETMAPMODE              RecordType = 17
	EMR_SETBKMODE               RecordType = 18
	EMR_SETPOLYFILLMODE         RecordType = 19
	EMR_SETROP2                 RecordType = 20
	EMR_SETSTRETCHBLTMODE       RecordType = 21
	EMR_SETTEXTALIGN            RecordType = 22
	EMR_SETCOLORADJUSTMENT      RecordType = 23
	EMR_SETTEXTCOLOR            RecordType = 24
	EMR_SETBKCOLOR              RecordType = 25
	EMR_OFFSETCLIPRGN           RecordType = 26
	EMR_MOVETOEX                RecordType = 27
	EMR_SETMETARGN              RecordType = 28
	EMR_EXCLUDECLIPRECT         RecordType = 29
	EMR_INTERSECTCLIPRECT       RecordType = 30
	EMR_SCALEVIEWPORTEXTEX      RecordType = 31
	EMR_SCALEWINDOWEXTEX        RecordType = 32
	EMR_SAVEDC                  RecordType = 33
	EMR_RESTOREDC               RecordType = 34
	EMR_SETWORLDTRANSFORM       RecordType = 35
	EMR_MODIFYWORLDTRANSFORM    RecordType = 36
	EMR_SELECTOBJECT            RecordType = 37
	EMR_CREATEPEN               RecordType = 38
	EMR_CREATEBRUSHINDIRECT     RecordType = 39
	EMR_DELETEOBJECT            RecordType = 40
	EMR_ANGLEARC                RecordType = 41
	EMR_ELLIPSE                 RecordType = 42
	EMR_RECTANGLE               RecordType = 43
	EMR_ROUNDRECT               RecordType = 44
	EMR_ARC                     RecordType = 45
	EMR_CHORD                   RecordType = 46
	EMR_PIE                     RecordType = 47
	EMR_SELECTPALETTE           RecordType = 48
	EMR_CREATEPALETTE           RecordType = 49
	EMR_SETPALETTEENTRIES       RecordType = 50
	EMR_RESIZEPALETTE           RecordType = 51
	EMR_REALIZEPALETTE          RecordType = 52
	EMR_EXTFLOODFILL            RecordType = 53
	EMR_LINETO                  RecordType = 54
	EMR_ARCTO                   RecordType = 55
	EMR_POLYDRAW                RecordType = 56
	EMR_SETARCDIRECTION         RecordType = 57
	EMR_SETMITERLIMIT           RecordType = 58
	EMR_BEGINPATH               RecordType = 59
	EMR_ENDPATH                 RecordType = 60
	EMR_CLOSEFIGURE             RecordType = 61
	EMR_FILLPATH                RecordType = 62
	EMR_STROKEANDFILLPATH       RecordType = 63
	EMR_STROKEPATH              RecordType = 64
	EMR_FLATTENPATH             RecordType = 65
	EMR_WIDENPATH               RecordType = 66
	EMR_SELECTCLIPPATH          RecordType = 67
	EMR_ABORTPATH               RecordType = 68
	EMR_GDICOMMENT              RecordType = 70
	EMR_FILLRGN                 RecordType = 71
	EMR_FRAMERGN                RecordType = 72
	EMR_INVERTRGN               RecordType = 73
	EMR_PAINTRGN                RecordType = 74
	EMR_EXTSELECTCLIPRGN        RecordType = 75
	EMR_BITBLT                  RecordType = 76
	EMR_STRETCHBLT              RecordType = 77
	EMR_MASKBLT                 RecordType = 78
	EMR_PLGBLT                  RecordType = 79
	EMR_SETDIBITSTODEVICE       RecordType = 80
	EMR_STRETCHDIBITS           RecordType = 81
	EMR_EXTCREATEFONTINDIRECTW  RecordType = 82
	EMR_EXTTEXTOUTA             RecordType = 83
	EMR_EXTTEXTOUTW             RecordType = 84
	EMR_POLYBEZIER16            RecordType = 85
	EMR_POLYGON16               RecordType = 86
	EMR_POLYLINE16              RecordType = 87
	EMR_POLYBEZIERTO16          RecordType = 88
	EMR_POLYLINETO16            RecordType = 89
	EMR_POLYPOLYLINE16          RecordType = 90
	EMR_POLYPOLYGON16           RecordType = 91
	EMR_POLYDRAW16              RecordType = 92
	EMR_CREATEMONOBRUSH         RecordType = 93
	EMR_CREATEDIBPATTERNBRUSHPT RecordType = 94
	EMR_EXTCREATEPEN            RecordType = 95
	EMR_POLYTEXTOUTA            RecordType = 96
	EMR_POLYTEXTOUTW            RecordType = 97
	EMR_SETICMMODE              RecordType = 98
	EMR_CREATECOLORSPACE        RecordType = 99
	EMR_SETCOLORSPACE           RecordType = 100
	EMR_DELETECOLORSPACE        RecordType = 101
	EMR_GLSRECORD               RecordType = 102
	EMR_GLSBOUNDEDRECORD        RecordType = 103
	EMR_PIXELFORMAT             RecordType = 104
	EMR_DRAWESCAPE              RecordType = 105
	EMR_EXTESCAPE               RecordType = 106
	EMR_SMALLTEXTOUT            RecordType = 108
	EMR_FORCEUFIMAPPING         RecordType = 109
	EMR_NAMEDESCAPE             RecordType = 110
	EMR_COLORCORRECTPALETTE     RecordType = 111
	EMR_SETICMPROFILEA          RecordType = 112
	EMR_SETICMPROFILEW          RecordType = 113
	EMR_ALPHABLEND              RecordType = 114
	EMR_SETLAYOUT               RecordType = 115
	EMR_TRANSPARENTBLT          RecordType = 116
	EMR_GRADIENTFILL            RecordType = 118
	EMR_SETLINKEDUFIS           RecordType = 119
	EMR_SETTEXTJUSTIFICATION    RecordType = 120
	EMR_COLORMATCHTOTARGETW     RecordType = 121
	EMR_CREATECOLORSPACEW       RecordType = 122
)

// String returns the record type name without the EMR_ prefix.
func (t RecordType) String() string {
	if e, ok := catalog[t]; ok {
		return e.name
	}
	return fmt.Sprintf("Unknown(%d)", uint32(t))
}

// Known reports whether the type has a catalog entry.
func (t RecordType) Known() bool {
	_, ok := catalog[t]
	return ok
}

// Category groups record types by what they do.
type Category uint8

const (
	CategoryUnknown Category = iota
	CategoryControl
	CategoryState
	CategoryClipping
	CategoryObject
	CategoryObjManipulation
	CategoryDrawing
	CategoryBitmap
	CategoryTransform
)

func (c Category) String() string {
	switch c {
	case CategoryControl:
		return "control"
	case CategoryState:
		return "state"
	case CategoryClipping:
		return "clipping"
	case CategoryObject:
		return "object"
	case CategoryObjManipulation:
		return "object manipulation"
	case CategoryDrawing:
		return "drawing"
	case CategoryBitmap:
		return "bitmap"
	case CategoryTransform:
		return "transform"
	default:
		return "unknown"
	}
}

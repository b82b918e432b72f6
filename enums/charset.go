package enums

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Font character sets (LOGFONT lfCharSet).
const (
	ANSI_CHARSET        = 0
	DEFAULT_CHARSET     = 1
	SYMBOL_CHARSET      = 2
	MAC_CHARSET         = 77
	SHIFTJIS_CHARSET    = 128
	HANGUL_CHARSET      = 129
	JOHAB_CHARSET       = 130
	GB2312_CHARSET      = 134
	CHINESEBIG5_CHARSET = 136
	GREEK_CHARSET       = 161
	TURKISH_CHARSET     = 162
	VIETNAMESE_CHARSET  = 163
	HEBREW_CHARSET      = 177
	ARABIC_CHARSET      = 178
	BALTIC_CHARSET      = 186
	RUSSIAN_CHARSET     = 204
	THAI_CHARSET        = 222
	EASTEUROPE_CHARSET  = 238
	OEM_CHARSET         = 255
)

// Encoding returns the text encoding used by 8-bit strings drawn with a font
// of the given character set. Unknown sets fall back to Windows-1252.
func Encoding(charset uint8) encoding.Encoding {
	switch charset {
	case SHIFTJIS_CHARSET:
		return japanese.ShiftJIS
	case HANGUL_CHARSET, JOHAB_CHARSET:
		return korean.EUCKR
	case GB2312_CHARSET:
		return simplifiedchinese.GBK
	case CHINESEBIG5_CHARSET:
		return traditionalchinese.Big5
	case GREEK_CHARSET:
		return charmap.Windows1253
	case TURKISH_CHARSET:
		return charmap.Windows1254
	case VIETNAMESE_CHARSET:
		return charmap.Windows1258
	case HEBREW_CHARSET:
		return charmap.Windows1255
	case ARABIC_CHARSET:
		return charmap.Windows1256
	case BALTIC_CHARSET:
		return charmap.Windows1257
	case RUSSIAN_CHARSET:
		return charmap.Windows1251
	case THAI_CHARSET:
		return charmap.Windows874
	case EASTEUROPE_CHARSET:
		return charmap.Windows1250
	case MAC_CHARSET:
		return charmap.Macintosh
	case OEM_CHARSET:
		return charmap.CodePage437
	default:
		return charmap.Windows1252
	}
}

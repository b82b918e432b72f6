package enums

import (
	"fmt"
	"strings"
)

// Text alignment bits.
const (
	TA_UPDATECP   = 0x0001
	TA_RIGHT      = 0x0002
	TA_CENTER     = 0x0006
	TA_BOTTOM     = 0x0008
	TA_BASELINE   = 0x0018
	TA_RTLREADING = 0x0100
)

// ExtTextOut option bits.
const (
	ETO_OPAQUE         = 0x0002
	ETO_CLIPPED        = 0x0004
	ETO_GLYPH_INDEX    = 0x0010
	ETO_RTLREADING     = 0x0080
	ETO_NO_RECT        = 0x0100
	ETO_SMALL_CHARS    = 0x0200
	ETO_IGNORELANGUAGE = 0x1000
	ETO_PDY            = 0x2000
)

// Extended pen style masks.
const (
	PS_STYLE_MASK  = 0x0000000F
	PS_ENDCAP_MASK = 0x00000F00
	PS_JOIN_MASK   = 0x0000F000
	PS_TYPE_MASK   = 0x000F0000
	PS_GEOMETRIC   = 0x00010000
)

// Raster operation modifier bits.
const (
	NOMIRRORBITMAP = 0x80000000
	CAPTUREBLT     = 0x40000000
)

// Flag-style field roles. Each renders the raw value in hexadecimal followed
// by the decoded parts.
var (
	TextAlign         = FormatFunc(textAlign)
	ExtPenStyle       = FormatFunc(extPenStyle)
	ExtTextOutOptions = FormatFunc(extTextOutOptions)
	RasterOp          = FormatFunc(rasterOp)
	BlendFunction     = FormatFunc(blendFunction)
)

func textAlign(v uint32) string {
	var parts []string
	switch v & TA_CENTER {
	case TA_CENTER:
		parts = append(parts, "TA_CENTER")
	case TA_RIGHT:
		parts = append(parts, "TA_RIGHT")
	default:
		parts = append(parts, "TA_LEFT")
	}
	switch v & TA_BASELINE {
	case TA_BASELINE:
		parts = append(parts, "TA_BASELINE")
	case TA_BOTTOM:
		parts = append(parts, "TA_BOTTOM")
	default:
		parts = append(parts, "TA_TOP")
	}
	if v&TA_UPDATECP != 0 {
		parts = append(parts, "TA_UPDATECP")
	}
	if v&TA_RTLREADING != 0 {
		parts = append(parts, "TA_RTLREADING")
	}
	return fmt.Sprintf("0x%04X  %s", v, strings.Join(parts, " | "))
}

var extPenTypes = map[uint32]string{
	0: "PS_SOLID",
	1: "PS_DASH",
	2: "PS_DOT",
	3: "PS_DASHDOT",
	4: "PS_DASHDOTDOT",
	5: "PS_NULL",
	6: "PS_INSIDEFRAME",
	7: "PS_USERSTYLE",
	8: "PS_ALTERNATE",
}

func extPenStyle(v uint32) string {
	var parts []string
	if name, ok := extPenTypes[v&PS_STYLE_MASK]; ok {
		parts = append(parts, name)
	}
	switch v & PS_ENDCAP_MASK {
	case 0x000:
		parts = append(parts, "PS_ENDCAP_ROUND")
	case 0x100:
		parts = append(parts, "PS_ENDCAP_SQUARE")
	case 0x200:
		parts = append(parts, "PS_ENDCAP_FLAT")
	}
	switch v & PS_JOIN_MASK {
	case 0x0000:
		parts = append(parts, "PS_JOIN_ROUND")
	case 0x1000:
		parts = append(parts, "PS_JOIN_BEVEL")
	case 0x2000:
		parts = append(parts, "PS_JOIN_MITER")
	}
	if v&PS_TYPE_MASK == PS_GEOMETRIC {
		parts = append(parts, "PS_GEOMETRIC")
	} else {
		parts = append(parts, "PS_COSMETIC")
	}
	return fmt.Sprintf("0x%08X  %s", v, strings.Join(parts, " | "))
}

func extTextOutOptions(v uint32) string {
	var parts []string
	for _, f := range []struct {
		bit  uint32
		name string
	}{
		{ETO_OPAQUE, "ETO_OPAQUE"},
		{ETO_CLIPPED, "ETO_CLIPPED"},
		{ETO_GLYPH_INDEX, "ETO_GLYPH_INDEX"},
		{ETO_RTLREADING, "ETO_RTLREADING"},
		{ETO_NO_RECT, "ETO_NO_RECT"},
		{ETO_SMALL_CHARS, "ETO_SMALL_CHARS (ANSI)"},
		{ETO_IGNORELANGUAGE, "ETO_IGNORELANGUAGE"},
		{ETO_PDY, "ETO_PDY"},
	} {
		if v&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	if v&ETO_SMALL_CHARS == 0 {
		parts = append(parts, "Unicode")
	}
	return fmt.Sprintf("0x%08X  %s", v, strings.Join(parts, " | "))
}

func rasterOp(v uint32) string {
	var parts []string
	base := v
	if v&NOMIRRORBITMAP != 0 {
		parts = append(parts, "NOMIRRORBITMAP")
		base &^= NOMIRRORBITMAP
	}
	if v&CAPTUREBLT != 0 {
		parts = append(parts, "CAPTUREBLT")
		base &^= CAPTUREBLT
	}
	if l, ok := RasterOps.Label(base); ok {
		parts = append(parts, l)
	}
	s := fmt.Sprintf("0x%08X", v)
	if len(parts) > 0 {
		s += "  " + strings.Join(parts, " | ")
	}
	return s
}

// blendFunction decodes a packed BLENDFUNCTION: op, flags, constant alpha
// and alpha format from the low byte up.
func blendFunction(v uint32) string {
	op := v & 0xFF
	flags := (v >> 8) & 0xFF
	alpha := (v >> 16) & 0xFF
	format := (v >> 24) & 0xFF

	var b strings.Builder
	if op == 0 {
		b.WriteString("AC_SRC_OVER")
	} else {
		fmt.Fprintf(&b, "BlendOp=%d", op)
	}
	if flags != 0 {
		fmt.Fprintf(&b, ", BlendFlags=%d", flags)
	}
	fmt.Fprintf(&b, ", Alpha=%d", alpha)
	if format&0x01 != 0 {
		b.WriteString(", AC_SRC_ALPHA")
	} else if format != 0 {
		fmt.Fprintf(&b, ", AlphaFormat=%d", format)
	}
	return b.String()
}

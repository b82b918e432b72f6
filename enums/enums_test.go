package enums

import (
	"strings"
	"testing"
)

func TestTablesLabelEveryValue(t *testing.T) {
	seen := make(map[string]bool)
	for _, tbl := range Tables() {
		if seen[tbl.Name] {
			t.Errorf("table %s registered twice", tbl.Name)
		}
		seen[tbl.Name] = true
		if len(tbl.Labels) == 0 {
			t.Errorf("table %s is empty", tbl.Name)
		}
		for _, v := range tbl.Values() {
			l, ok := tbl.Label(v)
			if !ok || l == "" {
				t.Errorf("%s: value %d has no label", tbl.Name, v)
			}
			if got := tbl.Format(v); !strings.HasSuffix(got, "  "+l) {
				t.Errorf("%s.Format(%d) = %q, want suffix %q", tbl.Name, v, got, l)
			}
		}
	}
}

func TestTableFormatUnknown(t *testing.T) {
	tests := []struct {
		tbl  *Table
		v    uint32
		want string
	}{
		{MapMode, 8, "8  MM_ANISOTROPIC"},
		{MapMode, 99, "99"},
		{BkMode, 0, "0"},
		{FontWeight, 700, "700  FW_BOLD"},
		{FontWeight, 0xFFFFFFFF, "-1"},
		{ColorSpaceType, 0x73524742, "0x73524742  LCS_sRGB"},
		{ColorSpaceType, 7, "0x00000007"},
		{PlusRecordType, 0x4001, "0x00004001  Header"},
		{PlusRecordType, 0x403A, "0x0000403A  SetTSClip"},
		{PlusRecordType, 0x403B, "0x0000403B"},
	}
	for _, tt := range tests {
		if got := tt.tbl.Format(tt.v); got != tt.want {
			t.Errorf("%s.Format(%d) = %q, want %q", tt.tbl.Name, tt.v, got, tt.want)
		}
		// stable across calls
		if a, b := tt.tbl.Format(tt.v), tt.tbl.Format(tt.v); a != b {
			t.Errorf("%s.Format(%d) not stable: %q vs %q", tt.tbl.Name, tt.v, a, b)
		}
	}
}

func TestFlagFormatters(t *testing.T) {
	tests := []struct {
		name string
		f    Formatter
		v    uint32
		want string
	}{
		{"TextAlign default", TextAlign, 0, "0x0000  TA_LEFT | TA_TOP"},
		{"TextAlign center baseline", TextAlign, TA_CENTER | TA_BASELINE | TA_UPDATECP, "0x001F  TA_CENTER | TA_BASELINE | TA_UPDATECP"},
		{"ExtTextOut unicode", ExtTextOutOptions, ETO_OPAQUE, "0x00000002  ETO_OPAQUE | Unicode"},
		{"ExtTextOut empty", ExtTextOutOptions, 0, "0x00000000  Unicode"},
		{"ExtTextOut small", ExtTextOutOptions, ETO_SMALL_CHARS | ETO_CLIPPED, "0x00000204  ETO_CLIPPED | ETO_SMALL_CHARS (ANSI)"},
		{"RasterOp plain", RasterOp, 0x00CC0020, "0x00CC0020  SRCCOPY"},
		{"RasterOp flags", RasterOp, 0x00CC0020 | CAPTUREBLT, "0x40CC0020  CAPTUREBLT | SRCCOPY"},
		{"RasterOp unknown", RasterOp, 0x00123456, "0x00123456"},
		{"Blend", BlendFunction, 0x01FF0000, "AC_SRC_OVER, Alpha=255, AC_SRC_ALPHA"},
		{"Blend op", BlendFunction, 0x00800003, "BlendOp=3, Alpha=128"},
		{"ExtPen", ExtPenStyle, 0x00012201, "0x00012201  PS_DASH | PS_ENDCAP_FLAT | PS_JOIN_MITER | PS_GEOMETRIC"},
		{"ExtPen cosmetic", ExtPenStyle, 0, "0x00000000  PS_SOLID | PS_ENDCAP_ROUND | PS_JOIN_ROUND | PS_COSMETIC"},
		{"BrushData", PlusBrushData, 0x3, "0x00000003  Path | Transform"},
		{"BrushData none", PlusBrushData, 0, "0x00000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Format(tt.v); got != tt.want {
				t.Errorf("Format(0x%X) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestStockObject(t *testing.T) {
	name, ok := StockObject(0x80000000)
	if !ok || name != "WHITE_BRUSH" {
		t.Errorf("StockObject(0x80000000) = %q, %v, want WHITE_BRUSH, true", name, ok)
	}
	if _, ok := StockObject(7); ok {
		t.Error("StockObject(7) resolved without the stock bit")
	}
	if got := FormatHandle(0x80000000 | 9); got != "Unknown (80000009)" {
		t.Errorf("FormatHandle(index 9) = %q, want %q", got, "Unknown (80000009)")
	}
	if _, ok := StockObject(0x80001000); ok {
		t.Error("StockObject out of range resolved")
	}
	if got := FormatHandle(0x80000007); got != "BLACK_PEN (80000007)" {
		t.Errorf("FormatHandle = %q, want %q", got, "BLACK_PEN (80000007)")
	}
	if got := FormatHandle(3); got != "3" {
		t.Errorf("FormatHandle(3) = %q, want %q", got, "3")
	}
}

func TestEncoding(t *testing.T) {
	b := []byte{0x82, 0xA0} // hiragana A in Shift JIS
	out, err := Encoding(SHIFTJIS_CHARSET).NewDecoder().Bytes(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(out) != "あ" {
		t.Errorf("ShiftJIS decode = %q, want %q", out, "あ")
	}
	if Encoding(ANSI_CHARSET) != Encoding(200) {
		t.Error("unknown charset should fall back to the ANSI encoding")
	}
}

func TestHex(t *testing.T) {
	if got := Hex(0xAB); got != "000000AB" {
		t.Errorf("Hex(0xAB) = %q, want %q", got, "000000AB")
	}
}

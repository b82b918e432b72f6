package enums

import "fmt"

// StockFlag marks a handle as one of the predefined stock objects.
const StockFlag uint32 = 0x80000000

var stockNames = map[uint32]string{
	0:  "WHITE_BRUSH",
	1:  "LTGRAY_BRUSH",
	2:  "GRAY_BRUSH",
	3:  "DKGRAY_BRUSH",
	4:  "BLACK_BRUSH",
	5:  "NULL_BRUSH",
	6:  "WHITE_PEN",
	7:  "BLACK_PEN",
	8:  "NULL_PEN",
	9:  "Unknown",
	10: "OEM_FIXED_FONT",
	11: "ANSI_FIXED_FONT",
	12: "ANSI_VAR_FONT",
	13: "SYSTEM_FONT",
	14: "DEVICE_DEFAULT_FONT",
	15: "DEFAULT_PALETTE",
	16: "SYSTEM_FIXED_FONT",
	17: "DEFAULT_GUI_FONT",
	18: "DC_BRUSH",
	19: "DC_PEN",
}

// IsStock reports whether h carries the stock object bit.
func IsStock(h uint32) bool {
	return h&StockFlag != 0
}

// StockObject returns the name of the stock object h refers to. It reports
// false when the stock bit is clear or the index is outside the known set.
func StockObject(h uint32) (string, bool) {
	if !IsStock(h) {
		return "", false
	}
	name, ok := stockNames[h&^StockFlag]
	return name, ok
}

// FormatHandle renders an object handle, naming stock objects.
func FormatHandle(h uint32) string {
	if name, ok := StockObject(h); ok {
		return fmt.Sprintf("%s (%08X)", name, h)
	}
	return fmt.Sprintf("%d", h)
}

// StockObjects lists the stock table for legend output.
var StockObjects = register(&Table{Name: "StockObject", Hex: true, Labels: stockLabels()})

func stockLabels() map[uint32]string {
	m := make(map[uint32]string, len(stockNames))
	for i, n := range stockNames {
		m[i|StockFlag] = n
	}
	return m
}

package stream

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16 decodes UTF-16LE bytes, stopping at the first NUL code unit.
// A trailing odd byte is ignored.
func DecodeUTF16(b []byte) string {
	b = b[:len(b)&^1]
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			b = b[:i]
			break
		}
	}
	if len(b) == 0 {
		return ""
	}
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}

// DecodeANSI decodes 8-bit text with the given encoding, stopping at the
// first NUL. A nil encoding means Windows-1252.
func DecodeANSI(b []byte, enc encoding.Encoding) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if len(b) == 0 {
		return ""
	}
	if enc == nil {
		enc = charmap.Windows1252
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

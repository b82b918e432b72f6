package emf

import (
	"fmt"

	"github.com/skdltmxn/emf-go/enums"
	"github.com/skdltmxn/emf-go/internal/records"
	"github.com/skdltmxn/emf-go/internal/stream"
	"github.com/skdltmxn/emf-go/props"
)

// Signature is the dSignature value of a valid header (" EMF").
const Signature = 0x464D4520

// Record sizes at which optional header fields appear.
const (
	headerSizeBase      = 88
	headerSizeExtension = 100 // cbPixelFormat, offPixelFormat, bOpenGL
	headerSizeMicro     = 108 // szlMicrometers
)

var layoutHeader = &records.Layout{Name: "ENHMETAHEADER", Fields: []records.Field{
	records.F("rclBounds", records.Rect),
	records.F("rclFrame", records.Rect),
	records.F("dSignature", records.Hex),
	records.F("nVersion", records.Hex),
	records.F("nBytes", records.U32),
	records.F("nRecords", records.U32),
	records.F("nHandles", records.U16),
	records.F("sReserved", records.U16),
	records.F("nDescription", records.U32),
	records.F("offDescription", records.U32),
	records.F("nPalEntries", records.U32),
	records.F("szlDevice", records.Size),
	records.F("szlMillimeters", records.Size),
	records.Gate(records.F("cbPixelFormat", records.U32), headerSizeExtension),
	records.Gate(records.F("offPixelFormat", records.U32), headerSizeExtension),
	records.Gate(records.F("bOpenGL", records.U32), headerSizeExtension),
	records.Gate(records.F("szlMicrometers", records.Size), headerSizeMicro),
}}

// Header is the decoded stream header.
type Header struct {
	Bounds      props.RectL // inclusive bounds in device units
	Frame       props.RectL // inclusive frame in 0.01 mm units
	Signature   uint32
	Version     uint32
	Bytes       uint32
	Records     uint32
	Handles     uint16
	Description string
	PalEntries  uint32
	Device      props.SizeL
	Millimeters props.SizeL

	// Set when the header carries the extension fields.
	HasPixelFormat bool
	OpenGL         bool

	Micrometers    props.SizeL
	HasMicrometers bool
}

func parseHeader(r *Record) (*Header, error) {
	if r.Size() < headerSizeBase {
		return nil, fmt.Errorf("emf: header of %d bytes: %w", r.Size(), records.ErrTruncated)
	}
	rd := r.view.Reader()
	h := &Header{}
	var err error
	read32 := func() uint32 {
		var v uint32
		if err == nil {
			v, err = rd.ReadU32()
		}
		return v
	}
	readSize := func() props.SizeL {
		return props.SizeL{CX: int32(read32()), CY: int32(read32())}
	}

	if h.Bounds, err = records.ReadRect(rd); err != nil {
		return nil, err
	}
	if h.Frame, err = records.ReadRect(rd); err != nil {
		return nil, err
	}
	h.Signature = read32()
	h.Version = read32()
	h.Bytes = read32()
	h.Records = read32()
	handles := read32()
	h.Handles = uint16(handles)
	nDesc := read32()
	offDesc := read32()
	h.PalEntries = read32()
	h.Device = readSize()
	h.Millimeters = readSize()
	if err != nil {
		return nil, fmt.Errorf("emf: failed to read header: %w", err)
	}

	h.Description, _ = headerDescription(r, nDesc, offDesc)
	if r.Size() >= headerSizeExtension {
		cb := read32()
		read32()
		h.OpenGL = read32() != 0
		h.HasPixelFormat = cb != 0
	}
	if r.Size() >= headerSizeMicro {
		h.Micrometers = readSize()
		h.HasMicrometers = err == nil
	}
	return h, nil
}

// headerDescription decodes the UTF-16 description. Both the count and the
// offset must be non-zero and the string must lie inside the record.
func headerDescription(r *Record, n, off uint32) (string, bool) {
	if n == 0 || off == 0 || n > r.Size()/2 {
		return "", false
	}
	b, ok := r.view.Span(off, n*2)
	if !ok {
		return "", false
	}
	// the description is two NUL-separated strings: application and picture
	for i := 0; i+1 < len(b)-2; i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			app := stream.DecodeUTF16(b[:i])
			pic := stream.DecodeUTF16(b[i+2:])
			if pic == "" {
				return app, true
			}
			return app + " / " + pic, true
		}
	}
	return stream.DecodeUTF16(b), true
}

func buildHeader(r *Record, root *props.Node) {
	vals := r.walk(root, layoutHeader)

	if sig := root.Child("dSignature"); sig != nil && uint32(sig.Raw) == Signature {
		sig.Str += "  ENHMETA_SIGNATURE"
	}
	if desc, ok := headerDescription(r, vals["nDescription"], vals["offDescription"]); ok {
		root.AddText("Description", desc)
	}

	if cb, off := vals["cbPixelFormat"], vals["offPixelFormat"]; cb != 0 && off != 0 {
		if b, ok := r.view.Span(off, cb); ok {
			pf := root.AddBranch("PixelFormat")
			if _, err := records.Walk(stream.NewReader(b), layoutPixelFormat, cb, pf); err != nil {
				r.file.log.Debug("pixel format truncated", "index", r.Index(), "err", err)
			}
		}
	}

	if h := r.file.plus; h != nil {
		gdip := root.AddBranch("GDI+ Header")
		buildPlusHeader(gdip, h)
		if pr := r.file.plusRecord; pr != nil {
			gdip.AddValue("Record", int64(pr.Index()), fmt.Sprintf("#%d", pr.Index()))
		}
	}
}

func buildPlusHeader(n *props.Node, h *PlusHeader) {
	n.AddValue("Flags", int64(h.Flags), fmt.Sprintf("0x%04X  %s", h.Flags, dualLabel(h.Dual())))
	n.AddValue("Version", int64(h.Version),
		fmt.Sprintf("0x%08X  signature 0x%05X, graphics version %d", h.Version, h.Signature(), h.GraphicsVersion()))
	n.AddValue("EmfPlusFlags", int64(h.EmfPlusFlags), enums.PlusHeaderFlags.Format(h.EmfPlusFlags))
	n.AddUint("LogicalDpiX", h.DpiX)
	n.AddUint("LogicalDpiY", h.DpiY)
}

func dualLabel(dual bool) string {
	if dual {
		return "EMF+ Dual"
	}
	return "EMF+ Only"
}

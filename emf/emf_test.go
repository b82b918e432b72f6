package emf

import (
	"errors"
	"image"
	"slices"
	"testing"

	"github.com/skdltmxn/emf-go/enums"
	"github.com/skdltmxn/emf-go/internal/records"
	"github.com/skdltmxn/emf-go/props"
)

func TestHeaderAndOpaqueRecord(t *testing.T) {
	f := mustOpen(t, buildStream(header(), rec(200, nil)))

	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	if err := f.ScanErr(); err != nil {
		t.Errorf("ScanErr() = %v, want nil", err)
	}

	h := mustRecord(t, f, 0)
	bounds := h.Properties().Child("rclBounds")
	if bounds == nil || bounds.Kind != props.Rect {
		t.Fatalf("rclBounds = %v, want a rectangle", bounds)
	}
	if want := (props.RectL{Right: 100, Bottom: 100}); bounds.Rect != want {
		t.Errorf("rclBounds = %v, want %v", bounds.Rect, want)
	}

	u := mustRecord(t, f, 1)
	if u.Category() != CategoryUnknown {
		t.Errorf("Category() = %v, want unknown", u.Category())
	}
	if u.Type().Known() {
		t.Error("Type().Known() = true for tag 200")
	}
	if u.Name() != "Unknown(200)" {
		t.Errorf("Name() = %q", u.Name())
	}
	if n := u.Properties().Len(); n != 2 {
		t.Errorf("opaque record has %d properties, want 2", n)
	}
}

func TestHeaderDecode(t *testing.T) {
	f := mustOpen(t, buildStream(header()))
	hdr, err := f.Header()
	if err != nil {
		t.Fatalf("Header: %v", err)
	}
	if hdr.Signature != Signature {
		t.Errorf("Signature = %08X", hdr.Signature)
	}
	if hdr.Handles != 4 {
		t.Errorf("Handles = %d, want 4", hdr.Handles)
	}
	if hdr.Device != (props.SizeL{CX: 1024, CY: 768}) {
		t.Errorf("Device = %v", hdr.Device)
	}
	if hdr.HasPixelFormat || hdr.HasMicrometers {
		t.Error("base header reports extension fields")
	}
}

func TestHeaderGatedFields(t *testing.T) {
	bounds := props.RectL{Right: 10, Bottom: 10}
	tests := []struct {
		name  string
		extra payload
		want  []string
		skip  []string
	}{
		{"base", nil, nil, []string{"cbPixelFormat", "bOpenGL", "szlMicrometers"}},
		{"extension", payload(nil).u32(0, 0, 1), []string{"cbPixelFormat", "bOpenGL"}, []string{"szlMicrometers"}},
		{"micrometers", payload(nil).u32(0, 0, 0).i32(320000, 240000), []string{"bOpenGL", "szlMicrometers"}, nil},
		{"short extension", payload(nil).u32(0, 0), nil, []string{"cbPixelFormat", "bOpenGL"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := append(headerData(bounds), tt.extra...)
			f := mustOpen(t, buildStream(rec(EMR_HEADER, data)))
			root := mustRecord(t, f, 0).Properties()
			for _, name := range tt.want {
				if root.Child(name) == nil {
					t.Errorf("%s missing", name)
				}
			}
			for _, name := range tt.skip {
				if root.Child(name) != nil {
					t.Errorf("%s present", name)
				}
			}
		})
	}
}

func TestHeaderDescription(t *testing.T) {
	data := append(headerData(props.RectL{Right: 10, Bottom: 10}), payload(nil).u32(0, 0, 0).i32(0, 0)...)
	desc := payload(nil).utf16("App\x00Pic\x00")
	// nDescription and offDescription sit after nHandles and sReserved
	copy(data[52:], payload(nil).u32(uint32(len(desc)/2), headerSizeMicro))
	f := mustOpen(t, buildStream(rec(EMR_HEADER, append(data, desc...))))

	n := mustRecord(t, f, 0).Properties().Child("Description")
	if n == nil || n.Str != "App / Pic" {
		t.Errorf("Description = %v, want App / Pic", n)
	}
	hdr, _ := f.Header()
	if hdr.Description != "App / Pic" {
		t.Errorf("Header().Description = %q", hdr.Description)
	}

	// an offset outside the record is ignored
	copy(data[52:], payload(nil).u32(4, 4000))
	f = mustOpen(t, buildStream(rec(EMR_HEADER, data)))
	if n := mustRecord(t, f, 0).Properties().Child("Description"); n != nil {
		t.Errorf("Description = %v, want none", n)
	}
}

func TestSelectDeleteSelect(t *testing.T) {
	f := mustOpen(t, buildStream(header(),
		createPen(1, 0x0000FF),
		selectObject(1),
		deleteObject(1),
		selectObject(1),
	))

	if got := linkTargets(mustRecord(t, f, 2)); !slices.Equal(got, []int{1}) {
		t.Errorf("first select links to %v, want [1]", got)
	}
	l := mustRecord(t, f, 2).Links()[0]
	if l.SourceKind != KindObjManipulation || l.TargetKind != KindObject {
		t.Errorf("link kind = %v", l)
	}
	if got := linkTargets(mustRecord(t, f, 3)); !slices.Equal(got, []int{1}) {
		t.Errorf("delete links to %v, want [1]", got)
	}
	if got := mustRecord(t, f, 4).Links(); len(got) != 0 {
		t.Errorf("select after delete has links %v", got)
	}
	if got := len(mustRecord(t, f, 1).Referrers()); got != 2 {
		t.Errorf("create has %d referrers, want 2", got)
	}
}

func TestHandleReuse(t *testing.T) {
	f := mustOpen(t, buildStream(header(),
		createPen(3, 0),
		selectObject(3),
		deleteObject(3),
		createBrush(3, 0, 0x00FF00, 0),
		selectObject(3),
	))
	if got := linkTargets(mustRecord(t, f, 5)); !slices.Equal(got, []int{4}) {
		t.Errorf("select after reuse links to %v, want [4]", got)
	}
	if got := linkTargets(mustRecord(t, f, 2)); !slices.Equal(got, []int{1}) {
		t.Errorf("select before reuse links to %v, want [1]", got)
	}
}

func TestCreateOverwritesWithoutDelete(t *testing.T) {
	f := mustOpen(t, buildStream(header(),
		createPen(1, 0),
		createPen(1, 0xFFFFFF),
		selectObject(1),
	))
	if got := linkTargets(mustRecord(t, f, 3)); !slices.Equal(got, []int{2}) {
		t.Errorf("select links to %v, want [2]", got)
	}
}

func TestStockObjects(t *testing.T) {
	f := mustOpen(t, buildStream(header(),
		selectObject(enums.StockFlag|4),
		createPen(enums.StockFlag|1, 0),
		selectObject(enums.StockFlag|1),
		selectObject(enums.StockFlag|99),
	))

	r := mustRecord(t, f, 1)
	if name, ok := r.StockObject(); !ok || name != "BLACK_BRUSH" {
		t.Errorf("StockObject() = %q, %v", name, ok)
	}
	if len(r.Links()) != 0 {
		t.Errorf("stock select has links")
	}
	if s := r.Properties().Child("ihObject").Str; s != "BLACK_BRUSH (80000004)" {
		t.Errorf("ihObject = %q", s)
	}

	if len(mustRecord(t, f, 3).Links()) != 0 {
		t.Error("stock handle was stored by a creation record")
	}
	if f.PeakHandles() != 0 {
		t.Errorf("PeakHandles() = %d, want 0", f.PeakHandles())
	}

	unknown := mustRecord(t, f, 4)
	if _, ok := unknown.StockObject(); ok {
		t.Error("out-of-range stock index resolved")
	}
	if s := unknown.Properties().Child("ihObject").Str; s != "2147483747" {
		t.Errorf("ihObject = %q, want raw value", s)
	}
}

func TestRestoreDC(t *testing.T) {
	tests := []struct {
		rel  int32
		want []int
	}{
		{-1, []int{2}},
		{-2, []int{1}},
		{1, []int{1}},
		{2, []int{2}},
		{-3, nil},
		{3, nil},
		{0, nil},
	}
	for _, tt := range tests {
		f := mustOpen(t, buildStream(header(), saveDC(), saveDC(), restoreDC(tt.rel)))
		r := mustRecord(t, f, 3)
		if got := linkTargets(r); !slices.Equal(got, tt.want) {
			t.Errorf("restore(%d) links to %v, want %v", tt.rel, got, tt.want)
		}
		for _, l := range r.Links() {
			if l.SourceKind != KindGraphicState || l.TargetKind != KindGraphicState {
				t.Errorf("restore(%d) link kind = %v", tt.rel, l)
			}
		}
	}
}

func TestRestoreDCPopsStack(t *testing.T) {
	f := mustOpen(t, buildStream(header(),
		saveDC(), saveDC(), saveDC(),
		restoreDC(-2), // back to the second save
		restoreDC(-1), // now the first save is on top
	))
	if got := linkTargets(mustRecord(t, f, 4)); !slices.Equal(got, []int{2}) {
		t.Errorf("first restore links to %v, want [2]", got)
	}
	if got := linkTargets(mustRecord(t, f, 5)); !slices.Equal(got, []int{1}) {
		t.Errorf("second restore links to %v, want [1]", got)
	}
}

func TestPaletteAndColorSpaceLinks(t *testing.T) {
	f := mustOpen(t, buildStream(header(),
		rec(EMR_CREATEPALETTE, payload(nil).u32(2).u16(0x300, 1).u32(0x00FF0000)),
		rec(EMR_SELECTPALETTE, payload(nil).u32(2)),
		rec(EMR_RESIZEPALETTE, payload(nil).u32(2, 4)),
		rec(EMR_SETCOLORSPACE, payload(nil).u32(2)),
	))
	for i := 2; i <= 3; i++ {
		r := mustRecord(t, f, i)
		if len(r.Links()) != 1 || r.Links()[0].TargetKind != KindPalette {
			t.Errorf("record %d links = %v, want one palette link", i, r.Links())
		}
	}
	// the colour space lookup still resolves through the shared table
	if l := mustRecord(t, f, 4).Links(); len(l) != 1 || l[0].TargetKind != KindColorSpace {
		t.Errorf("set colour space links = %v", l)
	}
}

func TestRegionBrushLink(t *testing.T) {
	f := mustOpen(t, buildStream(header(),
		createBrush(5, 0, 0, 0),
		rec(EMR_FILLRGN, payload(nil).rect(0, 0, 10, 10).u32(0, 5)),
	))
	l := mustRecord(t, f, 2).Links()
	if len(l) != 1 || l[0].Target.Index() != 1 || l[0].TargetKind != KindBrush {
		t.Errorf("fill region links = %v", l)
	}
}

func TestFramingErrorKeepsPartialResult(t *testing.T) {
	bad := payload(nil).u32(uint32(EMR_SAVEDC), 0)
	data := buildStream(header(), saveDC(), bad)

	f := mustOpen(t, data)
	if f.Len() != 2 {
		t.Errorf("Len() = %d, want 2", f.Len())
	}
	var fe *FramingError
	if !errors.As(f.ScanErr(), &fe) {
		t.Fatalf("ScanErr() = %v, want *FramingError", f.ScanErr())
	}
	if fe.Index != 2 || fe.Offset != int64(len(data)-8) {
		t.Errorf("FramingError at %d/%d", fe.Index, fe.Offset)
	}
	if !errors.Is(f.ScanErr(), records.ErrZeroLength) {
		t.Errorf("ScanErr() does not wrap ErrZeroLength")
	}
}

func TestOverrunStopsScan(t *testing.T) {
	f := mustOpen(t, buildStream(header(), payload(nil).u32(uint32(EMR_SAVEDC), 400)))
	if f.Len() != 1 || !errors.Is(f.ScanErr(), records.ErrOverrun) {
		t.Errorf("Len() = %d, ScanErr() = %v", f.Len(), f.ScanErr())
	}
}

func TestEmptyInput(t *testing.T) {
	if _, err := New(nil, Options{}); !errors.Is(err, ErrEmpty) {
		t.Errorf("New(nil) error = %v, want ErrEmpty", err)
	}
}

func TestRecordOutOfRange(t *testing.T) {
	f := mustOpen(t, buildStream(header()))
	if _, err := f.Record(5); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("Record(5) error = %v", err)
	}
	f.Close()
	if _, err := f.Record(0); !errors.Is(err, ErrFileClosed) {
		t.Errorf("Record after Close error = %v", err)
	}
}

func TestTruncatedRecordIsHeaderOnly(t *testing.T) {
	f := mustOpen(t, buildStream(header(),
		createPen(1, 0),
		rec(EMR_SELECTOBJECT, nil),
	))
	r := mustRecord(t, f, 2)
	if len(r.Links()) != 0 {
		t.Error("truncated select has links")
	}
	if n := r.Properties().Len(); n != 2 {
		t.Errorf("truncated select has %d properties, want 2", n)
	}
}

func TestGatedRegionData(t *testing.T) {
	// without the region header the gated branch and its buffer are omitted
	f := mustOpen(t, buildStream(header(),
		rec(EMR_INVERTRGN, payload(nil).rect(0, 0, 4, 4).u32(0)),
		rec(EMR_INVERTRGN, payload(nil).rect(0, 0, 4, 4).u32(48).
			u32(32, 1, 1, 16).rect(0, 0, 4, 4).
			rect(1, 1, 2, 2)),
	))
	short := mustRecord(t, f, 1).Properties()
	if short.Child("rdh") != nil || short.Child("Buffer") != nil {
		t.Error("short region shows gated fields")
	}
	full := mustRecord(t, f, 2).Properties()
	if full.Find("rdh", "nCount") == nil {
		t.Fatal("rdh.nCount missing")
	}
	if got := full.Find("Buffer", "[0]"); got == nil || got.Rect != (props.RectL{Left: 1, Top: 1, Right: 2, Bottom: 2}) {
		t.Errorf("Buffer[0] = %v", got)
	}
}

func TestOversizedPolyCounts(t *testing.T) {
	// nPolys = 1000 with cptl = 1; the remaining bytes are 7, (3,4)
	f := mustOpen(t, buildStream(header(),
		rec(EMR_POLYPOLYLINE, payload(nil).rect(0, 0, 10, 10).u32(1000, 1, 7).i32(3, 4)),
	))
	r := mustRecord(t, f, 1)
	root := r.Properties()
	if n := root.Child("nPolys"); n == nil || n.Raw != 1000 {
		t.Errorf("nPolys = %v", n)
	}
	if n := root.Child("aptl"); n != nil {
		t.Errorf("aptl = %v, want none", n)
	}
	if _, ok := r.Preview(PreviewRequest{Rect: image.Rect(0, 0, 10, 10)}); ok {
		t.Error("preview built from unplaced points")
	}
}

func TestPropertiesIdempotent(t *testing.T) {
	f := mustOpen(t, buildStream(header(), createPen(1, 0x00112233), selectObject(1)))
	for _, r := range f.Records() {
		first := r.Properties()
		if r.Properties() != first {
			t.Errorf("%v: cached tree changed", r)
		}
		if !r.buildProperties().Equal(r.buildProperties()) {
			t.Errorf("%v: rebuilt trees differ", r)
		}
	}
}

func TestColors(t *testing.T) {
	f := mustOpen(t, buildStream(header(),
		createPen(1, 0x00332211),
		createBrush(2, 0, 0x00FF0000, 0),
		rec(EMR_SETTEXTCOLOR, payload(nil).u32(0x000000FF)),
	))
	tests := []struct {
		i    int
		want [3]uint8
	}{
		{1, [3]uint8{0x11, 0x22, 0x33}},
		{2, [3]uint8{0, 0, 0xFF}},
		{3, [3]uint8{0xFF, 0, 0}},
	}
	for _, tt := range tests {
		c, ok := mustRecord(t, f, tt.i).Color()
		if !ok || [3]uint8{c.R, c.G, c.B} != tt.want || c.A != 0xFF {
			t.Errorf("record %d Color() = %v, %v", tt.i, c, ok)
		}
	}

	pen := mustRecord(t, f, 1).Properties()
	if n := pen.Find("lopn", "lopnColor"); n == nil || n.Kind != props.Color {
		t.Errorf("lopnColor = %v, want a colour node", n)
	}
	if _, ok := mustRecord(t, f, 0).Color(); ok {
		t.Error("header has a colour")
	}
}

func TestBrushHatch(t *testing.T) {
	f := mustOpen(t, buildStream(header(),
		createBrush(1, bsHatched, 0, 5),
		createBrush(2, 0, 0, 5),
	))
	hatched := mustRecord(t, f, 1).Properties().Find("lb", "lbHatch")
	if hatched == nil || hatched.Str != "5  HS_DIAGCROSS" {
		t.Errorf("hatched lbHatch = %v", hatched)
	}
	solid := mustRecord(t, f, 2).Properties().Find("lb", "lbHatch")
	if solid == nil || solid.Str != "5" {
		t.Errorf("solid lbHatch = %v", solid)
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		t    RecordType
		want Category
	}{
		{EMR_HEADER, CategoryControl},
		{EMR_GDICOMMENT, CategoryControl},
		{EMR_SETMAPMODE, CategoryState},
		{EMR_SAVEDC, CategoryState},
		{EMR_INTERSECTCLIPRECT, CategoryClipping},
		{EMR_CREATEPEN, CategoryObject},
		{EMR_SELECTOBJECT, CategoryObjManipulation},
		{EMR_BEGINPATH, CategoryDrawing},
		{EMR_POLYGON16, CategoryDrawing},
		{EMR_STRETCHDIBITS, CategoryBitmap},
		{EMR_SETWORLDTRANSFORM, CategoryTransform},
		{RecordType(69), CategoryUnknown},
	}
	for _, tt := range tests {
		if got := tt.t.Category(); got != tt.want {
			t.Errorf("%v.Category() = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestLinkTargetsAreCreationOrState(t *testing.T) {
	f := mustOpen(t, buildStream(header(),
		createPen(1, 0), selectObject(1), saveDC(), restoreDC(-1), deleteObject(1),
	))
	for _, r := range f.Records() {
		for _, l := range r.Links() {
			if c := l.Target.Category(); c != CategoryObject && c != CategoryState {
				t.Errorf("%v links to %v", r, l.Target)
			}
		}
	}
}

func TestCatalogNames(t *testing.T) {
	for _, typ := range Types() {
		if typ.String() == "" {
			t.Errorf("type %d has no name", typ)
		}
		if typ.Category() == CategoryUnknown {
			t.Errorf("%v has no category", typ)
		}
	}
	if EMR_EXTTEXTOUTW.String() != "EXTTEXTOUTW" {
		t.Errorf("EMR_EXTTEXTOUTW = %q", EMR_EXTTEXTOUTW.String())
	}
}

func TestFitRect(t *testing.T) {
	tests := []struct {
		dst  image.Rectangle
		w, h int64
		want image.Rectangle
	}{
		{image.Rect(0, 0, 100, 100), 200, 100, image.Rect(0, 25, 100, 75)},
		{image.Rect(0, 0, 100, 100), 50, 100, image.Rect(25, 0, 75, 100)},
		{image.Rect(10, 10, 110, 60), 10, 5, image.Rect(10, 10, 110, 60)},
		{image.Rect(0, 0, 100, 100), 0, 0, image.Rect(0, 0, 100, 100)},
	}
	for _, tt := range tests {
		if got := fitRect(tt.dst, tt.w, tt.h); got != tt.want {
			t.Errorf("fitRect(%v, %d, %d) = %v, want %v", tt.dst, tt.w, tt.h, got, tt.want)
		}
	}
}

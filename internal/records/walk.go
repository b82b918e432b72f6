package records

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/skdltmxn/emf-go/enums"
	"github.com/skdltmxn/emf-go/internal/stream"
	"github.com/skdltmxn/emf-go/props"
)

// maxArrayItems bounds the elements rendered for one array node.
const maxArrayItems = 1 << 16

// Values holds the integer fields read during a walk, keyed by field name.
// Nested fields are keyed by their dotted path.
type Values map[string]uint32

// errUnplaced stops a walk after a variable array whose extent is unknown.
// Fields behind it have no known offset.
var errUnplaced = errors.New("records: variable data not placed")

// Walk decodes the fields of l from r into parent. size is the declared
// record size used for gated fields. Fields that do not fit are left out;
// a variable array that does not fit ends the walk, since nothing after it
// can be located. Walk returns ErrTruncated when an ungated field could not
// be read and stops there.
func Walk(r *stream.Reader, l *Layout, size uint32, parent *props.Node) (Values, error) {
	vals := make(Values)
	err := walk(r, l, size, parent, vals, "")
	if errors.Is(err, errUnplaced) {
		err = nil
	}
	return vals, err
}

func walk(r *stream.Reader, l *Layout, size uint32, parent *props.Node, vals Values, prefix string) error {
	for i := range l.Fields {
		f := &l.Fields[i]
		if f.MinSize > 0 && int(size) < f.MinSize {
			continue
		}

		count := -1
		if f.Count > 0 && !f.Kind.isString() {
			count = f.Count
		}
		if f.CountOf != "" {
			n, ok := vals[prefix+f.CountOf]
			if !ok || uint64(n)*uint64(f.elemSize()) > uint64(r.Remaining()) {
				return errUnplaced
			}
			count = int(n)
		}

		var err error
		if count >= 0 {
			err = readArray(r, f, count, size, parent, vals, prefix)
		} else {
			err = readField(r, f, size, parent, vals, prefix)
		}
		if err != nil {
			if errors.Is(err, errUnplaced) {
				return err
			}
			if f.MinSize > 0 {
				continue
			}
			return ErrTruncated
		}
	}
	return nil
}

func readField(r *stream.Reader, f *Field, size uint32, parent *props.Node, vals Values, prefix string) error {
	switch f.Kind {
	case Struct:
		if !r.Has(f.Layout.Size()) {
			return stream.ErrUnexpectedEOF
		}
		b := props.NewBranch(f.Name)
		err := walk(r, f.Layout, size, b, vals, prefix+f.Name+".")
		if err != nil && !errors.Is(err, errUnplaced) {
			return err
		}
		parent.Add(b)
		return err
	case Chars:
		s, err := r.ReadUTF16(f.Count)
		if err != nil {
			return err
		}
		parent.AddText(f.Name, s)
		return nil
	case Ansi:
		b, err := r.ReadBytesRef(f.Count)
		if err != nil {
			return err
		}
		parent.AddText(f.Name, stream.DecodeANSI(b, nil))
		return nil
	case Bytes:
		b, err := r.ReadBytesRef(f.Count)
		if err != nil {
			return err
		}
		parent.AddText(f.Name, fmt.Sprintf("% X", b))
		return nil
	}

	n, err := readScalar(r, f)
	if err != nil {
		return err
	}
	if n.Kind == props.Value {
		vals[prefix+f.Name] = uint32(n.Raw)
	}
	parent.Add(n)
	return nil
}

func readArray(r *stream.Reader, f *Field, count int, size uint32, parent *props.Node, vals Values, prefix string) error {
	if !r.Has(count * f.elemSize()) {
		return stream.ErrUnexpectedEOF
	}
	shown := min(count, maxArrayItems)

	switch f.Kind {
	case Point, PointS:
		pts := make([]props.PointL, 0, shown)
		for i := 0; i < count; i++ {
			p, err := readPoint(r, f.Kind)
			if err != nil {
				return err
			}
			if i < shown {
				pts = append(pts, p)
			}
		}
		parent.AddPoints(f.Name, pts)
		markTruncated(parent, f.Name, shown, count)
		return nil
	case Struct, Rect, Size, XForm:
		b := props.NewBranch(f.Name)
		for i := 0; i < count; i++ {
			elem := *f
			elem.Name = fmt.Sprintf("[%d]", i)
			elem.Count, elem.CountOf = 0, ""
			target := b
			if i >= shown {
				target = props.NewBranch("")
			}
			if err := readField(r, &elem, size, target, vals, prefix+f.Name); err != nil {
				return err
			}
		}
		parent.Add(b)
		markTruncated(parent, f.Name, shown, count)
		return nil
	}

	items := make([]string, 0, shown)
	for i := 0; i < count; i++ {
		n, err := readScalar(r, f)
		if err != nil {
			return err
		}
		if i < shown {
			items = append(items, n.String())
		}
	}
	parent.AddArray(f.Name, items)
	markTruncated(parent, f.Name, shown, count)
	return nil
}

// markTruncated notes an array node that holds fewer elements than the
// record declares.
func markTruncated(parent *props.Node, name string, shown, count int) {
	if shown < count {
		parent.AddValue(name+" (truncated)", int64(count), fmt.Sprintf("%d of %d shown", shown, count))
	}
}

func readPoint(r *stream.Reader, k Kind) (props.PointL, error) {
	if k == PointS {
		x, err := r.ReadI16()
		if err != nil {
			return props.PointL{}, err
		}
		y, err := r.ReadI16()
		return props.PointL{X: int32(x), Y: int32(y)}, err
	}
	x, err := r.ReadI32()
	if err != nil {
		return props.PointL{}, err
	}
	y, err := r.ReadI32()
	return props.PointL{X: x, Y: y}, err
}

// readScalar decodes one non-aggregate field into a detached node.
func readScalar(r *stream.Reader, f *Field) (*props.Node, error) {
	n := &props.Node{Name: f.Name, Kind: props.Value}
	var raw uint32
	switch f.Kind {
	case U8:
		v, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		raw = uint32(v)
	case U16:
		v, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		raw = uint32(v)
	case I16:
		v, err := r.ReadI16()
		if err != nil {
			return nil, err
		}
		n.Raw, n.Str = int64(v), fmt.Sprintf("%d", v)
		return n, nil
	case I32:
		v, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		if f.Enum != nil {
			n.Raw, n.Str = int64(v), f.Enum.Format(uint32(v))
			return n, nil
		}
		n.Raw, n.Str = int64(v), fmt.Sprintf("%d", v)
		return n, nil
	case F32:
		v, err := r.ReadFloat32()
		if err != nil {
			return nil, err
		}
		n.Str = fmt.Sprintf("%g", v)
		return n, nil
	case U32, Hex, Handle:
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		raw = v
	case Rect:
		v, err := readRect(r)
		if err != nil {
			return nil, err
		}
		return &props.Node{Name: f.Name, Kind: props.Rect, Rect: v}, nil
	case Size:
		cx, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		cy, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		return &props.Node{Name: f.Name, Kind: props.Size, Size: props.SizeL{CX: cx, CY: cy}}, nil
	case Point, PointS:
		p, err := readPoint(r, f.Kind)
		if err != nil {
			return nil, err
		}
		return &props.Node{Name: f.Name, Kind: props.Points, Points: []props.PointL{p}}, nil
	case XForm:
		x, err := ReadXForm(r)
		if err != nil {
			return nil, err
		}
		return &props.Node{Name: f.Name, Kind: props.Transform, Transform: x}, nil
	default:
		return nil, fmt.Errorf("records: field %s has no scalar form", f.Name)
	}

	n.Raw = int64(raw)
	switch {
	case f.Enum != nil:
		n.Str = f.Enum.Format(raw)
	case f.Kind == Hex:
		n.Str = enums.Hex(raw)
	case f.Kind == Handle:
		n.Str = enums.FormatHandle(raw)
	case f.Kind == U32 && IsColorName(f.Name):
		return &props.Node{Name: f.Name, Kind: props.Color, Raw: int64(raw), Color: props.ColorRef(raw)}, nil
	default:
		n.Str = fmt.Sprintf("%d", raw)
	}
	return n, nil
}

func readRect(r *stream.Reader) (props.RectL, error) {
	var v [4]int32
	for i := range v {
		x, err := r.ReadI32()
		if err != nil {
			return props.RectL{}, err
		}
		v[i] = x
	}
	return props.RectL{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, nil
}

// ReadRect reads a RECTL.
func ReadRect(r *stream.Reader) (props.RectL, error) { return readRect(r) }

// ReadXForm reads an XFORM.
func ReadXForm(r *stream.Reader) (props.XForm, error) {
	var v [6]float32
	for i := range v {
		x, err := r.ReadFloat32()
		if err != nil {
			return props.XForm{}, err
		}
		v[i] = x
	}
	return props.XForm{M11: v[0], M12: v[1], M21: v[2], M22: v[3], Dx: v[4], Dy: v[5]}, nil
}

// IsColorName reports whether a 32-bit field name follows the colour naming
// convention: a "Color" suffix or a "cr" prefix.
func IsColorName(name string) bool {
	if strings.HasSuffix(name, "Color") {
		return true
	}
	if len(name) > 2 && strings.HasPrefix(name, "cr") {
		return unicode.IsUpper(rune(name[2]))
	}
	return false
}

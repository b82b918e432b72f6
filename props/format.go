package props

import (
	"encoding/json"
	"fmt"
	"image/color"
	"slices"
	"strings"
)

// ColorRef converts a packed 0x00BBGGRR colour to an opaque NRGBA value.
func ColorRef(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: 0xFF}
}

// ARGB converts a packed 0xAARRGGBB colour.
func ARGB(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: uint8(v >> 24)}
}

func (r RectL) String() string {
	return fmt.Sprintf("(%d, %d) - (%d, %d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Width returns Right-Left.
func (r RectL) Width() int32 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r RectL) Height() int32 { return r.Bottom - r.Top }

func (s SizeL) String() string {
	return fmt.Sprintf("%d x %d", s.CX, s.CY)
}

func (p PointL) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (x XForm) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g, %g, %g]", x.M11, x.M12, x.M21, x.M22, x.Dx, x.Dy)
}

// String renders the value of a leaf. Branches render as their child count.
func (n *Node) String() string {
	switch n.Kind {
	case Value, Text:
		return n.Str
	case Color:
		c := n.Color
		return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
	case Rect:
		return n.Rect.String()
	case Size:
		return n.Size.String()
	case Transform:
		return n.Transform.String()
	case Array:
		return "[" + strings.Join(n.Items, ", ") + "]"
	case Points:
		parts := make([]string, len(n.Points))
		for i, p := range n.Points {
			parts[i] = p.String()
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprintf("{%d}", n.Len())
	}
}

// Equal reports whether two trees have the same shape and values.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Name != o.Name || n.Kind != o.Kind || n.Raw != o.Raw || n.Str != o.Str ||
		n.Color != o.Color || n.Rect != o.Rect || n.Size != o.Size || n.Transform != o.Transform ||
		!slices.Equal(n.Items, o.Items) || !slices.Equal(n.Points, o.Points) {
		return false
	}
	a, b := n.Children(), o.Children()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

type jsonNode struct {
	Name     string      `json:"name"`
	Kind     string      `json:"kind"`
	Value    string      `json:"value,omitempty"`
	Raw      *int64      `json:"raw,omitempty"`
	Items    []string    `json:"items,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

func (n *Node) toJSON() *jsonNode {
	j := &jsonNode{Name: n.Name, Kind: n.Kind.String()}
	switch n.Kind {
	case Branch:
		for _, c := range n.Children() {
			j.Children = append(j.Children, c.toJSON())
		}
	case Array:
		j.Items = n.Items
	case Value:
		raw := n.Raw
		j.Raw = &raw
		j.Value = n.String()
	default:
		j.Value = n.String()
	}
	return j
}

// MarshalJSON encodes the tree with children in order.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

// Package props is the generic display model for decoded records.
//
// A record's properties form a tree of named nodes. Branch nodes own their
// children in insertion order and child names are unique among siblings.
// Leaf nodes carry a typed value: a scalar with its display text, a string,
// a colour, a rectangle, a size, a 2D transform, an array of scalars or a
// point list.
package props

import (
	"fmt"
	"image/color"

	"github.com/elliotchance/orderedmap/v3"
)

// Kind identifies the variant held by a Node.
type Kind int

const (
	Branch Kind = iota
	Value
	Text
	Color
	Rect
	Size
	Transform
	Array
	Points
)

var kindNames = [...]string{
	Branch:    "branch",
	Value:     "value",
	Text:      "text",
	Color:     "color",
	Rect:      "rect",
	Size:      "size",
	Transform: "transform",
	Array:     "array",
	Points:    "points",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// RectL is a signed rectangle with inclusive-exclusive semantics left to the
// consumer.
type RectL struct {
	Left, Top, Right, Bottom int32
}

// SizeL is a signed extent.
type SizeL struct {
	CX, CY int32
}

// PointL is a signed point.
type PointL struct {
	X, Y int32
}

// XForm is a 2D affine transform in row-vector form.
type XForm struct {
	M11, M12, M21, M22, Dx, Dy float32
}

// Node is one entry of a property tree.
type Node struct {
	Name string
	Kind Kind

	// Raw is the numeric source of a Value node.
	Raw int64
	// Str is the display text of Value and Text nodes.
	Str string

	Color     color.NRGBA
	Rect      RectL
	Size      SizeL
	Transform XForm
	Items     []string
	Points    []PointL

	children *orderedmap.OrderedMap[string, *Node]
}

// NewBranch creates an empty branch node.
func NewBranch(name string) *Node {
	return &Node{Name: name, Kind: Branch, children: orderedmap.NewOrderedMap[string, *Node]()}
}

// Add appends child under n. A sibling with the same name already present
// makes the child's name get a numeric suffix. Add returns child.
func (n *Node) Add(child *Node) *Node {
	if n.children == nil {
		n.children = orderedmap.NewOrderedMap[string, *Node]()
	}
	name := child.Name
	for i := 2; n.children.Has(name); i++ {
		name = fmt.Sprintf("%s (%d)", child.Name, i)
	}
	child.Name = name
	n.children.Set(name, child)
	return child
}

// AddBranch appends and returns a new branch.
func (n *Node) AddBranch(name string) *Node {
	return n.Add(NewBranch(name))
}

// AddValue appends a scalar with its display text.
func (n *Node) AddValue(name string, raw int64, text string) *Node {
	return n.Add(&Node{Name: name, Kind: Value, Raw: raw, Str: text})
}

// AddInt appends a signed scalar shown in decimal.
func (n *Node) AddInt(name string, v int64) *Node {
	return n.AddValue(name, v, fmt.Sprintf("%d", v))
}

// AddUint appends an unsigned 32-bit scalar shown in decimal.
func (n *Node) AddUint(name string, v uint32) *Node {
	return n.AddValue(name, int64(v), fmt.Sprintf("%d", v))
}

// AddFloat appends a floating point scalar.
func (n *Node) AddFloat(name string, v float32) *Node {
	return n.Add(&Node{Name: name, Kind: Value, Str: fmt.Sprintf("%g", v)})
}

// AddText appends a string leaf.
func (n *Node) AddText(name, s string) *Node {
	return n.Add(&Node{Name: name, Kind: Text, Str: s})
}

// AddColor appends a colour leaf.
func (n *Node) AddColor(name string, c color.NRGBA) *Node {
	return n.Add(&Node{Name: name, Kind: Color, Color: c})
}

// AddRect appends a rectangle leaf.
func (n *Node) AddRect(name string, r RectL) *Node {
	return n.Add(&Node{Name: name, Kind: Rect, Rect: r})
}

// AddSize appends a size leaf.
func (n *Node) AddSize(name string, s SizeL) *Node {
	return n.Add(&Node{Name: name, Kind: Size, Size: s})
}

// AddTransform appends a transform leaf.
func (n *Node) AddTransform(name string, x XForm) *Node {
	return n.Add(&Node{Name: name, Kind: Transform, Transform: x})
}

// AddArray appends an array of rendered scalars.
func (n *Node) AddArray(name string, items []string) *Node {
	return n.Add(&Node{Name: name, Kind: Array, Items: items})
}

// AddPoints appends a point list.
func (n *Node) AddPoints(name string, pts []PointL) *Node {
	return n.Add(&Node{Name: name, Kind: Points, Points: pts})
}

// Len returns the number of children.
func (n *Node) Len() int {
	if n.children == nil {
		return 0
	}
	return n.children.Len()
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil || n.children == nil {
		return nil
	}
	c, _ := n.children.Get(name)
	return c
}

// Find follows a path of child names from n.
func (n *Node) Find(path ...string) *Node {
	cur := n
	for _, p := range path {
		cur = cur.Child(p)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Children returns the children in insertion order.
func (n *Node) Children() []*Node {
	if n.children == nil {
		return nil
	}
	out := make([]*Node, 0, n.children.Len())
	for _, c := range n.children.AllFromFront() {
		out = append(out, c)
	}
	return out
}

// Replace swaps the value of an existing child, keeping its position.
// It reports false when no child has that name.
func (n *Node) Replace(name string, repl *Node) bool {
	if n.children == nil || !n.children.Has(name) {
		return false
	}
	repl.Name = name
	n.children.Set(name, repl)
	return true
}

// Walk visits n and its descendants depth first. Returning an error stops
// the walk.
func (n *Node) Walk(fn func(depth int, n *Node) error) error {
	return n.walk(0, fn)
}

func (n *Node) walk(depth int, fn func(int, *Node) error) error {
	if err := fn(depth, n); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := c.walk(depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

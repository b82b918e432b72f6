package props

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"
)

func TestAddUniqueNames(t *testing.T) {
	root := NewBranch("root")
	root.AddInt("x", 1)
	root.AddInt("x", 2)
	root.AddInt("x", 3)

	names := []string{}
	for _, c := range root.Children() {
		names = append(names, c.Name)
	}
	want := []string{"x", "x (2)", "x (3)"}
	if len(names) != len(want) {
		t.Fatalf("children = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("child %d = %q, want %q", i, names[i], want[i])
		}
	}
	if got := root.Child("x (2)").Raw; got != 2 {
		t.Errorf("x (2) raw = %d, want 2", got)
	}
}

func TestFind(t *testing.T) {
	root := NewBranch("root")
	b := root.AddBranch("emrtext")
	b.AddRect("rcl", RectL{1, 2, 3, 4})

	n := root.Find("emrtext", "rcl")
	if n == nil {
		t.Fatal("Find(emrtext, rcl) = nil")
	}
	if n.Kind != Rect || n.Rect.Width() != 2 {
		t.Errorf("rcl = %v %v, want rect of width 2", n.Kind, n.Rect)
	}
	if root.Find("emrtext", "missing") != nil {
		t.Error("Find of missing child should be nil")
	}
}

func TestColorRef(t *testing.T) {
	got := ColorRef(0x00FF8040)
	want := color.NRGBA{R: 0x40, G: 0x80, B: 0xFF, A: 0xFF}
	if got != want {
		t.Errorf("ColorRef = %v, want %v", got, want)
	}
	n := &Node{Kind: Color, Color: got}
	if n.String() != "#FF4080FF" {
		t.Errorf("String = %q, want %q", n.String(), "#FF4080FF")
	}
}

func TestEqual(t *testing.T) {
	build := func() *Node {
		r := NewBranch("root")
		r.AddText("iType", "EMR_HEADER")
		r.AddArray("Dx", []string{"1", "2"})
		r.AddBranch("sub").AddPoints("aptl", []PointL{{1, 1}, {2, 2}})
		return r
	}
	a, b := build(), build()
	if !a.Equal(b) {
		t.Error("identical trees are not Equal")
	}
	b.Child("sub").AddInt("extra", 0)
	if a.Equal(b) {
		t.Error("trees with different children are Equal")
	}
}

func TestReplaceKeepsOrder(t *testing.T) {
	r := NewBranch("root")
	r.AddUint("a", 1)
	r.AddUint("dwRop", 0xCC0020)
	r.AddUint("c", 3)
	if !r.Replace("dwRop", &Node{Kind: Text, Str: "SRCCOPY"}) {
		t.Fatal("Replace returned false")
	}
	cs := r.Children()
	if cs[1].Name != "dwRop" || cs[1].Str != "SRCCOPY" {
		t.Errorf("child 1 = %s %q, want dwRop SRCCOPY", cs[1].Name, cs[1].Str)
	}
	if r.Replace("nope", &Node{}) {
		t.Error("Replace of missing child returned true")
	}
}

func TestWalkStops(t *testing.T) {
	r := NewBranch("root")
	r.AddInt("a", 1)
	r.AddInt("b", 2)
	stop := errors.New("stop")
	visited := 0
	err := r.Walk(func(depth int, n *Node) error {
		visited++
		if n.Name == "a" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk err = %v, want stop", err)
	}
	if visited != 2 {
		t.Errorf("visited = %d, want 2", visited)
	}
}

func TestMarshalJSON(t *testing.T) {
	r := NewBranch("root")
	r.AddValue("iMode", 8, "8  MM_ANISOTROPIC")
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out struct {
		Kind     string
		Children []struct {
			Name  string
			Value string
			Raw   int64
		}
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Kind != "branch" || len(out.Children) != 1 {
		t.Fatalf("decoded = %+v", out)
	}
	if c := out.Children[0]; c.Name != "iMode" || c.Raw != 8 || c.Value != "8  MM_ANISOTROPIC" {
		t.Errorf("child = %+v", c)
	}
}

package layout

import "testing"

// testNode is a minimal Node whose position is its bounding box origin.
type testNode struct {
	id     string
	box    Rect
	parent *testNode
	sets   int
}

func newTestNode(id string, x, y, w, h float64) *testNode {
	return &testNode{id: id, box: Rect{Point: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}}
}

func (n *testNode) ID() string        { return n.id }
func (n *testNode) BoundingBox() Rect { return n.box }
func (n *testNode) Position() Point   { return n.box.Point }
func (n *testNode) Valid() bool       { return n != nil }

func (n *testNode) SetPosition(p Point) {
	n.box.Point = p
	n.sets++
}

func (n *testNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *testNode) clone() *testNode {
	c := *n
	c.sets = 0
	return &c
}

func TestValid(t *testing.T) {
	var typedNil *testNode

	tests := map[string]struct {
		node Node
		want bool
	}{
		"nil interface": {nil, false},
		"typed nil":     {typedNil, false},
		"live node":     {newTestNode("a", 0, 0, 1, 1), true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Valid(tt.node); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveBy(t *testing.T) {
	n := newTestNode("a", 10, 20, 5, 5)
	MoveBy(n, Point{X: -3, Y: 4})

	if got, want := n.Position(), (Point{X: 7, Y: 24}); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
	if n.sets != 1 {
		t.Errorf("SetPosition called %d times, want 1", n.sets)
	}
}

func TestNodeName(t *testing.T) {
	if got := nodeName(newTestNode("title", 0, 0, 1, 1)); got != "title" {
		t.Errorf("nodeName() = %q, want %q", got, "title")
	}
	if got := nodeName(nil); got != "<invalid>" {
		t.Errorf("nodeName(nil) = %q, want %q", got, "<invalid>")
	}
}

package scene

import (
	"github.com/matzehuels/crosslayout/pkg/geometry"
	"github.com/matzehuels/crosslayout/pkg/layout"
)

var (
	_ layout.Node        = (*Node)(nil)
	_ layout.ParentSizer = (*Node)(nil)
)

// Node is a rectangle in a scene tree.
type Node struct {
	id       string
	label    string
	parent   *Node
	children []*Node

	position     layout.Point // anchor position in parent content space
	contentSize  layout.Size
	anchor       layout.Point // fractional, (0,0) is bottom left
	scaleX       float64
	scaleY       float64
	ignoreAnchor bool
}

// NewNode creates a detached node with the given id and content size, unit
// scale and a bottom-left anchor.
func NewNode(id string, width, height float64) *Node {
	return &Node{
		id:          id,
		contentSize: geometry.Sz(width, height),
		scaleX:      1,
		scaleY:      1,
	}
}

// ID returns the node identifier.
func (n *Node) ID() string { return n.id }

// Label returns the display label, falling back to the id.
func (n *Node) Label() string {
	if n.label == "" {
		return n.id
	}
	return n.label
}

// SetLabel sets the display label.
func (n *Node) SetLabel(label string) { n.label = label }

// Children returns the child nodes in insertion order.
func (n *Node) Children() []*Node { return n.children }

// ParentNode returns the parent as a *Node, or nil for a root or detached node.
func (n *Node) ParentNode() *Node { return n.parent }

// AnchorPosition returns where the anchor point sits in parent space.
func (n *Node) AnchorPosition() layout.Point { return n.position }

// SetAnchorPosition places the anchor point, bypassing the bounding box
// conversion done by SetPosition.
func (n *Node) SetAnchorPosition(p layout.Point) { n.position = p }

// ContentSize returns the unscaled size.
func (n *Node) ContentSize() layout.Size { return n.contentSize }

// SetContentSize sets the unscaled size.
func (n *Node) SetContentSize(s layout.Size) { n.contentSize = s }

// AnchorPoint returns the fractional anchor.
func (n *Node) AnchorPoint() layout.Point { return n.anchor }

// SetAnchorPoint sets the fractional anchor without moving the anchor
// position, so the bounding box shifts.
func (n *Node) SetAnchorPoint(p layout.Point) { n.anchor = p }

// Scale returns the horizontal and vertical scale factors.
func (n *Node) Scale() (x, y float64) { return n.scaleX, n.scaleY }

// SetScale sets the scale factors.
func (n *Node) SetScale(x, y float64) {
	n.scaleX, n.scaleY = x, y
}

// IgnoreAnchor reports whether the anchor is ignored for positioning, in
// which case the position is the bounding box origin.
func (n *Node) IgnoreAnchor() bool { return n.ignoreAnchor }

// SetIgnoreAnchor sets whether the anchor is ignored for positioning.
func (n *Node) SetIgnoreAnchor(ignore bool) { n.ignoreAnchor = ignore }

// anchorOffset is the distance from the bounding box origin to the anchor
// position.
func (n *Node) anchorOffset() layout.Point {
	if n.ignoreAnchor {
		return layout.Point{}
	}
	return layout.Point{
		X: n.anchor.X * n.contentSize.Width * n.scaleX,
		Y: n.anchor.Y * n.contentSize.Height * n.scaleY,
	}
}

// BoundingBox returns the scaled rectangle in parent content space.
func (n *Node) BoundingBox() layout.Rect {
	return layout.Rect{
		Point: n.position.Sub(n.anchorOffset()),
		Size:  n.contentSize.Scale(n.scaleX, n.scaleY),
	}
}

// Parent returns the parent node, or nil.
func (n *Node) Parent() layout.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Position returns the bounding box origin.
func (n *Node) Position() layout.Point {
	return n.BoundingBox().Point
}

// SetPosition moves the bounding box origin to p.
func (n *Node) SetPosition(p layout.Point) {
	n.position = p.Add(n.anchorOffset())
}

// Valid reports whether n refers to a node.
func (n *Node) Valid() bool { return n != nil }

// ParentSize returns the content size of the parent, or zero without one.
func (n *Node) ParentSize() layout.Size {
	if n.parent == nil {
		return layout.Size{}
	}
	return n.parent.contentSize
}

// WorldBox returns the bounding box in the coordinate space of the tree's
// root parent, accumulating the origins and scales of all ancestors.
func (n *Node) WorldBox() layout.Rect {
	b := n.BoundingBox()
	if n.parent == nil {
		return b
	}
	origin, sx, sy := n.parent.contentToWorld()
	return geometry.NewRect(
		origin.X+b.Point.X*sx,
		origin.Y+b.Point.Y*sy,
		b.Size.Width*sx,
		b.Size.Height*sy,
	)
}

// contentToWorld returns the world position of n's content origin and the
// accumulated scale of its content space.
func (n *Node) contentToWorld() (origin layout.Point, sx, sy float64) {
	w := n.WorldBox()
	sx, sy = n.scaleX, n.scaleY
	for p := n.parent; p != nil; p = p.parent {
		sx *= p.scaleX
		sy *= p.scaleY
	}
	return w.Point, sx, sy
}

func (n *Node) attach(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}

package layout

import (
	"fmt"

	"github.com/matzehuels/crosslayout/pkg/errors"
	"github.com/matzehuels/crosslayout/pkg/geometry"
)

// Point is the coordinate type the algebra computes in.
type Point = geometry.Point[float64]

// Size is the dimension type the algebra computes in.
type Size = geometry.Size[float64]

// Rect is the bounding box type the algebra computes in.
type Rect = geometry.Rect[float64]

// Node is the capability a host node type provides to take part in layout.
//
// All boxes of one tree must use the same coordinate space; the scene
// adapter uses parent-relative, Y-up coordinates. Implementations with
// pointer receivers should report Valid() == false for a nil receiver.
type Node interface {
	// BoundingBox returns the node's rectangle.
	BoundingBox() Rect

	// Parent returns the parent node, or nil when there is none.
	Parent() Node

	// Position returns the node's bounding box origin.
	Position() Point

	// SetPosition moves the bounding box origin to p. Anchor, scale and
	// offset conventions of the host are applied by the implementation.
	SetPosition(p Point)

	// Valid reports whether the reference points at a live node.
	Valid() bool
}

// Valid reports whether n is a usable node reference.
// A nil interface is invalid.
func Valid(n Node) bool {
	return n != nil && n.Valid()
}

// MoveBy displaces n by delta: it reads the position, adds delta, and writes
// the result back.
func MoveBy(n Node, delta Point) {
	n.SetPosition(n.Position().Add(delta))
}

// identified is implemented by nodes that carry a stable identifier.
type identified interface {
	ID() string
}

// nodeName returns a label for n suitable for logs and hooks.
func nodeName(n Node) string {
	if !Valid(n) {
		return "<invalid>"
	}
	if id, ok := n.(identified); ok {
		return id.ID()
	}
	return fmt.Sprintf("%T", n)
}

// ParentSizer is implemented by nodes that know the extent of their parent's
// coordinate space. A scaled parent's bounding box is larger or smaller than
// the space its children are positioned in.
type ParentSizer interface {
	ParentSize() Size
}

// parentSize returns the extent of n's parent in n's coordinate space:
// ParentSize when n provides it, the parent's bounding box size otherwise.
func parentSize(n Node) (Size, error) {
	p := n.Parent()
	if !Valid(p) {
		return Size{}, errors.New(errors.ErrCodeNoParent, "node %s has no parent", nodeName(n))
	}
	if ps, ok := n.(ParentSizer); ok {
		return ps.ParentSize(), nil
	}
	return p.BoundingBox().Size, nil
}

// skipReason is returned by reference lookups that turn a resolution into a
// no-op instead of an error.
type skipReason string

func (r skipReason) Error() string { return string(r) }

const (
	reasonInvalidSubject skipReason = "invalid subject"
	reasonInvalidTarget  skipReason = "invalid target"
)

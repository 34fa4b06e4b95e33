package layout

import (
	"github.com/matzehuels/crosslayout/pkg/errors"
	"github.com/matzehuels/crosslayout/pkg/geometry"
	"github.com/matzehuels/crosslayout/pkg/observability"
)

// Centering chooses the reference rectangle a node is centered against.
type Centering struct {
	c    *Composer
	node Node
}

// In centers against target's bounding box.
func (ce Centering) In(target Node) *Orientation {
	o := ce.orient("center.in")
	if !Valid(target) {
		o.skip = reasonInvalidTarget
		return o
	}
	o.box = target.BoundingBox()
	return o
}

// InParent centers against the parent's size placed at the origin, which is
// the parent's extent in the node's own coordinate space.
func (ce Centering) InParent() *Orientation {
	o := ce.orient("center.parent")
	if !Valid(ce.node) {
		return o
	}
	size, err := parentSize(ce.node)
	if err != nil {
		o.err = err
		return o
	}
	o.box = Rect{Size: size}
	return o
}

// Between centers against the space between a and b, see [geometry.Between].
func (ce Centering) Between(a, b Node) *Orientation {
	o := ce.orient("center.between")
	if !Valid(a) || !Valid(b) {
		o.skip = reasonInvalidTarget
		return o
	}
	o.box = geometry.Between(a.BoundingBox(), b.BoundingBox())
	return o
}

// Overlap centers against the intersection of a's and b's boxes.
func (ce Centering) Overlap(a, b Node) *Orientation {
	o := ce.orient("center.overlap")
	if !Valid(a) || !Valid(b) {
		o.skip = reasonInvalidTarget
		return o
	}
	o.box = a.BoundingBox().Intersect(b.BoundingBox())
	return o
}

// InRect centers against an explicit rectangle in the node's coordinate
// space.
func (ce Centering) InRect(r Rect) *Orientation {
	o := ce.orient("center.rect")
	o.box = r
	return o
}

func (ce Centering) orient(op string) *Orientation {
	o := &Orientation{c: ce.c, node: ce.node, op: op}
	ce.c.track(o)
	return o
}

// Orientation is a center builder with its reference rectangle fixed. It
// resolves exactly once: by Horizontally, Vertically, Close, or implicitly
// when its Composer settles it.
type Orientation struct {
	c        *Composer
	node     Node
	box      Rect
	op       string
	err      error
	skip     skipReason
	resolved bool
}

// Horizontally aligns the centers on X only, shifted by margin, keeping Y.
func (o *Orientation) Horizontally(margin float64) error {
	return o.resolve(false, func(from Rect) Point {
		f := from.GetPoint(0.5, 0)
		to := o.box.GetPoint(0.5, 0)
		to.X += margin
		to.Y = f.Y
		return to.Sub(f)
	})
}

// Vertically aligns the centers on Y only, shifted by margin, keeping X.
func (o *Orientation) Vertically(margin float64) error {
	return o.resolve(false, func(from Rect) Point {
		f := from.GetPoint(0, 0.5)
		to := o.box.GetPoint(0, 0.5)
		to.X = f.X
		to.Y += margin
		return to.Sub(f)
	})
}

// Close centers on both axes unless the builder is already resolved, in
// which case it does nothing. It is safe to call more than once.
func (o *Orientation) Close() error {
	if o.resolved {
		return nil
	}
	return o.resolve(true, func(from Rect) Point {
		return o.box.GetPoint(0.5, 0.5).Sub(from.GetPoint(0.5, 0.5))
	})
}

// Resolved reports whether the builder has been consumed.
func (o *Orientation) Resolved() bool {
	return o.resolved
}

// Box returns the reference rectangle.
func (o *Orientation) Box() Rect {
	return o.box
}

func (o *Orientation) resolve(implicit bool, delta func(from Rect) Point) error {
	if o.resolved {
		return errors.New(errors.ErrCodeAlreadyResolved, "%s of %s already resolved", o.op, nodeName(o.node))
	}
	o.resolved = true

	switch {
	case !Valid(o.node):
		o.c.skip(o.op, o.node, reasonInvalidSubject)
		return nil
	case o.err != nil:
		return o.err
	case o.skip != "":
		o.c.skip(o.op, o.node, o.skip)
		return nil
	}

	o.c.moveBy(o.op, o.node, delta(o.node.BoundingBox()))
	observability.Layout().OnResolve(o.op, nodeName(o.node), implicit)
	return nil
}

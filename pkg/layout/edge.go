package layout

// edge is a subject node plus the fractional corner that identifies one of
// its edges.
type edge struct {
	c      *Composer
	node   Node
	corner Point
}

// HorizontalEdge is a selected left or right edge.
type HorizontalEdge struct{ edge }

// MoveTo chooses where the edge goes.
func (h HorizontalEdge) MoveTo() HorizontalTarget {
	return HorizontalTarget(h)
}

// VerticalEdge is a selected top or bottom edge.
type VerticalEdge struct{ edge }

// MoveTo chooses where the edge goes.
func (v VerticalEdge) MoveTo() VerticalTarget {
	return VerticalTarget(v)
}

// HorizontalTarget aligns a left or right edge to an X coordinate. A
// positive margin always increases separation: it is subtracted when the
// moving edge is the right edge and added when it is the left edge.
type HorizontalTarget struct{ edge }

// LeftEdge aligns to target's left edge.
func (t HorizontalTarget) LeftEdge(target Node, margin float64) error {
	return t.alignX(targetCoord(target, func(r Rect) float64 { return r.GetPoint(0, 0).X }), margin)
}

// RightEdge aligns to target's right edge.
func (t HorizontalTarget) RightEdge(target Node, margin float64) error {
	return t.alignX(targetCoord(target, func(r Rect) float64 { return r.GetPoint(1, 0).X }), margin)
}

// ParentLeftEdge aligns to x = 0 of the parent's coordinate space.
func (t HorizontalTarget) ParentLeftEdge(margin float64) error {
	return t.alignX(func() (float64, error) { return 0, nil }, margin)
}

// ParentRightEdge aligns to the parent's width.
func (t HorizontalTarget) ParentRightEdge(margin float64) error {
	return t.alignX(func() (float64, error) {
		size, err := parentSize(t.node)
		return size.Width, err
	}, margin)
}

func (t HorizontalTarget) alignX(resolve func() (float64, error), margin float64) error {
	return t.align(resolve, func(from Point, x float64) Point {
		if t.corner.X == 1 {
			x -= margin
		} else {
			x += margin
		}
		return Point{X: x, Y: from.Y}
	})
}

// VerticalTarget aligns a top or bottom edge to a Y coordinate. A positive
// margin is subtracted when the moving edge is the top edge and added when
// it is the bottom edge.
type VerticalTarget struct{ edge }

// TopEdge aligns to target's top edge.
func (t VerticalTarget) TopEdge(target Node, margin float64) error {
	return t.alignY(targetCoord(target, func(r Rect) float64 { return r.GetPoint(0, 1).Y }), margin)
}

// BottomEdge aligns to target's bottom edge.
func (t VerticalTarget) BottomEdge(target Node, margin float64) error {
	return t.alignY(targetCoord(target, func(r Rect) float64 { return r.GetPoint(0, 0).Y }), margin)
}

// ParentTopEdge aligns to the parent's height.
func (t VerticalTarget) ParentTopEdge(margin float64) error {
	return t.alignY(func() (float64, error) {
		size, err := parentSize(t.node)
		return size.Height, err
	}, margin)
}

// ParentBottomEdge aligns to y = 0 of the parent's coordinate space.
func (t VerticalTarget) ParentBottomEdge(margin float64) error {
	return t.alignY(func() (float64, error) { return 0, nil }, margin)
}

func (t VerticalTarget) alignY(resolve func() (float64, error), margin float64) error {
	return t.align(resolve, func(from Point, y float64) Point {
		if t.corner.Y == 1 {
			y -= margin
		} else {
			y += margin
		}
		return Point{X: from.X, Y: y}
	})
}

// align resolves the reference coordinate, builds the destination of the
// edge's corner with place, and applies the displacement.
func (e edge) align(resolve func() (float64, error), place func(from Point, coord float64) Point) error {
	const op = "align"
	if !Valid(e.node) {
		e.c.skip(op, e.node, reasonInvalidSubject)
		return nil
	}
	coord, err := resolve()
	if reason, ok := err.(skipReason); ok {
		e.c.skip(op, e.node, reason)
		return nil
	}
	if err != nil {
		return err
	}
	from := e.node.BoundingBox().GetPoint(e.corner.X, e.corner.Y)
	e.c.moveBy(op, e.node, place(from, coord).Sub(from))
	return nil
}

func targetCoord(target Node, pick func(Rect) float64) func() (float64, error) {
	return func() (float64, error) {
		if !Valid(target) {
			return 0, reasonInvalidTarget
		}
		return pick(target.BoundingBox()), nil
	}
}

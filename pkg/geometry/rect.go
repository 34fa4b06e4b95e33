package geometry

import "fmt"

// Rect is an axis-aligned rectangle anchored at its left-bottom corner.
type Rect[T Scalar] struct {
	Point Point[T]
	Size  Size[T]
}

// NewRect creates a Rect from origin coordinates and dimensions.
func NewRect[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{Point: Point[T]{X: x, Y: y}, Size: Size[T]{Width: w, Height: h}}
}

// Left returns the X coordinate of the left edge.
func (r Rect[T]) Left() T { return r.Point.X }

// Right returns the X coordinate of the right edge.
func (r Rect[T]) Right() T { return r.Point.X + r.Size.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect[T]) Bottom() T { return r.Point.Y }

// Top returns the Y coordinate of the top edge.
func (r Rect[T]) Top() T { return r.Point.Y + r.Size.Height }

// GetPoint returns the point at fractional position (fx, fy) inside r:
// (X + fx*Width, Y + fy*Height). For integer rectangles only the fractions
// 0 and 1 are meaningful.
func (r Rect[T]) GetPoint(fx, fy T) Point[T] {
	return Point[T]{
		X: r.Point.X + fx*r.Size.Width,
		Y: r.Point.Y + fy*r.Size.Height,
	}
}

// Center returns the midpoint of r.
func (r Rect[T]) Center() Point[T] {
	return Point[T]{
		X: r.Point.X + r.Size.Width/2,
		Y: r.Point.Y + r.Size.Height/2,
	}
}

// Translate returns r moved by d.
func (r Rect[T]) Translate(d Point[T]) Rect[T] {
	r.Point = r.Point.Add(d)
	return r
}

// Contains reports whether p lies inside r. The left and bottom edges are
// inclusive, the right and top edges exclusive.
func (r Rect[T]) Contains(p Point[T]) bool {
	return p.X >= r.Left() && p.X < r.Right() &&
		p.Y >= r.Bottom() && p.Y < r.Top()
}

// IsEmpty reports whether r has no area.
func (r Rect[T]) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// Intersect returns the overlap of r and other. Boxes that do not overlap
// yield a zero-size rectangle at (max(left), max(bottom)).
func (r Rect[T]) Intersect(other Rect[T]) Rect[T] {
	x0 := max(r.Left(), other.Left())
	y0 := max(r.Bottom(), other.Bottom())
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Top(), other.Top())
	return NewRect(x0, y0, max(x1-x0, 0), max(y1-y0, 0))
}

// Between returns the reference rectangle used to center a node between a
// and b. Its origin is (min(right), min(top)) and its size spans to
// (max(left), max(bottom)); negative spans clamp to zero, so overlapping
// boxes produce a zero-size rectangle rather than a malformed one.
func Between[T Scalar](a, b Rect[T]) Rect[T] {
	x := min(a.Right(), b.Right())
	y := min(a.Top(), b.Top())
	x1 := max(a.Left(), b.Left())
	y1 := max(a.Bottom(), b.Bottom())
	return NewRect(x, y, max(x1-x, 0), max(y1-y, 0))
}

// String renders the rectangle as "{x,y w×h}".
func (r Rect[T]) String() string {
	return fmt.Sprintf("{%v,%v %v×%v}", r.Point.X, r.Point.Y, r.Size.Width, r.Size.Height)
}

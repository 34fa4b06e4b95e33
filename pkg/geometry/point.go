package geometry

import "fmt"

// Point represents a location or displacement in <X,Y> 2-space.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is a convenience constructor for Point.
func Pt[T Scalar](x, y T) Point[T] { return Point[T]{X: x, Y: y} }

// Add returns the vector sum of p and other.
func (p Point[T]) Add(other Point[T]) Point[T] {
	return Point[T]{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the vector difference p - other.
func (p Point[T]) Sub(other Point[T]) Point[T] {
	return Point[T]{X: p.X - other.X, Y: p.Y - other.Y}
}

// Neg returns p with both components negated.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

// IsZero reports whether p is the origin.
func (p Point[T]) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Less orders points by X first, then by Y.
func (p Point[T]) Less(other Point[T]) bool {
	return p.X < other.X || (p.X == other.X && p.Y < other.Y)
}

// Compare returns -1, 0 or +1 following the same order as Less.
// It is suitable for slices.SortFunc.
func (p Point[T]) Compare(other Point[T]) int {
	switch {
	case p.Less(other):
		return -1
	case other.Less(p):
		return 1
	default:
		return 0
	}
}

// String renders the point as "{x,y}".
func (p Point[T]) String() string {
	return fmt.Sprintf("{%v,%v}", p.X, p.Y)
}

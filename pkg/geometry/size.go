package geometry

import "fmt"

// Size is a width/height pair.
type Size[T Scalar] struct {
	Width, Height T
}

// Sz is a convenience constructor for Size.
func Sz[T Scalar](w, h T) Size[T] { return Size[T]{Width: w, Height: h} }

// Scale returns the size with each dimension multiplied by its factor.
func (s Size[T]) Scale(sx, sy T) Size[T] {
	return Size[T]{Width: s.Width * sx, Height: s.Height * sy}
}

// Area returns Width * Height.
func (s Size[T]) Area() T {
	return s.Width * s.Height
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size[T]) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// String renders the size as "{w,h}".
func (s Size[T]) String() string {
	return fmt.Sprintf("{%v,%v}", s.Width, s.Height)
}

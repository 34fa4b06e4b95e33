package geometry

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the numeric types geometry values can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// isSigned reports whether T can represent negative values.
func isSigned[T Scalar]() bool {
	var zero T
	return zero-1 < 0
}

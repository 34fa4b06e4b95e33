// Package geometry provides the 2D value types used by the layout algebra.
//
// [Point], [Size] and [Rect] are generic over [Scalar] so the same code can
// describe integer pixel grids and floating-point scene coordinates. All
// methods take value receivers and return new values; nothing in this package
// mutates its operands.
//
// # Coordinate Convention
//
// Rectangles are Y-up: [Rect.Bottom] is the origin's Y coordinate and
// [Rect.Top] is origin plus height. [Rect.GetPoint] interpolates inside a
// rectangle by fractions of its size and is the single primitive for edges,
// corners and centers:
//
//	r.GetPoint(0, 0)     // left-bottom corner
//	r.GetPoint(1, 1)     // right-top corner
//	r.GetPoint(0.5, 0.5) // center
//
// # Conversions
//
// Converting between numeric representations never narrows silently.
// [ConvertPoint], [ConvertSize] and [ConvertRect] return an error with code
// UNSAFE_CONVERSION when a value is negative and the target is unsigned, when
// it exceeds the target's range, or when converting back does not reproduce it
// exactly:
//
//	p, err := geometry.ConvertPoint[uint32](geometry.Pt[int32](-1, 0)) // err != nil
//	q, err := geometry.ConvertPoint[uint32](geometry.Pt[int32](5, 5))  // {5,5}
package geometry

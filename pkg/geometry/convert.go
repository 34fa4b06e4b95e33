package geometry

import (
	"github.com/matzehuels/crosslayout/pkg/errors"
)

// ConvertScalar converts v to the representation To, failing instead of
// narrowing. The checks run in order:
//
//  1. a negative value cannot become unsigned;
//  2. a positive value that lands negative exceeded the signed target's maximum;
//  3. converting the result back to From must reproduce v exactly, which
//     rejects truncated fractions, out-of-range magnitudes and NaN.
//
// Failures carry [errors.ErrCodeUnsafeConversion].
func ConvertScalar[To, From Scalar](v From) (To, error) {
	out := To(v)
	switch {
	case v < 0 && !isSigned[To]():
		return 0, errors.New(errors.ErrCodeUnsafeConversion,
			"cannot convert negative value %v to %T", v, out)
	case v > 0 && out < 0:
		return 0, errors.New(errors.ErrCodeUnsafeConversion,
			"value %v exceeds the maximum of %T", v, out)
	case From(out) != v:
		return 0, errors.New(errors.ErrCodeUnsafeConversion,
			"value %v of %T is not exactly representable as %T", v, v, out)
	}
	return out, nil
}

// ConvertPoint converts both coordinates of p with [ConvertScalar].
func ConvertPoint[To, From Scalar](p Point[From]) (Point[To], error) {
	x, err := ConvertScalar[To](p.X)
	if err != nil {
		return Point[To]{}, errors.Wrap(errors.ErrCodeUnsafeConversion, err, "point %v: x", p)
	}
	y, err := ConvertScalar[To](p.Y)
	if err != nil {
		return Point[To]{}, errors.Wrap(errors.ErrCodeUnsafeConversion, err, "point %v: y", p)
	}
	return Point[To]{X: x, Y: y}, nil
}

// ConvertSize converts both dimensions of s with [ConvertScalar].
func ConvertSize[To, From Scalar](s Size[From]) (Size[To], error) {
	w, err := ConvertScalar[To](s.Width)
	if err != nil {
		return Size[To]{}, errors.Wrap(errors.ErrCodeUnsafeConversion, err, "size %v: width", s)
	}
	h, err := ConvertScalar[To](s.Height)
	if err != nil {
		return Size[To]{}, errors.Wrap(errors.ErrCodeUnsafeConversion, err, "size %v: height", s)
	}
	return Size[To]{Width: w, Height: h}, nil
}

// ConvertRect converts the origin and size of r.
func ConvertRect[To, From Scalar](r Rect[From]) (Rect[To], error) {
	p, err := ConvertPoint[To](r.Point)
	if err != nil {
		return Rect[To]{}, err
	}
	s, err := ConvertSize[To](r.Size)
	if err != nil {
		return Rect[To]{}, err
	}
	return Rect[To]{Point: p, Size: s}, nil
}

// MustConvertPoint is like ConvertPoint but panics on failure.
// It is intended for package-level values known to be representable.
func MustConvertPoint[To, From Scalar](p Point[From]) Point[To] {
	out, err := ConvertPoint[To](p)
	if err != nil {
		panic(err)
	}
	return out
}

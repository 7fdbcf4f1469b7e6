package fixed

import (
	xfixed "golang.org/x/image/math/fixed"

	mu "github.com/avdva/fxmath/internal/mathutil"
)

// These conversions exchange values with golang.org/x/image/math/fixed,
// which font rasterizers and text layout engines use.
// Dropped fractional bits are rounded toward zero. Integer bits beyond the target width are lost.

// FromInt26_6 converts a 26.6 value.
func FromInt26_6(v xfixed.Int26_6) Fixed {
	return Fixed(rescale(int64(v), 6, bitShift()))
}

// ToInt26_6 converts f to a 26.6 value.
func (f Fixed) ToInt26_6() xfixed.Int26_6 {
	return xfixed.Int26_6(rescale(number(f), bitShift(), 6))
}

// FromInt52_12 converts a 52.12 value.
func FromInt52_12(v xfixed.Int52_12) Fixed {
	return Fixed(rescale(int64(v), 12, bitShift()))
}

// ToInt52_12 converts f to a 52.12 value.
func (f Fixed) ToInt52_12() xfixed.Int52_12 {
	return xfixed.Int52_12(rescale(number(f), bitShift(), 12))
}

func rescale(v int64, from, to uint) int64 {
	if from >= to {
		return mu.ShrTrunc(v, from-to)
	}
	return v << (to - from)
}

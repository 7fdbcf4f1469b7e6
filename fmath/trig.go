package fmath

import (
	"github.com/avdva/fxmath/fixed"
	"github.com/avdva/fxmath/table"
)

// Angle periods in degrees.
const (
	Degrees360 = 360
	Degrees180 = 180
	Degrees90  = 90
)

// wrap maps x into [0, period) by subtracting the period
// multiplied by the truncated quotient.
func wrap(x, period fixed.Fixed) fixed.Fixed {
	q := x.Div(period).Int64()
	x = x.Sub(period.MulInt(q))
	if x < fixed.Zero {
		x = x.Add(period)
	}
	return x
}

// Sin returns the sine of the radian argument.
func Sin(radian fixed.Fixed) fixed.Fixed {
	return table.Sin().Lookup(wrap(radian, TwoPi()))
}

// Cos returns the cosine of the radian argument.
func Cos(radian fixed.Fixed) fixed.Fixed {
	return table.Cos().Lookup(wrap(radian, TwoPi()))
}

// Tan returns the tangent of the radian argument.
// The argument is reduced into (-π/2, π/2], so π/2 itself maps to the last table entry.
// Close to the poles (±π/2, ±3π/2, etc.) the result is only a rough approximation
// and may even have the wrong sign.
func Tan(radian fixed.Fixed) fixed.Fixed {
	half := HalfPi()
	return table.Tan().Lookup(half.Sub(wrap(half.Sub(radian), Pi())))
}

// SinAngle returns the sine of an angle in degrees.
func SinAngle(angle fixed.Fixed) fixed.Fixed {
	return Sin(Radians(WrapAngle360(angle)))
}

// CosAngle returns the cosine of an angle in degrees.
func CosAngle(angle fixed.Fixed) fixed.Fixed {
	return Cos(Radians(WrapAngle360(angle)))
}

// TanAngle returns the tangent of an angle in degrees.
// See Tan for the accuracy near the poles.
func TanAngle(angle fixed.Fixed) fixed.Fixed {
	return Tan(Radians(WrapAngle90(angle)))
}

// Asin returns the arcsine of v in radians.
// Values out of [-1, 1] saturate at the boundaries of the table.
func Asin(v fixed.Fixed) fixed.Fixed {
	return table.Asin().Lookup(v)
}

// Acos returns the arccosine of v in radians.
// Values out of [-1, 1] saturate at the boundaries of the table.
func Acos(v fixed.Fixed) fixed.Fixed {
	return table.Acos().Lookup(v)
}

// Atan returns the arctangent of v in radians, see AtanN.
func Atan(v fixed.Fixed) fixed.Fixed {
	return AtanN(v, DefaultTerms)
}

// AtanN sums the first terms of the series x - x^3/3 + x^5/5 - ...
// The series converges only for |v| <= 1, and slowly close to 1.
// No reduction is done for greater values, so the results are unreliable there.
func AtanN(v fixed.Fixed, terms int) fixed.Fixed {
	x2 := v.Mul(v)
	sum, pow := fixed.Zero, v
	for i := 1; i <= terms; i++ {
		term := pow.DivInt(int64(2*i - 1))
		if i%2 == 0 {
			sum = sum.Sub(term)
		} else {
			sum = sum.Add(term)
		}
		pow = pow.Mul(x2)
	}
	return sum
}

// WrapAngle360 maps an angle in degrees into [0, 360).
func WrapAngle360(angle fixed.Fixed) fixed.Fixed {
	return wrap(angle, fixed.FromInt(Degrees360))
}

// WrapAngle90 maps an angle in degrees into [-90, 90), using the period of tangent, 180.
func WrapAngle90(angle fixed.Fixed) fixed.Fixed {
	ninety := fixed.FromInt(Degrees90)
	return wrap(angle.Add(ninety), fixed.FromInt(Degrees180)).Sub(ninety)
}

// Radians converts degrees to radians.
// It multiplies by π before dividing by 180, which loses less precision than multiplying by Deg2Rad().
func Radians(degrees fixed.Fixed) fixed.Fixed {
	return degrees.Mul(Pi()).DivInt(Degrees180)
}

// Degrees converts radians to degrees.
func Degrees(radians fixed.Fixed) fixed.Fixed {
	return radians.MulInt(Degrees180).Div(Pi())
}

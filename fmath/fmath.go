// Package fmath implements deterministic math functions for fixed.Fixed values.
//
// Square roots, powers and logarithms are calculated with integer-only
// iterations. Sin, Cos, Tan, Asin and Acos are looked up in the tables
// from package table, after reducing the argument into the table's domain.
// Every function is pure and safe for concurrent use.
//
// The accuracy of the functions is bounded by the configured precision
// and by the table resolution, see the function docs for known limitations.
package fmath

import (
	"math"
	"sync"

	"github.com/avdva/fxmath/fixed"
	mu "github.com/avdva/fxmath/internal/mathutil"
)

const (
	// DefaultIterations is the number of Newton-Raphson steps used by Sqrt.
	DefaultIterations = 8
	// DefaultTerms is the number of series terms used by LogE and Atan.
	DefaultTerms = 8
)

type constants struct {
	pi, twoPi, halfPi, e, deg2Rad, rad2Deg fixed.Fixed
}

// consts are calculated once, at the frozen precision.
var consts = sync.OnceValue(func() constants {
	pi := fixed.FromFloat64(math.Pi)
	return constants{
		pi:      pi,
		twoPi:   pi.MulInt(2),
		halfPi:  pi.DivInt(2),
		e:       fixed.FromFloat64(math.E),
		deg2Rad: fixed.FromFloat64(math.Pi / 180),
		rad2Deg: fixed.FromFloat64(180 / math.Pi),
	}
})

// Pi returns π.
func Pi() fixed.Fixed { return consts().pi }

// TwoPi returns 2π.
func TwoPi() fixed.Fixed { return consts().twoPi }

// HalfPi returns π/2.
func HalfPi() fixed.Fixed { return consts().halfPi }

// E returns the base of natural logarithms.
func E() fixed.Fixed { return consts().e }

// Deg2Rad returns π/180.
func Deg2Rad() fixed.Fixed { return consts().deg2Rad }

// Rad2Deg returns 180/π.
func Rad2Deg() fixed.Fixed { return consts().rad2Deg }

// Sqrt returns the square root of v, see SqrtN.
func Sqrt(v fixed.Fixed) (fixed.Fixed, error) {
	return SqrtN(v, DefaultIterations)
}

// SqrtN calculates the square root of v with Newton-Raphson iterations, starting from v itself.
// It stops once the result stops changing, or after the given number of iterations.
// At least one iteration is always done.
// Each step roughly halves a large starting value, so values above a few hundred
// need more iterations than DefaultIterations: Sqrt(1e6) is about 3991.
// Returns a *DomainError for negative values.
func SqrtN(v fixed.Fixed, iterations int) (fixed.Fixed, error) {
	if v < fixed.Zero {
		return fixed.Zero, &DomainError{Func: "sqrt", Value: v}
	}
	if v == fixed.Zero {
		return fixed.Zero, nil
	}
	result := v
	for i := 0; ; {
		prev := result
		result = result.Add(v.Div(result)).Shr(1)
		i++
		if result == prev || i >= iterations {
			break
		}
	}
	return result, nil
}

// MustSqrt is like Sqrt, but panics on negative values.
func MustSqrt(v fixed.Fixed) fixed.Fixed {
	r, err := Sqrt(v)
	if err != nil {
		panic(err)
	}
	return r
}

// Pow returns base^exp using binary exponentiation.
// Negative exponents invert the base first.
// Note, that a zero base results in One for every exponent, including negative ones.
func Pow(base fixed.Fixed, exp int) fixed.Fixed {
	one := fixed.One()
	if base == fixed.Zero {
		return one
	}
	n := uint(exp)
	if exp < 0 {
		// -exp overflows for math.MinInt, its uint conversion doesn't.
		base, n = one.Div(base), uint(-exp)
	}
	result := one
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		if n >>= 1; n > 0 {
			base = base.Mul(base)
		}
	}
	return result
}

// Abs returns |v|.
func Abs(v fixed.Fixed) fixed.Fixed {
	return v.Abs()
}

// AbsInt returns |v| without branching.
func AbsInt(v int) int {
	return mu.AbsInt(v)
}

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi fixed.Fixed) fixed.Fixed {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Min(a, b fixed.Fixed) fixed.Fixed {
	if a < b {
		return a
	}
	return b
}

func Max(a, b fixed.Fixed) fixed.Fixed {
	if a > b {
		return a
	}
	return b
}

// Floor returns the greatest integer value less than or equal to v.
func Floor(v fixed.Fixed) fixed.Fixed {
	s := fixed.Shift()
	return fixed.FromRaw(v.Raw() >> s << s)
}

// Ceil returns the least integer value greater than or equal to v.
func Ceil(v fixed.Fixed) fixed.Fixed {
	return Floor(v.Neg()).Neg()
}

// Truncate returns the integer part of v.
func Truncate(v fixed.Fixed) fixed.Fixed {
	return fixed.FromInt(v.Int64())
}

// FloorToInt returns Floor(v) as an int.
func FloorToInt(v fixed.Fixed) int {
	return Floor(v).Int()
}

// CeilToInt returns Ceil(v) as an int.
func CeilToInt(v fixed.Fixed) int {
	return Ceil(v).Int()
}

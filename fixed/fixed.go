// Package fixed implements deterministic binary fixed-point numbers.
//
// A Fixed stores round(real * 2^shift) in an int64, where shift is
// a process-wide precision set once with Init (see DefaultShift).
// All arithmetic is performed on integers, so results are bit-identical
// on every platform.
package fixed

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	mu "github.com/avdva/fxmath/internal/mathutil"
)

const (
	// Zero is zero at any precision.
	Zero = Fixed(0)
	// Max and Min are the largest and the smallest values.
	// Min is -Max, so that every value has a representable negation and Abs.
	Max = Fixed(math.MaxInt64)
	Min = -Max
	// Epsilon is the smallest positive value.
	Epsilon = Fixed(1)
)

type number = int64

// Fixed is a fixed-point number with Shift() fractional bits.
// Values are ordered like their scaled integers, so the native comparison
// operators (<, >, ==, etc.) are correct, and a Fixed can be used as a map key.
// Use the methods for arithmetic: a*b on two values is not their product.
type Fixed number

// One returns 1 at the configured precision.
func One() Fixed {
	return Fixed(Multiplier())
}

// FromInt returns an exact value for an integer.
func FromInt[T constraints.Integer](n T) Fixed {
	return Fixed(number(n) << bitShift())
}

// FromFloat returns the nearest value for a float, rounding half away from zero.
// The conversion is lossy. The input is expected to be finite and in range.
func FromFloat[T constraints.Float](f T) Fixed {
	return FromFloat64(float64(f))
}

// FromFloat64 returns the nearest value for f, rounding half away from zero.
func FromFloat64(f float64) Fixed {
	return Fixed(math.Round(f * float64(Multiplier())))
}

// FromRaw returns a value with the given scaled representation.
func FromRaw(v int64) Fixed {
	return Fixed(v)
}

// FromRatio returns num/den rounded toward zero.
// The intermediate value is 128 bits wide. If den == 0, FromRatio panics with ErrDivideByZero.
func FromRatio(num, den int64) Fixed {
	if den == 0 {
		panic(ErrDivideByZero)
	}
	return Fixed(mu.ShiftDiv(num, den, bitShift()))
}

// FromDecimal returns the nearest value for d, rounding half away from zero.
func FromDecimal(d decimal.Decimal) Fixed {
	return Fixed(d.Mul(decimal.New(Multiplier(), 0)).Round(0).IntPart())
}

// FromString parses a decimal string, like "-12.375" or "1e-3".
func FromString(s string) (Fixed, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Zero, fmt.Errorf("parsing %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Fixed {
	f, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Raw returns the scaled integer.
func (f Fixed) Raw() int64 {
	return number(f)
}

// Int returns the integer part of f, truncated toward zero.
func (f Fixed) Int() int {
	return int(f.Int64())
}

// Int64 returns the integer part of f, truncated toward zero.
func (f Fixed) Int64() int64 {
	return mu.ShrTrunc(number(f), bitShift())
}

// RoundToInt returns the nearest integer, rounding half to even.
// Note, that this differs from the float constructors, which round half away from zero.
func (f Fixed) RoundToInt() int {
	return int(math.RoundToEven(f.Float64()))
}

// Float64 returns f as a float64.
func (f Fixed) Float64() float64 {
	return float64(f) / float64(Multiplier())
}

// Float32 returns f as a float32.
func (f Fixed) Float32() float32 {
	return float32(f) / float32(Multiplier())
}

// Decimal returns the exact decimal representation of f.
func (f Fixed) Decimal() decimal.Decimal {
	s := int64(bitShift())
	// v/2^s == v*5^s/10^s
	m := new(big.Int).Exp(big.NewInt(5), big.NewInt(s), nil)
	m.Mul(m, big.NewInt(number(f)))
	return decimal.NewFromBigInt(m, int32(-s))
}

func (f Fixed) Sign() int {
	return mu.Int64Sign(number(f))
}

func (f Fixed) Abs() Fixed {
	return Fixed(mu.AbsInt64(number(f)))
}

func (f Fixed) IsZero() bool {
	return f == Zero
}

// String returns the exact decimal representation of f, like "6.5".
func (f Fixed) String() string {
	if f == Zero {
		return "0"
	}
	return f.Decimal().String()
}

// Format implements fmt.Formatter.
// Float verbs (%f, %e, %g) format Float64(), %d formats Int64(),
// all other verbs format String().
func (f Fixed) Format(fs fmt.State, c rune) {
	directive := fmt.FormatString(fs, c)
	switch c {
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprintf(fs, directive, f.Float64())
	case 'd':
		fmt.Fprintf(fs, directive, f.Int64())
	default:
		fmt.Fprintf(fs, directive, f.String())
	}
}

// MarshalJSON marshals f as a quoted exact decimal string.
func (f Fixed) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteRune('"')
	b.WriteString(f.String())
	b.WriteRune('"')
	return []byte(b.String()), nil
}

// UnmarshalJSON accepts both quoted strings and bare numbers.
func (f *Fixed) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	fs, err := FromString(s)
	if err == nil {
		*f = fs
	}
	return err
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (f Fixed) Cmp(other Fixed) int {
	if f == other {
		return 0
	}
	if f > other {
		return 1
	}
	return -1
}

// Eq returns true, if both values are equal.
func (f Fixed) Eq(other Fixed) bool {
	return f == other
}

func (f Fixed) Neg() Fixed {
	return -f
}

func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Mul returns f*other, rounded toward zero.
// The product is calculated in 128 bits, but the result wraps, if it exceeds the int64 range.
func (f Fixed) Mul(other Fixed) Fixed {
	return Fixed(mu.MulShift(number(f), number(other), bitShift()))
}

// MulInt returns f*n.
func (f Fixed) MulInt(n int64) Fixed {
	return f * Fixed(n)
}

// Div returns f/other, rounded toward zero. If other == 0, Div panics with ErrDivideByZero.
// See Quo for a version returning an error.
func (f Fixed) Div(other Fixed) Fixed {
	if other == Zero {
		panic(ErrDivideByZero)
	}
	return Fixed(mu.ShiftDiv(number(f), number(other), bitShift()))
}

// Quo returns f/other, or ErrDivideByZero if other == 0.
func (f Fixed) Quo(other Fixed) (Fixed, error) {
	if other == Zero {
		return Zero, ErrDivideByZero
	}
	return f.Div(other), nil
}

// DivInt returns f/n, rounded toward zero. If n == 0, DivInt panics with ErrDivideByZero.
func (f Fixed) DivInt(n int64) Fixed {
	if n == 0 {
		panic(ErrDivideByZero)
	}
	return f / Fixed(n)
}

// Mod returns the remainder of integer parts of f and other, so that the fractional part is lost.
// Mod(7.9, 2.5) is 1, like 7 % 2. If the integer part of other is zero, Mod returns Zero.
func (f Fixed) Mod(other Fixed) Fixed {
	d := other.Int64()
	if d == 0 {
		return Zero
	}
	return FromInt(f.Int64() % d)
}

// Shl shifts the scaled value left by n bits, which is f*2^n.
func (f Fixed) Shl(n uint) Fixed {
	return f << n
}

// Shr shifts the scaled value right by n bits, which is f/2^n, rounded toward zero.
func (f Fixed) Shr(n uint) Fixed {
	return Fixed(mu.ShrTrunc(number(f), n))
}

package fmath

import (
	"fmt"

	"github.com/avdva/fxmath/fixed"
)

// LogE returns the natural logarithm of v, see LogEN.
func LogE(v fixed.Fixed) (fixed.Fixed, error) {
	return LogEN(v, DefaultTerms)
}

// LogEN calculates ln(v) as the first terms of the Taylor series of ln(1+x) for x = v-1.
// The series converges for v in (1, 2], the results are inaccurate beyond that.
// Values in (0, 1) are not supported and result in Zero.
// Returns a *DomainError for v <= 0.
func LogEN(v fixed.Fixed, terms int) (fixed.Fixed, error) {
	if v <= fixed.Zero {
		return fixed.Zero, &DomainError{Func: "log", Value: v}
	}
	one := fixed.One()
	if v <= one {
		return fixed.Zero, nil
	}
	x := v.Sub(one)
	sum, pow := fixed.Zero, x
	for i := 1; i <= terms; i++ {
		term := pow.DivInt(int64(i))
		if i%2 == 0 {
			sum = sum.Sub(term)
		} else {
			sum = sum.Add(term)
		}
		pow = pow.Mul(x)
	}
	return sum, nil
}

// Log returns the logarithm of v in the given base, as LogE(v)/LogE(base).
// If LogE(base) is zero, the error wraps fixed.ErrDivideByZero.
func Log(v, base fixed.Fixed) (fixed.Fixed, error) {
	num, err := LogE(v)
	if err != nil {
		return fixed.Zero, err
	}
	den, err := LogE(base)
	if err != nil {
		return fixed.Zero, err
	}
	res, err := num.Quo(den)
	if err != nil {
		return fixed.Zero, fmt.Errorf("fmath: log base %v: %w", base, err)
	}
	return res, nil
}

// Log2 returns the binary logarithm of v.
func Log2(v fixed.Fixed) (fixed.Fixed, error) {
	return Log(v, fixed.FromInt(2))
}

// Log10 returns the decimal logarithm of v.
func Log10(v fixed.Fixed) (fixed.Fixed, error) {
	return Log(v, fixed.FromInt(10))
}

package mathutil

import (
	"math/bits"
	"unsafe"
)

// Magnitude returns |val| as an unsigned number.
// Works for math.MinInt64 as well, which has no positive int64 counterpart.
func Magnitude(val int64) uint64 {
	u := uint64(val)
	if val < 0 {
		u = -u
	}
	return u
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val ^ mask) - mask
}

func AbsInt64(val int64) int64 {
	mask := val >> (unsafe.Sizeof(int64(0))*8 - 1)
	return (val ^ mask) - mask
}

func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

func applySign(u uint64, neg bool) int64 {
	if neg {
		return -int64(u)
	}
	return int64(u)
}

// ShrTrunc shifts val right by n bits, rounding toward zero.
// A plain arithmetic shift rounds toward negative infinity for negative values.
func ShrTrunc(val int64, n uint) int64 {
	if val >= 0 {
		return val >> n
	}
	return applySign(Magnitude(val)>>n, true)
}

// MulShift returns (a*b) >> shift, rounded toward zero.
// The product is calculated in 128 bits, so the intermediate value never overflows.
// If the final result does not fit 64 bits, only its lower bits are kept.
func MulShift(a, b int64, shift uint) int64 {
	hi, lo := bits.Mul64(Magnitude(a), Magnitude(b))
	lo = lo>>shift | hi<<(64-shift)
	return applySign(lo, !SameSign(a, b))
}

// ShiftDiv returns (a << shift) / b, rounded toward zero.
// The shifted dividend is kept in 128 bits. If the quotient does not fit 64 bits,
// only its lower bits are kept. Panics if b == 0.
func ShiftDiv(a, b int64, shift uint) int64 {
	if b == 0 {
		panic("integer divide by zero")
	}
	u, d := Magnitude(a), Magnitude(b)
	hi, lo := u>>(64-shift), u<<shift
	// the upper word of the quotient is dropped, only the remainder is needed
	// to keep bits.Div64 from overflowing.
	quo, _ := bits.Div64(hi%d, lo, d)
	return applySign(quo, !SameSign(a, b))
}

// FloorMod returns such r, that 0 <= r < m and a = q*m + r for some integer q.
// m must be positive.
func FloorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

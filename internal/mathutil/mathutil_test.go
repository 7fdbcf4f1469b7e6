package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMagnitude(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   int64
		res uint64
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{math.MaxInt64, math.MaxInt64},
		{math.MinInt64, 1 << 63},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Magnitude(test.v))
		})
	}
}

func TestAbs(t *testing.T) {
	a := assert.New(t)
	for _, v := range []int64{0, 1, -1, 42, -42, math.MaxInt64, -math.MaxInt64} {
		expected := v
		if v < 0 {
			expected = -v
		}
		a.Equal(expected, AbsInt64(v))
		if v >= math.MinInt32 && v <= math.MaxInt32 {
			a.Equal(int(expected), AbsInt(int(v)))
		}
	}
}

func TestShrTrunc(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   int64
		n   uint
		res int64
	}{
		{0, 10, 0},
		{1024, 10, 1},
		{1023, 10, 0},
		{-1023, 10, 0},
		{-1024, 10, -1},
		{-1536, 10, -1},
		{-3, 1, -1},
		{3, 1, 1},
		{math.MinInt64, 10, -1 << 53},
		{math.MinInt64, 0, math.MinInt64},
		{math.MinInt64, 63, -1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, ShrTrunc(test.v, test.n))
		})
	}
}

func TestMulShift(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b  int64
		shift uint
		res   int64
	}{
		{0, 0, 10, 0},
		{2048, 2048, 10, 4096},
		{-2048, 2048, 10, -4096},
		{-2048, -2048, 10, 4096},
		{1, 1, 10, 0},
		{-1, 1, 10, 0},
		{-1536, 1, 10, -1},
		{3, 7, 0, 21},
		// 2^40 * 2^40 >> 20 = 2^60, the product itself needs 81 bits.
		{1 << 40, 1 << 40, 20, 1 << 60},
		{-(1 << 40), 1 << 40, 20, -(1 << 60)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, MulShift(test.a, test.b, test.shift))
		})
	}
}

func TestShiftDiv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b  int64
		shift uint
		res   int64
	}{
		{0, 5, 10, 0},
		{4096, 2048, 10, 2048},
		{-4096, 2048, 10, -2048},
		{1024, 3072, 10, 341},
		{-1024, 3072, 10, -341},
		{7, 2, 0, 3},
		{-7, 2, 0, -3},
		// 2^60 << 20 needs 81 bits before the division.
		{1 << 60, 1 << 40, 20, 1 << 40},
		{100000, 100000, 30, 1 << 30},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, ShiftDiv(test.a, test.b, test.shift))
		})
	}
	a.Panics(func() {
		ShiftDiv(1, 0, 10)
	})
}

func TestFloorMod(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, m, res int64
	}{
		{0, 360, 0},
		{370, 360, 10},
		{-10, 360, 350},
		{-360, 360, 0},
		{-725, 360, 355},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, FloorMod(test.a, test.m))
		})
	}
}

func TestSign(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, Int64Sign(0))
	a.Equal(1, Int64Sign(5))
	a.Equal(-1, Int64Sign(-5))
	a.True(SameSign(1, 2))
	a.True(SameSign(-1, -2))
	a.False(SameSign(-1, 2))
}

func BenchmarkInt64Sign(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += Int64Sign(int64(i)) + Int64Sign(int64(-i)) + Int64Sign(int64(i-i))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkMulShift(b *testing.B) {
	var dummy int64
	for i := 0; i < b.N; i++ {
		dummy += MulShift(int64(i), -12345678, 10)
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}

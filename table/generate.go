package table

import (
	"fmt"
	"math"
	"strings"
)

// Func is a function tables can be generated for.
type Func string

const (
	FuncSin  Func = "sin"
	FuncCos  Func = "cos"
	FuncTan  Func = "tan"
	FuncAsin Func = "asin"
	FuncAcos Func = "acos"
)

// Funcs lists all supported functions.
var Funcs = []Func{FuncSin, FuncCos, FuncTan, FuncAsin, FuncAcos}

// ParseFunc parses a function name, or its 1-based number in Funcs.
func ParseFunc(s string) (Func, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, f := range Funcs {
		if s == string(f) || s == fmt.Sprint(i+1) {
			return f, nil
		}
	}
	if s == "atan" {
		// atan is defined on the whole real line, there is no finite domain to tabulate.
		return "", fmt.Errorf("atan cannot be tabulated: %w", ErrInvalidTable)
	}
	return "", fmt.Errorf("unknown function %q: %w", s, ErrInvalidTable)
}

// Domain returns the canonical domain of the function.
func (f Func) Domain() Domain {
	switch f {
	case FuncTan:
		return Domain{Min: -0.5 * math.Pi, Max: 0.5 * math.Pi}
	case FuncAsin, FuncAcos:
		return Domain{Min: -1, Max: 1}
	default:
		return Domain{Min: 0, Max: 2 * math.Pi}
	}
}

// Eval calculates the function using float64 math.
func (f Func) Eval(x float64) (float64, error) {
	switch f {
	case FuncSin:
		return math.Sin(x), nil
	case FuncCos:
		return math.Cos(x), nil
	case FuncTan:
		return math.Tan(x), nil
	case FuncAsin:
		return math.Asin(x), nil
	case FuncAcos:
		return math.Acos(x), nil
	}
	return 0, fmt.Errorf("unknown function %q: %w", f, ErrInvalidTable)
}

// Generate calculates count entries of f over d, so that the i-th entry is
// round(f(d.Min + i*(d.Max-d.Min)/count) * scale), rounded half away from zero.
// If limit > 0, the values of f are saturated at [-limit, limit] before scaling,
// which keeps the poles of tan representable.
func Generate(f Func, d Domain, count int, scale int64, limit float64) ([]int64, error) {
	if count <= 0 || scale <= 0 || !(d.Max > d.Min) {
		return nil, fmt.Errorf("count=%d, scale=%d, domain=%v: %w", count, scale, d, ErrInvalidTable)
	}
	entries := make([]int64, count)
	unit := d.Width() / float64(count)
	for i := range entries {
		v, err := f.Eval(d.Min + float64(i)*unit)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%s is undefined at index %d: %w", f, i, ErrInvalidTable)
		}
		if limit > 0 {
			v = math.Max(-limit, math.Min(limit, v))
		}
		v = math.Round(v * float64(scale))
		if v >= math.MaxInt64 || v <= math.MinInt64 {
			return nil, fmt.Errorf("%s overflows at index %d, set a limit: %w", f, i, ErrInvalidTable)
		}
		entries[i] = int64(v)
	}
	return entries, nil
}

package table

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/avdva/fxmath/fixed"
)

func linearTable(t *testing.T) *Table {
	tbl, err := New("linear", Domain{Min: 0, Max: 8}, 10, []int64{0, 10, 20, 30, 40, 50, 60, 70})
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestNew(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		domain  Domain
		scale   int64
		entries []int64
		valid   bool
	}{
		{Domain{0, 1}, 1, []int64{1}, true},
		{Domain{0, 1}, 1, nil, false},
		{Domain{0, 1}, 0, []int64{1}, false},
		{Domain{0, 1}, -5, []int64{1}, false},
		{Domain{1, 1}, 1, []int64{1}, false},
		{Domain{1, 0}, 1, []int64{1}, false},
		{Domain{math.NaN(), 1}, 1, []int64{1}, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			tbl, err := New("t", test.domain, test.scale, test.entries)
			if test.valid {
				a.NoError(err)
				a.NotNil(tbl)
			} else {
				a.True(errors.Is(err, ErrInvalidTable))
				a.Panics(func() {
					MustNew("t", test.domain, test.scale, test.entries)
				})
			}
		})
	}
}

func TestEntriesAreCopied(t *testing.T) {
	a := assert.New(t)
	src := []int64{1, 2, 3}
	tbl := MustNew("copy", Domain{0, 3}, 1, src)
	src[0] = 100
	a.Equal(int64(1), tbl.Entry(0))
	got := tbl.Entries()
	got[1] = 100
	a.Equal(int64(2), tbl.Entry(1))
}

func TestIndex(t *testing.T) {
	a := assert.New(t)
	tbl := linearTable(t)
	tests := []struct {
		x   fixed.Fixed
		idx int
	}{
		{fixed.Zero, 0},
		{fixed.FromInt(3), 3},
		{fixed.FromFloat64(2.4), 2},
		{fixed.FromFloat64(2.6), 3},
		// the index is rounded half to even.
		{fixed.FromFloat64(2.5), 2},
		{fixed.FromFloat64(3.5), 4},
		{fixed.FromInt(-1), 0},
		{fixed.FromFloat64(7.9), 7},
		{fixed.FromInt(8), 7},
		{fixed.FromInt(100), 7},
		{fixed.FromRaw(1 << 54), 7},
		{fixed.FromRaw(-1 << 54), 0},
		{fixed.Max, 7},
		{fixed.Min, 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.idx, tbl.Index(test.x))
		})
	}
}

func TestLookup(t *testing.T) {
	a := assert.New(t)
	tbl := linearTable(t)
	a.Equal("linear", tbl.Name())
	a.Equal(8, tbl.Len())
	a.Equal(int64(10), tbl.Scale())
	a.Equal(Domain{0, 8}, tbl.Domain())
	a.Equal(fixed.FromInt(3), tbl.Lookup(fixed.FromInt(3)))
	a.Equal(fixed.FromInt(7), tbl.Lookup(fixed.FromInt(50)))
	a.Equal(fixed.Zero, tbl.Lookup(fixed.FromInt(-50)))
	a.Equal(fixed.FromInt(5), tbl.At(5))
}

func TestBuiltinTables(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		tbl   *Table
		f     Func
		limit float64
	}{
		{Sin(), FuncSin, 0},
		{Cos(), FuncCos, 0},
		{Tan(), FuncTan, 1e6},
		{Asin(), FuncAsin, 0},
		{Acos(), FuncAcos, 0},
	}
	for _, test := range tests {
		t.Run(string(test.f), func(t *testing.T) {
			a.Equal(string(test.f), test.tbl.Name())
			a.Equal(test.f.Domain(), test.tbl.Domain())
			a.Equal(int64(100000), test.tbl.Scale())
			a.Equal(1024, test.tbl.Len())
			// float math may differ in the last bit across implementations,
			// which is allowed to move an entry by one.
			expected, err := Generate(test.f, test.tbl.Domain(), test.tbl.Len(), test.tbl.Scale(), test.limit)
			if a.NoError(err) {
				for i, e := range expected {
					a.InDelta(e, test.tbl.Entry(i), 1, "entry %d", i)
				}
			}
		})
	}
	a.Equal(int64(0), Sin().Entry(0))
	a.Equal(int64(100000), Sin().Entry(256))
	a.Equal(int64(100000), Cos().Entry(0))
	a.Equal(int64(-1000000*100000), Tan().Entry(0))
	a.Equal(int64(0), Tan().Entry(512))
	a.Equal(int64(0), Asin().Entry(512))
	a.Equal(int64(-157080), Asin().Entry(0))
	a.Equal(int64(314159), Acos().Entry(0))
}

func TestGenerate(t *testing.T) {
	a := assert.New(t)
	entries, err := Generate(FuncSin, Domain{0, 2 * math.Pi}, 4, 10, 0)
	if a.NoError(err) {
		a.Equal([]int64{0, 10, 0, -10}, entries)
	}
	entries, err = Generate(FuncTan, FuncTan.Domain(), 4, 10, 5)
	if a.NoError(err) {
		a.Equal([]int64{-50, -10, 0, 10}, entries)
	}
	_, err = Generate(FuncTan, FuncTan.Domain(), 4, 1e18, 0)
	a.True(errors.Is(err, ErrInvalidTable))
	_, err = Generate(FuncSin, Domain{0, 1}, 0, 10, 0)
	a.True(errors.Is(err, ErrInvalidTable))
	_, err = Generate(FuncAsin, Domain{-2, 2}, 4, 10, 0)
	a.True(errors.Is(err, ErrInvalidTable))
	_, err = Generate(Func("exp"), Domain{0, 1}, 4, 10, 0)
	a.True(errors.Is(err, ErrInvalidTable))
}

func TestParseFunc(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		f   Func
		err bool
	}{
		{"sin", FuncSin, false},
		{"1", FuncSin, false},
		{" TAN ", FuncTan, false},
		{"5", FuncAcos, false},
		{"atan", "", true},
		{"6", "", true},
		{"exp", "", true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := ParseFunc(test.s)
			if test.err {
				a.True(errors.Is(err, ErrInvalidTable))
			} else if a.NoError(err) {
				a.Equal(test.f, f)
			}
		})
	}
}

func TestWriteGo(t *testing.T) {
	a := assert.New(t)
	tbl := MustNew("ramp", Domain{Min: -0.5, Max: 1}, 10, []int64{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, -16,
	})
	var b bytes.Buffer
	if a.NoError(WriteGo(&b, "table", "fxtable", []*Table{tbl})) {
		src := b.String()
		a.True(strings.HasPrefix(src, "// Code generated by fxtable; DO NOT EDIT.\n\npackage table\n"))
		a.Contains(src, `rampTable = MustNew("ramp", Domain{Min: -0.5, Max: 1}, 10, []int64{`)
		a.Contains(src, "\t\t0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,\n\t\t-16,\n\t})")
	}
	a.Error(WriteGo(&b, "no such package", "fxtable", []*Table{tbl}))
}

func TestBoundsLogging(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer
	fixed.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer fixed.SetLogger(zerolog.Nop())

	tbl := linearTable(t)
	tbl.Lookup(fixed.One())
	tbl.Lookup(fixed.One())
	a.Equal(1, strings.Count(buf.String(), "table bounds resolved"))
	a.Contains(buf.String(), `"table":"linear"`)
}

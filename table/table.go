// Package table holds read-only lookup tables for table-driven trigonometry.
//
// A table stores round(f(x) * Scale) for len(entries) points evenly spaced
// over its half-open domain [Min, Max). The domain travels with the table,
// so every lookup maps its input with the same bounds the table was generated for.
package table

import (
	"errors"
	"fmt"
	"sync"

	"github.com/avdva/fxmath/fixed"
)

// ErrInvalidTable is returned for malformed table data.
var ErrInvalidTable = errors.New("table: invalid table")

// Domain is a half-open interval [Min, Max).
type Domain struct {
	Min, Max float64
}

// Width returns Max-Min.
func (d Domain) Width() float64 {
	return d.Max - d.Min
}

func (d Domain) String() string {
	return fmt.Sprintf("[%g, %g)", d.Min, d.Max)
}

// Table is an immutable lookup table. It's safe for concurrent use.
type Table struct {
	name    string
	domain  Domain
	scale   int64
	entries []int64
	bounds  func() bounds
}

type bounds struct {
	min, max, width fixed.Fixed
}

// New returns a table for given entries. The entries are copied.
func New(name string, domain Domain, scale int64, entries []int64) (*Table, error) {
	switch {
	case len(entries) == 0:
		return nil, fmt.Errorf("%s: no entries: %w", name, ErrInvalidTable)
	case scale <= 0:
		return nil, fmt.Errorf("%s: scale %d must be positive: %w", name, scale, ErrInvalidTable)
	case !(domain.Max > domain.Min):
		return nil, fmt.Errorf("%s: empty domain %v: %w", name, domain, ErrInvalidTable)
	}
	t := &Table{
		name:    name,
		domain:  domain,
		scale:   scale,
		entries: append([]int64(nil), entries...),
	}
	// bounds depend on the precision, so they are resolved on first lookup.
	t.bounds = sync.OnceValue(t.resolveBounds)
	return t, nil
}

// MustNew is like New, but panics on error.
func MustNew(name string, domain Domain, scale int64, entries []int64) *Table {
	t, err := New(name, domain, scale, entries)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) resolveBounds() bounds {
	b := bounds{min: fixed.FromFloat64(t.domain.Min)}
	b.width = fixed.FromFloat64(t.domain.Max).Sub(b.min)
	if b.width <= fixed.Zero {
		b.width = fixed.Epsilon
	}
	b.max = b.min.Add(b.width)
	fixed.Logger().Debug().
		Str("table", t.name).
		Stringer("min", b.min).
		Stringer("width", b.width).
		Int("entries", len(t.entries)).
		Msg("table bounds resolved")
	return b
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Domain() Domain {
	return t.domain
}

// Scale is the divisor applied to entries.
func (t *Table) Scale() int64 {
	return t.scale
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns the i-th scaled entry.
func (t *Table) Entry(i int) int64 {
	return t.entries[i]
}

// Entries returns a copy of all entries.
func (t *Table) Entries() []int64 {
	return append([]int64(nil), t.entries...)
}

// Index maps x from the domain onto [0, Len()-1].
// Values outside of the domain saturate at the first or the last index.
func (t *Table) Index(x fixed.Fixed) int {
	b := t.bounds()
	last := len(t.entries) - 1
	// saturate before scaling, x far out of the domain would overflow.
	switch {
	case x <= b.min:
		return 0
	case x >= b.max:
		return last
	}
	idx := x.Sub(b.min).MulInt(int64(len(t.entries))).Div(b.width)
	switch {
	case idx < fixed.Zero:
		idx = fixed.Zero
	case idx > fixed.FromInt(last):
		idx = fixed.FromInt(last)
	}
	return idx.RoundToInt()
}

// At returns the i-th entry divided by the scale.
func (t *Table) At(i int) fixed.Fixed {
	return fixed.FromRatio(t.entries[i], t.scale)
}

// Lookup returns the entry nearest to x, divided by the scale.
func (t *Table) Lookup(x fixed.Fixed) fixed.Fixed {
	return t.At(t.Index(x))
}

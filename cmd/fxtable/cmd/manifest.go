package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/avdva/fxmath/table"
)

const (
	defaultCount = 1024
	defaultScale = 100000
)

// Manifest describes a set of tables written to one Go file.
// Count and Scale apply to the tables which do not set their own.
type Manifest struct {
	Package string      `yaml:"package" toml:"package"`
	Count   int         `yaml:"count" toml:"count"`
	Scale   int64       `yaml:"scale" toml:"scale"`
	Tables  []TableSpec `yaml:"tables" toml:"tables"`
}

// TableSpec describes a single table.
// Min and Max are numbers or multiples of pi, like "-pi/2" or "2pi".
// If not set, the function's canonical domain is used.
type TableSpec struct {
	Name  string  `yaml:"name" toml:"name"`
	Func  string  `yaml:"func" toml:"func"`
	Min   string  `yaml:"min" toml:"min"`
	Max   string  `yaml:"max" toml:"max"`
	Count int     `yaml:"count" toml:"count"`
	Scale int64   `yaml:"scale" toml:"scale"`
	Limit float64 `yaml:"limit" toml:"limit"`
}

func loadManifest(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &m)
	case ".toml":
		_, err = toml.Decode(string(content), &m)
	default:
		return nil, fmt.Errorf("%s: unsupported manifest format %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(m.Tables) == 0 {
		return nil, fmt.Errorf("%s: no tables", path)
	}
	return &m, nil
}

// build generates the table described by ts.
func (m *Manifest) build(ts TableSpec) (*table.Table, error) {
	f, err := table.ParseFunc(ts.Func)
	if err != nil {
		return nil, err
	}
	domain := f.Domain()
	if ts.Min != "" {
		if domain.Min, err = parseBound(ts.Min); err != nil {
			return nil, err
		}
	}
	if ts.Max != "" {
		if domain.Max, err = parseBound(ts.Max); err != nil {
			return nil, err
		}
	}
	count := firstNonZero(ts.Count, m.Count, defaultCount)
	scale := firstNonZero(ts.Scale, m.Scale, defaultScale)
	entries, err := table.Generate(f, domain, count, scale, ts.Limit)
	if err != nil {
		return nil, err
	}
	name := ts.Name
	if name == "" {
		name = string(f)
	}
	return table.New(name, domain, scale, entries)
}

func firstNonZero[T int | int64](values ...T) T {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

// parseBound parses a plain number, or "[coef]pi[/div]", like "pi", "-pi/2", "0.5pi" or "2*pi".
func parseBound(s string) (float64, error) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	i := strings.Index(s, "pi")
	if i < 0 {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid bound %q: %w", s, err)
		}
		return v, nil
	}
	coef, div := 1.0, 1.0
	switch c := strings.TrimSuffix(s[:i], "*"); c {
	case "", "+":
	case "-":
		coef = -1
	default:
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid bound %q: %w", s, err)
		}
		coef = v
	}
	if rest := s[i+2:]; rest != "" {
		if !strings.HasPrefix(rest, "/") {
			return 0, fmt.Errorf("invalid bound %q", s)
		}
		v, err := strconv.ParseFloat(rest[1:], 64)
		if err != nil || v == 0 {
			return 0, fmt.Errorf("invalid bound %q: bad divisor", s)
		}
		div = v
	}
	return coef * math.Pi / div, nil
}

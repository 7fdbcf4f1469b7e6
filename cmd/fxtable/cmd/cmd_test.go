package cmd

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/fxmath/table"
)

const yamlManifest = `
package: lut
count: 4
scale: 10
tables:
  - name: wave
    func: sin
  - func: tan
    min: -pi/4
    max: pi/4
    limit: 5
  - name: big
    func: cos
    count: 8
    scale: 1000
`

const tomlManifest = `
package = "lut"
count = 4
scale = 10

[[tables]]
name = "wave"
func = "sin"

[[tables]]
func = "tan"
min = "-pi/4"
max = "pi/4"
limit = 5.0

[[tables]]
name = "big"
func = "cos"
count = 8
scale = 1000
`

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	a := assert.New(t)
	for _, name := range []string{"tables.yaml", "tables.yml", "tables.toml"} {
		t.Run(name, func(t *testing.T) {
			content := yamlManifest
			if strings.HasSuffix(name, ".toml") {
				content = tomlManifest
			}
			m, err := loadManifest(writeFile(t, name, content))
			if !a.NoError(err) {
				return
			}
			a.Equal("lut", m.Package)
			a.Equal(4, m.Count)
			a.Equal(int64(10), m.Scale)
			if a.Len(m.Tables, 3) {
				a.Equal(TableSpec{Name: "wave", Func: "sin"}, m.Tables[0])
				a.Equal(TableSpec{Func: "tan", Min: "-pi/4", Max: "pi/4", Limit: 5}, m.Tables[1])
				a.Equal(TableSpec{Name: "big", Func: "cos", Count: 8, Scale: 1000}, m.Tables[2])
			}
		})
	}
	_, err := loadManifest(writeFile(t, "tables.json", "{}"))
	a.Error(err)
	_, err = loadManifest(writeFile(t, "empty.yaml", "package: lut\n"))
	a.Error(err)
	_, err = loadManifest(writeFile(t, "broken.toml", "tables = ["))
	a.Error(err)
	_, err = loadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	a.Error(err)
}

func TestRepoManifest(t *testing.T) {
	a := assert.New(t)
	m, err := loadManifest("../../../tables.yaml")
	if !a.NoError(err) {
		return
	}
	a.Equal("table", m.Package)
	names := make([]string, 0, len(m.Tables))
	for _, ts := range m.Tables {
		names = append(names, ts.Name)
	}
	a.Equal([]string{"sin", "cos", "tan", "asin", "acos"}, names)
}

func TestParseBound(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s     string
		v     float64
		valid bool
	}{
		{"0", 0, true},
		{"-1", -1, true},
		{"0.25", 0.25, true},
		{"pi", math.Pi, true},
		{"-pi", -math.Pi, true},
		{"+pi", math.Pi, true},
		{"2pi", 2 * math.Pi, true},
		{"2 * PI", 2 * math.Pi, true},
		{"-pi/2", -0.5 * math.Pi, true},
		{"0.5pi", 0.5 * math.Pi, true},
		{"3pi/4", 3 * math.Pi / 4, true},
		{"", 0, false},
		{"x", 0, false},
		{"xpi", 0, false},
		{"pi/0", 0, false},
		{"pi2", 0, false},
		{"pi/y", 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := parseBound(test.s)
			if test.valid {
				a.NoError(err)
				a.Equal(test.v, v)
			} else {
				a.Error(err)
			}
		})
	}
}

func TestBuildTables(t *testing.T) {
	a := assert.New(t)
	m, err := loadManifest(writeFile(t, "tables.yaml", yamlManifest))
	if !a.NoError(err) {
		return
	}
	tables, err := buildTables(m)
	if !a.NoError(err) || !a.Len(tables, 3) {
		return
	}
	a.Equal("wave", tables[0].Name())
	a.Equal(table.FuncSin.Domain(), tables[0].Domain())
	a.Equal([]int64{0, 10, 0, -10}, tables[0].Entries())

	a.Equal("tan", tables[1].Name())
	a.Equal(table.Domain{Min: -math.Pi / 4, Max: math.Pi / 4}, tables[1].Domain())
	a.Equal(4, tables[1].Len())
	a.Equal(int64(-10), tables[1].Entry(0))

	a.Equal("big", tables[2].Name())
	a.Equal(8, tables[2].Len())
	a.Equal(int64(1000), tables[2].Scale())
	a.Equal(int64(1000), tables[2].Entry(0))

	m.Tables = append(m.Tables, TableSpec{Func: "atan"})
	_, err = buildTables(m)
	a.Error(err)
	m.Tables[len(m.Tables)-1] = TableSpec{Func: "sin", Min: "1", Max: "0"}
	_, err = buildTables(m)
	a.Error(err)
}

func TestGenerateCommand(t *testing.T) {
	a := assert.New(t)
	manifest := writeFile(t, "tables.toml", tomlManifest)
	out := filepath.Join(t.TempDir(), "tables_gen.go")
	rootCmd.SetArgs([]string{"generate", "--manifest", manifest, "--out", out, "--package", "gen"})
	if !a.NoError(rootCmd.Execute()) {
		return
	}
	src, err := os.ReadFile(out)
	if a.NoError(err) {
		a.True(strings.HasPrefix(string(src), "// Code generated by fxtable; DO NOT EDIT.\n\npackage gen\n"))
		a.Contains(string(src), `waveTable = MustNew("wave", Domain{Min: 0, Max: 6.283185307179586}, 10, []int64{`)
		a.Contains(string(src), "\t\t0, 10, 0, -10,\n")
		a.Contains(string(src), `bigTable = MustNew("big"`)
	}
}

func TestWriteValues(t *testing.T) {
	a := assert.New(t)
	entries := make([]int64, 22)
	for i := range entries {
		entries[i] = int64(i)
	}
	entries[21] = -255
	var b bytes.Buffer
	if a.NoError(writeValues(&b, entries, false)) {
		lines := strings.Split(b.String(), "\n")
		if a.Len(lines, 3) {
			a.Equal("0,\t1,\t2,\t3,\t4,\t5,\t6,\t7,\t8,\t9,\t10,\t11,\t12,\t13,\t14,\t15,\t16,\t17,\t18,\t19,", lines[0])
			a.Equal("20,\t-255", lines[1])
			a.Equal("", lines[2])
		}
	}
	b.Reset()
	if a.NoError(writeValues(&b, []int64{0, 255, -255, 100000}, true)) {
		a.Equal("0x0,\t0xFF,\t-0xFF,\t0x186A0\n", b.String())
	}
	b.Reset()
	if a.NoError(writeValues(&b, entries[:20], false)) {
		a.True(strings.HasSuffix(b.String(), "18,\t19\n"))
	}
}

func TestPrintCommand(t *testing.T) {
	a := assert.New(t)
	var b bytes.Buffer
	rootCmd.SetOut(&b)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"print", "sin", "--count", "4", "--scale", "10"})
	if a.NoError(rootCmd.Execute()) {
		a.Equal("0,\t10,\t0,\t-10\n", b.String())
	}
	b.Reset()
	rootCmd.SetArgs([]string{"print", "3", "--count", "4", "--scale", "10", "--limit", "5", "--hex"})
	if a.NoError(rootCmd.Execute()) {
		a.Equal("-0x32,\t-0xA,\t0x0,\t0xA\n", b.String())
	}
	rootCmd.SetArgs([]string{"print", "atan"})
	a.Error(rootCmd.Execute())
}

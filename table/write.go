package table

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
)

const entriesPerLine = 16

// WriteGo writes tables as a Go source file of package pkg.
// Every table becomes a package-level variable named <name>Table.
func WriteGo(w io.Writer, pkg, generator string, tables []*Table) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by %s; DO NOT EDIT.\n\npackage %s\n\nvar (\n", generator, pkg)
	for _, t := range tables {
		fmt.Fprintf(&b, "\t%sTable = MustNew(%q, Domain{Min: %s, Max: %s}, %d, []int64{\n",
			t.name, t.name, formatFloat(t.domain.Min), formatFloat(t.domain.Max), t.scale)
		for i, e := range t.entries {
			if i%entriesPerLine == 0 {
				b.WriteRune('\t')
			} else {
				b.WriteRune(' ')
			}
			b.WriteString(strconv.FormatInt(e, 10))
			b.WriteRune(',')
			if (i+1)%entriesPerLine == 0 || i == len(t.entries)-1 {
				b.WriteRune('\n')
			}
		}
		b.WriteString("\t})\n")
	}
	b.WriteString(")\n")
	src, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

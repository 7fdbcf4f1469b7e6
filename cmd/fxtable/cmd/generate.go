package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/avdva/fxmath/table"
)

const generatorName = "fxtable"

var generateOpts struct {
	manifest string
	out      string
	pkg      string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a Go file with tables from a manifest",
	Long: `Generate reads a YAML or TOML manifest and writes
a Go source file declaring every table listed in it.

Tables are written in the manifest order.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateOpts.manifest, "manifest", "tables.yaml", "manifest file (.yaml, .yml or .toml)")
	f.StringVar(&generateOpts.out, "out", "tables_gen.go", "output file, - for stdout")
	f.StringVar(&generateOpts.pkg, "package", "", "package name, overrides the manifest")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	m, err := loadManifest(generateOpts.manifest)
	if err != nil {
		return err
	}
	if generateOpts.pkg != "" {
		m.Package = generateOpts.pkg
	}
	if m.Package == "" {
		m.Package = "table"
	}
	tables, err := buildTables(m)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := table.WriteGo(&b, m.Package, generatorName, tables); err != nil {
		return err
	}
	if generateOpts.out == "-" {
		_, err = cmd.OutOrStdout().Write(b.Bytes())
		return err
	}
	if err := os.WriteFile(generateOpts.out, b.Bytes(), 0o644); err != nil {
		return err
	}
	log.Info().Str("file", generateOpts.out).Int("tables", len(tables)).Msg("tables written")
	return nil
}

// buildTables generates the tables of m concurrently.
// The result has the same order as m.Tables.
func buildTables(m *Manifest) ([]*table.Table, error) {
	var g errgroup.Group
	tables := make([]*table.Table, len(m.Tables))
	for i, ts := range m.Tables {
		g.Go(func() error {
			t, err := m.build(ts)
			if err != nil {
				return fmt.Errorf("table #%d (%s): %w", i+1, ts.Name, err)
			}
			log.Debug().Str("table", t.Name()).Stringer("domain", t.Domain()).Int("count", t.Len()).Msg("table generated")
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

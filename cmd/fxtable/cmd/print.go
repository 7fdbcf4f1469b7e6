package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/avdva/fxmath/table"
)

const valuesPerLine = 20

// tanLimit saturates tan when --limit is not set.
const tanLimit = 1e6

var printOpts struct {
	count int
	scale int64
	hex   bool
	limit float64
}

var printCmd = &cobra.Command{
	Use:   "print <func>",
	Short: "Print the values of a table",
	Long: `Print calculates a table over the function's canonical domain
and prints its values, twenty per line.

func is one of sin, cos, tan, asin, acos, or its number 1-5.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

func init() {
	f := printCmd.Flags()
	f.IntVar(&printOpts.count, "count", defaultCount, "number of entries")
	f.Int64Var(&printOpts.scale, "scale", defaultScale, "scale of entries")
	f.BoolVar(&printOpts.hex, "hex", false, "print hexadecimal values")
	f.Float64Var(&printOpts.limit, "limit", 0, "saturate values at [-limit, limit], 0 means no limit")
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	f, err := table.ParseFunc(args[0])
	if err != nil {
		return err
	}
	limit := printOpts.limit
	if f == table.FuncTan && !cmd.Flags().Changed("limit") {
		limit = tanLimit
	}
	entries, err := table.Generate(f, f.Domain(), printOpts.count, printOpts.scale, limit)
	if err != nil {
		return err
	}
	log.Info().
		Str("func", string(f)).
		Stringer("domain", f.Domain()).
		Int("count", printOpts.count).
		Int64("scale", printOpts.scale).
		Bool("hex", printOpts.hex).
		Msg("table generated")
	return writeValues(cmd.OutOrStdout(), entries, printOpts.hex)
}

// writeValues writes comma separated values, valuesPerLine values per line.
func writeValues(w io.Writer, entries []int64, hex bool) error {
	bw := bufio.NewWriter(w)
	for i, e := range entries {
		bw.WriteString(formatValue(e, hex))
		switch {
		case i == len(entries)-1:
			bw.WriteByte('\n')
		case (i+1)%valuesPerLine == 0:
			bw.WriteString(",\n")
		default:
			bw.WriteString(",\t")
		}
	}
	return bw.Flush()
}

func formatValue(v int64, hex bool) string {
	if !hex {
		return strconv.FormatInt(v, 10)
	}
	if v < 0 {
		return fmt.Sprintf("-0x%X", uint64(-v))
	}
	return fmt.Sprintf("0x%X", v)
}

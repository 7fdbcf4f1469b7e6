// Package cmd implements the fxtable commands.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/avdva/fxmath/fixed"
)

var (
	verbose bool
	log     = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "fxtable",
	Short: "Lookup table generator for fxmath",
	Long: `fxtable generates the lookup tables used by fxmath trigonometry.

The generate command turns a manifest into a Go source file,
print shows the values of a single table.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().
			Timestamp().
			Logger()
		fixed.SetLogger(log)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug output")
}

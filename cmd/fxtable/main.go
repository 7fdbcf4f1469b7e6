// Command fxtable generates lookup tables for package table.
package main

import (
	"os"

	"github.com/avdva/fxmath/cmd/fxtable/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

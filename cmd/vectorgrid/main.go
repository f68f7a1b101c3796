// Command vectorgrid opens the interactive vector playground.
//
// Usage:
//
//	vectorgrid [--config file] [--width 880] [--height 880] [--spacing 40]
//	           [--script steps.json --exit-on-done] [--show-fps] [--sticky-grab]
//	vectorgrid version
//
// Every flag can also be set in vectorgrid.yaml or through VECTORGRID_*
// environment variables, e.g. VECTORGRID_GRID_SPACING=20.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Command olsfit is the headless companion to the Line Fitter GUI: it fits
// and evaluates lines over point files without a display.
package main

import (
	"os"

	"line-fitter/cmd/olsfit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

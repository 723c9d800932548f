package internal

import (
	"io"
	"log"
	"os"
)

// InitLogging routes diagnostics to stderr when verbose, and drops them otherwise.
// Stdout is reserved for the report.
func InitLogging(verbose bool) {
	var out io.Writer = io.Discard
	if verbose {
		out = os.Stderr
	}
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// Command htdecomp is a thin CLI front end over the library packages:
// parse a hypergraph, compute a tree decomposition, optionally
// normalize it into a nice decomposition, print it, or verify a
// previously computed one.
package main

import (
	"log"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("htdecomp: %v", err)
	}
}

// logger is a plain stdlib logger, gated by --verbose, in the style of
// BalancedGo's logActive convention: a structured logging library would
// be overkill for a single-binary CLI whose only consumer is a human
// terminal.
var logger = log.New(os.Stderr, "htdecomp: ", 0)

func logf(format string, args ...interface{}) {
	if !verbose {
		return
	}
	logger.Printf(format, args...)
}

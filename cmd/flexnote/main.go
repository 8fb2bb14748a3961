package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// exit is swapped out in tests.
var exit = os.Exit

func main() {
	Execute()
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	exit(1)
}

// fatalClose releases c before exiting. os.Exit skips deferred calls, so
// commands holding an open session report errors through here.
func fatalClose(c io.Closer, msg string, err error) {
	if cerr := c.Close(); cerr != nil {
		slog.Debug("close on exit failed", "error", cerr)
	}
	fatal(msg, err)
}

// Command walkgen turns an edge list into a random-walk corpus.
//
// Usage:
//
//	walkgen [options] [EDGES_PATH]
//
// Settings come from an optional TOML file (-config) and are overridden by
// flags. Walks or skip-gram pairs are written to -out ("-" for stdout);
// logs go to stderr.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

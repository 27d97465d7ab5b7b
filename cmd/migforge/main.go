// Command migforge turns ad-hoc SQL into properly named Flyway-style
// migration files: versioned (V<timestamp>__<name>.sql) or repeatable
// (R__<name>.sql), written collision-safely into a migrations directory.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// errExit means the failure was already rendered through the UI.
		if !errors.Is(err, errExit) {
			fmt.Fprintf(os.Stderr, "migforge: %v\n", err)
		}
		os.Exit(1)
	}
}

// Command rexnfa is the CLI front-end for the rexnfa regular-expression
// engine: regular, batch, and test-generation modes over the core
// compile-and-match pipeline (see the rexnfa and internal/runner
// packages).
package main

import (
	"os"

	"github.com/hadi16/rexnfa/internal/runner"
)

func main() {
	os.Exit(runner.Execute())
}

package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hadi16/rexnfa/internal/testgen"
)

const suiteDir = "tests"

// writeSuites writes one positive and one negative suite file under
// tests/: each line is "regex\tstring", one line per (pattern, sample)
// pair.
func writeSuites(cases []testgen.Case) error {
	if err := os.MkdirAll(suiteDir, 0o755); err != nil {
		return err
	}

	positivePath := filepath.Join(suiteDir, "positive.txt")
	negativePath := filepath.Join(suiteDir, "negative.txt")

	posFile, err := os.Create(positivePath)
	if err != nil {
		return err
	}
	defer posFile.Close()

	negFile, err := os.Create(negativePath)
	if err != nil {
		return err
	}
	defer negFile.Close()

	for _, c := range cases {
		for _, s := range c.Positive {
			if _, err := fmt.Fprintf(posFile, "%s\t%s\n", c.Regex, s); err != nil {
				return err
			}
		}
		for _, s := range c.Negative {
			if _, err := fmt.Fprintf(negFile, "%s\t%s\n", c.Regex, s); err != nil {
				return err
			}
		}
	}
	return nil
}

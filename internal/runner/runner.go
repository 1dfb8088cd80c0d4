// Package runner implements the command-line surface: a single command
// with three mutually exclusive modes (regular, batch, test-generation),
// dispatched with github.com/spf13/cobra.
package runner

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hadi16/rexnfa"
	"github.com/hadi16/rexnfa/internal/batch"
	"github.com/hadi16/rexnfa/internal/config"
	"github.com/hadi16/rexnfa/internal/logging"
	"github.com/hadi16/rexnfa/internal/rexerr"
	"github.com/hadi16/rexnfa/internal/testgen"
)

// Exit codes: zero on success, non-zero otherwise. The distinct
// non-zero values let an operator or a calling script tell a usage
// mistake apart from a bad pattern or a broken batch file.
const (
	ExitOK           = 0
	ExitUsage        = 1
	ExitPatternError = 2
	ExitBatchError   = 3
)

var (
	regex         string
	testStrings   []string
	inputFile     string
	outputFile    string
	generateTests int
	verbose       bool
	log           *logging.Logger
)

// Execute builds and runs the root command against os.Args, returning
// the process exit code. cmd/rexnfa is the only caller that should turn
// this into an actual os.Exit, which keeps this package testable.
func Execute() int {
	exitCode := ExitOK
	cmd := New()
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		exitCode = run(cmd)
		return nil
	}
	if err := cmd.Execute(); err != nil {
		return ExitUsage
	}
	return exitCode
}

// New builds the root cobra.Command without executing it; exported for
// tests that want to drive flag parsing directly.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rexnfa",
		Short:         "Thompson-NFA regular expression membership engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&regex, "regex", "", "pattern to compile (regular mode)")
	cmd.Flags().StringArrayVar(&testStrings, "test-string", nil, "candidate string to test (regular mode, repeatable)")
	cmd.Flags().StringVar(&inputFile, "input-file", "", "JSON batch input file (batch mode)")
	cmd.Flags().StringVar(&outputFile, "output-file", "", "JSON batch output file (batch mode)")
	cmd.Flags().IntVar(&generateTests, "generate-tests", 0, "number of random patterns to generate (test-generation mode)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable diagnostic output")

	if path, err := config.DefaultPath(); err == nil {
		if cfg, err := config.Load(path); err == nil {
			if cfg.Verbose {
				verbose = true
			}
			if cfg.OutputFile != "" && outputFile == "" {
				outputFile = cfg.OutputFile
			}
		}
	}

	return cmd
}

type mode int

const (
	modeNone mode = iota
	modeRegular
	modeBatch
	modeGenerate
)

func selectedModes() []mode {
	var modes []mode
	if regex != "" || len(testStrings) > 0 {
		modes = append(modes, modeRegular)
	}
	if inputFile != "" || outputFile != "" {
		modes = append(modes, modeBatch)
	}
	if generateTests > 0 {
		modes = append(modes, modeGenerate)
	}
	return modes
}

// run dispatches to the selected mode and returns the process exit
// code. It is a plain function (not a cobra Run callback) so tests can
// drive it without going through os.Exit.
func run(cmd *cobra.Command) int {
	log = logging.Default(verbose)

	modes := selectedModes()
	if len(modes) == 0 {
		log.Error("%s", rexerr.NewUsageError("no mode selected: supply --regex/--test-string, --input-file/--output-file, or --generate-tests"))
		return ExitUsage
	}
	if len(modes) > 1 {
		log.Error("%s", rexerr.NewUsageError("regular, batch, and test-generation modes are mutually exclusive"))
		return ExitUsage
	}

	switch modes[0] {
	case modeRegular:
		return runRegular(cmd)
	case modeBatch:
		return runBatch(cmd)
	case modeGenerate:
		return runGenerate(cmd)
	default:
		return ExitUsage
	}
}

func runRegular(cmd *cobra.Command) int {
	if regex == "" {
		log.Error("%s", rexerr.NewUsageError("--regex is required in regular mode"))
		return ExitUsage
	}
	if len(testStrings) == 0 {
		log.Error("%s", rexerr.NewUsageError("at least one --test-string is required in regular mode"))
		return ExitUsage
	}

	re, err := rexnfa.Compile(regex)
	if err != nil {
		log.Error("%s", err)
		return ExitPatternError
	}
	log.Info("compiled %q into an NFA with %d states", regex, re.NumStates())

	out := cmd.OutOrStdout()
	for _, s := range testStrings {
		fmt.Fprintf(out, "'%s' accepted by regular expression '%s': %t\n", s, regex, re.Matches(s))
	}
	return ExitOK
}

func runBatch(cmd *cobra.Command) int {
	if inputFile == "" || outputFile == "" {
		log.Error("%s", rexerr.NewUsageError("batch mode requires both --input-file and --output-file"))
		return ExitUsage
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		log.Error("failed to read %s: %s", inputFile, err)
		return ExitBatchError
	}

	records, berr := batch.Decode(data)
	if berr != nil {
		log.Error("%s", berr)
		return ExitBatchError
	}
	log.Info("decoded %d batch records from %s", len(records), inputFile)

	results, _ := batch.Run(records)
	encoded, err := batch.Encode(results)
	if err != nil {
		log.Error("failed to encode batch output: %s", err)
		return ExitBatchError
	}

	if err := os.WriteFile(outputFile, encoded, 0o644); err != nil {
		log.Error("failed to write %s: %s", outputFile, err)
		return ExitBatchError
	}
	log.Info("wrote %d results to %s", len(results), outputFile)
	return ExitOK
}

func runGenerate(cmd *cobra.Command) int {
	if generateTests <= 0 {
		log.Error("%s", rexerr.NewUsageError("--generate-tests requires a positive count"))
		return ExitUsage
	}

	cases := testgen.Generate(generateTests)
	log.Info("generated %d test cases out of %d requested patterns", len(cases), generateTests)

	if err := writeSuites(cases); err != nil {
		log.Error("failed to write test suites: %s", err)
		return ExitBatchError
	}
	return ExitOK
}

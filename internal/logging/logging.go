// Package logging provides leveled diagnostic output: silent by
// default, detailed when --verbose is set, and always printing errors
// that abort the process regardless of verbosity.
//
// Coloring uses github.com/fatih/color for error/warn/info distinction
// rather than hand-rolling ANSI escapes.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger is the engine's diagnostic sink. The zero value is usable and
// behaves like New(os.Stderr, false).
type Logger struct {
	out     io.Writer
	verbose bool
}

// New creates a Logger writing to out; verbose enables Info/Warn output.
// Fatal and Error are always printed.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// Default returns a Logger writing to os.Stderr with verbose as given.
func Default(verbose bool) *Logger {
	return New(os.Stderr, verbose)
}

// Info prints a diagnostic-level message; suppressed unless verbose.
func (l *Logger) Info(format string, args ...any) {
	if l == nil || !l.verbose {
		return
	}
	fmt.Fprintln(l.writer(), color.New(color.FgCyan).Sprintf(format, args...))
}

// Warn prints a warning; suppressed unless verbose.
func (l *Logger) Warn(format string, args ...any) {
	if l == nil || !l.verbose {
		return
	}
	fmt.Fprintln(l.writer(), color.New(color.FgYellow).Sprintf(format, args...))
}

// Error prints an error unconditionally.
func (l *Logger) Error(format string, args ...any) {
	fmt.Fprintln(l.writer(), color.New(color.FgRed).Sprintf(format, args...))
}

// Fatal prints an error unconditionally and exits the process with
// status 1. It is reserved for the CLI's top-level error handling, not
// for library code.
func (l *Logger) Fatal(format string, args ...any) {
	l.Error(format, args...)
	os.Exit(1)
}

func (l *Logger) writer() io.Writer {
	if l == nil || l.out == nil {
		return os.Stderr
	}
	return l.out
}

// Package rexerr defines the error kinds shared across rexnfa's compile,
// batch, and CLI layers.
//
// Every user-facing failure is one of four kinds: a malformed pattern
// (PatternSyntax), a malformed batch document (BatchFormat), a CLI misuse
// (Usage), or an invariant violation that indicates a bug in the engine
// itself (Internal). Simulation never fails, so there is no kind for it.
package rexerr

import "fmt"

// Kind identifies which part of the contract a failure violates.
type Kind uint8

const (
	// PatternSyntax marks unbalanced brackets, illegal characters,
	// misplaced operators, an empty pattern, an empty alternative, or an
	// ill-formed character range.
	PatternSyntax Kind = iota

	// BatchFormat marks a JSON batch document that does not satisfy the
	// {regex, strings} schema.
	BatchFormat

	// Usage marks a CLI invocation that supplies mutually exclusive
	// options together, or omits a required one.
	Usage

	// Internal marks an invariant violation: the validator accepted a
	// pattern the builder could not compile. This should never happen;
	// its presence indicates a validator bug, not a bad input.
	Internal
)

// String returns a human-readable name for the error kind.
func (k Kind) String() string {
	switch k {
	case PatternSyntax:
		return "PatternSyntax"
	case BatchFormat:
		return "BatchFormat"
	case Usage:
		return "Usage"
	case Internal:
		return "Internal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// CompileError reports a pattern that failed validation or compilation.
//
// Pos is the byte offset where the validator detected the problem,
// counted in Pattern with its space characters removed (the form the
// validator scans), so it equals the offset into Pattern itself only
// when Pattern has no spaces before that point. It is -1 when the error is not tied to a single offset (for
// example, an Internal error raised by the builder after validation
// already passed).
type CompileError struct {
	Kind    Kind
	Pattern string
	Pos     int
	Msg     string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("rexnfa: %s: pattern %q at position %d: %s", e.Kind, e.Pattern, e.Pos, e.Msg)
	}
	return fmt.Sprintf("rexnfa: %s: pattern %q: %s", e.Kind, e.Pattern, e.Msg)
}

// NewSyntaxError builds a PatternSyntax CompileError at the given offset.
func NewSyntaxError(pattern string, pos int, format string, args ...any) *CompileError {
	return &CompileError{Kind: PatternSyntax, Pattern: pattern, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// NewInternalError builds an Internal CompileError; the builder raises
// this only when it is handed a pattern the validator should have
// rejected, which indicates a bug rather than bad input.
func NewInternalError(pattern string, format string, args ...any) *CompileError {
	return &CompileError{Kind: Internal, Pattern: pattern, Pos: -1, Msg: fmt.Sprintf(format, args...)}
}

// RunnerError reports a CLI or batch-document level failure: Usage or
// BatchFormat. Compile-time pattern failures use CompileError instead.
type RunnerError struct {
	Kind Kind
	Msg  string
}

// Error implements the error interface.
func (e *RunnerError) Error() string {
	return fmt.Sprintf("rexnfa: %s: %s", e.Kind, e.Msg)
}

// NewUsageError builds a Usage RunnerError.
func NewUsageError(format string, args ...any) *RunnerError {
	return &RunnerError{Kind: Usage, Msg: fmt.Sprintf(format, args...)}
}

// NewBatchFormatError builds a BatchFormat RunnerError.
func NewBatchFormatError(format string, args ...any) *RunnerError {
	return &RunnerError{Kind: BatchFormat, Msg: fmt.Sprintf(format, args...)}
}

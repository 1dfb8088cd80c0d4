// Package prefix implements a literal prefilter: a best-effort
// fast-reject check for patterns whose entire structure is a bare
// concatenation of literals (no alternation, quantifier, or class), run
// before the NFA simulator.
//
// Whole-string matching against a pure literal pattern degenerates to
// equality, so the "search" this prefilter performs is a length check
// plus a single Aho-Corasick containment probe rather than a general
// multi-literal scan — but a prefilter is always an accelerator, never a
// correctness authority. Extract reports false for any pattern it cannot
// reduce to a single literal, and callers fall back to simulate.Matches
// unconditionally in that case.
package prefix

import (
	"github.com/coregx/ahocorasick"

	"github.com/hadi16/rexnfa/internal/alphabet"
)

// Filter is a compiled required-literal check for one pattern.
type Filter struct {
	literal string
	auto    *ahocorasick.Automaton
}

// Extract attempts to reduce pattern to a single required literal. It
// reports ok=false for any pattern containing a meta-character — callers
// must always have a simulate.Matches fallback for that case.
func Extract(pattern string) (f *Filter, ok bool) {
	for i := 0; i < len(pattern); i++ {
		if !alphabet.IsLiteral(pattern[i]) {
			return nil, false
		}
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(pattern))
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Filter{literal: pattern, auto: auto}, true
}

// MayMatch reports whether candidate could possibly equal the literal
// this Filter was built from. A false result is conclusive — the
// candidate cannot match, and the simulator need not run at all. A true
// result only means the lengths agree and the literal occurs somewhere
// in candidate; since both are the same length, "somewhere" can only be
// the whole string, but callers should still treat this as a hint, not a
// verdict, and keep the simulator as the sole source of truth.
func (f *Filter) MayMatch(candidate string) bool {
	if len(candidate) != len(f.literal) {
		return false
	}
	return f.auto.IsMatch([]byte(candidate))
}

// Package rexnfa is a regular-expression engine that decides, for a
// pattern and a batch of candidate strings, whether each string belongs
// to the language of the pattern.
//
// The engine builds an equivalent nondeterministic finite automaton via a
// Thompson-style construction from a restricted regex grammar —
// concatenation, alternation, Kleene star, plus, optional, grouping, and
// character ranges over printable ASCII letters and digits — then
// simulates the NFA against each candidate with iterative ε-closure set
// simulation. There is no backtracking and no capture groups: a pattern
// either denotes a regular language and "matches" is membership in it, or
// it fails to compile.
//
// Example:
//
//	re, err := rexnfa.Compile(`a(b|c)*d`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.Matches("abccbd") // true
//	re.Matches("ae")     // false
package rexnfa

import (
	"github.com/hadi16/rexnfa/internal/nfa"
	"github.com/hadi16/rexnfa/internal/simulate"
	"github.com/hadi16/rexnfa/internal/syntax"
)

// Regex is a compiled pattern: an immutable NFA plus the source text it
// was compiled from. A Regex is safe to share and call concurrently from
// multiple goroutines — compilation happens once, and simulation never
// mutates the NFA.
type Regex struct {
	nfa     *nfa.NFA
	pattern string
}

// Compile validates and compiles pattern into a Regex. It is the entire
// core API surface alongside Matches: validate + build, then simulate.
//
// Compile returns a *CompileError (see the rexnfa/internal/rexerr Kind
// values) identifying the offending character position for any pattern
// that fails validation.
func Compile(pattern string) (*Regex, error) {
	n, err := syntax.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{nfa: n, pattern: pattern}, nil
}

// MustCompile compiles pattern and panics if it fails. Intended for
// patterns known to be valid at compile time, e.g. package-level vars.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("rexnfa: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// Matches decides whether candidate belongs to the language of the
// pattern r was compiled from. The whole string is matched (implicit
// ^...$); there is no partial match and no possibility of failure once r
// exists.
func (r *Regex) Matches(candidate string) bool {
	return simulate.Matches(r.nfa, candidate)
}

// String returns the source pattern r was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// NumStates returns the number of states in the compiled NFA. Exposed for
// diagnostics and tests; not part of the matching contract.
func (r *Regex) NumStates() int {
	return r.nfa.NumStates()
}

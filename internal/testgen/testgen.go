// Package testgen produces randomized regex/string pairs for the
// self-test suites written by the --generate-tests flag.
//
// Pattern generation walks a character at a time: start from a single
// alphanumeric, then at each step either follow a quantifier with a
// union, follow alphanumerics with more alphanumerics, or branch into a
// quantifier/union, biased so that operators never collide (a
// quantifier is followed by an alphanumeric or a union, never by
// another quantifier, and a union is always followed by an
// alphanumeric). No grouping or character-class syntax is
// generated, so every pattern produced is concatenation, alternation,
// and postfix quantifiers over single literals.
//
// Positive strings are produced by a bounded random walk over the
// compiled NFA, and negative strings by rejection sampling random
// alphanumeric strings against the same NFA. Both use math/rand/v2.
package testgen

import (
	"math/rand/v2"
	"strings"

	"github.com/hadi16/rexnfa/internal/alphabet"
	"github.com/hadi16/rexnfa/internal/nfa"
	"github.com/hadi16/rexnfa/internal/simulate"
	"github.com/hadi16/rexnfa/internal/syntax"
)

const (
	minPatternLen = 1
	maxPatternLen = 20
	maxStringLen  = 40

	positiveSamplesPerPattern = 100
	walkBound                 = maxStringLen * 4
	negativeAttemptsBound     = 200
)

var alnum = []byte("abcdefABCDEF0123456789")

// quantifiers holds the non-union postfix operators; union is handled
// separately since it can never follow another operator directly.
var quantifiers = []byte{alphabet.Star, alphabet.Plus, alphabet.Question}

// Case pairs a generated pattern with the distinct strings sampled as
// accepted by it (at most positiveSamplesPerPattern) and at most one
// string rejected by it, for positive/negative test suite entries.
type Case struct {
	Regex    string
	Positive []string
	Negative []string
}

// Generate produces n Cases. A pattern that yields no positive sample
// within the sampling bound is skipped, so the returned slice may hold
// fewer than n entries.
func Generate(n int) []Case {
	cases := make([]Case, 0, n)
	for i := 0; i < n; i++ {
		pattern := randomPattern()
		compiled, err := syntax.Compile(pattern)
		if err != nil {
			// the walk-based generator is built to stay inside the
			// grammar, but a defensive skip costs nothing.
			continue
		}

		positives := randomWalkSamples(compiled)
		if len(positives) == 0 {
			continue
		}
		negatives := rejectionSamples(compiled)
		cases = append(cases, Case{Regex: pattern, Positive: positives, Negative: negatives})
	}
	return cases
}

// randomPattern generates one random pattern via the character-walk
// algorithm described in the package doc comment.
func randomPattern() string {
	length := minPatternLen + rand.IntN(maxPatternLen)

	var b strings.Builder
	b.WriteByte(randomAlnum())

	for i := 0; i < length-1; i++ {
		last := b.String()[b.Len()-1]

		if isQuantifier(last) {
			if rand.Float64() < 0.25 {
				b.WriteByte(alphabet.Pipe)
				continue
			}
		}

		if alphabet.IsLiteral(last) {
			if rand.Float64() < 0.80 {
				b.WriteByte(randomAlnum())
			} else {
				b.WriteByte(randomOperator())
			}
		} else {
			b.WriteByte(randomAlnum())
		}
	}

	s := b.String()
	if strings.HasSuffix(s, string(alphabet.Pipe)) {
		s = s[:len(s)-1] + string(randomAlnum())
	}
	return s
}

func isQuantifier(c byte) bool {
	for _, q := range quantifiers {
		if c == q {
			return true
		}
	}
	return false
}

func randomAlnum() byte {
	return alnum[rand.IntN(len(alnum))]
}

// randomOperator picks uniformly among every postfix quantifier plus
// union.
func randomOperator() byte {
	all := append(append([]byte(nil), quantifiers...), alphabet.Pipe)
	return all[rand.IntN(len(all))]
}

// randomWalkSamples collects up to positiveSamplesPerPattern distinct
// accepted strings of length <= maxStringLen by randomly walking the
// compiled NFA from its start state to an accepting state.
func randomWalkSamples(n *nfa.NFA) []string {
	seen := make(map[string]struct{})
	for i := 0; i < positiveSamplesPerPattern; i++ {
		if s, ok := walkOnce(n); ok {
			if len(s) <= maxStringLen {
				seen[s] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return out
}

// walkOnce takes one random accepting-or-bounded walk over n.
func walkOnce(n *nfa.NFA) (string, bool) {
	state := n.Start()
	var b strings.Builder

	for step := 0; step < walkBound; step++ {
		if n.IsAccepting(state) && rand.Float64() < 0.3 {
			return b.String(), true
		}

		next, label, ok := randomTransition(n, state)
		if !ok {
			if n.IsAccepting(state) {
				return b.String(), true
			}
			return "", false
		}
		if !label.IsEpsilon() {
			b.WriteByte(byte(label))
		}
		state = next
	}
	return b.String(), n.IsAccepting(state)
}

// randomTransition picks uniformly among every outgoing transition from
// state (epsilon or literal), reporting ok=false when state is a dead
// end.
func randomTransition(n *nfa.NFA, state nfa.StateID) (to nfa.StateID, label nfa.Label, ok bool) {
	type edge struct {
		to    nfa.StateID
		label nfa.Label
	}
	var edges []edge
	for _, t := range n.EpsilonTargets(state) {
		edges = append(edges, edge{to: t, label: nfa.Epsilon})
	}
	for _, c := range alnum {
		for _, t := range n.On(state, c) {
			edges = append(edges, edge{to: t, label: nfa.Char(c)})
		}
	}
	if len(edges) == 0 {
		return 0, 0, false
	}
	e := edges[rand.IntN(len(edges))]
	return e.to, e.label, true
}

// rejectionSamples draws random alphanumeric strings until one is
// rejected by n, up to negativeAttemptsBound attempts; it returns
// nothing if every draw happened to match (expected to be rare for
// random strings against a restricted-alphabet pattern).
func rejectionSamples(n *nfa.NFA) []string {
	for i := 0; i < negativeAttemptsBound; i++ {
		length := rand.IntN(maxStringLen)
		var b strings.Builder
		for j := 0; j < length; j++ {
			b.WriteByte(randomAlnum())
		}
		candidate := b.String()
		if !simulate.Matches(n, candidate) {
			return []string{candidate}
		}
	}
	return nil
}

// Package nfa implements the state graph produced by Thompson construction:
// states identified by integers, a transition table keyed by (state, label)
// with label either a literal character or the ε marker, a designated
// initial state, and a set of accepting states.
//
// An NFA is built once per pattern by Builder, then is immutable for the
// rest of its life — many strings are matched against the same compiled
// NFA by the simulate package.
package nfa

import "fmt"

// StateID uniquely identifies a state. IDs are assigned monotonically by
// Builder starting at 0, so equality and hashing are by identifier alone.
type StateID uint32

// Label is either a literal byte in Σ or the epsilon sentinel. Because Σ
// is restricted to printable ASCII letters and digits, byte values never
// collide with the sentinel.
type Label int16

// Epsilon is the sentinel label for a transition consumed without reading
// any input character.
const Epsilon Label = -1

// Char returns the label for a literal byte transition.
func Char(b byte) Label { return Label(b) }

// IsEpsilon reports whether l is the ε sentinel.
func (l Label) IsEpsilon() bool { return l == Epsilon }

// String renders a label for debugging.
func (l Label) String() string {
	if l.IsEpsilon() {
		return "ε"
	}
	return fmt.Sprintf("%q", byte(l))
}

type transitionKey struct {
	from  StateID
	label Label
}

// NFA is the state graph produced by Thompson construction.
//
// Invariants: every state referenced by the transition table belongs to
// [0, numStates); the start state and every accepting state are within
// that range; no transition carries a label outside Σ ∪ {ε}. An NFA is
// built once and never mutated afterward, so these invariants hold for
// the lifetime of the value once Builder.Build returns.
type NFA struct {
	numStates int
	start     StateID
	accept    map[StateID]struct{}
	trans     map[transitionKey][]StateID
}

// Start returns the NFA's initial state.
func (n *NFA) Start() StateID { return n.start }

// NumStates returns the total number of states in the graph.
func (n *NFA) NumStates() int { return n.numStates }

// IsAccepting reports whether s is a member of the accepting set.
func (n *NFA) IsAccepting(s StateID) bool {
	_, ok := n.accept[s]
	return ok
}

// On returns the destinations reachable from s on the literal byte c. The
// returned slice must not be mutated by the caller.
func (n *NFA) On(s StateID, c byte) []StateID {
	return n.trans[transitionKey{from: s, label: Char(c)}]
}

// EpsilonTargets returns the destinations reachable from s via a single ε
// transition. The returned slice must not be mutated by the caller.
func (n *NFA) EpsilonTargets(s StateID) []StateID {
	return n.trans[transitionKey{from: s, label: Epsilon}]
}

// String renders a compact summary for debugging and test failure output.
func (n *NFA) String() string {
	accepting := make([]StateID, 0, len(n.accept))
	for s := range n.accept {
		accepting = append(accepting, s)
	}
	return fmt.Sprintf("NFA{states: %d, start: %d, accept: %v}", n.numStates, n.start, accepting)
}

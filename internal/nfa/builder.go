package nfa

import "github.com/hadi16/rexnfa/internal/conv"

// Fragment is a sub-NFA produced by Thompson construction: a single entry
// state and a single exit state (one-in / one-out form). Every grammar
// form in the parser composes fragments this way; composition never
// mutates a completed fragment — it only adds fresh bridging states and
// transitions.
type Fragment struct {
	Entry StateID
	Exit  StateID
}

// Builder constructs an NFA incrementally via Thompson construction.
// Builder state — the states slice and transition map built up across one
// compilation — is a single-use traversal context: it is discarded once
// Build returns, and is never reused across patterns.
type Builder struct {
	states []struct{}
	trans  map[transitionKey][]StateID
}

// NewBuilder creates an empty builder for a single compilation.
func NewBuilder() *Builder {
	return &Builder{
		trans: make(map[transitionKey][]StateID),
	}
}

// newState allocates a fresh state and returns its ID. IDs are assigned
// monotonically, so uniqueness is guaranteed by construction.
func (b *Builder) newState() StateID {
	id := conv.IntToUint32(len(b.states))
	b.states = append(b.states, struct{}{})
	return StateID(id)
}

func (b *Builder) addTransition(from StateID, label Label, to StateID) {
	key := transitionKey{from: from, label: label}
	b.trans[key] = append(b.trans[key], to)
}

// Literal builds the fragment for a single character c ∈ Σ: entry -c-> exit.
func (b *Builder) Literal(c byte) Fragment {
	entry, exit := b.newState(), b.newState()
	b.addTransition(entry, Char(c), exit)
	return Fragment{Entry: entry, Exit: exit}
}

// Range builds the fragment for a character range [lo, hi]: entry has one
// labelled transition per character in the range, all going to exit. A
// range that reduces to a single character (lo == hi) degenerates to the
// same shape as Literal.
func (b *Builder) Range(lo, hi byte) Fragment {
	entry, exit := b.newState(), b.newState()
	for c := lo; ; c++ {
		b.addTransition(entry, Char(c), exit)
		if c == hi {
			break
		}
	}
	return Fragment{Entry: entry, Exit: exit}
}

// Concat ε-connects exit(a) to entry(b): entry(AB)=entry(A), exit(AB)=exit(B).
func (b *Builder) Concat(a, c Fragment) Fragment {
	b.addTransition(a.Exit, Epsilon, c.Entry)
	return Fragment{Entry: a.Entry, Exit: c.Exit}
}

// Alternate builds A|B: a new entry ε-branches to entry(A) and entry(B); a
// new exit is reached by ε from exit(A) and exit(B).
func (b *Builder) Alternate(a, c Fragment) Fragment {
	entry, exit := b.newState(), b.newState()
	b.addTransition(entry, Epsilon, a.Entry)
	b.addTransition(entry, Epsilon, c.Entry)
	b.addTransition(a.Exit, Epsilon, exit)
	b.addTransition(c.Exit, Epsilon, exit)
	return Fragment{Entry: entry, Exit: exit}
}

// Star builds A*: new entry ε's to entry(A) and to the new exit; exit(A)
// ε's back to entry(A) and to the new exit.
func (b *Builder) Star(a Fragment) Fragment {
	entry, exit := b.newState(), b.newState()
	b.addTransition(entry, Epsilon, a.Entry)
	b.addTransition(entry, Epsilon, exit)
	b.addTransition(a.Exit, Epsilon, a.Entry)
	b.addTransition(a.Exit, Epsilon, exit)
	return Fragment{Entry: entry, Exit: exit}
}

// Plus builds A+: like Star, but the new entry ε's only to entry(A) — it
// never skips straight to the exit, so at least one pass through A is
// required.
func (b *Builder) Plus(a Fragment) Fragment {
	entry, exit := b.newState(), b.newState()
	b.addTransition(entry, Epsilon, a.Entry)
	b.addTransition(a.Exit, Epsilon, a.Entry)
	b.addTransition(a.Exit, Epsilon, exit)
	return Fragment{Entry: entry, Exit: exit}
}

// Optional builds A?: new entry ε's to entry(A) and to the new exit;
// exit(A) ε's to the new exit.
func (b *Builder) Optional(a Fragment) Fragment {
	entry, exit := b.newState(), b.newState()
	b.addTransition(entry, Epsilon, a.Entry)
	b.addTransition(entry, Epsilon, exit)
	b.addTransition(a.Exit, Epsilon, exit)
	return Fragment{Entry: entry, Exit: exit}
}

// Class builds the fragment for a bracketed character class made of one
// or more ranges (each ranges[i] is an inclusive [lo, hi] pair): a single
// entry state carries one labelled transition per character across every
// range, all to one shared exit. Each range expands directly into
// per-character transitions rather than a compact interval
// representation, the same way a single Range fragment does.
func (b *Builder) Class(ranges [][2]byte) Fragment {
	entry, exit := b.newState(), b.newState()
	for _, r := range ranges {
		for c := r[0]; ; c++ {
			b.addTransition(entry, Char(c), exit)
			if c == r[1] {
				break
			}
		}
	}
	return Fragment{Entry: entry, Exit: exit}
}

// Build finalizes the NFA: its initial state is top.Entry and its
// accepting set is the singleton {top.Exit}.
func (b *Builder) Build(top Fragment) *NFA {
	accept := map[StateID]struct{}{top.Exit: {}}
	return &NFA{
		numStates: len(b.states),
		start:     top.Entry,
		accept:    accept,
		trans:     b.trans,
	}
}

// Package simulate decides NFA membership by iterative ε-closure set
// simulation. It never recurses over suffixes or destinations — every
// call is linear in len(s)*states(N) time and O(states(N)) space, and it
// terminates even in the presence of ε-cycles produced by star and plus.
//
// This replaces a path-argument recursive runner, which could re-enter
// the same (state, suffix) pair indefinitely on an ε-cycle. Set
// simulation removes that failure mode entirely: a visited-state guard
// bounds every ε-closure computation, and there is no call stack that
// grows with input length.
package simulate

import "github.com/hadi16/rexnfa/internal/nfa"

// stateSet is an unordered set of state IDs, used as the simulator's
// active-set scratch buffer. A plain map is sufficient here: NFAs compiled
// from this engine's patterns have at most a few hundred states, far
// below the scale where a sparse-set structure would pay for itself.
type stateSet map[nfa.StateID]struct{}

// closure computes the ε-closure of a set of states: the least fixpoint
// of S ← S ∪ {t : s ∈ S ∧ (s, ε) → t}, guarded by a visited set so that
// ε-cycles (from star/plus) terminate.
func closure(n *nfa.NFA, seed []nfa.StateID) stateSet {
	out := make(stateSet, len(seed)*2)
	stack := append([]nfa.StateID(nil), seed...)
	for _, s := range seed {
		out[s] = struct{}{}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.EpsilonTargets(s) {
			if _, seen := out[t]; seen {
				continue
			}
			out[t] = struct{}{}
			stack = append(stack, t)
		}
	}
	return out
}

// Matches decides whether candidate is accepted by n: it is in the
// language of n's pattern iff, after consuming every character, the
// active set contains an accepting state. The whole string is always
// matched (implicit ^...$); there is no partial or streaming match.
func Matches(n *nfa.NFA, candidate string) bool {
	active := closure(n, []nfa.StateID{n.Start()})

	for i := 0; i < len(candidate); i++ {
		c := candidate[i]
		var dests []nfa.StateID
		for s := range active {
			dests = append(dests, n.On(s, c)...)
		}
		if len(dests) == 0 {
			return false
		}
		active = closure(n, dests)
	}

	for s := range active {
		if n.IsAccepting(s) {
			return true
		}
	}
	return false
}

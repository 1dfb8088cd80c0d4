package simulate

import (
	"strings"
	"testing"

	"github.com/hadi16/rexnfa/internal/nfa"
)

func compile(pattern string) *nfa.NFA {
	b := nfa.NewBuilder()
	var frag nfa.Fragment
	switch pattern {
	case "a*":
		frag = b.Star(b.Literal('a'))
	case "a+":
		frag = b.Plus(b.Literal('a'))
	case "a?":
		frag = b.Optional(b.Literal('a'))
	default:
		panic("unsupported test pattern " + pattern)
	}
	return b.Build(frag)
}

func TestEpsilonCycleTerminatesOnLongInput(t *testing.T) {
	n := compile("a*")
	long := strings.Repeat("a", 10000)
	if !Matches(n, long) {
		t.Fatal("a* must accept a long run of a's without hanging")
	}
}

func TestStarAcceptsEmptyString(t *testing.T) {
	n := compile("a*")
	if !Matches(n, "") {
		t.Fatal("a* must accept the empty string")
	}
}

func TestPlusRejectsEmptyString(t *testing.T) {
	n := compile("a+")
	if Matches(n, "") {
		t.Fatal("a+ must reject the empty string")
	}
}

func TestOptionalAcceptsZeroOrOne(t *testing.T) {
	n := compile("a?")
	if !Matches(n, "") || !Matches(n, "a") {
		t.Fatal("a? must accept \"\" and \"a\"")
	}
	if Matches(n, "aa") {
		t.Fatal("a? must reject \"aa\"")
	}
}

func TestUnrecognizedCharacterRejectsWithoutPanic(t *testing.T) {
	n := compile("a+")
	if Matches(n, "a!a") {
		t.Fatal("a character outside Sigma must not match")
	}
}

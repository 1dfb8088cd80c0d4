package testgen

import (
	"testing"

	"github.com/hadi16/rexnfa/internal/simulate"
	"github.com/hadi16/rexnfa/internal/syntax"
)

func TestGenerateProducesValidCases(t *testing.T) {
	cases := Generate(50)
	if len(cases) == 0 {
		t.Fatal("Generate(50) produced no cases")
	}

	for _, c := range cases {
		n, err := syntax.Compile(c.Regex)
		if err != nil {
			t.Fatalf("generated pattern %q does not compile: %v", c.Regex, err)
		}
		if len(c.Positive) == 0 {
			t.Fatalf("pattern %q has no positive samples", c.Regex)
		}
		for _, s := range c.Positive {
			if !simulate.Matches(n, s) {
				t.Errorf("pattern %q: positive sample %q was not accepted", c.Regex, s)
			}
		}
		for _, s := range c.Negative {
			if simulate.Matches(n, s) {
				t.Errorf("pattern %q: negative sample %q was accepted", c.Regex, s)
			}
		}
	}
}

func TestRandomPatternNeverEndsInUnion(t *testing.T) {
	for i := 0; i < 200; i++ {
		p := randomPattern()
		if len(p) == 0 {
			t.Fatal("randomPattern produced an empty string")
		}
		if p[len(p)-1] == '|' {
			t.Fatalf("pattern %q ends in union", p)
		}
	}
}

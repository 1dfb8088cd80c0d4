package syntax

import (
	"testing"

	"github.com/hadi16/rexnfa/internal/simulate"
)

func TestSeedScenarios(t *testing.T) {
	cases := []struct {
		pattern string
		want    map[string]bool
	}{
		{"a", map[string]bool{"": false, "a": true, "b": false, "aa": false}},
		{"ab", map[string]bool{"ab": true, "a": false, "abb": false, "ba": false}},
		{"a|b", map[string]bool{"a": true, "b": true, "ab": false, "": false}},
		{"a*", map[string]bool{"": true, "a": true, "aaaa": true, "b": false}},
		{"(ab)+", map[string]bool{"": false, "ab": true, "abab": true, "aba": false}},
		{"a(b|c)*d", map[string]bool{"ad": true, "abd": true, "acbcd": true, "abc": false}},
		{"[a-c]+", map[string]bool{"a": true, "abcabc": true, "ad": false, "": false}},
	}

	for _, c := range cases {
		n, err := Compile(c.pattern)
		if err != nil {
			t.Fatalf("Compile(%q) failed: %v", c.pattern, err)
		}
		for s, want := range c.want {
			got := simulate.Matches(n, s)
			if got != want {
				t.Errorf("pattern %q, string %q: got %v, want %v", c.pattern, s, got, want)
			}
		}
	}
}

func TestEmptyPatternRejected(t *testing.T) {
	if _, err := Compile(""); err == nil {
		t.Fatal("Compile(\"\") should fail")
	}
}

func TestEmptyAlternativeRejected(t *testing.T) {
	for _, p := range []string{"a|", "|a", "a||b", "(a|)"} {
		if _, err := Compile(p); err == nil {
			t.Errorf("Compile(%q) should fail", p)
		}
	}
}

func TestUnbalancedGroupingRejected(t *testing.T) {
	for _, p := range []string{"(a", "a)", "[a-c", "a-c]", "[[a]]"} {
		if _, err := Compile(p); err == nil {
			t.Errorf("Compile(%q) should fail", p)
		}
	}
}

func TestOperatorMisplacementRejected(t *testing.T) {
	for _, p := range []string{"*a", "+a", "?a", "a**"} {
		if _, err := Compile(p); err == nil {
			t.Errorf("Compile(%q) should fail", p)
		}
	}
}

func TestIllFormedRangeRejected(t *testing.T) {
	for _, p := range []string{"[c-a]", "[a-]", "[-a]", "[]"} {
		if _, err := Compile(p); err == nil {
			t.Errorf("Compile(%q) should fail", p)
		}
	}
}

func TestOperatorBindsToClosedGroup(t *testing.T) {
	// (ab)+ requires at least one repetition of the whole group, not just
	// the last literal.
	n, err := Compile("(ab)+")
	if err != nil {
		t.Fatal(err)
	}
	if simulate.Matches(n, "b") {
		t.Error("(ab)+ must not accept \"b\" alone")
	}
	if !simulate.Matches(n, "abab") {
		t.Error("(ab)+ must accept \"abab\"")
	}
}

func TestGroupingTransparency(t *testing.T) {
	n1, err := Compile("ab|c")
	if err != nil {
		t.Fatal(err)
	}
	n2, err := Compile("(a)(b)|c")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"ab", "c", "a", "b", ""} {
		if simulate.Matches(n1, s) != simulate.Matches(n2, s) {
			t.Errorf("grouping changed language for %q", s)
		}
	}
}

func TestDeterminism(t *testing.T) {
	n, err := Compile("a(b|c)*d")
	if err != nil {
		t.Fatal(err)
	}
	first := simulate.Matches(n, "abccbd")
	for i := 0; i < 10; i++ {
		if simulate.Matches(n, "abccbd") != first {
			t.Fatal("matches must return the same verdict on every call")
		}
	}
}

func TestAlternationIsUnion(t *testing.T) {
	p, err := Compile("foo")
	if err != nil {
		t.Fatal(err)
	}
	q, err := Compile("bar")
	if err != nil {
		t.Fatal(err)
	}
	union, err := Compile("foo|bar")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"foo", "bar", "foobar", "baz"} {
		want := simulate.Matches(p, s) || simulate.Matches(q, s)
		if simulate.Matches(union, s) != want {
			t.Errorf("alternation must equal set union for %q", s)
		}
	}
}

func TestPlusEqualsOneOrMoreStar(t *testing.T) {
	plus, err := Compile("a+")
	if err != nil {
		t.Fatal(err)
	}
	oneOrMore, err := Compile("aa*")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"", "a", "aa", "aaaaa", "b"} {
		if simulate.Matches(plus, s) != simulate.Matches(oneOrMore, s) {
			t.Errorf("L(a+) must equal L(aa*) for %q", s)
		}
	}
}

func TestOptionalEqualsZeroOrOne(t *testing.T) {
	optional, err := Compile("ab?")
	if err != nil {
		t.Fatal(err)
	}
	for s, want := range map[string]bool{"a": true, "ab": true, "abb": false, "b": false} {
		if got := simulate.Matches(optional, s); got != want {
			t.Errorf("ab? on %q: got %v, want %v", s, got, want)
		}
	}
}

func TestConcatenationDistributesOverLanguage(t *testing.T) {
	// a(b|c)*d decomposes as "a" concatenated with "(b|c)*d"; any
	// accepted string must split at some prefix boundary into an
	// accepted prefix and an accepted suffix of the two sub-patterns.
	full, err := Compile("a(b|c)*d")
	if err != nil {
		t.Fatal(err)
	}
	left, err := Compile("a")
	if err != nil {
		t.Fatal(err)
	}
	right, err := Compile("(b|c)*d")
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range []string{"ad", "abd", "acbcd", "abc", "ab"} {
		want := false
		for i := 0; i <= len(s); i++ {
			if simulate.Matches(left, s[:i]) && simulate.Matches(right, s[i:]) {
				want = true
				break
			}
		}
		if got := simulate.Matches(full, s); got != want {
			t.Errorf("concatenation distributivity failed for %q: got %v, want %v", s, got, want)
		}
	}
}

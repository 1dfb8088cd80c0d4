// Parser assigns structure to an already-validated pattern and drives the
// NFA builder directly, in one pass — no separate AST is materialized,
// since nothing downstream needs one once the fragments are wired.
//
// Grammar (lowest precedence first):
//
//	expr       = term, { "|", term } ;
//	term       = factor, { factor } ;              (* implicit concatenation *)
//	factor     = atom, [ "*" | "+" | "?" ] ;
//	atom       = literal | "(", expr, ")" | "[", class_body, "]" ;
//	class_body = class_item, { class_item } ;
//	class_item = literal | literal, "-", literal ;
//	literal    = alphanumeric ;
//
// Precedence is postfix > concatenation > alternation, all left-
// associative; grouping overrides precedence. The parser assumes its
// input already passed Validate, so a malformed token here means the
// validator missed something — an Internal invariant violation, not a
// PatternSyntax error.
package syntax

import (
	"github.com/hadi16/rexnfa/internal/alphabet"
	"github.com/hadi16/rexnfa/internal/nfa"
	"github.com/hadi16/rexnfa/internal/rexerr"
)

// Compile validates and compiles pattern into an NFA. It is the only
// entry point that builds an NFA: Validate is exported on its own, but
// parsing is not, because the parser's correctness depends on running
// only against already-validated input.
func Compile(pattern string) (n *nfa.NFA, err error) {
	cleaned, verr := Validate(pattern)
	if verr != nil {
		return nil, verr
	}

	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*rexerr.CompileError); ok {
				n, err = nil, ie
				return
			}
			panic(r)
		}
	}()

	p := &parser{pattern: cleaned, original: pattern, b: nfa.NewBuilder()}
	top := p.parseExpr()
	if p.pos != len(p.pattern) {
		panic(rexerr.NewInternalError(pattern, "trailing input at position %d", p.pos))
	}
	return p.b.Build(top), nil
}

type parser struct {
	pattern  string // validated, whitespace-stripped
	original string // as supplied by the caller, for error messages
	pos      int
	b        *nfa.Builder
}

func (p *parser) fail(format string, args ...any) {
	panic(rexerr.NewInternalError(p.original, format, args...))
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.pattern) {
		return 0, false
	}
	return p.pattern[p.pos], true
}

// parseExpr = term, { "|", term }.
func (p *parser) parseExpr() nfa.Fragment {
	frag := p.parseTerm()
	for {
		c, ok := p.peek()
		if !ok || c != alphabet.Pipe {
			return frag
		}
		p.pos++
		frag = p.b.Alternate(frag, p.parseTerm())
	}
}

// parseTerm = factor, { factor } — concatenation is implicit: keep taking
// factors as long as the next character can start an atom.
func (p *parser) parseTerm() nfa.Fragment {
	frag := p.parseFactor()
	for p.startsAtom() {
		frag = p.b.Concat(frag, p.parseFactor())
	}
	return frag
}

func (p *parser) startsAtom() bool {
	c, ok := p.peek()
	if !ok {
		return false
	}
	return alphabet.IsLiteral(c) || c == alphabet.LParen || c == alphabet.LBracket
}

// parseFactor = atom, [ "*" | "+" | "?" ]. The postfix operator binds to
// the immediately preceding atom — for a just-closed group or class, that
// is the whole group/class fragment, not just its last element.
func (p *parser) parseFactor() nfa.Fragment {
	atom := p.parseAtom()
	c, ok := p.peek()
	if !ok {
		return atom
	}
	switch c {
	case alphabet.Star:
		p.pos++
		return p.b.Star(atom)
	case alphabet.Plus:
		p.pos++
		return p.b.Plus(atom)
	case alphabet.Question:
		p.pos++
		return p.b.Optional(atom)
	default:
		return atom
	}
}

// parseAtom = literal | "(" expr ")" | "[" class_body "]".
func (p *parser) parseAtom() nfa.Fragment {
	c, ok := p.peek()
	if !ok {
		p.fail("unexpected end of pattern while parsing an atom")
	}

	switch {
	case c == alphabet.LParen:
		p.pos++
		inner := p.parseExpr()
		c, ok := p.peek()
		if !ok || c != alphabet.RParen {
			p.fail("expected ')' at position %d", p.pos)
		}
		p.pos++
		return inner

	case c == alphabet.LBracket:
		return p.parseClass()

	case alphabet.IsLiteral(c):
		p.pos++
		return p.b.Literal(c)

	default:
		p.fail("unexpected character %q at position %d", c, p.pos)
		panic("unreachable")
	}
}

// parseClass = "[" class_body "]", building one fragment whose entry has
// a labelled transition per character across all of the class's items,
// rather than one fragment per item joined by alternation.
func (p *parser) parseClass() nfa.Fragment {
	p.pos++ // consume '['
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok {
			p.fail("unmatched '[' at position %d", start-1)
		}
		if c == alphabet.RBracket {
			break
		}
		p.pos++
	}
	body := p.pattern[start:p.pos]
	p.pos++ // consume ']'

	items, err := scanClassItems(body, start)
	if err != nil {
		p.fail("%s", err.Msg)
	}
	ranges := make([][2]byte, len(items))
	for i, it := range items {
		ranges[i] = [2]byte{it.lo, it.hi}
	}
	return p.b.Class(ranges)
}

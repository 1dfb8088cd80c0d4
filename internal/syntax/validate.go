// Validator checks that a pattern uses only legal characters, that
// grouping brackets are balanced and well-ordered, and that operators and
// alternation appear only where the grammar permits them — all before the
// parser/builder ever runs.
package syntax

import (
	"strings"

	"github.com/hadi16/rexnfa/internal/alphabet"
	"github.com/hadi16/rexnfa/internal/rexerr"
)

// token classifies the most recently consumed significant position, used
// to decide whether the next character is in a legal context.
type token int

const (
	tokStart token = iota
	tokLiteral
	tokLParen
	tokRParen
	tokClass // a just-closed [...] behaves like a literal atom
	tokPipe
	tokOperator
)

func classError(pos int, format string, args ...any) *rexerr.CompileError {
	return rexerr.NewSyntaxError("", pos, format, args...)
}

// Validate checks pattern for legal characters, balanced grouping, and
// correct operator/alternation placement, and returns the pattern with
// every space character removed (other whitespace, such as a tab, is an
// illegal character). On failure it returns a PatternSyntax error
// identifying the offending position, counted in the space-stripped
// pattern.
func Validate(pattern string) (string, *rexerr.CompileError) {
	cleaned := strings.ReplaceAll(pattern, " ", "")
	if cleaned == "" {
		return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, 0, "empty pattern"))
	}

	var parens []int // positions of unmatched '('
	prev := tokStart

	i := 0
	for i < len(cleaned) {
		c := cleaned[i]

		switch {
		case c == alphabet.LParen:
			parens = append(parens, i)
			prev = tokLParen
			i++

		case c == alphabet.RParen:
			if len(parens) == 0 {
				return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, i, "unmatched ')'"))
			}
			if prev == tokLParen {
				return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, i, "empty group"))
			}
			if prev == tokPipe {
				return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, i, "empty alternative before ')'"))
			}
			parens = parens[:len(parens)-1]
			prev = tokRParen
			i++

		case c == alphabet.LBracket:
			start := i + 1
			j := start
			for j < len(cleaned) && cleaned[j] != alphabet.RBracket {
				if cleaned[j] == alphabet.LBracket {
					return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, j, "nested '[' is not allowed"))
				}
				j++
			}
			if j >= len(cleaned) {
				return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, i, "unmatched '['"))
			}
			if _, err := scanClassItems(cleaned[start:j], start); err != nil {
				err.Pattern = pattern
				return "", err
			}
			prev = tokClass
			i = j + 1

		case c == alphabet.RBracket:
			return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, i, "unmatched ']'"))

		case c == alphabet.Dash:
			return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, i, "'-' is only legal inside [...]"))

		case c == alphabet.Pipe:
			if prev == tokStart || prev == tokPipe || prev == tokLParen {
				return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, i, "misplaced '|'"))
			}
			prev = tokPipe
			i++

		case alphabet.IsQuantifier(c):
			if prev != tokLiteral && prev != tokRParen && prev != tokClass {
				return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, i, "operator %q must follow a literal, ')', or ']'", c))
			}
			prev = tokOperator
			i++

		case alphabet.IsLiteral(c):
			prev = tokLiteral
			i++

		default:
			return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, i, "illegal character %q", c))
		}
	}

	if len(parens) != 0 {
		return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, parens[len(parens)-1], "unmatched '('"))
	}
	if prev == tokPipe {
		return "", withPattern(pattern, rexerr.NewSyntaxError(pattern, len(cleaned)-1, "pattern must not end with '|'"))
	}

	return cleaned, nil
}

func withPattern(pattern string, e *rexerr.CompileError) *rexerr.CompileError {
	e.Pattern = pattern
	return e
}

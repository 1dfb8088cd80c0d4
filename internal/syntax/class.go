package syntax

import (
	"github.com/hadi16/rexnfa/internal/alphabet"
	"github.com/hadi16/rexnfa/internal/rexerr"
)

// rangeItem is one class_item: a single literal (lo == hi) or a literal
// range lo-hi, both ends in Σ.
type rangeItem struct {
	lo, hi byte
}

// scanClassItems parses the content between '[' and ']' into the sequence
// of class_item values the grammar describes:
//
//	class_body = class_item, { class_item } ;
//	class_item = literal | literal , "-" , literal ;
//
// It is shared by the validator (which only needs to check well-
// formedness) and the parser (which needs the same items to build
// transitions from), so the rule is defined once. offset is the position
// of body[0] in the original pattern, used to report accurate error
// positions.
func scanClassItems(body string, offset int) ([]rangeItem, *rexerr.CompileError) {
	if len(body) == 0 {
		return nil, classError(offset, "empty character class")
	}

	var items []rangeItem
	i := 0
	for i < len(body) {
		lo := body[i]
		if !alphabet.IsLiteral(lo) {
			return nil, classError(offset+i, "illegal character %q in character class", lo)
		}
		i++

		hi := lo
		if i < len(body) && body[i] == alphabet.Dash {
			dashPos := i
			i++
			if i >= len(body) || !alphabet.IsLiteral(body[i]) {
				return nil, classError(offset+dashPos, "dangling '-' with no range endpoint")
			}
			hi = body[i]
			i++
			if lo > hi {
				return nil, classError(offset+dashPos, "character range %q-%q is out of order", lo, hi)
			}
		}
		items = append(items, rangeItem{lo: lo, hi: hi})
	}
	return items, nil
}

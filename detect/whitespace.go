package detect

import "github.com/op8d/lexemizer/lexeme"

// Whitespace detects a maximal run of Pattern_White_Space characters.
//
// Rust treats all of Pattern_White_Space the same, so a single lexeme
// covers the whole run: ASCII space, tab, newline, carriage return,
// vertical tab and form feed, plus the non-ASCII code points NEL
// U+0085, LRM U+200E, RLM U+200F, LS U+2028 and PS U+2029.
func Whitespace(orig string, pos int) (lexeme.Kind, int) {
	if pos >= len(orig) || !boundary(orig, pos) {
		return lexeme.Undetected, 0
	}
	i := pos
	for i < len(orig) {
		switch charAt(orig, i) {
		case ' ', '\n', '\t', '\r', '\v', '\f':
			i++
			continue
		case sentinel:
		default:
			// ASCII, but not whitespace.
			return end(pos, i)
		}
		if i >= len(orig)-1 {
			return end(pos, i)
		}
		j := next(orig, i+1)
		switch orig[i:j] {
		case string(sentinel):
			// A literal tilde, not a masked non-ASCII character.
			return end(pos, i)
		case "", "‎", "‏", " ", " ":
			i = j
		default:
			return end(pos, i)
		}
	}
	return end(pos, i)
}

func end(pos, i int) (lexeme.Kind, int) {
	if i == pos {
		return lexeme.Undetected, 0
	}
	return lexeme.WhitespaceTrimmable, i
}

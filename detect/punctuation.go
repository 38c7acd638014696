package detect

import "github.com/op8d/lexemizer/lexeme"

// Punctuation detects a punctuation mark like `;` or `>>=` by maximal
// munch over three fixed tables. Every two-character mark starts with
// a single-character mark, and every three-character mark extends a
// two-character one, so the scan tries one, two, then three bytes and
// keeps the longest known combination. Nothing longer than three
// exists in the grammar, so whatever follows is left for the next
// scan step.
func Punctuation(orig string, pos int) (lexeme.Kind, int) {
	if pos >= len(orig) {
		return lexeme.Undetected, 0
	}
	if !punctuation1[charAt(orig, pos)] {
		return lexeme.Undetected, 0
	}
	if len(orig) == pos+1 {
		return lexeme.Punctuation, len(orig)
	}
	if !punctuation2[orig[pos:pos+2]] {
		return lexeme.Punctuation, pos + 1
	}
	if len(orig) == pos+2 {
		return lexeme.Punctuation, len(orig)
	}
	if !punctuation3[orig[pos:pos+3]] {
		return lexeme.Punctuation, pos + 2
	}
	return lexeme.Punctuation, pos + 3
}

// The 28 single-character punctuation marks.
var punctuation1 = map[byte]bool{
	'\'': true, // labels, lifetimes
	'_':  true, // wildcard patterns, inferred types
	'-':  true, // subtraction, negation
	',':  true,
	';':  true,
	':':  true,
	'!':  true, // not, macro calls
	'?':  true,
	'.':  true, // field access, tuple index
	'(':  true,
	')':  true,
	'[':  true,
	']':  true,
	'{':  true,
	'}':  true,
	'@':  true, // subpattern binding
	'*':  true, // multiplication, dereference, raw pointers
	'/':  true,
	'&':  true, // and, borrow, references
	'#':  true, // attributes
	'%':  true,
	'^':  true,
	'+':  true,
	'<':  true,
	'=':  true,
	'>':  true,
	'|':  true, // or, closures
	'$':  true, // macros
}

// The 20 two-character combinations.
var punctuation2 = map[string]bool{
	"-=": true,
	"->": true,
	"::": true,
	"!=": true,
	"..": true,
	"*=": true,
	"/=": true,
	"&&": true,
	"&=": true,
	"%=": true,
	"^=": true,
	"+=": true,
	"<<": true,
	"<=": true,
	"==": true,
	"=>": true,
	">=": true,
	">>": true,
	"|=": true,
	"||": true,
}

// The 4 three-character combinations. Each extends an entry of
// punctuation2.
var punctuation3 = map[string]bool{
	"...": true,
	"..=": true,
	"<<=": true,
	">>=": true,
}

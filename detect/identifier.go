package detect

import "github.com/op8d/lexemizer/lexeme"

// Identifier detects a Freeword like `foo`, a Keyword like `if`, or a
// StdType like `i8`.
//
// A Freeword is any identifier which is not a Keyword or StdType, such
// as a variable `i` or a function name `get_widgets`. `String` is a
// Freeword because of the way it is used: `String::from("hello")`.
// Raw identifiers with the r# prefix are reserved and not detected.
//
// Classification is an exact-match lookup: the captured word is either
// in the keyword set, in the primitive-type set, or a Freeword.
func Identifier(orig string, pos int) (lexeme.Kind, int) {
	if pos >= len(orig) {
		return lexeme.Undetected, 0
	}
	c0 := charAt(orig, pos)
	underscore := c0 == '_'
	if !underscore && !isLetter(c0) {
		return lexeme.Undetected, 0
	}
	// A lone "_" is not an identifier, but a lone letter is. One
	// character can never be a Keyword or StdType, they all need two.
	if len(orig) == pos+1 {
		if underscore {
			return lexeme.Undetected, 0
		}
		return lexeme.IdentifierFreeword, len(orig)
	}
	c1 := charAt(orig, pos+1)
	if c1 != '_' && !isLetter(c1) && !isDigit(c1) {
		if underscore {
			return lexeme.Undetected, 0
		}
		return lexeme.IdentifierFreeword, pos + 1
	}
	for i := pos + 2; i < len(orig); i++ {
		c := charAt(orig, i)
		if c != '_' && !isLetter(c) && !isDigit(c) {
			return classify(orig[pos:i]), i
		}
	}
	return classify(orig[pos:]), len(orig)
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func classify(word string) lexeme.Kind {
	if keywords[word] {
		return lexeme.IdentifierKeyword
	}
	if stdTypes[word] {
		return lexeme.IdentifierStdType
	}
	return lexeme.IdentifierFreeword
}

// The 52 reserved words of Rust 2018.
// doc.rust-lang.org/reference/keywords.html
var keywords = map[string]bool{
	"abstract": true,
	"as":       true,
	"async":    true,
	"await":    true,
	"become":   true,
	"box":      true,
	"break":    true,
	"const":    true,
	"continue": true,
	"crate":    true,
	"do":       true,
	"dyn":      true,
	"else":     true,
	"enum":     true,
	"extern":   true,
	"false":    true,
	"final":    true,
	"fn":       true,
	"for":      true,
	"if":       true,
	"impl":     true,
	"in":       true,
	"let":      true,
	"loop":     true,
	"macro":    true,
	"match":    true,
	"mod":      true,
	"move":     true,
	"mut":      true,
	"override": true,
	"priv":     true,
	"pub":      true,
	"ref":      true,
	"return":   true,
	"Self":     true,
	"self":     true,
	"static":   true, // "'static" is a lifetime, split by the core scan
	"struct":   true,
	"super":    true,
	"trait":    true,
	"true":     true,
	"try":      true,
	"type":     true,
	"typeof":   true,
	"union":    true,
	"unsafe":   true,
	"unsized":  true,
	"use":      true,
	"virtual":  true,
	"where":    true,
	"while":    true,
	"yield":    true,
}

// The named primitive types.
// doc.rust-lang.org/std/#primitives
var stdTypes = map[string]bool{
	"bool":  true,
	"char":  true,
	"f32":   true,
	"f64":   true,
	"i128":  true,
	"i16":   true,
	"i32":   true,
	"i64":   true,
	"i8":    true,
	"isize": true,
	"str":   true,
	"u128":  true,
	"u16":   true,
	"u32":   true,
	"u64":   true,
	"u8":    true,
	"usize": true,
}

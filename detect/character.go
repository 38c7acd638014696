package detect

import "github.com/op8d/lexemizer/lexeme"

// Character detects a char literal: plain like 'A' or '±', a simple
// escape like '\n', a 7-bit code like '\x7F', or a unicode code like
// '\u{10abCD}'. Byte literals (b'A') are reserved and not detected.
//
// A pair of quotes with nothing between them is no-match, and so is a
// quote followed by more than one character before the closing quote,
// which is usually a label or lifetime like 'static.
func Character(orig string, pos int) (lexeme.Kind, int) {
	// The shortest possible literal is 'A', three bytes.
	if len(orig) < pos+3 {
		return lexeme.Undetected, 0
	}
	if charAt(orig, pos) != '\'' {
		return lexeme.Undetected, 0
	}
	// The first character inside the quotes may be multi-byte.
	c1end := next(orig, pos+2)
	if c1end >= len(orig) {
		return lexeme.Undetected, 0
	}
	c1 := orig[pos+1 : c1end]
	if c1 != "\\" {
		if c1 == "'" {
			// Empty literal, "''".
			return lexeme.Undetected, 0
		}
		if charAt(orig, c1end) != '\'' {
			// Probably a label, like "'static".
			return lexeme.Undetected, 0
		}
		return lexeme.CharacterPlain, c1end + 1
	}

	switch charAt(orig, pos+2) {
	case 'n', 'r', 't', '\\', '0', '"', '\'':
		if len(orig) >= pos+4 && charAt(orig, pos+3) == '\'' {
			return lexeme.CharacterPlain, pos + 4
		}
	case 'x':
		// Exactly two hex digits, the first restricted to 0-7.
		if len(orig) >= pos+6 &&
			charAt(orig, pos+3) >= '0' && charAt(orig, pos+3) <= '7' &&
			isHexDigit(charAt(orig, pos+4)) &&
			charAt(orig, pos+5) == '\'' {
			return lexeme.CharacterHex, pos + 6
		}
	case 'u':
		return unicodeCharacter(orig, pos)
	}
	return lexeme.Undetected, 0
}

// unicodeCharacter detects the '\u{...}' form: one to six hex digits
// whose value must not exceed 0x10FFFF.
func unicodeCharacter(orig string, pos int) (lexeme.Kind, int) {
	// The shortest form is '\u{0}', seven bytes.
	if len(orig) < pos+7 || charAt(orig, pos+3) != '{' {
		return lexeme.Undetected, 0
	}
	value := 0
	digits := 0
	closed := false
	for i := 4; i < 11; i++ {
		c := charAt(orig, pos+i)
		if c == '}' {
			closed = true
			break
		}
		if !isHexDigit(c) {
			return lexeme.Undetected, 0
		}
		value = value<<4 | hexValue(c)
		digits++
	}
	// More than six digits means the closing bracket was never seen,
	// and at least one digit is required.
	if !closed || digits == 0 {
		return lexeme.Undetected, 0
	}
	last := digits + 5
	if charAt(orig, pos+last) != '\'' {
		return lexeme.Undetected, 0
	}
	if value > 0x10FFFF {
		return lexeme.Undetected, 0
	}
	return lexeme.CharacterUnicode, pos + last + 1
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func hexValue(c byte) int {
	switch {
	case c >= 'a':
		return int(c-'a') + 10
	case c >= 'A':
		return int(c-'A') + 10
	default:
		return int(c - '0')
	}
}

package detect

import "github.com/op8d/lexemizer/lexeme"

// Number detects a number literal: decimal like 12.34e5, or binary,
// hex and octal with the 0b, 0x and 0o prefixes.
//
// In the prefixed bases, underscores are ignored, at least one in-base
// digit is required, and a dot rejects the whole literal. A character
// which is digit-shaped but outside the base (like the 2 in 0b12)
// also rejects the whole literal, whereas an unrelated character (like
// the g in 0x1g) merely ends it, keeping the valid prefix.
func Number(orig string, pos int) (lexeme.Kind, int) {
	if pos >= len(orig) {
		return lexeme.Undetected, 0
	}
	c := charAt(orig, pos)
	if c < '0' || c > '9' {
		return lexeme.Undetected, 0
	}
	// A digit as the input's last byte is already a whole number.
	if len(orig) == pos+1 {
		return lexeme.NumberDecimal, len(orig)
	}
	if c != '0' {
		return decimalNumber(orig, pos)
	}
	switch charAt(orig, pos+1) {
	case 'b':
		return radixNumber(orig, pos, lexeme.NumberBinary, '1')
	case 'o':
		return radixNumber(orig, pos, lexeme.NumberOctal, '7')
	case 'x':
		return hexNumber(orig, pos)
	}
	// Any other leading-zero continuation is a decimal number.
	return decimalNumber(orig, pos)
}

// radixNumber scans a binary or octal literal, whose digits run from
// '0' to maxDigit.
func radixNumber(orig string, pos int, kind lexeme.Kind, maxDigit byte) (lexeme.Kind, int) {
	hasDigit := false
	for i := pos + 2; i < len(orig); i++ { // +2 skips the 0b or 0o
		c := charAt(orig, i)
		switch {
		case c == '_':
		case c >= '0' && c <= maxDigit:
			hasDigit = true
		case c >= '0' && c <= '9' || c == '.':
			// Reject the whole of 0b101021, not just the 0b1010 part,
			// and reject the whole of 0b11.1: these bases have no
			// fractional forms.
			return lexeme.Undetected, 0
		default:
			if hasDigit {
				return kind, i
			}
			return lexeme.Undetected, 0
		}
	}
	if hasDigit {
		return kind, len(orig)
	}
	return lexeme.Undetected, 0
}

func hexNumber(orig string, pos int) (lexeme.Kind, int) {
	hasDigit := false
	for i := pos + 2; i < len(orig); i++ { // +2 skips the 0x
		c := charAt(orig, i)
		switch {
		case c == '_':
		case isHexDigit(c):
			hasDigit = true
		case c == '.':
			// Reject the whole of 0xAB.C: no hex fractional forms.
			return lexeme.Undetected, 0
		default:
			if hasDigit {
				return lexeme.NumberHex, i
			}
			return lexeme.Undetected, 0
		}
	}
	if hasDigit {
		return lexeme.NumberHex, len(orig)
	}
	return lexeme.Undetected, 0
}

// decimalNumber scans digits with up to one dot and up to one e/E
// exponent marker, optionally signed. A number cannot end in "e", "E",
// "+", "-", "e_" or "E_", and an exponent cannot contain a dot. An
// underscore directly after the dot rejects the whole literal.
func decimalNumber(orig string, pos int) (lexeme.Kind, int) {
	var (
		hasDot bool
		hasE   bool
		posDot int // position after the dot, catches "1._2"
		posE   int // position after e/E, catches "10E" and "10E2+3"
		posEU  int // position after "e_", catches "7.5e_"
		posS   int // position after an exponent sign, catches "10E+"
	)
	for i := pos + 1; i < len(orig); i++ { // +1, the first digit is found
		c := charAt(orig, i)
		switch {
		case c == '_':
			if hasDot && posDot == i {
				return lexeme.Undetected, 0
			}
			if hasE && posE == i {
				posEU = i + 1
			}
		case hasE && posE == i && (c == '+' || c == '-'):
			posS = i + 1
		case !hasDot && c == '.':
			if hasE {
				// The exponent may not contain a fractional point.
				return lexeme.Undetected, 0
			}
			hasDot = true
			posDot = i + 1
		case !hasE && (c == 'e' || c == 'E'):
			hasE = true
			posE = i + 1
		case c < '0' || c > '9':
			// A char which cannot extend the number. Reject outright
			// if it leaves a dangling exponent, sign or underscore.
			if i == posE || i == posS || i == posEU {
				return lexeme.Undetected, 0
			}
			return lexeme.NumberDecimal, i
		}
	}
	if n := len(orig); n != posE && n != posS && n != posEU {
		return lexeme.NumberDecimal, n
	}
	return lexeme.Undetected, 0
}

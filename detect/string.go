package detect

import "github.com/op8d/lexemizer/lexeme"

// String detects a string literal: plain like "Hello \"Rust\"" or raw
// like r#"Hello "Rust""#. Byte strings (b"..." and br#"..."#) are
// reserved and not detected.
//
// An unterminated string is no-match for the whole span. In both forms
// a backslash skips the character after it unconditionally; escape
// legality is not checked here, that is the parser's concern.
func String(orig string, pos int) (lexeme.Kind, int) {
	if len(orig) < pos+1 {
		return lexeme.Undetected, 0
	}
	switch charAt(orig, pos) {
	case '"':
		return plainString(orig, pos)
	case 'r':
		return rawString(orig, pos)
	}
	return lexeme.Undetected, 0
}

func plainString(orig string, pos int) (lexeme.Kind, int) {
	i := pos + 1
	for i < len(orig) {
		j := next(orig, i+1)
		c := orig[i:j]
		if c == "\\" {
			// A backslash as the input's last byte cannot be skipped.
			if j == len(orig) {
				return lexeme.Undetected, 0
			}
			j = next(orig, j+1)
		} else if c == "\"" {
			return lexeme.StringPlain, j
		}
		i = j
	}
	// The closing double quote was never found.
	return lexeme.Undetected, 0
}

// rawString detects r"...", or r#"..."# with any number of hashes, as
// long as the trailing hashes balance the leading ones exactly.
// doc.rust-lang.org/reference/tokens.html#raw-string-literals
func rawString(orig string, pos int) (lexeme.Kind, int) {
	// The shortest possible raw string is r"", three bytes.
	if len(orig) < pos+3 {
		return lexeme.Undetected, 0
	}
	i := pos + 1
	hashes := 0
	foundOpening := false
	foundClosing := false
	for i < len(orig) {
		j := next(orig, i+1)
		c := orig[i:j]
		switch {
		case !foundOpening:
			if c == "\"" {
				foundOpening = true
			} else if c == "#" {
				hashes++
			} else {
				return lexeme.Undetected, 0
			}
		case foundClosing:
			if hashes == 0 {
				return lexeme.StringRaw, j
			}
			if c != "#" {
				// Too few trailing hashes.
				return lexeme.Undetected, 0
			}
			hashes--
			if hashes == 0 {
				return lexeme.StringRaw, j
			}
		default:
			if c == "\\" {
				// The backslash skips the next character, even though
				// raw strings have no escapes. A raw string whose body
				// ends in a backslash before the delimiter is
				// therefore scanned past the delimiter.
				if j == len(orig) {
					return lexeme.Undetected, 0
				}
				j = next(orig, j+1)
			} else if c == "\"" {
				foundClosing = true
				if hashes == 0 {
					return lexeme.StringRaw, j
				}
			}
		}
		i = j
	}
	if foundClosing && hashes == 0 {
		return lexeme.StringRaw, i
	}
	return lexeme.Undetected, 0
}

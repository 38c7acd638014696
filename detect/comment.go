package detect

import "github.com/op8d/lexemizer/lexeme"

// Comment detects an inline comment like `// ok` or a multiline
// comment like `/* ok */`. Multiline comments nest. An unterminated
// multiline comment is no-match for the whole span, never a partial
// lexeme.
func Comment(orig string, pos int) (lexeme.Kind, int) {
	if len(orig) < pos+2 {
		return lexeme.Undetected, 0
	}
	if charAt(orig, pos) != '/' {
		return lexeme.Undetected, 0
	}
	switch charAt(orig, pos+1) {
	case '/':
		return inlineComment(orig, pos)
	case '*':
		return multilineComment(orig, pos)
	}
	return lexeme.Undetected, 0
}

// inlineComment scans to the first newline, which is excluded from the
// comment, or to the end of the input. The scan stops short of the
// final byte, so a newline which is the very last byte of the input is
// absorbed into the comment.
func inlineComment(orig string, pos int) (lexeme.Kind, int) {
	i := pos + 2
	for i < len(orig)-1 {
		j := next(orig, i+1)
		if orig[i:j] == "\n" {
			return lexeme.CommentInline, i
		}
		i = j
	}
	return lexeme.CommentInline, len(orig)
}

func multilineComment(orig string, pos int) (lexeme.Kind, int) {
	depth := 0
	i := pos + 2
	for i < len(orig) {
		j := next(orig, i+1)
		c0 := orig[i:j]
		c1 := charAt(orig, j)
		if c0 == "*" && c1 == '/' {
			if depth == 0 {
				return lexeme.CommentMultiline, i + 2
			}
			depth--
			// Skip the slash, so "*/*" cannot also open a nested level.
			j++
		} else if c0 == "/" && c1 == '*' {
			depth++
			// Skip the asterisk, so "/*/" cannot also close this level.
			j++
		}
		i = j
	}
	// The outermost "*/" was never found.
	return lexeme.Undetected, 0
}

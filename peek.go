package lexemizer

import "github.com/op8d/lexemizer/lexeme"

// PeekingLexer walks a Result the way a parser consumes it, with
// arbitrary lookahead and elision of insignificant kinds. It never
// merges or rewrites lexemes.
type PeekingLexer struct {
	lexemes []lexeme.Lexeme
	eoi     lexeme.Lexeme
	cursor  int
	elide   map[lexeme.Kind]bool
}

// Upgrade wraps a Result in a PeekingLexer.
//
// elide lists kinds to skip during Next and Peek, typically
// lexeme.WhitespaceTrimmable and the comment kinds. Elided lexemes are
// still present in the underlying Result.
func Upgrade(r Result, elide ...lexeme.Kind) *PeekingLexer {
	p := &PeekingLexer{
		elide: make(map[lexeme.Kind]bool, len(elide)),
	}
	for _, k := range elide {
		p.elide[k] = true
	}
	if n := len(r.Lexemes); n > 0 {
		p.lexemes = r.Lexemes[:n-1]
		p.eoi = r.Lexemes[n-1]
	} else {
		// A Result built by Lexemize always carries the sentinel;
		// tolerate a zero value anyway.
		p.eoi = lexeme.Lexeme{Kind: lexeme.WhitespaceTrimmable, Snippet: lexeme.EndOfInput}
	}
	return p
}

// Next consumes and returns the next non-elided lexeme, or the
// end-of-input sentinel once the stream is exhausted.
func (p *PeekingLexer) Next() lexeme.Lexeme {
	for p.cursor < len(p.lexemes) {
		l := p.lexemes[p.cursor]
		p.cursor++
		if !p.elide[l.Kind] {
			return l
		}
	}
	return p.eoi
}

// Peek returns what Next would return, without consuming it.
func (p *PeekingLexer) Peek() lexeme.Lexeme {
	for i := p.cursor; i < len(p.lexemes); i++ {
		if l := p.lexemes[i]; !p.elide[l.Kind] {
			return l
		}
	}
	return p.eoi
}

// EOI reports whether l is the end-of-input sentinel.
func EOI(l lexeme.Lexeme) bool {
	return l.Kind == lexeme.WhitespaceTrimmable && l.Snippet == lexeme.EndOfInput
}

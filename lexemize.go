// Package lexemizer transforms Rust 2018 source text into an ordered,
// fully covering sequence of classified lexemes.
//
// The primary purpose of Lexemize is to quickly divide Rust code into
// three basic sections - comments, strings, and everything else. The
// "everything else" section is then divided into literals, punctuation,
// whitespace and identifiers. Anything left over is marked as
// Unidentifiable, so any input at all can be lexemized: the function
// has no error conditions. Checking the input for semantic correctness
// is a later concern, when the context is known during parsing.
//
// Multi-lexeme constructs like the lifetime 'static (a Punctuation
// quote followed by a Keyword-shaped word) or the macro call foo! (an
// Identifier followed by a Punctuation bang) are intentionally left
// split here; recombining them is a contextual refinement pass that
// belongs to a later stage.
package lexemizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/op8d/lexemizer/detect"
	"github.com/op8d/lexemizer/lexeme"
)

// detectors are tried in a fixed priority order at each scan position.
// The order is alphabetical with one exception: a raw string starts
// with "r", so String must run before Identifier would swallow the "r"
// as a word.
var detectors = []func(string, int) (lexeme.Kind, int){
	detect.Character,
	detect.Comment,
	detect.String,
	detect.Identifier,
	detect.Number,
	detect.Punctuation,
	detect.Whitespace,
}

// Result is an ordered list of lexemes covering the whole input, plus
// the total number of bytes scanned. The final lexeme is always the
// end-of-input sentinel.
type Result struct {
	Lexemes []lexeme.Lexeme
	Length  int
}

// String renders one line per lexeme, preceded by a count header.
func (r Result) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "Lexemes, incl <EOI>: %d\n", len(r.Lexemes))
	for _, l := range r.Lexemes {
		out.WriteString(l.String())
		out.WriteByte('\n')
	}
	return out.String()
}

// Lexemize scans orig and returns every detected lexeme, in order,
// followed by the end-of-input sentinel.
//
// Any byte sequence produces a complete, gapless result: bytes that no
// detector recognises, including invalid UTF-8 passed in error,
// accumulate into Unidentifiable runs.
func Lexemize(orig string) Result {
	var (
		lexemes []lexeme.Lexeme
		pos     int // scan cursor, a byte offset
		unident int // start of the pending unidentifiable run
	)
outer:
	for pos < len(orig) {
		// Only attempt detection at the start of a character.
		if pos == 0 || utf8.RuneStart(orig[pos]) {
			for _, detector := range detectors {
				kind, end := detector(orig, pos)
				if kind == lexeme.Undetected {
					continue
				}
				// Flush any unidentifiable bytes which precede this
				// lexeme before recording it.
				if unident != pos {
					lexemes = append(lexemes, lexeme.Lexeme{
						Kind:    lexeme.Unidentifiable,
						Pos:     unident,
						Snippet: orig[unident:pos],
					})
				}
				lexemes = append(lexemes, lexeme.Lexeme{
					Kind:    kind,
					Pos:     pos,
					Snippet: orig[pos:end],
				})
				pos = end
				unident = end
				continue outer
			}
		}
		pos++
	}
	if unident != pos {
		lexemes = append(lexemes, lexeme.Lexeme{
			Kind:    lexeme.Unidentifiable,
			Pos:     unident,
			Snippet: orig[unident:pos],
		})
	}
	lexemes = append(lexemes, lexeme.Lexeme{
		Kind:    lexeme.WhitespaceTrimmable,
		Pos:     pos,
		Snippet: lexeme.EndOfInput,
	})
	return Result{Lexemes: lexemes, Length: len(orig)}
}

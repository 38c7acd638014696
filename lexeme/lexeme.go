// Package lexeme defines the classified spans produced by lexemizing
// Rust 2018 source text.
package lexeme

import (
	"fmt"
	"strings"
)

// EndOfInput is the snippet of the sentinel Lexeme appended after the
// last byte of input. It simplifies parsing code which does not
// already end in whitespace.
const EndOfInput = "<EOI>"

// Kind is the closed set of lexeme categories. Several members are
// reserved for literal forms the detectors do not recognise yet; they
// never appear in a Result.
type Kind int

const (
	// Undetected is the no-match signal returned by detectors. It is
	// never emitted by Lexemize.
	Undetected Kind = iota

	CharacterPlain   // 'A' or '\n'
	CharacterHex     // '\x7F'
	CharacterUnicode // '\u{10abCD}'
	CharacterByte    // b'A' (reserved, not detected)

	CommentInline       // //...
	CommentMultiline    // /* ... */, nestable
	CommentDocInline    // /// or //! (reserved, not detected)
	CommentDocMultiline // /** or /*! (reserved, not detected)

	IdentifierFreeword // anything not a keyword or std type
	IdentifierKeyword  // one of the 52 reserved words
	IdentifierStdType  // a primitive type name like u32
	IdentifierOther    // r#ident (reserved, not detected)

	NumberBinary  // 0b1001
	NumberDecimal // 12.34e5
	NumberHex     // 0xAB_CD
	NumberOctal   // 0o177

	Punctuation // ; or >>=

	StringPlain   // "..."
	StringRaw     // r##"..."##
	StringByte    // b"..." (reserved, not detected)
	StringByteRaw // br#"..."# (reserved, not detected)

	// Unidentifiable marks a run of bytes that no detector recognised.
	Unidentifiable

	// WhitespaceTrimmable marks insignificant whitespace, and is reused
	// for the end-of-input sentinel.
	WhitespaceTrimmable
)

var kindNames = [...]string{
	Undetected:          "Undetected",
	CharacterPlain:      "CharacterPlain",
	CharacterHex:        "CharacterHex",
	CharacterUnicode:    "CharacterUnicode",
	CharacterByte:       "CharacterByte",
	CommentInline:       "CommentInline",
	CommentMultiline:    "CommentMultiline",
	CommentDocInline:    "CommentDocInline",
	CommentDocMultiline: "CommentDocMultiline",
	IdentifierFreeword:  "IdentifierFreeword",
	IdentifierKeyword:   "IdentifierKeyword",
	IdentifierStdType:   "IdentifierStdType",
	IdentifierOther:     "IdentifierOther",
	NumberBinary:        "NumberBinary",
	NumberDecimal:       "NumberDecimal",
	NumberHex:           "NumberHex",
	NumberOctal:         "NumberOctal",
	Punctuation:         "Punctuation",
	StringPlain:         "StringPlain",
	StringRaw:           "StringRaw",
	StringByte:          "StringByte",
	StringByteRaw:       "StringByteRaw",
	Unidentifiable:      "Unidentifiable",
	WhitespaceTrimmable: "WhitespaceTrimmable",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// A Lexeme is a classified contiguous span of the input text.
type Lexeme struct {
	// Kind is the category of the span.
	Kind Kind
	// Pos is the byte position where the span starts, zero indexed.
	Pos int
	// Snippet is the spanned text, sliced from the input.
	Snippet string
}

// String renders the Lexeme on one line: the kind name padded to 20
// characters, the position right-aligned to 4, and the snippet with
// newlines replaced by a visible marker.
func (l Lexeme) String() string {
	snippet := strings.ReplaceAll(l.Snippet, "\n", "<NL>")
	return fmt.Sprintf("%-20s %4d  %s", l.Kind, l.Pos, snippet)
}

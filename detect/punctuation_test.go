package detect

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/op8d/lexemizer/lexeme"
)

func TestPunctuation(t *testing.T) {
	tests := []struct {
		orig string
		pos  int
		kind lexeme.Kind
		end  int
	}{
		// Maximal munch.
		{"- === 'label ...", 0, lexeme.Punctuation, 1},
		{"- === 'label ...", 2, lexeme.Punctuation, 4}, // == since there is no ===
		{"- === 'label ...", 3, lexeme.Punctuation, 5}, // == from the 2nd and 3rd char
		{"- === 'label ...", 6, lexeme.Punctuation, 7}, // the quote alone
		{"- === 'label ...", 13, lexeme.Punctuation, 16},

		// Singles which no second character can extend.
		{",=", 0, lexeme.Punctuation, 1},
		{";;", 0, lexeme.Punctuation, 1},
		{"?!", 0, lexeme.Punctuation, 1},
		{"@@", 0, lexeme.Punctuation, 1},
		{"$$", 0, lexeme.Punctuation, 1},
		{"_x~", 0, lexeme.Punctuation, 1},
		{"([{}])", 0, lexeme.Punctuation, 1},
		// Singles at the end of the input.
		{" '", 1, lexeme.Punctuation, 2},
		{" #", 1, lexeme.Punctuation, 2},
		{" >", 1, lexeme.Punctuation, 2},
		// Doubles.
		{" ->", 1, lexeme.Punctuation, 3},
		{" ::", 1, lexeme.Punctuation, 3},
		{" !=", 1, lexeme.Punctuation, 3},
		{" ..", 1, lexeme.Punctuation, 3},
		{" &&~", 1, lexeme.Punctuation, 3},
		{" <<", 1, lexeme.Punctuation, 3},
		{" =>=", 1, lexeme.Punctuation, 3},
		{" ||=", 1, lexeme.Punctuation, 3},
		// Triples, all of which extend a double.
		{" ...", 1, lexeme.Punctuation, 4},
		{" ..=", 1, lexeme.Punctuation, 4},
		{" <<=", 1, lexeme.Punctuation, 4},
		{" >>=", 1, lexeme.Punctuation, 4},
		// Nothing longer than three exists.
		{" ...=", 1, lexeme.Punctuation, 4},
		{" >>==", 1, lexeme.Punctuation, 4},

		// Not punctuation.
		{"` =* .:.", 0, lexeme.Undetected, 0},
		{"` =* .:.", 2, lexeme.Punctuation, 3}, // just the = of =*
		{"` =* .:.", 5, lexeme.Punctuation, 6}, // just the . of .:.
		{"~", 0, lexeme.Undetected, 0},
		{"", 0, lexeme.Undetected, 0},
		// Invalid positions.
		{"abc", 2, lexeme.Undetected, 0},
		{"abc", 3, lexeme.Undetected, 0},
		{"abc", 100, lexeme.Undetected, 0},
		// Non-ASCII.
		{"€", 1, lexeme.Undetected, 0},
		{".€", 0, lexeme.Punctuation, 1},
		{"..€", 0, lexeme.Punctuation, 2},
		{"...€", 0, lexeme.Punctuation, 3},
	}
	for _, test := range tests {
		kind, end := Punctuation(test.orig, test.pos)
		require.Equal(t, test.kind, kind, "%q @ %d", test.orig, test.pos)
		require.Equal(t, test.end, end, "%q @ %d", test.orig, test.pos)
	}
}

func TestPunctuationTables(t *testing.T) {
	require.Len(t, punctuation1, 28)
	require.Len(t, punctuation2, 20)
	require.Len(t, punctuation3, 4)
	for p := range punctuation2 {
		require.True(t, punctuation1[p[0]], "%q must start with 1-char punctuation", p)
	}
	for p := range punctuation3 {
		require.True(t, punctuation2[p[:2]], "%q must extend 2-char punctuation", p)
	}
}

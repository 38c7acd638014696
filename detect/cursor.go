// Package detect contains one pure detector per lexeme family. Each
// detector maps (orig, pos) to either a classified span or a no-match
// result, and tolerates any byte sequence and any byte offset without
// panicking. All byte access within the detectors goes through the
// cursor primitives in this file.
package detect

import "unicode/utf8"

// sentinel stands in for any byte that charAt cannot return: tilde is
// not part of any lexeme grammar, so it safely terminates scans.
const sentinel = '~'

// charAt returns the ASCII character at byte position pos, or the
// tilde sentinel when pos is out of range or the byte there is part of
// a multi-byte sequence.
func charAt(orig string, pos int) byte {
	if pos < 0 || pos >= len(orig) {
		return sentinel
	}
	c := orig[pos]
	if c >= utf8.RuneSelf {
		return sentinel
	}
	return c
}

// boundary reports whether pos falls on a UTF-8 character boundary.
// The position just past the last byte is a boundary; positions past
// that are not.
func boundary(orig string, pos int) bool {
	if pos < 0 || pos > len(orig) {
		return false
	}
	return pos == len(orig) || utf8.RuneStart(orig[pos])
}

// next advances pos to the following character boundary, stepping over
// the continuation bytes of a multi-byte sequence. It never advances
// past the end of orig, even when the final sequence is truncated.
func next(orig string, pos int) int {
	for pos < len(orig) && !utf8.RuneStart(orig[pos]) {
		pos++
	}
	return pos
}

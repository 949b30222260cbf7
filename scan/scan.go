// Package scan splits cell text at separator characters, ignoring
// separators that appear inside brackets or raw-quoted spans.
//
// A separator counts as a split point only when the bracket depth is zero
// and the position is outside a raw span. Bracket depth is the combined
// nesting of the block and list bracket pairs; a raw span runs from one raw
// quote character to the next. Unbalanced brackets and unterminated raw
// spans are not errors: the scanner just reports whatever split points the
// depth and quote state allow.
package scan

import (
	"iter"
	"strings"
)

// Config carries the delimiter characters the scanner tracks. Each bracket
// string holds the opening character at index 0 and the closing character at
// index 1.
type Config struct {
	BlockBracket string
	ListBracket  string
	RawQuote     rune
}

// Points yields the index of every top-level occurrence of sep in s, then
// len(s) as the final point.
func Points(s string, sep rune, c Config) iter.Seq[int] {
	return func(yield func(int) bool) {
		depth := 0
		raw := false
		for i, r := range s {
			switch {
			case r == c.RawQuote:
				raw = !raw
			case r == rune(c.BlockBracket[0]) || r == rune(c.ListBracket[0]):
				depth++
			case r == rune(c.BlockBracket[1]) || r == rune(c.ListBracket[1]):
				depth--
			case r == sep && depth == 0 && !raw:
				if !yield(i) {
					return
				}
			}
		}
		yield(len(s))
	}
}

// Split cuts s at every top-level sep and trims each part, first of sep
// characters and then of surrounding space.
func Split(s string, sep rune, c Config) []string {
	var res []string
	prev := 0
	for p := range Points(s, sep, c) {
		part := strings.Trim(s[prev:p], string(sep))
		res = append(res, strings.TrimSpace(part))
		prev = p
	}
	return res
}

// Cut splits s around the first top-level sep, trimming space from both
// halves. The found result reports whether a top-level sep was present.
func Cut(s string, sep rune, c Config) (before, after string, found bool) {
	for p := range Points(s, sep, c) {
		if p == len(s) {
			break
		}
		return strings.TrimSpace(s[:p]), strings.TrimSpace(s[p+1:]), true
	}
	return strings.TrimSpace(s), "", false
}

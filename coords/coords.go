package coords

import (
	"regexp"
	"strconv"
)

// pairPattern matches either a parenthesized pair "(x, y)" or a bare
// comma pair "x,y". The alternation keeps the paren form first so a
// parenthesized mention is captured with its full span.
var pairPattern = regexp.MustCompile(`\(\s*(\d+)\s*,\s*(\d+)\s*\)|\b(\d+)\s*,\s*(\d+)\b`)

// Candidate is one coordinate mention recovered from the source text.
type Candidate struct {
	// X and Y are the pair exactly as written (first, second); whether
	// they mean (row, col) or (col, row) is the caller's convention.
	X, Y int

	// Start and End delimit the matched span as byte offsets into the
	// source text.
	Start, End int

	// Text is the matched span verbatim.
	Text string
}

// Extract returns every coordinate pair mentioned in text, in order of
// first appearance. Duplicates are preserved and nothing is range
// checked. Extract never fails; a text with no pairs yields an empty
// slice.
//
// Time: O(len(text)).
func Extract(text string) []Candidate {
	matches := pairPattern.FindAllStringSubmatchIndex(text, -1)
	out := make([]Candidate, 0, len(matches))

	for _, m := range matches {
		// Groups 1-2 hold the parenthesized form, groups 3-4 the bare form.
		gx, gy := 2, 4
		if m[gx] < 0 {
			gx, gy = 6, 8
		}
		x, errX := strconv.Atoi(text[m[gx]:m[gx+1]])
		y, errY := strconv.Atoi(text[m[gy]:m[gy+1]])
		if errX != nil || errY != nil {
			continue // digits too large to represent; treat as unmatched
		}
		out = append(out, Candidate{
			X:     x,
			Y:     y,
			Start: m[0],
			End:   m[1],
			Text:  text[m[0]:m[1]],
		})
	}

	return out
}

package verify

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Claim shape patterns. Each captures the pieces Statement needs; prose
// that fits none of them is unresolvable by design, not an error.
var (
	// "there are 3 blue pixels" / "there is 1 red cell"
	countPattern = regexp.MustCompile(
		`(?i)\bthere\s+(?:are|is)\s+(\d+)\s+([a-z]+)\s+(?:pixels?|cells?|tiles?|squares?)\b`)

	// "the red component is at position (2, 3)" / "the blue shape is located at 4,1"
	positionalPattern = regexp.MustCompile(
		`(?i)\bthe\s+([a-z]+)\s+(?:component|region|shape|object|block)\s+is\s+(?:located\s+)?at\s+(?:position\s+)?\(?\s*(\d+)\s*,\s*(\d+)\s*\)?`)

	// "I moved the component from (0,1) to (2,1)" / "moved the red component from 1,1 to 1,3"
	movementPattern = regexp.MustCompile(
		`(?i)\bmoved\s+(?:the\s+)?(?:([a-z]+)\s+)?component\s+from\s+\(?\s*(\d+)\s*,\s*(\d+)\s*\)?\s+to\s+\(?\s*(\d+)\s*,\s*(\d+)\s*\)?`)
)

// ParseClaims decomposes a statement into its recognized claims, in text
// order. A statement matching none of the closed shapes yields exactly
// one ClaimUnresolvable covering the whole text, so callers always
// receive at least one claim to report on.
func ParseClaims(text string) []Claim {
	type located struct {
		claim Claim
		start int
	}
	var found []located
	claimed := make(map[int]bool) // guard against one span parsing twice

	for _, m := range movementPattern.FindAllStringSubmatchIndex(text, -1) {
		c := Claim{
			Kind:    ClaimMovement,
			Text:    text[m[0]:m[1]],
			FromRow: num(text, m, 2),
			FromCol: num(text, m, 3),
			ToRow:   num(text, m, 4),
			ToCol:   num(text, m, 5),
		}
		if m[2] >= 0 {
			c.ColorName = strings.ToLower(text[m[2]:m[3]])
		}
		found = append(found, located{c, m[0]})
		claimed[m[0]] = true
	}

	for _, m := range countPattern.FindAllStringSubmatchIndex(text, -1) {
		if claimed[m[0]] {
			continue
		}
		found = append(found, located{Claim{
			Kind:      ClaimCount,
			Text:      text[m[0]:m[1]],
			Count:     num(text, m, 1),
			ColorName: strings.ToLower(text[m[4]:m[5]]),
		}, m[0]})
		claimed[m[0]] = true
	}

	for _, m := range positionalPattern.FindAllStringSubmatchIndex(text, -1) {
		if claimed[m[0]] {
			continue
		}
		found = append(found, located{Claim{
			Kind:      ClaimPositional,
			Text:      text[m[0]:m[1]],
			ColorName: strings.ToLower(text[m[2]:m[3]]),
			Row:       num(text, m, 2),
			Col:       num(text, m, 3),
		}, m[0]})
		claimed[m[0]] = true
	}

	if len(found) == 0 {
		return []Claim{{
			Kind:   ClaimUnresolvable,
			Text:   text,
			Reason: "no recognizable factual assertion",
		}}
	}

	// Report claims in the order they appear in the statement.
	sort.SliceStable(found, func(i, j int) bool { return found[i].start < found[j].start })
	claims := make([]Claim, len(found))
	for i, f := range found {
		claims[i] = f.claim
	}

	return claims
}

// num converts capture group g of a SubmatchIndex row to an int.
// Patterns only capture \d+ runs, so Atoi cannot fail on realistic
// coordinate magnitudes; overflow degrades to 0, which verification then
// rejects against the actual facts.
func num(text string, m []int, g int) int {
	v, _ := strconv.Atoi(text[m[2*g] : m[2*g+1]])

	return v
}

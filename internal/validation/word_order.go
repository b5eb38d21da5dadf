package validation

import (
	"slices"
	"strings"
)

// MatchesWithWordOrderTolerance reports whether guess and answer are equal
// after normalization, or, when word-order tolerance is on, contain the same
// multiset of words. A different word count never matches.
func MatchesWithWordOrderTolerance(guess, answer string, cfg Config) bool {
	opts := cfg.NormalizeOptions()
	g := Normalize(guess, opts)
	a := Normalize(answer, opts)
	if g == a {
		return true
	}
	if !cfg.TolerateWordOrderVariations {
		return false
	}

	gw := sortedWords(g)
	aw := sortedWords(a)
	return len(gw) > 0 && slices.Equal(gw, aw)
}

func sortedWords(s string) []string {
	words := strings.Fields(s)
	slices.Sort(words)
	return words
}

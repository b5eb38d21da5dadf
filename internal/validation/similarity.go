package validation

// EditDistance is the unit-cost Levenshtein distance between a and b,
// measured in runes. It keeps a single DP row sized to the shorter input.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			above := row[j]
			row[j] = min(
				row[j]+1,   // deletion
				row[j-1]+1, // insertion
				diag+cost,  // substitution
			)
			diag = above
		}
	}

	return row[len(rb)]
}

// Similarity returns (maxLen - distance) / maxLen in [0,1].
// Two empty strings are identical.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}
	return float64(maxLen-EditDistance(a, b)) / float64(maxLen)
}

// Package fuzzy provides edit-distance matching for CLI suggestions.
// Used by glint errors to attach "did you mean" hints to unknown command
// and flag diagnostics.
package fuzzy

import "strings"

// minInputLength guards against suggesting for near-empty input
const minInputLength = 2

// Closest returns the candidate with the smallest edit distance to input,
// provided the distance does not exceed maxDistance. Comparison is
// case-insensitive. Returns "" when no candidate qualifies or the input is
// too short to match meaningfully.
func Closest(input string, candidates []string, maxDistance int) string {
	if len(input) < minInputLength {
		return ""
	}
	input = strings.ToLower(input)

	best := ""
	bestDistance := maxDistance + 1
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			// Exact matches are not typos
			continue
		}
		d := distance(input, lower)
		if d < bestDistance || (d == bestDistance && best != "" && candidate < best) {
			best = candidate
			bestDistance = d
		}
	}
	if bestDistance > maxDistance {
		return ""
	}
	return best
}

// distance computes the Levenshtein edit distance between a and b using a
// single-row buffer.
func distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			current := row[j]
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			row[j] = min3(row[j]+1, row[j-1]+1, prev+cost)
			prev = current
		}
	}
	return row[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

package naming

import (
	"sort"
	"strings"
)

// DefaultMinSimilarity is the lowest similarity Suggest reports.
const DefaultMinSimilarity = 0.6

// Levenshtein computes the edit distance between two strings.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity returns 1 - distance/max(len) over the case-folded, sanitized
// forms of a and b. Identical inputs score 1.0.
func Similarity(a, b string) float64 {
	na := strings.ToLower(SanitizeName(a))
	nb := strings.ToLower(SanitizeName(b))

	if len(na) == 0 && len(nb) == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(na, nb))/float64(max(len(na), len(nb)))
}

type scored struct {
	name  string
	score float64
}

// Suggest returns up to limit names from known that resemble name, best
// match first. Ties are broken alphabetically so output is stable.
func Suggest(name string, known []string, limit int) []string {
	var ranked []scored

	for _, k := range known {
		if k == name {
			continue
		}

		if s := Similarity(name, k); s >= DefaultMinSimilarity {
			ranked = append(ranked, scored{name: k, score: s})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.name)
	}

	return out
}

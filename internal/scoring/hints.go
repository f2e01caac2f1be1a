package scoring

import (
	"strings"

	"github.com/agext/levenshtein"
)

// nearest returns the candidate closest to target by edit distance, or "" when nothing is
// within half the target's length.
func nearest(target string, candidates []string) string {
	t := strings.ToLower(target)
	limit := len(t) / 2
	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.Distance(t, strings.ToLower(c), nil)
		if d > limit {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

package member

import (
	"reflect"
	"strings"

	"github.com/agext/levenshtein"
)

// maxSuggestDistance is the largest edit distance still offered as a
// suggestion.
const maxSuggestDistance = 2

// Suggest returns the member name of t closest to name, or "" when nothing
// is within a small edit distance. Case is ignored when comparing.
func Suggest(t reflect.Type, name string) string {
	if t == nil || name == "" {
		return ""
	}
	return Closest(lookup(t).names, name)
}

// Closest returns the candidate closest to name within the suggestion
// distance, or "" when there is none. Ties go to the earliest candidate.
func Closest(candidates []string, name string) string {
	best, bestDist := "", maxSuggestDistance+1
	lower := strings.ToLower(name)
	for _, c := range candidates {
		if c == name {
			continue
		}
		d := levenshtein.Distance(strings.ToLower(c), lower, nil)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

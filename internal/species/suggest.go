package species

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit candidates that fuzzily resemble the query.
// It is meant for queries Match rejects; it never affects Match results.
func Suggest(candidates []string, query string, limit int) []string {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || len(candidates) == 0 || limit <= 0 {
		return nil
	}
	targets := make([]string, len(candidates))
	for i, c := range candidates {
		targets[i] = strings.ToLower(c)
	}
	matches := fuzzy.Find(query, targets)
	suggestions := make([]string, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(suggestions) == limit {
			break
		}
		if m.Index >= 0 && m.Index < len(candidates) {
			suggestions = append(suggestions, candidates[m.Index])
		}
	}
	return suggestions
}

package species

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the shortest query (in runes) that is searched and
// judged valid or invalid. Shorter queries are always Neutral.
const MinQueryLength = 3

// Match returns the candidates whose stripped form contains the normalised
// query, case-insensitively. Candidates that begin with the normalised query
// come first; within each group the order is byte-wise ascending. Candidates
// are returned unmodified and the input slice is not touched.
func Match(candidates []string, query string) []string {
	q := Normalize(query)

	matches := make([]string, 0, len(candidates))
	for _, c := range candidates {
		// q is upper-case ASCII, so folding the candidate is enough for a
		// literal case-insensitive test.
		if strings.Contains(strings.ToUpper(strip(c)), q) {
			matches = append(matches, c)
		}
	}

	slices.SortStableFunc(matches, func(a, b string) int {
		aBegins := strings.HasPrefix(strings.ToUpper(a), q)
		bBegins := strings.HasPrefix(strings.ToUpper(b), q)
		if aBegins != bBegins {
			if aBegins {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})
	return matches
}

// Validity is the highlight state of a query.
type Validity int

const (
	// Neutral means the query is too short to be judged.
	Neutral Validity = iota
	// Valid means at least one candidate matches.
	Valid
	// Invalid means nothing matches.
	Invalid
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "neutral"
	}
}

// QueryLength reports the length of a raw query as the UI counts it.
func QueryLength(query string) int {
	return utf8.RuneCountInString(query)
}

// Check judges a raw query against the candidate list.
func Check(candidates []string, query string) Validity {
	if QueryLength(query) < MinQueryLength {
		return Neutral
	}
	if len(Match(candidates, query)) > 0 {
		return Valid
	}
	return Invalid
}

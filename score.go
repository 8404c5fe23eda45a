package match

import "strings"

// Contribution weights for MatchScore. Hand-tuned; scores only have meaning
// relative to other scores from the same weight table.
const (
	exactTitleWeight     = 100.0
	partialTitleWeight   = 90.0
	titleOverlapWeight   = 70.0
	exactSubjectWeight   = 80.0
	partialSubjectWeight = 75.0
	descriptionWeight    = 40.0
	fuzzyBonusWeight     = 20.0
)

// MatchScore returns the relevance of a catalog record (title, description,
// subject) for query. Contributions are additive: exact title 100 or else
// partial title 90, title word overlap up to 70 scaled by the fraction of
// title words that overlap a query word, exact subject 80 or else partial
// subject 75, description substring 40, and a 20-point bonus when a query of
// at least four characters fuzzy-matches the title and subject combined.
// All comparisons are case-insensitive.
func MatchScore(query, title, description, subject string) float64 {
	q := strings.TrimSpace(strings.ToLower(query))
	t := strings.TrimSpace(strings.ToLower(title))
	d := strings.TrimSpace(strings.ToLower(description))
	s := strings.TrimSpace(strings.ToLower(subject))

	var score float64

	if t == q {
		score += exactTitleWeight
	} else if strings.Contains(t, q) {
		score += partialTitleWeight
	}

	// Fractional overlap rewards titles where more of the words match.
	// An empty title contributes zero here rather than dividing by zero.
	titleWords := strings.Fields(t)
	queryWords := strings.Fields(q)
	if len(titleWords) > 0 {
		matchCount := 0
		for _, word := range titleWords {
			for _, queryWord := range queryWords {
				if strings.Contains(word, queryWord) || strings.Contains(queryWord, word) {
					matchCount++
					break
				}
			}
		}
		if matchCount > 0 {
			score += titleOverlapWeight * float64(matchCount) / float64(len(titleWords))
		}
	}

	if s == q {
		score += exactSubjectWeight
	} else if strings.Contains(s, q) {
		score += partialSubjectWeight
	}

	if strings.Contains(d, q) {
		score += descriptionWeight
	}

	if len(q) >= minFuzzyWordLen && FuzzyMatch(q, title+" "+subject) {
		score += fuzzyBonusWeight
	}

	return score
}

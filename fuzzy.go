package match

import "strings"

// abbreviations maps short catalog tokens to their full-form expansions.
// The table is bidirectional: FuzzyMatch also resolves a term appearing in
// an expansion list back to its key. "math" and "maths" deliberately list
// each other so both directions of that pair resolve through the table.
var abbreviations = map[string][]string{
	"maths": {"math", "mathematics"},
	"math":  {"maths", "mathematics"},
	"sci":   {"science"},
	"eng":   {"english"},
	"bio":   {"biology"},
	"chem":  {"chemistry"},
	"phys":  {"physics"},
	"lit":   {"literature"},
	"hist":  {"history"},
	"geo":   {"geography"},
	"s1":    {"senior 1"},
	"s2":    {"senior 2"},
	"s3":    {"senior 3"},
	"s4":    {"senior 4"},
	"s5":    {"senior 5"},
	"s6":    {"senior 6"},
}

// Words shorter than this never go through the edit-distance rule;
// short tokens produce too many accidental one-edit neighbors.
const minFuzzyWordLen = 4

// FuzzyMatch reports whether searchTerm matches targetText. Rules are tried
// in order and the first hit wins: exact substring, forward abbreviation
// (term is a table key and the text contains one of its expansions), reverse
// abbreviation (term is an expansion and the text contains its key), then a
// bounded per-word edit distance of at most 1 for word pairs of at least
// four characters whose lengths differ by at most one.
func FuzzyMatch(searchTerm, targetText string) bool {
	term := strings.TrimSpace(strings.ToLower(searchTerm))
	text := strings.ToLower(targetText)

	if strings.Contains(text, term) {
		return true
	}

	if expansions, ok := abbreviations[term]; ok {
		for _, expansion := range expansions {
			if strings.Contains(text, expansion) {
				return true
			}
		}
	}

	for key, expansions := range abbreviations {
		for _, expansion := range expansions {
			if expansion == term && strings.Contains(text, key) {
				return true
			}
		}
	}

	termWords := strings.Fields(term)
	textWords := strings.Fields(text)

	for _, termWord := range termWords {
		if len(termWord) < minFuzzyWordLen {
			continue
		}

		for _, textWord := range textWords {
			if len(textWord) < minFuzzyWordLen {
				continue
			}

			// Quick length check before the quadratic comparison
			if diff := len(textWord) - len(termWord); diff > 1 || diff < -1 {
				continue
			}

			if LevenshteinDistance(termWord, textWord) <= 1 {
				return true
			}
		}
	}

	return false
}

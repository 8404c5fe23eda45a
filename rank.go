package match

import (
	"sort"
	"strings"
)

// Record is a catalog entry to score against a query
type Record struct {
	ID          string // Record identifier, used as the ordering tie-break
	Title       string
	Description string
	Subject     string
}

// Result pairs a record with its relevance score (higher = more relevant)
type Result struct {
	Record Record
	Score  float64
}

// Rank scores every record against query with MatchScore and returns the
// matching records (score > 0) ordered best-first, at most maxResults of
// them. Ordering is deterministic: score descending, then ID ascending.
// This is the safest API - the result slice is freshly allocated.
func Rank(records []Record, query string, maxResults int) []Result {
	if maxResults <= 0 || len(records) == 0 || strings.TrimSpace(query) == "" {
		return nil
	}

	results := rankAll(records, query)
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	if len(results) == 0 {
		return nil
	}
	return results
}

// RankInto is the buffer-reusing variant of Rank: up to len(buf) results are
// copied into buf and the returned slice is a view into it. Caller owns the
// memory - a later RankInto on the same buffer overwrites earlier results.
func RankInto(records []Record, query string, buf []Result) []Result {
	if len(buf) == 0 || len(records) == 0 || strings.TrimSpace(query) == "" {
		return nil
	}

	results := rankAll(records, query)
	limit := min(len(results), len(buf))
	if limit == 0 {
		return nil
	}

	copy(buf, results[:limit])
	return buf[:limit]
}

func rankAll(records []Record, query string) []Result {
	var results []Result
	for _, record := range records {
		score := MatchScore(query, record.Title, record.Description, record.Subject)
		if score > 0 {
			results = append(results, Result{Record: record, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return compareScoreAndID(results[i].Score, results[i].Record.ID,
			results[j].Score, results[j].Record.ID) > 0
	})
	return results
}

// compareScoreAndID returns comparison result for score+ID pairs to ensure
// deterministic ordering.
func compareScoreAndID(score1 float64, id1 string, score2 float64, id2 string) int {
	if score1 > score2 {
		return 1
	} else if score1 < score2 {
		return -1
	} else if id1 < id2 {
		return 1
	} else if id1 > id2 {
		return -1
	}
	return 0
}

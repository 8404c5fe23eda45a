package match

import "sync"

// distanceScratch holds the DP table backing slice between calls
type distanceScratch struct {
	cells []int
}

// Scratch pool so repeated distance calls reuse working memory
var distancePool = sync.Pool{
	New: func() interface{} {
		return &distanceScratch{}
	},
}

// LevenshteinDistance returns the minimum number of single-character
// insertions, deletions, or substitutions needed to transform a into b.
// Comparison is per codepoint with no case folding - callers normalize
// case before calling.
func LevenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	m := len(ra)
	n := len(rb)

	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	scratch := distancePool.Get().(*distanceScratch)
	defer distancePool.Put(scratch)

	// Full (m+1)x(n+1) table in one flat slice, row i at offset i*(n+1)
	width := n + 1
	size := (m + 1) * width
	if cap(scratch.cells) < size {
		scratch.cells = make([]int, size)
	}
	dp := scratch.cells[:size]

	for i := 0; i <= m; i++ {
		dp[i*width] = i
	}
	for j := 0; j <= n; j++ {
		dp[j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if ra[i-1] == rb[j-1] {
				dp[i*width+j] = dp[(i-1)*width+j-1]
				continue
			}

			dp[i*width+j] = 1 + min(
				dp[(i-1)*width+j],   // deletion
				dp[i*width+j-1],     // insertion
				dp[(i-1)*width+j-1], // substitution
			)
		}
	}

	return dp[m*width+n]
}

package matcher

import "sort"

// CanonicalSort orders scored entries deterministically:
// 1. Score: higher first
// 2. Catalog declaration order: earlier first
func CanonicalSort(entries []ScoredEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Index < b.Index
	})
}

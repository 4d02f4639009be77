// Package search ranks directory entries for the admin panel.
package search

import (
	"sort"
	"strings"
)

// EditDistance returns the case-insensitive Levenshtein distance between a
// and b.
func EditDistance(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	ar := []rune(a)
	br := []rune(b)

	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j-1]+cost, min(prev[j]+1, curr[j-1]+1))
		}
		prev, curr = curr, prev
	}
	return prev[len(br)]
}

// RankBySimilarity sorts items so the ones closest to the query come first
// and returns at most limit of them. The key function extracts the field to
// compare against.
func RankBySimilarity[T any](items []T, query string, limit int, key func(T) string) []T {
	ranked := make([]T, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return EditDistance(key(ranked[i]), query) < EditDistance(key(ranked[j]), query)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

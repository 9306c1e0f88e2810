// Package editdist wraps the Levenshtein edit-distance dependency used by
// YAKE's deduplication walk (spec §4.6), converting raw edit distance into
// the normalized similarity score the walk compares against its threshold.
package editdist

import "github.com/agnivade/levenshtein"

// Similarity returns the Levenshtein similarity between a and b: 1 minus
// the edit distance divided by the longer string's rune length. Two equal
// strings score 1; completely disjoint strings of the same length score 0.
// Two empty strings are considered identical (similarity 1).
func Similarity(a, b string) float64 {
	maxLen := runeLen(a)
	if l := runeLen(b); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

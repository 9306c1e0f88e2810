package keywords

import "sort"

// Scored pairs a term with its score, as returned by TopWithScores.
type Scored struct {
	Term  string
	Score float32
}

// Ranker is the shared query contract every algorithm in this package
// implements (spec §4.7). An algorithm instance is built once from its
// inputs and is immutable thereafter: Top and TopWithScores never mutate
// state and never error, since every error surfaces at construction.
type Ranker interface {
	// Top returns at most k terms, ordered per the implementation's
	// ranking direction, with no duplicates.
	Top(k int) []string
	// TopWithScores is Top with each term's score attached.
	TopWithScores(k int) []Scored
}

// sortDescending orders items by score descending, lexicographically
// ascending on the term for ties. Used by TF-IDF, RAKE, and TextRank.
func sortDescending(items []Scored) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Term < items[j].Term
	})
}

// sortAscending orders items by score ascending, lexicographically
// ascending on the term for ties. Used by YAKE, where lower is better.
func sortAscending(items []Scored) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score < items[j].Score
		}
		return items[i].Term < items[j].Term
	})
}

// topK returns the first k entries of a pre-sorted ranking, or all of them
// if k exceeds the length. A non-positive k returns nil.
func topK(sorted []Scored, k int) []Scored {
	if k <= 0 || len(sorted) == 0 {
		return nil
	}
	if k > len(sorted) {
		k = len(sorted)
	}
	out := make([]Scored, k)
	copy(out, sorted[:k])
	return out
}

func topKTerms(sorted []Scored, k int) []string {
	top := topK(sorted, k)
	if len(top) == 0 {
		return nil
	}
	terms := make([]string, len(top))
	for i, s := range top {
		terms[i] = s.Term
	}
	return terms
}

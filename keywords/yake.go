package keywords

import (
	"math"
	"sort"
	"strings"

	"github.com/az-ai-labs/keyword-extraction-go/internal/casing"
	"github.com/az-ai-labs/keyword-extraction-go/internal/editdist"
	"github.com/az-ai-labs/keyword-extraction-go/tokenizer"
)

// yakeFeatures is the per-term record of spec §3's feature table, laid out
// struct-of-arrays so the parallel feature-computation pass (spec §9,
// "prefer struct-of-arrays when parallel") touches one slice at a time
// instead of fields scattered across per-term structs.
type yakeFeatures struct {
	terms       []string
	tf          []float64
	tfUpper     []float64
	tfProper    []float64
	sentenceIDs [][]int
	left        []map[string]int
	right       []map[string]int
}

// YAKE ranks candidate n-grams with a five-feature fusion score (spec
// §4.6). Lower scores are better keywords.
type YAKE struct {
	ranked []Scored
}

var _ Ranker = (*YAKE)(nil)

// NewYAKE builds a YAKE ranker from raw text. stop is required; punct is
// optional. Options: WithNGramSize (default 3), WithWindow (default 2),
// WithDedupThreshold (default 0.9), WithParallel.
func NewYAKE(text string, stop, punct map[string]struct{}, opts ...Option) (*YAKE, error) {
	cfg := applyOptions(opts)
	if err := cfg.validateNGramSize(); err != nil {
		return nil, err
	}
	if err := cfg.validateWindow(); err != nil {
		return nil, err
	}
	if err := cfg.validateDedupThreshold(); err != nil {
		return nil, err
	}

	opt := tokenizer.Options{StopWords: stop, Punctuation: punct}
	sentenceTokens := tokenizer.SentenceWordTokens(text)
	if len(sentenceTokens) == 0 {
		return &YAKE{}, nil
	}

	features := extractYAKEFeatures(sentenceTokens, opt, cfg.window)
	if len(features.terms) == 0 {
		return &YAKE{}, nil
	}

	termScores := scoreYAKETerms(features, len(sentenceTokens), cfg.parallel)

	phrases := tokenizer.Phrases(text, tokenizer.Options{StopWords: stop, Punctuation: punct})
	candidates, freq := enumerateNGrams(phrases, cfg.ngramSize)

	scored := scoreYAKECandidates(candidates, freq, termScores, cfg.parallel)
	sortAscending(scored)

	ranked := deduplicateYAKE(scored, cfg.dedupThreshold)

	return &YAKE{ranked: ranked}, nil
}

// extractYAKEFeatures builds the per-term feature table: frequency,
// casing, sentence ids, and window-restricted left/right neighbor counts.
func extractYAKEFeatures(sentenceTokens [][]tokenizer.Token, opt tokenizer.Options, window int) *yakeFeatures {
	order := make([]string, 0)
	seen := make(map[string]int)
	tf := make(map[string]float64)
	tfUpper := make(map[string]float64)
	tfProper := make(map[string]float64)
	sentenceIDs := make(map[string][]int)
	left := make(map[string]map[string]int)
	right := make(map[string]map[string]int)

	termAt := func(t string) int {
		if i, ok := seen[t]; ok {
			return i
		}
		i := len(order)
		seen[t] = i
		order = append(order, t)
		left[t] = make(map[string]int)
		right[t] = make(map[string]int)
		return i
	}

	for si, sentence := range sentenceTokens {
		// contentLower holds, per position in this sentence's content
		// stream, the lowercased term — used to build window-restricted
		// neighbor counts without hashing stop words.
		var contentLower []string
		firstWordSeen := false

		for _, tok := range sentence {
			lower := strings.ToLower(tok.Text)
			isSentenceInitial := !firstWordSeen
			firstWordSeen = true

			if opt.StopWords != nil {
				if _, ok := opt.StopWords[lower]; ok {
					continue
				}
			}
			if opt.Punctuation != nil {
				if _, ok := opt.Punctuation[lower]; ok {
					continue
				}
			}

			termAt(lower)
			tf[lower]++
			if isAllUpperMultiRune(tok.Text) {
				tfUpper[lower]++
			}
			if !isSentenceInitial && casing.IsTitleCase(tok.Text) {
				tfProper[lower]++
			}
			sentenceIDs[lower] = append(sentenceIDs[lower], si)

			contentLower = append(contentLower, lower)
		}

		for i, t := range contentLower {
			for j := max(0, i-window); j < i; j++ {
				left[t][contentLower[j]]++
			}
			for j := i + 1; j <= min(len(contentLower)-1, i+window); j++ {
				right[t][contentLower[j]]++
			}
		}
	}

	f := &yakeFeatures{
		terms:       order,
		tf:          make([]float64, len(order)),
		tfUpper:     make([]float64, len(order)),
		tfProper:    make([]float64, len(order)),
		sentenceIDs: make([][]int, len(order)),
		left:        make([]map[string]int, len(order)),
		right:       make([]map[string]int, len(order)),
	}
	for i, t := range order {
		f.tf[i] = tf[t]
		f.tfUpper[i] = tfUpper[t]
		f.tfProper[i] = tfProper[t]
		f.sentenceIDs[i] = sentenceIDs[t]
		f.left[i] = left[t]
		f.right[i] = right[t]
	}
	return f
}

// isAllUpperMultiRune applies spec §4.6's "length > 1" qualifier on top of
// casing.IsAllUpper: a lone uppercase letter is not an acronym.
func isAllUpperMultiRune(s string) bool {
	n := 0
	for range s {
		n++
		if n > 1 {
			break
		}
	}
	return n > 1 && casing.IsAllUpper(s)
}

// scoreYAKETerms computes the single-term score S(t) for every term in the
// feature table (spec §4.6 steps 1-6), fanned out across terms when
// cfg.parallel is set since each term's score is independent.
func scoreYAKETerms(f *yakeFeatures, totalSentences int, parallel bool) map[string]float64 {
	n := len(f.terms)
	maxTF := 0.0
	sumTF := 0.0
	for _, tf := range f.tf {
		if tf > maxTF {
			maxTF = tf
		}
		sumTF += tf
	}
	meanTF := sumTF / float64(n)
	var variance float64
	for _, tf := range f.tf {
		d := tf - meanTF
		variance += d * d
	}
	variance /= float64(n)
	sigma := math.Sqrt(variance)

	scores := make([]float64, n)
	compute := func(i int) {
		tf := f.tf[i]

		cas := math.Max(f.tfUpper[i], f.tfProper[i]) / (1 + math.Log(tf))

		median := medianInt(f.sentenceIDs[i])
		pos := math.Log(math.Log(3 + median))

		frq := tf / (meanTF + sigma)

		var sumLeft, sumRight float64
		for _, c := range f.left[i] {
			sumLeft += float64(c)
		}
		for _, c := range f.right[i] {
			sumRight += float64(c)
		}
		pl := sumLeft / maxTF
		pr := sumRight / maxTF
		rel := 1 + (pl+pr)*tf/maxTF

		sen := float64(distinctCount(f.sentenceIDs[i])) / float64(totalSentences)

		denom := cas + frq/rel + sen/rel
		if denom == 0 {
			denom = 1
		}
		scores[i] = (rel * pos) / denom
	}
	_ = runIndexed(n, parallel, compute)

	out := make(map[string]float64, n)
	for i, t := range f.terms {
		out[t] = scores[i]
	}
	return out
}

// medianInt returns the median of a non-empty, unsorted slice of ints as a
// float64 (the average of the two middle elements when the count is even).
func medianInt(xs []int) float64 {
	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

func distinctCount(xs []int) int {
	seen := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		seen[x] = struct{}{}
	}
	return len(seen)
}

// ngramCandidate is one distinct lowercased n-gram surfaced from the
// stop-word-delimited phrase stream.
type ngramCandidate struct {
	text  string
	words []string
}

// enumerateNGrams slides windows of length 1..n over every candidate
// phrase (itself already a maximal run of content tokens with no stop
// word or punctuation, spec §4.6's "trailing/leading stop word is
// ignored" reduces to phrase segmentation once phrases never contain one).
func enumerateNGrams(phrases [][]string, n int) ([]ngramCandidate, map[string]float64) {
	freq := make(map[string]float64)
	order := make([]string, 0)
	words := make(map[string][]string)

	for _, phrase := range phrases {
		lower := make([]string, len(phrase))
		for i, w := range phrase {
			lower[i] = strings.ToLower(w)
		}
		for length := 1; length <= n && length <= len(lower); length++ {
			for start := 0; start+length <= len(lower); start++ {
				gram := lower[start : start+length]
				key := strings.Join(gram, " ")
				if freq[key] == 0 {
					order = append(order, key)
					words[key] = append([]string(nil), gram...)
				}
				freq[key]++
			}
		}
	}

	candidates := make([]ngramCandidate, len(order))
	for i, key := range order {
		candidates[i] = ngramCandidate{text: key, words: words[key]}
	}
	return candidates, freq
}

// scoreYAKECandidates computes score(c) = product(S(ti)) / (TF(c) *
// (1 + sum(S(ti)))) for every candidate (spec §4.6's n-gram score),
// fanned out across candidates when parallel is set.
func scoreYAKECandidates(candidates []ngramCandidate, freq map[string]float64, termScores map[string]float64, parallel bool) []Scored {
	out := make([]Scored, len(candidates))
	compute := func(i int) {
		c := candidates[i]
		product := 1.0
		sum := 0.0
		for _, w := range c.words {
			s := termScores[w]
			product *= s
			sum += s
		}
		tfc := freq[c.text]
		score := product / (tfc * (1 + sum))
		out[i] = Scored{Term: c.text, Score: float32(score)}
	}
	_ = runIndexed(len(candidates), parallel, compute)
	return out
}

// deduplicateYAKE walks candidates in ascending (best-first) score order,
// rejecting any candidate whose Levenshtein similarity to an
// already-accepted candidate exceeds threshold. This walk is always
// sequential (spec §4.6: "order-dependent").
func deduplicateYAKE(sorted []Scored, threshold float64) []Scored {
	accepted := make([]Scored, 0, len(sorted))
	for _, cand := range sorted {
		duplicate := false
		for _, acc := range accepted {
			if editdist.Similarity(cand.Term, acc.Term) > threshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			accepted = append(accepted, cand)
		}
	}
	return accepted
}

// Top returns at most k candidates by ascending score (lower is better),
// lexicographic on ties.
func (y *YAKE) Top(k int) []string {
	return topKTerms(y.ranked, k)
}

// TopWithScores is Top with each candidate's score attached.
func (y *YAKE) TopWithScores(k int) []Scored {
	return topK(y.ranked, k)
}

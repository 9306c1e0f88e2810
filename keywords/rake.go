package keywords

import (
	"strings"

	"github.com/az-ai-labs/keyword-extraction-go/tokenizer"
)

// RAKE ranks stop-word-delimited candidate phrases by a degree/frequency
// score (spec §4.4). Unlike the other rankers it has no parallel
// construction mode: the spec's concurrency model (§5) only names TF-IDF,
// Co-occurrence, TextRank, and YAKE as candidates for the work-stealing
// pool, and RAKE's single pass over already-segmented phrases is too small
// to be worth fanning out.
type RAKE struct {
	ranked []Scored
}

var _ Ranker = (*RAKE)(nil)

// NewRAKE builds a RAKE ranker from raw text. stop is required; punct is
// optional. WithMaxPhraseLength caps candidate phrase length (0, the
// default, leaves phrases unbounded except by natural delimiters).
func NewRAKE(text string, stop, punct map[string]struct{}, opts ...Option) (*RAKE, error) {
	cfg := applyOptions(opts)

	rawPhrases := tokenizer.Phrases(text, tokenizer.Options{
		StopWords:       stop,
		Punctuation:     punct,
		MaxPhraseLength: cfg.maxPhraseLength,
	})
	if len(rawPhrases) == 0 {
		return &RAKE{}, nil
	}

	phrases := make([][]string, len(rawPhrases))
	for i, p := range rawPhrases {
		lowered := make([]string, len(p))
		for j, w := range p {
			lowered[j] = strings.ToLower(w)
		}
		phrases[i] = lowered
	}

	freq := make(map[string]int)
	degree := make(map[string]int)
	for _, phrase := range phrases {
		n := len(phrase)
		for _, w := range phrase {
			freq[w]++
			degree[w] += n
		}
	}

	wordScore := make(map[string]float64, len(freq))
	for w, f := range freq {
		wordScore[w] = float64(degree[w]) / float64(f)
	}

	best := make(map[string]float64)
	for _, phrase := range phrases {
		var total float64
		for _, w := range phrase {
			total += wordScore[w]
		}
		key := strings.Join(phrase, " ")
		if cur, ok := best[key]; !ok || total > cur {
			best[key] = total
		}
	}

	ranked := make([]Scored, 0, len(best))
	for phrase, score := range best {
		ranked = append(ranked, Scored{Term: phrase, Score: float32(score)})
	}
	sortDescending(ranked)

	return &RAKE{ranked: ranked}, nil
}

// Top returns at most k phrases by descending score, lexicographic on ties.
func (r *RAKE) Top(k int) []string {
	return topKTerms(r.ranked, k)
}

// TopWithScores is Top with each phrase's score attached.
func (r *RAKE) TopWithScores(k int) []Scored {
	return topK(r.ranked, k)
}

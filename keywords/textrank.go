package keywords

import (
	"math"
	"strings"

	"github.com/az-ai-labs/keyword-extraction-go/internal/graph"
	"github.com/az-ai-labs/keyword-extraction-go/tokenizer"
)

// TextRank ranks words and phrases by running a damped power iteration
// (the PageRank random-walk formula) over an undirected co-occurrence
// graph of content words (spec §4.5).
type TextRank struct {
	wordRanked   []Scored
	phraseRanked []Scored
	vertices     int
	edges        int
}

var _ Ranker = (*TextRank)(nil)

// NewTextRank builds a TextRank ranker from raw text. stop is required;
// punct is optional. Options: WithWindow (default 2), WithDamping
// (default 0.85), WithMaxIterations (default 100), WithTolerance (default
// 1e-6), WithMaxPhraseLength, WithPhraseNormalization, WithParallel.
func NewTextRank(text string, stop, punct map[string]struct{}, opts ...Option) (*TextRank, error) {
	cfg := applyOptions(opts)
	if err := cfg.validateWindow(); err != nil {
		return nil, err
	}
	if err := cfg.validateDamping(); err != nil {
		return nil, err
	}
	if err := cfg.validateMaxIterations(); err != nil {
		return nil, err
	}
	if err := cfg.validateTolerance(); err != nil {
		return nil, err
	}

	opt := tokenizer.Options{StopWords: stop, Punctuation: punct}

	sentences := tokenizer.Sentences(text)
	master := graph.NewBuilder()
	alwaysContent := func(string) bool { return true }
	for _, sent := range sentences {
		content := tokenizer.ContentTokens(sent, opt)
		if len(content) == 0 {
			continue
		}
		// Each sentence's window graph is built independently, so word pairs
		// never span a sentence boundary, and merged sequentially.
		local := buildCoOccurrenceBuilder(content, cfg.window, alwaysContent, false)
		master.Merge(local)
	}
	g := master.Build()

	scores := powerIteration(g, cfg.damping, cfg.maxIterations, cfg.tolerance, cfg.parallel)

	wordRanked := make([]Scored, g.Len())
	for i, node := range g.Nodes {
		wordRanked[i] = Scored{Term: node, Score: float32(scores[i])}
	}
	sortDescending(wordRanked)

	phraseRanked := rankTextRankPhrases(text, opt, g, scores, cfg)

	return &TextRank{
		wordRanked:   wordRanked,
		phraseRanked: phraseRanked,
		vertices:     g.Len(),
		edges:        g.EdgeCount(),
	}, nil
}

// rankTextRankPhrases re-segments text into candidate phrases and scores
// each as the sum (or, with WithPhraseNormalization, the mean) of its
// content words' converged TextRank scores (spec §4.5 step 7).
func rankTextRankPhrases(text string, opt tokenizer.Options, g *graph.Graph, scores []float64, cfg config) []Scored {
	opt.MaxPhraseLength = cfg.maxPhraseLength
	rawPhrases := tokenizer.Phrases(text, opt)
	if len(rawPhrases) == 0 {
		return nil
	}

	best := make(map[string]float64, len(rawPhrases))
	for _, phrase := range rawPhrases {
		words := make([]string, len(phrase))
		var total float64
		for i, w := range phrase {
			lower := strings.ToLower(w)
			words[i] = lower
			if id, ok := g.Index(lower); ok {
				total += scores[id]
			}
		}
		if cfg.phraseNormalize && len(words) > 0 {
			total /= float64(len(words))
		}
		key := strings.Join(words, " ")
		if cur, ok := best[key]; !ok || total > cur {
			best[key] = total
		}
	}

	phraseRanked := make([]Scored, 0, len(best))
	for phrase, score := range best {
		phraseRanked = append(phraseRanked, Scored{Term: phrase, Score: float32(score)})
	}
	sortDescending(phraseRanked)
	return phraseRanked
}

// powerIteration runs the damped random-walk update to convergence
// (spec §4.5 steps 3-5): s'(v) = (1-d) + d * sum_u s(u)*w(u,v)/outWeight(u).
func powerIteration(g *graph.Graph, damping float64, maxIter int, tol float64, parallel bool) []float64 {
	n := g.Len()
	if n == 0 {
		return nil
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0
	}

	outWeight := make([]float64, n)
	for i := 0; i < n; i++ {
		outWeight[i] = g.OutWeight(i)
	}

	for iter := 0; iter < maxIter; iter++ {
		next := make([]float64, n)
		update := func(i int) {
			var sum float64
			for _, e := range g.Edges[i] {
				if outWeight[e.To] > 0 {
					sum += scores[e.To] * e.Weight / outWeight[e.To]
				}
			}
			next[i] = (1 - damping) + damping*sum
		}
		_ = runIndexed(n, parallel, update)

		maxDelta := 0.0
		for i := 0; i < n; i++ {
			if delta := math.Abs(next[i] - scores[i]); delta > maxDelta {
				maxDelta = delta
			}
		}
		scores = next
		if maxDelta < tol {
			break
		}
	}

	return scores
}

// Top returns at most k words by descending converged score, lexicographic
// on ties.
func (t *TextRank) Top(k int) []string {
	return topKTerms(t.wordRanked, k)
}

// TopWithScores is Top with each word's score attached.
func (t *TextRank) TopWithScores(k int) []Scored {
	return topK(t.wordRanked, k)
}

// TopPhrases returns at most k candidate phrases by descending score,
// lexicographic on ties (spec §4.5 step 7).
func (t *TextRank) TopPhrases(k int) []string {
	return topKTerms(t.phraseRanked, k)
}

// TopPhrasesWithScores is TopPhrases with each phrase's score attached.
func (t *TextRank) TopPhrasesWithScores(k int) []Scored {
	return topK(t.phraseRanked, k)
}

// Stats reports the vertex and edge counts of the underlying co-occurrence
// graph, for operational visibility (grounded on the teacher's habit of
// surfacing internal counters from cmd/smoketest).
func (t *TextRank) Stats() (vertices, edges int) {
	return t.vertices, t.edges
}

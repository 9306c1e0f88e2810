package keywords

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/keyword-extraction-go/tokenizer"
)

// TFIDF ranks terms across a corpus by term-frequency x inverse-document-
// frequency (spec §4.3). Built from one of three tagged construction
// variants (spec §9 design note): NewTFIDFFromDocuments (raw text per
// document), NewTFIDFFromTokenizedDocuments (caller has already tokenized),
// or NewTFIDFFromText (each sentence of a single text is a document).
type TFIDF struct {
	ranked []Scored
}

var _ Ranker = (*TFIDF)(nil)

// NewTFIDFFromDocuments builds a TFIDF from raw document strings. Each
// document is tokenized with stop and punct applied (spec's
// UnprocessedDocuments variant).
func NewTFIDFFromDocuments(docs []string, stop, punct map[string]struct{}, opts ...Option) (*TFIDF, error) {
	cfg := applyOptions(opts)
	tokenized := make([][]string, len(docs))
	tokenize := func(i int) {
		tokenized[i] = tokenizer.ContentTokens(docs[i], tokenizer.Options{StopWords: stop, Punctuation: punct})
	}
	if err := runIndexed(len(docs), cfg.parallel, tokenize); err != nil {
		return nil, err
	}
	return newTFIDF(tokenized, cfg)
}

// NewTFIDFFromTokenizedDocuments builds a TFIDF from documents the caller
// has already tokenized, lowercased, and stop-word filtered (spec's
// ProcessedDocuments variant).
func NewTFIDFFromTokenizedDocuments(docs [][]string, opts ...Option) (*TFIDF, error) {
	cfg := applyOptions(opts)
	return newTFIDF(docs, cfg)
}

// NewTFIDFFromText builds a TFIDF treating each sentence of text as its own
// document (spec's TextBlock variant).
func NewTFIDFFromText(text string, stop, punct map[string]struct{}, opts ...Option) (*TFIDF, error) {
	cfg := applyOptions(opts)
	sentences := tokenizer.Sentences(text)
	tokenized := make([][]string, len(sentences))
	tokenize := func(i int) {
		tokenized[i] = tokenizer.ContentTokens(sentences[i], tokenizer.Options{StopWords: stop, Punctuation: punct})
	}
	if err := runIndexed(len(sentences), cfg.parallel, tokenize); err != nil {
		return nil, err
	}
	return newTFIDF(tokenized, cfg)
}

// runIndexed calls fn(i) for every i in [0, n), either sequentially or
// fanned out across an errgroup when parallel is true. Each call writes
// only to index i of its caller's pre-sized slice, so the result is
// identical and deterministic regardless of path.
func runIndexed(n int, parallel bool, fn func(i int)) error {
	if !parallel || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return nil
	}
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	return g.Wait()
}

func newTFIDF(docs [][]string, cfg config) (*TFIDF, error) {
	numDocs := len(docs)
	if numDocs == 0 {
		return &TFIDF{}, nil
	}

	docFreq := make(map[string]int)
	sumTF := make(map[string]float64)

	for _, doc := range docs {
		if len(doc) == 0 {
			continue
		}
		counts := make(map[string]int, len(doc))
		for _, term := range doc {
			counts[term]++
		}
		invLen := 1.0 / float64(len(doc))
		for term, count := range counts {
			docFreq[term]++
			sumTF[term] += float64(count) * invLen
		}
	}

	d := float64(numDocs)
	ranked := make([]Scored, 0, len(sumTF))
	for term, sum := range sumTF {
		idf := math.Log((d+1)/(float64(docFreq[term])+1)) + 1
		score := (sum / d) * idf
		ranked = append(ranked, Scored{Term: term, Score: float32(score)})
	}
	sortDescending(ranked)

	return &TFIDF{ranked: ranked}, nil
}

// Top returns at most k terms by descending score, lexicographic on ties.
func (t *TFIDF) Top(k int) []string {
	return topKTerms(t.ranked, k)
}

// TopWithScores is Top with each term's score attached.
func (t *TFIDF) TopWithScores(k int) []Scored {
	return topK(t.ranked, k)
}

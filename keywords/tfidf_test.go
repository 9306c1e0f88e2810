package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDFScenarioS1(t *testing.T) {
	docs := []string{"the cat sat", "the dog ran", "the cat ran"}
	stop := set("the")

	tfidf, err := NewTFIDFFromDocuments(docs, stop, nil)
	require.NoError(t, err)

	scores := scoreIndex(tfidf.TopWithScores(10))
	assert.InDelta(t, scores["cat"], scores["ran"], 1e-6)
	assert.InDelta(t, scores["sat"], scores["dog"], 1e-6)
	assert.Greater(t, scores["cat"], scores["sat"])
}

func TestTFIDFEmptyCorpusYieldsEmptyResult(t *testing.T) {
	tfidf, err := NewTFIDFFromDocuments(nil, set("the"), nil)
	require.NoError(t, err)
	assert.Empty(t, tfidf.Top(10))
	assert.Empty(t, tfidf.TopWithScores(10))
}

func TestTFIDFFromTokenizedDocuments(t *testing.T) {
	docs := [][]string{{"cat", "sat"}, {"dog", "ran"}, {"cat", "ran"}}
	tfidf, err := NewTFIDFFromTokenizedDocuments(docs)
	require.NoError(t, err)
	assert.NotEmpty(t, tfidf.Top(10))
}

func TestTFIDFFromTextTreatsEachSentenceAsDocument(t *testing.T) {
	text := "The cat sat. The dog ran. The cat ran."
	tfidf, err := NewTFIDFFromText(text, set("the"), set("."))
	require.NoError(t, err)

	scores := scoreIndex(tfidf.TopWithScores(10))
	assert.InDelta(t, scores["cat"], scores["ran"], 1e-6)
}

func TestTFIDFParallelMatchesSequential(t *testing.T) {
	docs := []string{
		"the quick brown fox",
		"the lazy dog sleeps",
		"the fox jumps over the dog",
		"quick foxes are clever",
	}
	stop := set("the", "over", "are")

	seq, err := NewTFIDFFromDocuments(docs, stop, nil)
	require.NoError(t, err)
	par, err := NewTFIDFFromDocuments(docs, stop, nil, WithParallel(true))
	require.NoError(t, err)

	assert.Equal(t, seq.TopWithScores(20), par.TopWithScores(20))
}

func TestTFIDFTopNoDuplicatesAndBounded(t *testing.T) {
	docs := []string{"alpha beta gamma", "beta gamma delta"}
	tfidf, err := NewTFIDFFromDocuments(docs, nil, nil)
	require.NoError(t, err)

	top := tfidf.Top(2)
	require.Len(t, top, 2)
	assert.NotEqual(t, top[0], top[1])
}

func TestTFIDFKOverflowReturnsAllCandidates(t *testing.T) {
	docs := []string{"alpha beta"}
	tfidf, err := NewTFIDFFromDocuments(docs, nil, nil)
	require.NoError(t, err)
	assert.Len(t, tfidf.Top(100), 2)
}

func scoreIndex(scored []Scored) map[string]float32 {
	idx := make(map[string]float32, len(scored))
	for _, s := range scored {
		idx[s.Term] = s.Score
	}
	return idx
}

func set(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

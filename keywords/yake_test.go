package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAKEScenarioS4Direction(t *testing.T) {
	text := "MACHINE learning is great. Machine learning builds models. learning is useful."
	stop := set("is", "great", "useful")

	yake, err := NewYAKE(text, stop, nil)
	require.NoError(t, err)

	scores := scoreIndex(yake.TopWithScores(100))
	require.Contains(t, scores, "machine learning")
	require.Contains(t, scores, "models")
	assert.Less(t, scores["machine learning"], scores["models"])
}

func TestYAKEScoresAreStrictlyPositive(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog. the dog barks back."
	stop := set("the", "over")

	yake, err := NewYAKE(text, stop, nil)
	require.NoError(t, err)

	for _, s := range yake.TopWithScores(100) {
		assert.Positive(t, s.Score, "term %q", s.Term)
	}
}

func TestYAKEInvalidConfig(t *testing.T) {
	_, err := NewYAKE("text", nil, nil, WithNGramSize(0))
	assert.ErrorIs(t, err, ErrInvalidNGram)

	_, err = NewYAKE("text", nil, nil, WithWindow(1))
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewYAKE("text", nil, nil, WithDedupThreshold(2))
	assert.ErrorIs(t, err, ErrInvalidThreshold)
}

func TestYAKEEmptyTextYieldsEmptyResult(t *testing.T) {
	yake, err := NewYAKE("", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, yake.Top(10))
}

func TestYAKEDeduplicationRemovesSimilarCandidates(t *testing.T) {
	text := "keyword extraction. keyword extractor. keyword extracting."
	yake, err := NewYAKE(text, nil, nil, WithDedupThreshold(0.5))
	require.NoError(t, err)

	top := yake.Top(100)
	count := 0
	for _, term := range top {
		if term == "keyword extraction" || term == "keyword extractor" || term == "keyword extracting" {
			count++
		}
	}
	assert.LessOrEqual(t, count, 1)
}

func TestYAKETopNoDuplicates(t *testing.T) {
	text := "alpha beta gamma alpha beta delta epsilon zeta"
	yake, err := NewYAKE(text, nil, nil)
	require.NoError(t, err)

	top := yake.Top(100)
	seen := make(map[string]struct{}, len(top))
	for _, term := range top {
		_, dup := seen[term]
		assert.False(t, dup, "duplicate term %q", term)
		seen[term] = struct{}{}
	}
}

func TestYAKEParallelMatchesSequential(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog near the river. the fox returns at dawn."
	stop := set("the", "over", "at")

	seq, err := NewYAKE(text, stop, nil)
	require.NoError(t, err)
	par, err := NewYAKE(text, stop, nil, WithParallel(true))
	require.NoError(t, err)

	assert.Equal(t, seq.TopWithScores(100), par.TopWithScores(100))
}

func TestYAKENGramSizeLimitsCandidateLength(t *testing.T) {
	text := "alpha beta gamma delta"
	yake, err := NewYAKE(text, nil, nil, WithNGramSize(1))
	require.NoError(t, err)

	for _, term := range yake.Top(100) {
		assert.NotContains(t, term, " ")
	}
}

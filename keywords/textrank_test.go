package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTextRankScenarioS3Convergence pins spec §8 scenario S3 using a
// window of 3 over this period-3 input: every 3-token window covers one
// of each letter exactly once, so all three pairs (a,b), (b,c), (a,c)
// accumulate the same weight and the power iteration converges to a
// perfectly symmetric triangle (DESIGN.md's "S3/S5 windowing" entry).
func TestTextRankScenarioS3Convergence(t *testing.T) {
	text := "a b c a b c a b c"
	tr, err := NewTextRank(text, nil, nil, WithWindow(3))
	require.NoError(t, err)

	scores := scoreIndex(tr.TopWithScores(10))
	require.Len(t, scores, 3)
	a, b, c := float64(scores["a"]), float64(scores["b"]), float64(scores["c"])
	assert.InDelta(t, a, b, 1e-5)
	assert.InDelta(t, b, c, 1e-5)
}

func TestTextRankScoresSumApproximatelyVertexCount(t *testing.T) {
	text := "alpha beta gamma delta alpha gamma beta delta alpha"
	tr, err := NewTextRank(text, nil, nil)
	require.NoError(t, err)

	var sum float64
	scored := tr.TopWithScores(100)
	for _, s := range scored {
		sum += float64(s.Score)
	}
	assert.InDelta(t, float64(len(scored)), sum, 0.5)
}

func TestTextRankInvalidConfig(t *testing.T) {
	_, err := NewTextRank("a b c", nil, nil, WithWindow(1))
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewTextRank("a b c", nil, nil, WithDamping(1.5))
	assert.ErrorIs(t, err, ErrInvalidDamping)

	_, err = NewTextRank("a b c", nil, nil, WithMaxIterations(0))
	assert.ErrorIs(t, err, ErrInvalidMaxIter)

	_, err = NewTextRank("a b c", nil, nil, WithTolerance(0))
	assert.ErrorIs(t, err, ErrInvalidTolerance)
}

func TestTextRankIsolatedVertexKeepsTeleportScore(t *testing.T) {
	text := "alone. paired words here."
	tr, err := NewTextRank(text, nil, nil, WithDamping(0.85))
	require.NoError(t, err)

	scores := scoreIndex(tr.TopWithScores(10))
	require.Contains(t, scores, "alone")
	assert.InDelta(t, 0.15, scores["alone"], 1e-6)
}

func TestTextRankPhraseRankingRespectsStopWordBoundaries(t *testing.T) {
	text := "machine learning is powerful. machine learning is useful."
	stop := set("is")
	tr, err := NewTextRank(text, stop, nil)
	require.NoError(t, err)

	phrases := tr.TopPhrases(10)
	assert.Contains(t, phrases, "machine learning")
}

func TestTextRankPhraseNormalizationOption(t *testing.T) {
	text := "short phrase here and a much longer phrase here too"
	tr1, err := NewTextRank(text, nil, nil, WithPhraseNormalization(false))
	require.NoError(t, err)
	tr2, err := NewTextRank(text, nil, nil, WithPhraseNormalization(true))
	require.NoError(t, err)

	assert.NotEqual(t, tr1.TopPhrasesWithScores(10), tr2.TopPhrasesWithScores(10))
}

func TestTextRankParallelMatchesSequential(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog near the quiet river bank"
	seq, err := NewTextRank(text, nil, nil)
	require.NoError(t, err)
	par, err := NewTextRank(text, nil, nil, WithParallel(true))
	require.NoError(t, err)

	seqScores := seq.TopWithScores(100)
	parScores := par.TopWithScores(100)
	require.Len(t, parScores, len(seqScores))
	for i := range seqScores {
		assert.Equal(t, seqScores[i].Term, parScores[i].Term)
		assert.InDelta(t, seqScores[i].Score, parScores[i].Score, 1e-4)
	}
}

func TestTextRankEmptyText(t *testing.T) {
	tr, err := NewTextRank("", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, tr.Top(10))
	assert.Empty(t, tr.TopPhrases(10))
}

func TestTextRankStats(t *testing.T) {
	tr, err := NewTextRank("alpha beta gamma alpha", nil, nil)
	require.NoError(t, err)
	vertices, edges := tr.Stats()
	assert.Equal(t, 3, vertices)
	assert.Positive(t, edges)
}

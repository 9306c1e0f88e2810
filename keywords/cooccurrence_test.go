package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoOccurrenceScenarioS5(t *testing.T) {
	tokens := []string{"a", "b", "c", "d"}

	co2, err := NewCoOccurrence(tokens, 2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, co2.Weight("a", "b"))
	assert.Equal(t, 1.0, co2.Weight("b", "c"))
	assert.Equal(t, 1.0, co2.Weight("c", "d"))
	assert.Equal(t, 0.0, co2.Weight("a", "c"))
	assert.Equal(t, 0.0, co2.Weight("b", "d"))

	co3, err := NewCoOccurrence(tokens, 3, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, co3.Weight("a", "c"))
	assert.Equal(t, 1.0, co3.Weight("b", "d"))
}

func TestCoOccurrenceIsSymmetric(t *testing.T) {
	tokens := []string{"x", "y", "z", "x", "y"}
	co, err := NewCoOccurrence(tokens, 2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, co.Weight("x", "y"), co.Weight("y", "x"))
}

func TestCoOccurrenceInvalidWindow(t *testing.T) {
	_, err := NewCoOccurrence([]string{"a", "b"}, 1, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestCoOccurrenceSkipsStopWordsWithoutBreakingWindow(t *testing.T) {
	// "the" sits inside the window but should not count as a pairing
	// partner, nor should it prevent "cat" and "sat" from pairing.
	tokens := []string{"cat", "the", "sat"}
	stop := set("the")

	co, err := NewCoOccurrence(tokens, 3, stop, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, co.Weight("cat", "sat"))
	assert.Equal(t, 0.0, co.Weight("cat", "the"))
}

func TestCoOccurrenceShorterThanWindowHasNoEdges(t *testing.T) {
	co, err := NewCoOccurrence([]string{"a"}, 2, nil, nil)
	require.NoError(t, err)
	vertices, edges := co.Stats()
	assert.Equal(t, 1, vertices)
	assert.Equal(t, 0, edges)
}

func TestCoOccurrenceParallelMatchesSequential(t *testing.T) {
	tokens := []string{
		"alpha", "beta", "gamma", "delta", "epsilon", "alpha", "gamma",
		"beta", "delta", "epsilon", "alpha", "beta", "gamma",
	}
	seq, err := NewCoOccurrence(tokens, 3, nil, nil)
	require.NoError(t, err)
	par, err := NewCoOccurrence(tokens, 3, nil, nil, WithParallel(true))
	require.NoError(t, err)

	for _, a := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		for _, b := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
			assert.Equal(t, seq.Weight(a, b), par.Weight(a, b), "pair %s-%s", a, b)
		}
	}
}

func TestCoOccurrenceUnknownTokenWeightIsZero(t *testing.T) {
	co, err := NewCoOccurrence([]string{"a", "b"}, 2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, co.Weight("a", "nonexistent"))
	assert.Equal(t, 0.0, co.Weight("nonexistent", "other"))
}

package keywords

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/keyword-extraction-go/internal/graph"
)

// CoOccurrence is a symmetric weighted word-adjacency built from sliding
// windows over a token sequence (spec §4.2). It is the shared building
// block TextRank uses internally, and is also exposed standalone since
// other rankers over the same graph are a common downstream need.
type CoOccurrence struct {
	graph  *graph.Graph
	window int
}

// NewCoOccurrence builds a CoOccurrence graph from tokens using a sliding
// window of the given size (must be >= 2). stop and punct are optional; if
// either is non-nil, positions whose lowercased text is in either set are
// skipped when pairing (they do not break the window, they just never
// contribute an edge). Pass nil, nil to treat every token as content
// (the caller has already filtered, as TextRank does per sentence).
//
// WithParallel is the only option this constructor consumes: it partitions
// the token sequence into contiguous window-start ranges and accumulates
// each range's adjacency independently before merging (spec §4.2's
// "overlapping chunks... accumulate per-chunk maps, merge by summation").
func NewCoOccurrence(tokens []string, window int, stop, punct map[string]struct{}, opts ...Option) (*CoOccurrence, error) {
	cfg := applyOptions(opts)
	cfg.window = window
	if err := cfg.validateWindow(); err != nil {
		return nil, err
	}

	content := func(string) bool { return true }
	if stop != nil || punct != nil {
		content = func(tok string) bool {
			lower := strings.ToLower(tok)
			if _, ok := stop[lower]; ok {
				return false
			}
			if _, ok := punct[lower]; ok {
				return false
			}
			return true
		}
	}

	g := buildCoOccurrenceGraph(tokens, cfg.window, content, cfg.parallel)
	return &CoOccurrence{graph: g, window: cfg.window}, nil
}

// Weight returns the co-occurrence weight between u and v, 0 if either is
// absent from the graph or no window ever paired them.
func (c *CoOccurrence) Weight(u, v string) float64 {
	ui, ok := c.graph.Index(u)
	if !ok {
		return 0
	}
	vi, ok := c.graph.Index(v)
	if !ok {
		return 0
	}
	return c.graph.Weight(ui, vi)
}

// Stats reports the vertex and edge counts of the built graph, for
// operational visibility (grounded on the teacher's habit of surfacing
// internal counters from cmd/smoketest).
func (c *CoOccurrence) Stats() (vertices, edges int) {
	return c.graph.Len(), c.graph.EdgeCount()
}

// buildCoOccurrenceGraph slides a window of the given size across tokens,
// pairing every two content positions inside each window. Each window
// start index is processed by exactly one goroutine when parallel is
// enabled, so the merge is a deterministic, order-independent summation.
func buildCoOccurrenceGraph(tokens []string, window int, content func(string) bool, parallel bool) *graph.Graph {
	return buildCoOccurrenceBuilder(tokens, window, content, parallel).Build()
}

// buildCoOccurrenceBuilder is buildCoOccurrenceGraph without the final
// freeze, so callers that need to merge several window graphs together
// (TextRank, one per sentence) can do so before building.
func buildCoOccurrenceBuilder(tokens []string, window int, content func(string) bool, parallel bool) *graph.Builder {
	n := len(tokens)
	maxStart := n - window
	if maxStart < 0 {
		b := graph.NewBuilder()
		for _, tok := range tokens {
			if content(tok) {
				b.ID(tok)
			}
		}
		return b
	}
	numStarts := maxStart + 1

	if !parallel || numStarts < 2 {
		return buildRange(tokens, window, content, 0, numStarts)
	}

	workers := min(runtime.GOMAXPROCS(0), numStarts)
	if workers < 1 {
		workers = 1
	}
	builders := make([]*graph.Builder, workers)
	chunk := (numStarts + workers - 1) / workers

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		w := w
		from := w * chunk
		to := min(from+chunk, numStarts)
		if from >= to {
			builders[w] = graph.NewBuilder()
			continue
		}
		g.Go(func() error {
			builders[w] = buildRange(tokens, window, content, from, to)
			return nil
		})
	}
	_ = g.Wait()

	merged := graph.NewBuilder()
	for _, b := range builders {
		merged.Merge(b)
	}
	return merged
}

// buildRange accumulates co-occurrence weights for window start indices in
// [startFrom, startTo).
func buildRange(tokens []string, window int, content func(string) bool, startFrom, startTo int) *graph.Builder {
	b := graph.NewBuilder()
	for i := startFrom; i < startTo; i++ {
		win := tokens[i : i+window]
		for a := range win {
			if !content(win[a]) {
				continue
			}
			for c := a + 1; c < len(win); c++ {
				if !content(win[c]) {
					continue
				}
				b.Add(win[a], win[c], 1)
			}
		}
	}
	return b
}

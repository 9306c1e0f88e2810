// Package graph implements the dense-integer-id weighted adjacency
// representation shared by Co-occurrence and TextRank. A Builder maps each
// string token to a dense int id on every Add; a built Graph is addressed
// by id only, so the TextRank power-iteration inner loop never hashes a
// string.
package graph

import "sort"

// Edge is a weighted neighbor of some vertex, identified by dense id.
type Edge struct {
	To     int
	Weight float64
}

// Graph is an undirected weighted graph over dense integer vertex ids.
// It is immutable once built; construct one with a Builder.
type Graph struct {
	Nodes []string // Nodes[i] is the token for vertex id i
	Edges [][]Edge // Edges[i] is vertex i's neighbor list, sorted by To ascending

	index map[string]int
}

// Len returns the number of vertices in the graph.
func (g *Graph) Len() int {
	return len(g.Nodes)
}

// Index returns the dense id for token and whether it exists in the graph.
func (g *Graph) Index(token string) (int, bool) {
	i, ok := g.index[token]
	return i, ok
}

// Weight returns the edge weight between vertices u and v, or 0 if there is
// no edge between them.
func (g *Graph) Weight(u, v int) float64 {
	for _, e := range g.Edges[u] {
		if e.To == v {
			return e.Weight
		}
		if e.To > v {
			break
		}
	}
	return 0
}

// OutWeight returns the sum of edge weights incident to vertex v, i.e. its
// weighted degree.
func (g *Graph) OutWeight(v int) float64 {
	var sum float64
	for _, e := range g.Edges[v] {
		sum += e.Weight
	}
	return sum
}

// EdgeCount returns the number of undirected edges in the graph.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, es := range g.Edges {
		total += len(es)
	}
	return total / 2
}

// Builder accumulates edge weights for later freezing into a Graph. The
// zero value is not usable; construct one with NewBuilder.
type Builder struct {
	index map[string]int
	nodes []string
	acc   []map[int]float64
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// ID returns the dense id for token, allocating a new vertex the first time
// token is seen. Exposed so callers can pre-register an isolated vertex
// (a content token with no co-occurring neighbor still needs a node).
func (b *Builder) ID(token string) int {
	if i, ok := b.index[token]; ok {
		return i
	}
	i := len(b.nodes)
	b.index[token] = i
	b.nodes = append(b.nodes, token)
	b.acc = append(b.acc, make(map[int]float64))
	return i
}

// Add increments the weight of the undirected edge {u, v} by delta.
// Self-loops (u == v) register the vertex but add no edge, matching the
// co-occurrence contract that self-loops are never recorded.
func (b *Builder) Add(u, v string, delta float64) {
	ui, vi := b.ID(u), b.ID(v)
	if ui == vi {
		return
	}
	b.acc[ui][vi] += delta
	b.acc[vi][ui] += delta
}

// Merge folds other's accumulated weights into b. Used to combine the
// per-chunk partial graphs produced by a parallel window-enumeration pass,
// or the per-sentence partial graphs TextRank builds independently.
func (b *Builder) Merge(other *Builder) {
	for _, token := range other.nodes {
		b.ID(token) // register isolated vertices even when they gain no edge below
	}
	for i, token := range other.nodes {
		for to, w := range other.acc[i] {
			if to < i {
				continue // the pair {i, to} is handled once, from its lower index
			}
			b.Add(token, other.nodes[to], w)
		}
	}
}

// Build freezes the accumulated weights into a Graph with deterministic,
// sorted adjacency lists.
func (b *Builder) Build() *Graph {
	edges := make([][]Edge, len(b.nodes))
	for i, m := range b.acc {
		list := make([]Edge, 0, len(m))
		for to, w := range m {
			list = append(list, Edge{To: to, Weight: w})
		}
		sort.Slice(list, func(a, c int) bool { return list[a].To < list[c].To })
		edges[i] = list
	}
	index := make(map[string]int, len(b.nodes))
	for k, v := range b.index {
		index[k] = v
	}
	return &Graph{Nodes: b.nodes, Edges: edges, index: index}
}

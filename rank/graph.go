// Package rank scores the nodes of a weighted undirected graph by the
// stationary distribution of a damped random walk (PageRank).
//
// The same ranker serves sentence graphs, where edges carry similarity
// weights, and keyword graphs, where edges are unweighted co-occurrences.
//
// Node order is the order of first insertion and is the tie-breaker for
// equal scores, so identical input always yields identical output.
// A Graph is not safe for concurrent use.
package rank

import (
	"math"
	"slices"
)

// edge is a neighbor index + weight pair used for deterministic iteration.
type edge struct {
	to     int
	weight float64
}

// Graph is a weighted undirected graph without self-loops.
type Graph[K comparable] struct {
	keys  []K
	index map[K]int
	adj   []map[int]float64
}

// New returns an empty graph.
func New[K comparable]() *Graph[K] {
	return &Graph[K]{index: make(map[K]int)}
}

// AddNode adds key if absent and returns its index.
func (g *Graph[K]) AddNode(key K) int {
	if i, ok := g.index[key]; ok {
		return i
	}
	i := len(g.keys)
	g.index[key] = i
	g.keys = append(g.keys, key)
	g.adj = append(g.adj, make(map[int]float64))
	return i
}

// AddEdge sets the weight of the undirected edge a-b, adding missing nodes.
// Setting an existing edge overwrites its weight. Self-loops and weights
// that are not positive and finite add the nodes but no edge.
func (g *Graph[K]) AddEdge(a, b K, weight float64) {
	ia, ib := g.AddNode(a), g.AddNode(b)
	if ia == ib || !(weight > 0) || math.IsInf(weight, 1) {
		return
	}
	g.adj[ia][ib] = weight
	g.adj[ib][ia] = weight
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int { return len(g.keys) }

// EdgeCount returns the number of undirected edges.
func (g *Graph[K]) EdgeCount() int {
	n := 0
	for _, m := range g.adj {
		n += len(m)
	}
	return n / 2
}

// Keys returns the node keys in insertion order.
func (g *Graph[K]) Keys() []K { return slices.Clone(g.keys) }

// Weight returns the weight of edge a-b, or 0 when there is none.
func (g *Graph[K]) Weight(a, b K) float64 {
	ia, ok := g.index[a]
	if !ok {
		return 0
	}
	ib, ok := g.index[b]
	if !ok {
		return 0
	}
	return g.adj[ia][ib]
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph[K]) HasEdge(a, b K) bool { return g.Weight(a, b) > 0 }

// edges converts the adjacency maps to neighbor slices sorted by index.
func (g *Graph[K]) edges() [][]edge {
	out := make([][]edge, len(g.adj))
	for i, m := range g.adj {
		out[i] = make([]edge, 0, len(m))
		for to, w := range m {
			out[i] = append(out[i], edge{to: to, weight: w})
		}
		slices.SortFunc(out[i], func(a, b edge) int {
			return a.to - b.to
		})
	}
	return out
}

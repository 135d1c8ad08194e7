package rank

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Scores maps each node of a ranked graph to its score.
// Scores from different graphs are not comparable.
type Scores[K comparable] struct {
	keys       []K
	values     []float64
	index      map[K]int
	iterations int
}

// Node is one ranked node.
type Node[K comparable] struct {
	Key   K
	Score float64
	Index int // insertion order in the graph
}

func newScores[K comparable](keys []K, values []float64, iterations int) Scores[K] {
	index := make(map[K]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}
	return Scores[K]{keys: keys, values: values, index: index, iterations: iterations}
}

// Len returns the number of scored nodes.
func (s Scores[K]) Len() int { return len(s.keys) }

// Of returns the score of key.
func (s Scores[K]) Of(key K) (float64, bool) {
	i, ok := s.index[key]
	if !ok {
		return 0, false
	}
	return s.values[i], true
}

// At returns the score of the node inserted i-th.
func (s Scores[K]) At(i int) float64 { return s.values[i] }

// Sum returns the total of all scores: 1 for any non-empty graph, up to
// floating point error.
func (s Scores[K]) Sum() float64 { return floats.Sum(s.values) }

// Iterations returns the number of power iterations run.
func (s Scores[K]) Iterations() int { return s.iterations }

// Ranked returns all nodes sorted by score descending. Equal scores keep
// insertion order.
func (s Scores[K]) Ranked() []Node[K] {
	nodes := make([]Node[K], len(s.keys))
	for i, k := range s.keys {
		nodes[i] = Node[K]{Key: k, Score: s.values[i], Index: i}
	}
	slices.SortStableFunc(nodes, func(a, b Node[K]) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return nodes
}

package rank

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Default PageRank parameters.
const (
	DefaultDamping   = 0.85
	DefaultMaxIter   = 100
	DefaultTolerance = 1e-6
)

// ErrNotConverged is returned with best-effort scores when the iteration
// limit is reached before the tolerance is met.
var ErrNotConverged = errors.New("pagerank did not converge")

// Options configures Rank. Zero fields take the defaults.
type Options struct {
	Damping   float64 // probability of following an edge, in (0, 1)
	MaxIter   int     // iteration cap
	Tolerance float64 // per-node L1 change threshold
}

func (o Options) withDefaults() Options {
	if o.Damping <= 0 || o.Damping >= 1 {
		o.Damping = DefaultDamping
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	return o
}

// Rank runs PageRank over g. Transition probabilities are edge weights
// normalized by each node's total weight. The mass of nodes without edges
// is spread uniformly, so an edge-less graph ranks uniformly and scores
// always sum to 1. Iteration stops once the total L1 change drops below
// Len()*Tolerance.
//
// When MaxIter is reached first, Rank returns the last scores, normalized,
// together with an error wrapping ErrNotConverged.
func (g *Graph[K]) Rank(opts Options) (Scores[K], error) {
	opts = opts.withDefaults()
	n := g.Len()
	if n == 0 {
		return Scores[K]{}, nil
	}

	keys := g.Keys()
	if n == 1 {
		return newScores(keys, []float64{1}, 0), nil
	}

	edges := g.edges()
	outWeight := make([]float64, n)
	for i, neighbors := range edges {
		for _, e := range neighbors {
			outWeight[i] += e.weight
		}
	}

	nf := float64(n)
	d := opts.Damping
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1 / nf
	}
	next := make([]float64, n)

	for iter := 1; iter <= opts.MaxIter; iter++ {
		dangling := 0.0
		for i, w := range outWeight {
			if w == 0 {
				dangling += scores[i]
			}
		}
		base := (1-d)/nf + d*dangling/nf

		for i := range n {
			sum := 0.0
			for _, e := range edges[i] {
				sum += (e.weight / outWeight[e.to]) * scores[e.to]
			}
			next[i] = base + d*sum
		}

		delta := floats.Distance(next, scores, 1)
		scores, next = next, scores
		if delta < nf*opts.Tolerance {
			return newScores(keys, normalized(scores), iter), nil
		}
	}

	return newScores(keys, normalized(scores), opts.MaxIter),
		errors.Wrapf(ErrNotConverged, "%d nodes after %d iterations", n, opts.MaxIter)
}

// normalized scales v in place to sum to 1. A vector with a zero or
// non-finite sum is replaced by the uniform distribution.
func normalized(v []float64) []float64 {
	sum := floats.Sum(v)
	if sum <= 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		for i := range v {
			v[i] = 1 / float64(len(v))
		}
		return v
	}
	floats.Scale(1/sum, v)
	return v
}

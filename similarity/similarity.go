// Package similarity computes pairwise sentence-similarity weights over
// token sequences.
//
// Every Scorer returns a symmetric, non-negative square matrix with one row
// per input sequence. Diagonal entries hold self-similarity and are ignored
// by graph construction.
package similarity

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Scorer kinds accepted by ByName.
const (
	KindBM25    = "bm25"
	KindJaccard = "jaccard"
)

// ErrUnknownScorer is returned by ByName for an unrecognized kind.
var ErrUnknownScorer = errors.New("unknown similarity scorer")

// Scorer computes pairwise similarity weights. It returns nil for no input.
type Scorer interface {
	Weights(docs [][]string) *mat.SymDense
}

// ByName returns the scorer registered under kind. The empty kind selects
// BM25.
func ByName(kind string) (Scorer, error) {
	switch kind {
	case "", KindBM25:
		return NewBM25(), nil
	case KindJaccard:
		return Jaccard{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownScorer, "%q", kind)
	}
}

// symmetrize averages a square row-major matrix with its transpose and
// clamps negative values to zero.
func symmetrize(n int, raw []float64) *mat.SymDense {
	sym := mat.NewSymDense(n, nil)
	for i := range n {
		for j := i; j < n; j++ {
			v := (raw[i*n+j] + raw[j*n+i]) / 2
			if v < 0 {
				v = 0
			}
			sym.SetSym(i, j, v)
		}
	}
	return sym
}

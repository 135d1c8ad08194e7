package similarity

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Okapi BM25 parameters.
const (
	defaultK1      = 1.5
	defaultB       = 0.75
	defaultEpsilon = 0.25 // floor for negative IDF, as a fraction of the mean IDF
)

// BM25 weighs sentence pairs by Okapi BM25, scoring each sentence as a
// query against every other and averaging the two directions.
type BM25 struct {
	K1      float64
	B       float64
	Epsilon float64
}

// NewBM25 returns a BM25 scorer with the standard parameters.
func NewBM25() BM25 {
	return BM25{K1: defaultK1, B: defaultB, Epsilon: defaultEpsilon}
}

// bm25Index holds the per-corpus statistics.
type bm25Index struct {
	freqs  []map[string]float64
	lens   []float64
	avgLen float64
	idf    map[string]float64
}

func newBM25Index(docs [][]string, epsilon float64) bm25Index {
	idx := bm25Index{
		freqs: make([]map[string]float64, len(docs)),
		lens:  make([]float64, len(docs)),
		idf:   make(map[string]float64),
	}

	// Terms are visited in first-appearance order so the IDF floor is
	// summed the same way on every call.
	var vocab []string
	df := make(map[string]int)
	total := 0.0
	for i, doc := range docs {
		f := make(map[string]float64, len(doc))
		for _, w := range doc {
			if f[w] == 0 {
				if df[w] == 0 {
					vocab = append(vocab, w)
				}
				df[w]++
			}
			f[w]++
		}
		idx.freqs[i] = f
		idx.lens[i] = float64(len(doc))
		total += float64(len(doc))
	}
	idx.avgLen = total / float64(len(docs))

	n := float64(len(docs))
	sum := 0.0
	var negative []string
	for _, w := range vocab {
		c := df[w]
		v := math.Log(n-float64(c)+0.5) - math.Log(float64(c)+0.5)
		idx.idf[w] = v
		sum += v
		if v < 0 {
			negative = append(negative, w)
		}
	}
	if len(vocab) > 0 {
		floor := epsilon * sum / float64(len(vocab))
		for _, w := range negative {
			idx.idf[w] = floor
		}
	}
	return idx
}

// score returns the BM25 score of query against document j.
func (b BM25) score(idx bm25Index, query []string, j int) float64 {
	norm := b.K1 * (1 - b.B + b.B*idx.lens[j]/idx.avgLen)
	s := 0.0
	for _, w := range query {
		f, ok := idx.freqs[j][w]
		if !ok {
			continue
		}
		s += idx.idf[w] * f * (b.K1 + 1) / (f + norm)
	}
	return s
}

// Weights implements Scorer.
func (b BM25) Weights(docs [][]string) *mat.SymDense {
	n := len(docs)
	if n == 0 {
		return nil
	}

	idx := newBM25Index(docs, b.Epsilon)
	raw := make([]float64, n*n)
	if idx.avgLen > 0 {
		for i, q := range docs {
			for j := range n {
				raw[i*n+j] = b.score(idx, q, j)
			}
		}
	}
	return symmetrize(n, raw)
}

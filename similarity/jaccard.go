package similarity

import "gonum.org/v1/gonum/mat"

// Jaccard weighs sentence pairs by the Jaccard index of their token sets.
type Jaccard struct{}

// Weights implements Scorer.
func (Jaccard) Weights(docs [][]string) *mat.SymDense {
	n := len(docs)
	if n == 0 {
		return nil
	}

	sets := make([]map[string]struct{}, n)
	for i, doc := range docs {
		sets[i] = make(map[string]struct{}, len(doc))
		for _, w := range doc {
			sets[i][w] = struct{}{}
		}
	}

	sym := mat.NewSymDense(n, nil)
	for i := range n {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, jaccard(sets[i], sets[j]))
		}
	}
	return sym
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if _, ok := b[w]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

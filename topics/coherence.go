package topics

import "math"

// coherenceEpsilon keeps the log finite for pairs that never co-occur.
const coherenceEpsilon = 1e-12

// umass returns the UMass coherence of a topic's top word ids, best first,
// over the documents' id sets. Each word is scored against every
// higher-ranked word w* by log((D(w, w*) + eps) / D(w*)), where D counts
// documents, and the scores are averaged. Fewer than two words score 0.
func umass(top []int, docs []map[int]struct{}) float64 {
	if len(top) < 2 {
		return 0
	}

	single := make(map[int]int, len(top))
	for _, doc := range docs {
		for _, id := range top {
			if _, ok := doc[id]; ok {
				single[id]++
			}
		}
	}

	sum := 0.0
	pairs := 0
	for m := 1; m < len(top); m++ {
		for l := range m {
			star := single[top[l]]
			if star == 0 {
				continue
			}
			both := 0
			for _, doc := range docs {
				_, a := doc[top[m]]
				_, b := doc[top[l]]
				if a && b {
					both++
				}
			}
			sum += math.Log((float64(both) + coherenceEpsilon) / float64(star))
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return sum / float64(pairs)
}

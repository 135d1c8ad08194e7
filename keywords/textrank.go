package keywords

import "github.com/az-ai-labs/textdigest/rank"

// ngrams returns every run of size consecutive tokens. It returns nil when
// there are fewer than size tokens.
func ngrams(tokens []string, size int) [][]string {
	if len(tokens) < size {
		return nil
	}
	out := make([][]string, 0, len(tokens)-size+1)
	for i := 0; i+size <= len(tokens); i++ {
		out = append(out, tokens[i:i+size])
	}
	return out
}

// pairs returns the unique ordered pairs (x, y) of gram with x > y.
// Repeated tokens never pair with themselves.
func pairs(gram []string) [][2]string {
	var out [][2]string
	seen := make(map[[2]string]struct{})
	for _, x := range gram {
		for _, y := range gram {
			if x <= y {
				continue
			}
			p := [2]string{x, y}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}

// buildGraph adds every distinct token as a node in first-appearance order,
// then links the pairs of each window with weight 1.
func buildGraph(tokens []string, window int) *rank.Graph[string] {
	g := rank.New[string]()
	for _, tok := range tokens {
		g.AddNode(tok)
	}
	for _, gram := range ngrams(tokens, window) {
		for _, p := range pairs(gram) {
			g.AddEdge(p[0], p[1], 1)
		}
	}
	return g
}

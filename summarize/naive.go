package summarize

import (
	"slices"

	"github.com/az-ai-labs/textdigest/normalize"
	"github.com/az-ai-labs/textdigest/tokenizer"
)

// Naive is a frequency-based summarizer that needs no similarity graph.
//
// The frequency table counts whole cleaned sentences, each joined into one
// string, while sentences are scored by looking up their raw words in that
// table. A raw word therefore only scores when some sentence cleans down
// to exactly that word.
type Naive struct {
	norm     *normalize.Normalizer
	defaultP int
}

// NewNaive returns a Naive summarizer over norm.
func NewNaive(norm *normalize.Normalizer) *Naive {
	return &Naive{norm: norm, defaultP: DefaultSentences}
}

// Summarize returns up to p sentences of text in document order. Sentences
// without any word of four or more characters are never selected, so fewer
// than p sentences may come back even when text has p or more: "Engineers
// build engines. The end." yields only the first sentence. Ties go to the
// earlier sentence. A non-positive p selects DefaultSentences.
func (n *Naive) Summarize(text string, p int) []string {
	if p <= 0 {
		p = n.defaultP
	}

	sents := n.norm.Sentences(text)
	if len(sents) == 0 {
		return nil
	}

	freq := make(map[string]int, len(sents))
	for _, s := range sents {
		freq[n.norm.CleanText(s)]++
	}

	var candidates []Ranked
	for i, s := range sents {
		words := tokenizer.Words(s)
		if len(words) == 0 {
			continue
		}
		score := 0
		for _, w := range words {
			score += freq[w]
		}
		candidates = append(candidates, Ranked{Text: s, Score: float64(score), Index: i})
	}

	slices.SortStableFunc(candidates, cmpRanked)
	if len(candidates) > p {
		candidates = candidates[:p]
	}
	slices.SortFunc(candidates, func(a, b Ranked) int { return a.Index - b.Index })

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Text
	}
	return out
}

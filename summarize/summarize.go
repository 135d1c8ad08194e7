// Package summarize produces extractive summaries of English text.
//
// Summarizer ranks sentences with PageRank over a sentence-similarity graph
// and returns the best ones in score order. Naive scores sentences by word
// frequency without a graph and returns them in document order.
//
// Known limitations:
//
//   - The sentence graph has no self-loops. A sentence's similarity to
//     itself is dropped, so scores differ slightly from a ranking that keeps
//     the diagonal of the weight matrix.
//   - Naive may return fewer sentences than requested; see Naive.Summarize.
//
// Neither type is safe for concurrent use; give each goroutine its own
// instance over a shared lexicon.Bundle.
package summarize

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/az-ai-labs/textdigest/normalize"
	"github.com/az-ai-labs/textdigest/rank"
	"github.com/az-ai-labs/textdigest/similarity"
)

// DefaultSentences is the summary length used when the caller asks for
// zero or fewer sentences.
const DefaultSentences = 5

// Ranked is one scored sentence.
type Ranked struct {
	Text  string  `json:"text" yaml:"text"`
	Score float64 `json:"score" yaml:"score"`
	Index int     `json:"index" yaml:"index"` // position in the document
}

// Summary is the result of Summarize.
type Summary struct {
	Text          string   `json:"text" yaml:"text"`
	SentenceCount int      `json:"sentence_count" yaml:"sentence_count"` // sentences processed
	Sentences     []Ranked `json:"sentences" yaml:"sentences"`           // selected, best first
}

// Summarizer selects the most central sentences of a text.
type Summarizer struct {
	norm     *normalize.Normalizer
	scorer   similarity.Scorer
	rankOpts rank.Options
	defaultP int
	logger   *slog.Logger
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithScorer replaces the BM25 similarity scorer.
func WithScorer(s similarity.Scorer) Option {
	return func(sm *Summarizer) {
		if s != nil {
			sm.scorer = s
		}
	}
}

// WithRankOptions sets the PageRank parameters.
func WithRankOptions(o rank.Options) Option {
	return func(sm *Summarizer) { sm.rankOpts = o }
}

// WithDefaultSentences sets the length used for a non-positive request.
func WithDefaultSentences(p int) Option {
	return func(sm *Summarizer) {
		if p > 0 {
			sm.defaultP = p
		}
	}
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(sm *Summarizer) {
		if l != nil {
			sm.logger = l
		}
	}
}

// New returns a Summarizer that cleans sentences with norm.
func New(norm *normalize.Normalizer, opts ...Option) *Summarizer {
	sm := &Summarizer{
		norm:     norm,
		scorer:   similarity.NewBM25(),
		defaultP: DefaultSentences,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(sm)
	}
	return sm
}

// Summarize returns the p highest-ranked sentences of text joined by single
// spaces, best first. Sentences with equal score and text are reported
// once. A non-positive p selects the configured default.
//
// When PageRank does not converge the best-effort ranking is used and a
// warning is logged. Empty text yields an empty Summary.
func (sm *Summarizer) Summarize(text string, p int) (Summary, error) {
	if p <= 0 {
		p = sm.defaultP
	}

	sents := sm.norm.Sentences(text)
	switch len(sents) {
	case 0:
		return Summary{}, nil
	case 1:
		return Summary{
			Text:          sents[0],
			SentenceCount: 1,
			Sentences:     []Ranked{{Text: sents[0], Score: 1}},
		}, nil
	}

	tokens := make([][]string, len(sents))
	for i, s := range sents {
		tokens[i] = sm.norm.Clean(s)
	}

	scores, err := sm.rankSentences(tokens)
	if err != nil {
		return Summary{}, err
	}

	ranked := dedupe(sents, scores)
	slices.SortStableFunc(ranked, cmpRanked)
	if len(ranked) > p {
		ranked = ranked[:p]
	}

	texts := make([]string, len(ranked))
	for i, r := range ranked {
		texts[i] = r.Text
	}
	return Summary{
		Text:          strings.Join(texts, " "),
		SentenceCount: len(tokens),
		Sentences:     ranked,
	}, nil
}

func (sm *Summarizer) rankSentences(tokens [][]string) (rank.Scores[int], error) {
	weights := sm.scorer.Weights(tokens)

	g := rank.New[int]()
	for i := range tokens {
		g.AddNode(i)
	}
	for i := range tokens {
		for j := i + 1; j < len(tokens); j++ {
			g.AddEdge(i, j, weights.At(i, j))
		}
	}
	sm.logger.Debug("sentence graph built", "nodes", g.Len(), "edges", g.EdgeCount())

	scores, err := g.Rank(sm.rankOpts)
	if errors.Is(err, rank.ErrNotConverged) {
		sm.logger.Warn("sentence ranking did not converge, using best-effort scores",
			"nodes", g.Len(), "iterations", scores.Iterations())
		return scores, nil
	}
	if err != nil {
		return scores, errors.Wrap(err, "failed to rank sentences")
	}
	return scores, nil
}

type scoredText struct {
	score float64
	text  string
}

// dedupe pairs each sentence with its score and keeps the first of every
// identical (score, text) pair.
func dedupe(sents []string, scores rank.Scores[int]) []Ranked {
	seen := make(map[scoredText]struct{}, len(sents))
	out := make([]Ranked, 0, len(sents))
	for i, s := range sents {
		key := scoredText{score: scores.At(i), text: s}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Ranked{Text: s, Score: key.score, Index: i})
	}
	return out
}

// cmpRanked orders by score descending, then by document position.
func cmpRanked(a, b Ranked) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}

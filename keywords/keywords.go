// Package keywords extracts keywords from English text with TextRank.
//
// Text is cleaned by a normalize.Normalizer, then every distinct token
// becomes a node of a co-occurrence graph. A window of Window consecutive
// tokens links each pair of distinct tokens inside it with an unweighted
// edge. PageRank over that graph scores the tokens.
//
// Two API layers:
//
//   - Structured: Extract and Top return []Keyword with terms, scores, and
//     counts.
//   - Convenience: Keywords returns the top terms as []string.
//
// Known limitations:
//
//   - Edges are binary. A pair seen in many windows weighs the same as a
//     pair seen once; frequency only shows in Count.
//   - Only single tokens are ranked. Adjacent keywords are not merged into
//     phrases.
//   - Tokens shorter than four characters never appear, as in every
//     normalize pipeline.
//
// An Extractor is not safe for concurrent use.
package keywords

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/az-ai-labs/textdigest/normalize"
	"github.com/az-ai-labs/textdigest/rank"
)

const (
	defaultTopN   = 10 // default number of keywords returned
	defaultWindow = 2  // co-occurrence window size
)

// Keyword represents a single extracted keyword with its score.
type Keyword struct {
	Term  string  `json:"term" yaml:"term"`
	Score float64 `json:"score" yaml:"score"`
	Count int     `json:"count" yaml:"count"`
}

// Extractor ranks the tokens of a text.
type Extractor struct {
	norm     *normalize.Normalizer
	window   int
	rankOpts rank.Options
	logger   *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithWindow sets the co-occurrence window. A window of 1 links nothing, so
// every token scores the same. Values below 1 keep the default.
func WithWindow(n int) Option {
	return func(e *Extractor) {
		if n >= 1 {
			e.window = n
		}
	}
}

// WithRankOptions sets the PageRank parameters.
func WithRankOptions(o rank.Options) Option {
	return func(e *Extractor) { e.rankOpts = o }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an Extractor that cleans text with norm.
func New(norm *normalize.Normalizer, opts ...Option) *Extractor {
	e := &Extractor{norm: norm, window: defaultWindow, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Window returns the co-occurrence window size.
func (e *Extractor) Window() int { return e.window }

// Extract returns every token of text scored by TextRank, sorted by score
// descending. Equal scores keep first-appearance order. Returns nil for
// text without tokens.
//
// When PageRank does not converge the best-effort ranking is returned and
// a warning is logged.
func (e *Extractor) Extract(text string) ([]Keyword, error) {
	tokens := e.norm.Clean(text)
	if len(tokens) == 0 {
		return nil, nil
	}

	g := buildGraph(tokens, e.window)
	e.logger.Debug("keyword graph built", "tokens", len(tokens), "nodes", g.Len(), "edges", g.EdgeCount())

	scores, err := g.Rank(e.rankOpts)
	if errors.Is(err, rank.ErrNotConverged) {
		e.logger.Warn("keyword ranking did not converge, using best-effort scores",
			"nodes", g.Len(), "iterations", scores.Iterations())
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to rank keywords")
	}

	freq := make(map[string]int, g.Len())
	for _, tok := range tokens {
		freq[tok]++
	}

	ranked := scores.Ranked()
	result := make([]Keyword, len(ranked))
	for i, node := range ranked {
		result[i] = Keyword{Term: node.Key, Score: node.Score, Count: freq[node.Key]}
	}
	return result, nil
}

// Top returns the n best keywords of text. A non-positive n returns the
// default of 10.
func (e *Extractor) Top(text string, n int) ([]Keyword, error) {
	if n <= 0 {
		n = defaultTopN
	}
	kws, err := e.Extract(text)
	if len(kws) > n {
		kws = kws[:n]
	}
	return kws, err
}

// Keywords returns the terms of the top 10 keywords of text. Convenience
// wrapper over Top. Returns nil when no keywords are found or ranking
// fails.
func (e *Extractor) Keywords(text string) []string {
	kws, err := e.Top(text, defaultTopN)
	if err != nil || len(kws) == 0 {
		return nil
	}
	result := make([]string, len(kws))
	for i, kw := range kws {
		result[i] = kw.Term
	}
	return result
}

// Package e2e runs the full pipelines over the default resources: the
// embedded stopwords, the perceptron tagger, and the lemma dictionary.
package e2e

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/textdigest/keywords"
	"github.com/az-ai-labs/textdigest/lexicon"
	"github.com/az-ai-labs/textdigest/normalize"
	"github.com/az-ai-labs/textdigest/summarize"
	"github.com/az-ai-labs/textdigest/tokenizer"
	"github.com/az-ai-labs/textdigest/topics"
)

const (
	concWorkers = 8
	concIter    = 20
)

const article = `Solar power is growing quickly around the world. Solar panels convert sunlight into electricity without moving parts.
Wind power is also expanding, and wind turbines convert moving air into electricity. Engineers are building larger turbines every year.
Storage matters because solar and wind power are intermittent. Batteries store electricity for the evening, when demand peaks.
Dr. Rivera, who studies energy markets, says prices for panels and batteries keep falling. Cheaper storage makes renewable power more reliable.`

var corpus = []string{
	"Solar panels convert sunlight into electricity for homes.",
	"Wind turbines generate electricity from moving air.",
	"Batteries store solar electricity for the evening.",
	"The recipe needs flour, butter, sugar, and fresh eggs.",
	"Bake the bread until the crust turns golden.",
	"Knead the dough with flour before baking bread.",
}

func defaultNormalizer(t testing.TB) *normalize.Normalizer {
	t.Helper()
	lex, err := lexicon.Default()
	require.NoError(t, err)
	return normalize.New(lex)
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// ---------------------------------------------------------------------------
// Normalizer
// ---------------------------------------------------------------------------

func TestCleanDefaultResources(t *testing.T) {
	t.Parallel()
	n := defaultNormalizer(t)

	assert.Equal(t, []string{"happy"}, n.Clean("I'm happy!!"))
	assert.Empty(t, n.Clean(""))

	for _, tok := range n.Clean(article) {
		assert.GreaterOrEqual(t, len([]rune(tok)), 3, "lemma %q", tok)
		assert.Equal(t, strings.ToLower(tok), tok)
		assert.False(t, n.Lexicon().IsStopword(tok), "stopword %q survived", tok)
	}
}

func TestSentencesAreSubstrings(t *testing.T) {
	t.Parallel()
	n := defaultNormalizer(t)

	sents := n.Sentences(article)
	require.NotEmpty(t, sents)
	for _, s := range sents {
		assert.Contains(t, article, s)
	}
	for _, tok := range tokenizer.SentenceTokens(article) {
		assert.Equal(t, tok.Text, article[tok.Start:tok.End])
	}
}

// ---------------------------------------------------------------------------
// Summaries
// ---------------------------------------------------------------------------

func TestSummarizePipeline(t *testing.T) {
	t.Parallel()
	n := defaultNormalizer(t)
	sents := n.Sentences(article)

	sm := summarize.New(n, summarize.WithLogger(quiet()))
	got, err := sm.Summarize(article, 3)
	require.NoError(t, err)

	assert.Equal(t, len(sents), got.SentenceCount)
	require.Len(t, got.Sentences, 3)
	for i, r := range got.Sentences {
		assert.Equal(t, sents[r.Index], r.Text)
		if i > 0 {
			assert.GreaterOrEqual(t, got.Sentences[i-1].Score, r.Score)
		}
	}

	all, err := sm.Summarize(article, len(sents)+5)
	require.NoError(t, err)
	assert.Len(t, all.Sentences, len(sents))
}

func TestNaivePipeline(t *testing.T) {
	t.Parallel()
	n := defaultNormalizer(t)
	sents := n.Sentences(article)

	got := summarize.NewNaive(n).Summarize(article, 2)
	require.Len(t, got, 2)

	// Document order.
	first, second := -1, -1
	for i, s := range sents {
		if s == got[0] {
			first = i
		}
		if s == got[1] {
			second = i
		}
	}
	assert.Less(t, first, second)
}

// ---------------------------------------------------------------------------
// Keywords and topics
// ---------------------------------------------------------------------------

func TestKeywordsPipeline(t *testing.T) {
	t.Parallel()

	e := keywords.New(defaultNormalizer(t), keywords.WithLogger(quiet()))
	kws, err := e.Extract(article)
	require.NoError(t, err)
	require.NotEmpty(t, kws)

	total := 0.0
	for _, kw := range kws {
		total += kw.Score
		assert.Positive(t, kw.Count)
	}
	assert.InDelta(t, 1.0, total, 1e-9)

	top := e.Keywords(article)
	assert.LessOrEqual(t, len(top), 10)
	assert.Contains(t, top, "power")
}

func TestTopicsPipeline(t *testing.T) {
	t.Parallel()

	f := topics.NewFinder(defaultNormalizer(t), corpus, topics.WithLogger(quiet()))
	got, err := f.FindTopics(2, 4, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, topic := range got {
		assert.Len(t, topic.Terms, 4)
	}
}

// ---------------------------------------------------------------------------
// Concurrency
// ---------------------------------------------------------------------------

// TestConcurrentPipelines shares one bundle across goroutines, each with its
// own Normalizer, Summarizer, and Extractor.
func TestConcurrentPipelines(t *testing.T) {
	t.Parallel()

	lex, err := lexicon.Default()
	require.NoError(t, err)
	want := normalize.New(lex).Clean(article)

	var mismatches atomic.Int64
	var g errgroup.Group
	for range concWorkers {
		g.Go(func() error {
			n := normalize.New(lex)
			sm := summarize.New(n, summarize.WithLogger(quiet()))
			e := keywords.New(n, keywords.WithLogger(quiet()))
			for range concIter {
				if !slices.Equal(n.Clean(article), want) {
					mismatches.Add(1)
				}
				if _, err := sm.Summarize(article, 2); err != nil {
					return err
				}
				if _, err := e.Extract(article); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Zero(t, mismatches.Load())
}

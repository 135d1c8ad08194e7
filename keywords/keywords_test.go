package keywords

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/textdigest/lexicon"
	"github.com/az-ai-labs/textdigest/normalize"
	"github.com/az-ai-labs/textdigest/rank"
)

// plain returns an Extractor over the embedded stopwords with no tagging or
// lemmatization, so expectations do not depend on model data.
func plain(t testing.TB, opts ...Option) *Extractor {
	t.Helper()
	lex, err := lexicon.Load(lexicon.Config{
		Lemmatizer: lexicon.LemmatizerNone,
		Tagger:     lexicon.TaggerNone,
	})
	require.NoError(t, err)
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))}, opts...)
	return New(normalize.New(lex), opts...)
}

func terms(kws []Keyword) []string {
	out := make([]string, len(kws))
	for i, kw := range kws {
		out[i] = kw.Term
	}
	return out
}

// ---------------------------------------------------------------------------
// ngrams / pairs / buildGraph
// ---------------------------------------------------------------------------

func TestNgrams(t *testing.T) {
	t.Parallel()

	tokens := []string{"alpha", "beta", "gamma"}
	assert.Equal(t, [][]string{{"alpha", "beta"}, {"beta", "gamma"}}, ngrams(tokens, 2))
	assert.Equal(t, [][]string{tokens}, ngrams(tokens, 3))
	assert.Nil(t, ngrams(tokens, 4))
	assert.Nil(t, ngrams(nil, 2))
}

func TestPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		gram []string
		want [][2]string
	}{
		{"two distinct", []string{"apple", "banana"}, [][2]string{{"banana", "apple"}}},
		{"reversed input", []string{"banana", "apple"}, [][2]string{{"banana", "apple"}}},
		{"repeated token", []string{"apple", "apple"}, nil},
		{
			"three with repeat",
			[]string{"cherry", "apple", "cherry"},
			[][2]string{{"cherry", "apple"}},
		},
		{
			"three distinct",
			[]string{"apple", "cherry", "banana"},
			[][2]string{{"cherry", "apple"}, {"cherry", "banana"}, {"banana", "apple"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pairs(tt.gram))
		})
	}
}

func TestBuildGraph(t *testing.T) {
	t.Parallel()

	g := buildGraph([]string{"graph", "rank", "graph", "node", "node"}, 2)
	assert.Equal(t, []string{"graph", "rank", "node"}, g.Keys())
	assert.Equal(t, 2, g.EdgeCount())
	assert.InDelta(t, 1.0, g.Weight("graph", "rank"), 1e-12, "repeated windows do not add weight")
	assert.True(t, g.HasEdge("node", "graph"))
	assert.False(t, g.HasEdge("rank", "node"))

	// Fewer tokens than the window: nodes only.
	g = buildGraph([]string{"alone"}, 3)
	assert.Equal(t, 1, g.Len())
	assert.Zero(t, g.EdgeCount())
}

// ---------------------------------------------------------------------------
// Extract
// ---------------------------------------------------------------------------

func TestExtractEmpty(t *testing.T) {
	t.Parallel()
	e := plain(t)

	for _, input := range []string{"", "   ", "the and of it", "a b c d"} {
		kws, err := e.Extract(input)
		require.NoError(t, err)
		assert.Nil(t, kws, "Extract(%q)", input)
	}
}

func TestExtractSingleToken(t *testing.T) {
	t.Parallel()

	kws, err := plain(t).Extract("Keyword")
	require.NoError(t, err)
	require.Len(t, kws, 1)
	assert.Equal(t, Keyword{Term: "keyword", Score: 1, Count: 1}, kws[0])
}

func TestExtractHubWins(t *testing.T) {
	t.Parallel()

	// "graph" co-occurs with every other token.
	text := "graph ranking graph scoring graph nodes graph edges"
	kws, err := plain(t).Extract(text)
	require.NoError(t, err)

	require.Len(t, kws, 5)
	assert.Equal(t, "graph", kws[0].Term)
	assert.Equal(t, 4, kws[0].Count)
	// The leaves tie and keep first-appearance order.
	assert.Equal(t, []string{"graph", "ranking", "scoring", "nodes", "edges"}, terms(kws))

	total := 0.0
	for i, kw := range kws {
		total += kw.Score
		if i > 0 {
			assert.GreaterOrEqual(t, kws[i-1].Score, kw.Score)
		}
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestExtractEdgelessTokensScoreUniformly(t *testing.T) {
	t.Parallel()

	// The same token twice forms a window with no distinct pair.
	kws, err := plain(t).Extract("echo echo")
	require.NoError(t, err)
	require.Len(t, kws, 1)
	assert.Equal(t, 2, kws[0].Count)
	assert.InDelta(t, 1.0, kws[0].Score, 1e-12)

	// Window larger than the token count.
	kws, err = plain(t, WithWindow(5)).Extract("alpha beta gamma")
	require.NoError(t, err)
	require.Len(t, kws, 3)
	for _, kw := range kws {
		assert.InDelta(t, 1.0/3, kw.Score, 1e-9)
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, terms(kws))
}

func TestExtractWindow(t *testing.T) {
	t.Parallel()

	text := "alpha beta gamma delta"
	narrow, err := plain(t).Extract(text)
	require.NoError(t, err)
	wide, err := plain(t, WithWindow(4)).Extract(text)
	require.NoError(t, err)

	// A path graph favors its inner nodes; a complete graph is uniform.
	assert.ElementsMatch(t, []string{"beta", "gamma"}, terms(narrow[:2]))
	for _, kw := range wide {
		assert.InDelta(t, 0.25, kw.Score, 1e-9)
	}
}

func TestWithWindowIgnoresNonPositive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultWindow, plain(t, WithWindow(0)).Window())
	assert.Equal(t, defaultWindow, plain(t, WithWindow(-3)).Window())
	assert.Equal(t, 1, plain(t, WithWindow(1)).Window())
	assert.Equal(t, 3, plain(t, WithWindow(3)).Window())
}

func TestExtractWindowOneIsEdgeless(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, buildGraph([]string{"alpha", "beta", "alpha"}, 1).EdgeCount())

	kws, err := plain(t, WithWindow(1)).Extract("alpha beta gamma delta")
	require.NoError(t, err)
	require.Len(t, kws, 4)
	for _, kw := range kws {
		assert.InDelta(t, 0.25, kw.Score, 1e-9)
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, terms(kws))
}

func TestExtractNotConvergedWarns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := plain(t, WithRankOptions(rank.Options{MaxIter: 1}), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	kws, err := e.Extract("graph ranking graph scoring graph nodes")
	require.NoError(t, err)
	assert.NotEmpty(t, kws)
	assert.Contains(t, buf.String(), "did not converge")
}

// ---------------------------------------------------------------------------
// Top / Keywords
// ---------------------------------------------------------------------------

func TestTop(t *testing.T) {
	t.Parallel()
	e := plain(t)

	words := []string{
		"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "theta",
		"iota", "kappa", "lambda", "sigma", "omega",
	}
	text := strings.Join(words, " ")

	kws, err := e.Top(text, 3)
	require.NoError(t, err)
	assert.Len(t, kws, 3)

	kws, err = e.Top(text, 0)
	require.NoError(t, err)
	assert.Len(t, kws, defaultTopN)

	kws, err = e.Top("", 3)
	require.NoError(t, err)
	assert.Nil(t, kws)
}

func TestKeywords(t *testing.T) {
	t.Parallel()
	e := plain(t)

	assert.Nil(t, e.Keywords(""))
	got := e.Keywords("graph ranking graph scoring graph nodes graph edges")
	assert.Equal(t, "graph", got[0])
	assert.Len(t, got, 5)
}

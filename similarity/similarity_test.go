package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

var corpus = [][]string{
	{"graph", "rank", "sentence"},
	{"graph", "score", "node"},
	{"topic", "model", "word"},
	{"sentence", "graph", "graph", "summary"},
	{},
}

func requireSymmetricNonNegative(t *testing.T, m *mat.SymDense, n int) {
	t.Helper()
	require.NotNil(t, m)
	r, c := m.Dims()
	require.Equal(t, n, r)
	require.Equal(t, n, c)
	for i := range n {
		for j := range n {
			assert.Equal(t, m.At(i, j), m.At(j, i), "asymmetric at %d,%d", i, j)
			assert.GreaterOrEqual(t, m.At(i, j), 0.0, "negative at %d,%d", i, j)
		}
	}
}

// ---------------------------------------------------------------------------
// BM25
// ---------------------------------------------------------------------------

func TestBM25Symmetric(t *testing.T) {
	t.Parallel()

	m := NewBM25().Weights(corpus)
	requireSymmetricNonNegative(t, m, len(corpus))

	// Sentences sharing terms score above unrelated ones.
	assert.Greater(t, m.At(0, 3), m.At(0, 2))
	assert.Zero(t, m.At(0, 2))
	// The empty sentence matches nothing.
	for j := range len(corpus) {
		assert.Zero(t, m.At(4, j))
	}
}

func TestBM25Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewBM25().Weights(nil))

	m := NewBM25().Weights([][]string{{}, {}})
	requireSymmetricNonNegative(t, m, 2)
	assert.Zero(t, m.At(0, 1))
}

func TestBM25IdenticalDocsClampNegativeIDF(t *testing.T) {
	t.Parallel()

	// Every term appears in every document, so every IDF is negative and
	// the floor is negative too; weights clamp to zero.
	docs := [][]string{{"same", "words"}, {"same", "words"}}
	m := NewBM25().Weights(docs)
	requireSymmetricNonNegative(t, m, 2)
	assert.Zero(t, m.At(0, 1))
}

func TestBM25IDF(t *testing.T) {
	t.Parallel()

	idx := newBM25Index(corpus, defaultEpsilon)
	// "graph" occurs in 3 of 5 documents, "topic" in 1.
	assert.Greater(t, idx.idf["topic"], idx.idf["graph"])
	assert.InDelta(t, 13.0/5, idx.avgLen, 1e-12)
	assert.Equal(t, 2.0, idx.freqs[3]["graph"])
}

// ---------------------------------------------------------------------------
// Jaccard
// ---------------------------------------------------------------------------

func TestJaccard(t *testing.T) {
	t.Parallel()

	m := Jaccard{}.Weights(corpus)
	requireSymmetricNonNegative(t, m, len(corpus))

	assert.InDelta(t, 1.0, m.At(0, 0), 1e-12)
	assert.InDelta(t, 0.2, m.At(0, 1), 1e-12) // {graph} / {graph rank sentence score node}
	assert.InDelta(t, 0.5, m.At(0, 3), 1e-12) // {graph sentence} / {graph rank sentence summary}
	assert.Zero(t, m.At(0, 2))
	assert.Zero(t, m.At(4, 4))
	assert.Nil(t, Jaccard{}.Weights(nil))
}

// ---------------------------------------------------------------------------
// ByName
// ---------------------------------------------------------------------------

func TestByName(t *testing.T) {
	t.Parallel()

	s, err := ByName("")
	require.NoError(t, err)
	assert.IsType(t, BM25{}, s)

	s, err = ByName(KindJaccard)
	require.NoError(t, err)
	assert.IsType(t, Jaccard{}, s)

	_, err = ByName("cosine")
	assert.ErrorIs(t, err, ErrUnknownScorer)
}

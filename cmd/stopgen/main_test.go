package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/textdigest/lexicon"
)

const corpus = `{"text": "Report: sales grew this quarter."}
{"text": "Report: costs fell this quarter."}
not json
{"text": "Report: the team hired engineers."}

{"text": "Weather was sunny."}
`

func TestGenerate(t *testing.T) {
	t.Parallel()

	res, err := generate(strings.NewReader(corpus), options{minRatio: 0.5, minDocs: 1})
	require.NoError(t, err)

	assert.Equal(t, 4, res.documents)
	assert.Equal(t, 1, res.skipped)
	// "report" is in 3 of 4 documents, "quarter" and "this" in 2 of 4.
	assert.Equal(t, []string{"quarter", "report", "this"}, res.words)
	assert.Equal(t, 3, res.frequent)
}

func TestGenerateMinDocs(t *testing.T) {
	t.Parallel()

	res, err := generate(strings.NewReader(corpus), options{minRatio: 0.5, minDocs: 10})
	require.NoError(t, err)
	assert.Empty(t, res.words)
	assert.Zero(t, res.frequent)
}

func TestGenerateMerge(t *testing.T) {
	t.Parallel()

	res, err := generate(strings.NewReader(""), options{minRatio: 0.5, merge: true})
	require.NoError(t, err)
	assert.Len(t, res.words, 179)
	assert.Contains(t, res.words, "the")
}

func TestWriteListLoadsAsStopwords(t *testing.T) {
	t.Parallel()

	res, err := generate(strings.NewReader(corpus), options{minRatio: 0.5, minDocs: 1})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stop.txt")
	require.NoError(t, writeList(path, "corpus.jsonl", res))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "# generated by stopgen from corpus.jsonl (4 documents)\n"))

	lex, err := lexicon.Load(lexicon.Config{
		StopwordsPath: path,
		Lemmatizer:    lexicon.LemmatizerNone,
		Tagger:        lexicon.TaggerNone,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, lex.StopwordCount())
	assert.True(t, lex.IsStopword("report"))
}

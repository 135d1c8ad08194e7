package lemma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/az-ai-labs/textdigest/pos"
)

func TestDetachmentsCoverCategories(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, detachments[pos.Noun])
	assert.NotEmpty(t, detachments[pos.Verb])
	assert.NotEmpty(t, detachments[pos.Adjective])
	assert.Empty(t, detachments[pos.Adverb])
}

func TestDictionary(t *testing.T) {
	t.Parallel()

	d, err := NewDictionary()
	require.NoError(t, err)

	tests := []struct {
		name string
		word string
		cat  pos.Category
		want string
	}{
		{"empty", "", pos.Noun, ""},
		{"regular plural noun", "dogs", pos.Noun, "dog"},
		{"ies plural noun", "cities", pos.Noun, "city"},
		{"base noun unchanged", "house", pos.Noun, "house"},
		{"regular past verb", "walked", pos.Verb, "walk"},
		{"third person verb", "walks", pos.Verb, "walk"},
		{"irregular past verb", "ran", pos.Verb, "run"},
		{"adverb unchanged", "quickly", pos.Adverb, "quickly"},
		{"unknown word unchanged", "zzxqy", pos.Noun, "zzxqy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.Lemmatize(tt.word, tt.cat))
		})
	}
}

func TestStemmer(t *testing.T) {
	t.Parallel()

	var s Stemmer
	assert.Equal(t, "", s.Lemmatize("", pos.Noun))
	assert.Equal(t, "run", s.Lemmatize("running", pos.Verb))
	assert.Equal(t, "cat", s.Lemmatize("cats", pos.Noun))
	// The category does not change the stem.
	assert.Equal(t, s.Lemmatize("happiness", pos.Noun), s.Lemmatize("happiness", pos.Adverb))
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	var id Identity
	assert.Equal(t, "running", id.Lemmatize("running", pos.Verb))
	assert.Equal(t, "", id.Lemmatize("", pos.Noun))
}

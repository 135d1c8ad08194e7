package lemma

import (
	"github.com/kljensen/snowball/english"

	"github.com/az-ai-labs/textdigest/pos"
)

// Stemmer reduces words with the Snowball English stemmer.
type Stemmer struct{}

// Lemmatize returns the Snowball stem of word. The category is ignored.
func (Stemmer) Lemmatize(word string, _ pos.Category) string {
	if word == "" {
		return word
	}
	return english.Stem(word, false)
}

// Identity leaves every word unchanged.
type Identity struct{}

// Lemmatize returns word.
func (Identity) Lemmatize(word string, _ pos.Category) string { return word }

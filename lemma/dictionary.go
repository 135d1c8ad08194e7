package lemma

import (
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/pkg/errors"

	"github.com/az-ai-labs/textdigest/pos"
)

// Dictionary is a category-aware lemmatizer over the golem English
// dictionary. It is read-only after construction and safe to share.
type Dictionary struct {
	dict *golem.Lemmatizer
}

// NewDictionary loads the English lemma dictionary.
func NewDictionary() (*Dictionary, error) {
	dict, err := golem.New(en.New())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load english lemma dictionary")
	}
	return &Dictionary{dict: dict}, nil
}

// Lemmatize returns the lemma of word under category c.
// Words already in base form and unknown words are returned unchanged.
// When several detachment rules yield dictionary words, the shortest wins.
func (d *Dictionary) Lemmatize(word string, c pos.Category) string {
	if word == "" || c == pos.Adverb {
		return word
	}

	known := d.dict.InDict(word)
	lemma := d.dict.Lemma(word)
	if known && lemma == word {
		return word
	}

	best := ""
	for _, r := range detachments[c] {
		if !strings.HasSuffix(word, r.suffix) {
			continue
		}
		cand := word[:len(word)-len(r.suffix)] + r.repl
		if cand == "" || !d.dict.InDict(cand) {
			continue
		}
		if best == "" || len(cand) < len(best) {
			best = cand
		}
	}
	if best != "" {
		return best
	}

	if known {
		return lemma
	}
	return word
}

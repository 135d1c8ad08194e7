// Package lemma reduces English tokens to a canonical form.
//
// Two implementations are provided:
//
//   - Dictionary: category-aware lemmatization. Regular inflections are
//     undone with WordNet-style detachment rules chosen by the coarse part
//     of speech and validated against the golem English dictionary, and
//     irregular forms (ran, mice, better) are resolved by the dictionary.
//   - Stemmer: Snowball (Porter2) stemming. Ignores the category and
//     produces stems rather than dictionary words.
//
// Known limitations:
//
//   - Irregular forms are resolved regardless of category, so "better" as a
//     noun still lemmatizes to "good".
//   - Adverbs are returned unchanged.
package lemma

import "github.com/az-ai-labs/textdigest/pos"

// Lemmatizer maps a token and its coarse part of speech to a canonical form.
type Lemmatizer interface {
	Lemmatize(word string, c pos.Category) string
}

// detachment is a suffix rewrite tried when undoing a regular inflection.
type detachment struct {
	suffix string
	repl   string
}

// detachments lists the rewrite rules per category. Adverbs have none.
var detachments = map[pos.Category][]detachment{
	pos.Noun: {
		{"s", ""}, {"ses", "s"}, {"ves", "f"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	pos.Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	pos.Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

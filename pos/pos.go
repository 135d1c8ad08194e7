// Package pos tags English tokens with Penn Treebank part-of-speech tags and
// maps them onto the four coarse categories lemmatization distinguishes.
package pos

import "fmt"

// Category is a coarse part of speech.
type Category int

const (
	Noun Category = iota
	Verb
	Adjective
	Adverb
)

// String returns the WordNet-style single-letter name of c.
func (c Category) String() string {
	switch c {
	case Noun:
		return "n"
	case Verb:
		return "v"
	case Adjective:
		return "a"
	case Adverb:
		return "r"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// categories maps fine-grained Penn Treebank tags to coarse categories.
// Pronouns and wh-pronouns count as nouns.
var categories = map[string]Category{
	"NN": Noun, "NNS": Noun, "NNP": Noun, "NNPS": Noun,
	"PRP": Noun, "PRP$": Noun, "WP": Noun, "WP$": Noun,

	"VB": Verb, "VBD": Verb, "VBG": Verb, "VBN": Verb, "VBP": Verb, "VBZ": Verb,

	"JJ": Adjective, "JJR": Adjective, "JJS": Adjective,

	"RB": Adverb, "RBR": Adverb, "RBS": Adverb, "WRB": Adverb,
}

// FromTag returns the coarse category of a Penn Treebank tag.
// Unmapped tags default to Noun.
func FromTag(tag string) Category {
	if c, ok := categories[tag]; ok {
		return c
	}
	return Noun
}

// Tagged is a token with its fine tag and coarse category.
type Tagged struct {
	Text     string
	Tag      string
	Category Category
}

package pos

import (
	"github.com/jdkato/prose/tag"
)

// Tagger assigns Penn Treebank tags to a token sequence.
// The result has one entry per input token, in input order.
type Tagger interface {
	Tag(tokens []string) []Tagged
}

// Perceptron wraps the averaged perceptron tagger shipped with prose.
// The model is read-only once loaded; a single Perceptron may be shared by
// any number of Normalizers.
type Perceptron struct {
	model *tag.PerceptronTagger
}

// NewPerceptron loads the pretrained English perceptron model.
func NewPerceptron() *Perceptron {
	return &Perceptron{model: tag.NewPerceptronTagger()}
}

// Tag tags tokens. Tokens the model drops are tagged as nouns so that the
// output stays aligned with the input.
func (p *Perceptron) Tag(tokens []string) []Tagged {
	if len(tokens) == 0 {
		return nil
	}

	out := make([]Tagged, len(tokens))
	tagged := p.model.Tag(tokens)
	for i, w := range tokens {
		t := "NN"
		if i < len(tagged) && tagged[i].Text == w {
			t = tagged[i].Tag
		}
		out[i] = Tagged{Text: w, Tag: t, Category: FromTag(t)}
	}
	return out
}

// Uniform tags every token with the same category. It is useful when
// tagging is not wanted, e.g. with a stemmer that ignores the category.
type Uniform Category

// Tag implements Tagger.
func (u Uniform) Tag(tokens []string) []Tagged {
	if len(tokens) == 0 {
		return nil
	}
	out := make([]Tagged, len(tokens))
	for i, w := range tokens {
		out[i] = Tagged{Text: w, Category: Category(u)}
	}
	return out
}

package tokenizer

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Punkt splits sentences with the pretrained English Punkt model. It handles
// abbreviations and ellipses the heuristic splitter gets wrong, at the cost
// of loading the model once.
//
// A Punkt value is not safe for concurrent use.
type Punkt struct {
	tok *sentences.DefaultSentenceTokenizer
}

// NewPunkt loads the embedded English Punkt model.
func NewPunkt() (*Punkt, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load punkt english model")
	}
	return &Punkt{tok: tok}, nil
}

// Split returns the non-empty sentences of text, trimmed of surrounding space.
func (p *Punkt) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []string
	for _, s := range p.tok.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

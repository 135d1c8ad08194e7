// Package normalize turns raw English text into normalized tokens.
//
// Clean runs the full pipeline:
//
//  1. Unicode NFC composition and lowercasing.
//  2. Ordered rewrite rules: contraction expansion, newline runs to ". ",
//     digit-grouping comma removal, currency/percent/ampersand words, and
//     control whitespace to spaces.
//  3. Hashtag removal (#\w*).
//  4. ASCII punctuation stripping.
//  5. Tokenizing on the tokenizer word pattern (four or more characters).
//  6. Stopword removal.
//  7. Part-of-speech tagging mapped to noun, verb, adjective, or adverb.
//  8. Lemmatization by coarse category.
//
// Empty input yields empty output at every stage. Words shorter than four
// characters never survive step 5.
//
// A Normalizer is cheap to create and holds no per-call state beyond its
// configuration, but callers should give each pipeline its own instance;
// the shared lexicon.Bundle carries the expensive resources.
package normalize

import (
	"strings"

	"github.com/az-ai-labs/textdigest/internal/textcase"
	"github.com/az-ai-labs/textdigest/lexicon"
	"github.com/az-ai-labs/textdigest/tokenizer"
)

// MaxInputBytes is the largest input processed. Larger inputs are treated
// as empty.
const MaxInputBytes = 1 << 20 // 1 MiB

// Normalizer cleans text with the resources of a lexicon.Bundle.
type Normalizer struct {
	lex      *lexicon.Bundle
	splitter tokenizer.Splitter
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithSplitter replaces the default heuristic sentence splitter.
func WithSplitter(s tokenizer.Splitter) Option {
	return func(n *Normalizer) {
		if s != nil {
			n.splitter = s
		}
	}
}

// New returns a Normalizer over lex.
func New(lex *lexicon.Bundle, opts ...Option) *Normalizer {
	n := &Normalizer{lex: lex, splitter: tokenizer.Heuristic}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Lexicon returns the resource bundle n reads from.
func (n *Normalizer) Lexicon() *lexicon.Bundle { return n.lex }

// Sentences splits raw text into sentences. Text is not lowercased or
// otherwise rewritten, so every sentence is a substring of the input.
func (n *Normalizer) Sentences(text string) []string {
	if text == "" || len(text) > MaxInputBytes {
		return nil
	}
	return n.splitter.Split(text)
}

// Rewrite runs steps 1 to 4: folding, rewrite rules, hashtag removal, and
// punctuation stripping.
func (n *Normalizer) Rewrite(text string) string {
	if text == "" || len(text) > MaxInputBytes {
		return ""
	}

	s := textcase.Fold(text)
	for _, r := range rewrites {
		s = r.apply(s)
	}
	s = hashtags.apply(s)

	return strings.Map(func(r rune) rune {
		if n.lex.IsPunct(r) {
			return -1
		}
		return r
	}, s)
}

// Noise runs steps 1 to 6 and returns the surviving words without tagging
// or lemmatization.
func (n *Normalizer) Noise(text string) []string {
	words := tokenizer.Words(n.Rewrite(text))
	if len(words) == 0 {
		return nil
	}

	kept := words[:0]
	for _, w := range words {
		if !n.lex.IsStopword(w) {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// Clean runs the full pipeline and returns normalized tokens.
func (n *Normalizer) Clean(text string) []string {
	words := n.Noise(text)
	if len(words) == 0 {
		return nil
	}

	tagged := n.lex.Tagger().Tag(words)
	lem := n.lex.Lemmatizer()
	tokens := make([]string, len(tagged))
	for i, tw := range tagged {
		tokens[i] = lem.Lemmatize(tw.Text, tw.Category)
	}
	return tokens
}

// CleanText returns Clean(text) joined with single spaces.
func (n *Normalizer) CleanText(text string) string {
	return strings.Join(n.Clean(text), " ")
}

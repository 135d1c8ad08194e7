// Package tokenizer splits English text into sentences and word candidates.
//
// The package provides two API layers:
//
//   - Structured: SentenceTokens and WordTokens return []Token with byte
//     offsets. The invariant s[t.Start:t.End] == t.Text holds for every token.
//
//   - Convenience: Sentences and Words return []string for common use cases
//     where offsets are not needed.
//
// Sentence splitting is a best-effort heuristic, not a sentence boundary
// detector. A break happens after a literal "." or "?" followed by one
// whitespace character, which is consumed. Breaks are suppressed after a
// dotted abbreviation ("e.g.", "U.S.") or a capital-plus-lowercase
// abbreviation ("Mr.", "Dr.").
//
// Known limitations:
//
//   - Other abbreviation shapes split: "Mrs. Smith" yields "Mrs." and "Smith".
//   - "!" never ends a sentence.
//   - Terminal punctuation inside quotes ends the sentence at the quote,
//     leaving the closing quote at the start of the next sentence only
//     when the quote comes before the whitespace.
//   - An ellipsis followed by whitespace always splits.
//   - Only the first whitespace character after a break is consumed; further
//     whitespace stays at the start of the next sentence.
//
// For a trained boundary detector use Punkt.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import "fmt"

// TokenType classifies a token.
type TokenType int

const (
	Word     TokenType = iota // A word-pattern match (letters, digits, underscore, apostrophe)
	Sentence                  // A full sentence
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Sentence:
		return "Sentence"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("hello")[0:5].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Splitter segments text into sentences.
type Splitter interface {
	Split(text string) []string
}

// SplitterFunc adapts a function to the Splitter interface.
type SplitterFunc func(text string) []string

// Split calls f(text).
func (f SplitterFunc) Split(text string) []string { return f(text) }

// Heuristic is the default Splitter, backed by Sentences.
var Heuristic Splitter = SplitterFunc(Sentences)

// SentenceTokens splits text into sentence-level tokens with byte offsets.
// Each returned Token has Type=Sentence. Empty segments are dropped.
func SentenceTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return sentenceTokens(s)
}

// Sentences returns sentence strings from the text.
func Sentences(s string) []string {
	if s == "" {
		return nil
	}
	tokens := sentenceTokens(s)
	if len(tokens) == 0 {
		return nil
	}
	sentences := make([]string, len(tokens))
	for i, t := range tokens {
		sentences[i] = t.Text
	}
	return sentences
}

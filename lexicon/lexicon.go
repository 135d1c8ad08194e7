// Package lexicon holds the read-only linguistic resources shared by every
// Normalizer: the stopword set, the punctuation table, the part-of-speech
// tagger, and the lemmatizer.
//
// A Bundle is loaded once, typically at startup, and passed by pointer to
// each Normalizer. Loading fails fast: a missing stopword file or an
// unloadable lemma dictionary is returned as an error from Load rather than
// surfacing later mid-pipeline.
//
// A loaded Bundle is never mutated and is safe for concurrent use.
package lexicon

import (
	"bytes"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/az-ai-labs/textdigest/data"
	"github.com/az-ai-labs/textdigest/lemma"
	"github.com/az-ai-labs/textdigest/pos"
)

// Punctuation is the ASCII punctuation set stripped during cleaning.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Lemmatizer kinds accepted by Config.Lemmatizer.
const (
	LemmatizerDictionary = "dictionary"
	LemmatizerSnowball   = "snowball"
	LemmatizerNone       = "none"
)

// Tagger kinds accepted by Config.Tagger.
const (
	TaggerPerceptron = "perceptron"
	TaggerNone       = "none"
)

// ErrUnknownKind is returned by Load for an unrecognized lemmatizer or tagger.
var ErrUnknownKind = errors.New("unknown resource kind")

// Config selects which resources Load builds. The zero value selects the
// embedded stopwords, the perceptron tagger, and the dictionary lemmatizer.
type Config struct {
	StopwordsPath string // optional stopword file, one word per line
	Lemmatizer    string // "dictionary" (default), "snowball", or "none"
	Tagger        string // "perceptron" (default) or "none"
}

// Bundle is the set of read-only resources used for normalization.
type Bundle struct {
	stopwords map[string]struct{}
	punct     [128]bool
	tagger    pos.Tagger
	lemmas    lemma.Lemmatizer
}

// Load builds a Bundle from cfg.
func Load(cfg Config) (*Bundle, error) {
	raw := data.StopwordsEN
	if cfg.StopwordsPath != "" {
		b, err := os.ReadFile(cfg.StopwordsPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read stopwords from %s", cfg.StopwordsPath)
		}
		raw = b
	}

	var lem lemma.Lemmatizer
	switch cfg.Lemmatizer {
	case "", LemmatizerDictionary:
		d, err := lemma.NewDictionary()
		if err != nil {
			return nil, err
		}
		lem = d
	case LemmatizerSnowball:
		lem = lemma.Stemmer{}
	case LemmatizerNone:
		lem = lemma.Identity{}
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "lemmatizer %q", cfg.Lemmatizer)
	}

	var tagger pos.Tagger
	switch cfg.Tagger {
	case "", TaggerPerceptron:
		tagger = pos.NewPerceptron()
	case TaggerNone:
		tagger = pos.Uniform(pos.Noun)
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "tagger %q", cfg.Tagger)
	}

	return New(parseStopwords(raw), tagger, lem), nil
}

// New assembles a Bundle from already-loaded parts. It is mainly useful in
// tests that substitute a tagger or lemmatizer.
func New(stopwords []string, tagger pos.Tagger, lem lemma.Lemmatizer) *Bundle {
	b := &Bundle{
		stopwords: make(map[string]struct{}, len(stopwords)),
		tagger:    tagger,
		lemmas:    lem,
	}
	for _, w := range stopwords {
		b.stopwords[w] = struct{}{}
	}
	for i := range len(Punctuation) {
		b.punct[Punctuation[i]] = true
	}
	return b
}

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
	defaultErr    error
)

// Default returns the process-wide Bundle built from the zero Config.
// It is loaded on first use; later calls return the same Bundle or error.
func Default() (*Bundle, error) {
	defaultOnce.Do(func() {
		defaultBundle, defaultErr = Load(Config{})
	})
	return defaultBundle, defaultErr
}

// parseStopwords reads one word per line. Blank lines and lines starting
// with '#' are skipped; words are lowercased.
func parseStopwords(raw []byte) []string {
	lines := bytes.Split(raw, []byte("\n"))
	words := make([]string, 0, len(lines))
	for _, line := range lines {
		w := strings.TrimSpace(string(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, strings.ToLower(w))
	}
	return words
}

// IsStopword reports whether w is in the stopword set.
func (b *Bundle) IsStopword(w string) bool {
	_, ok := b.stopwords[w]
	return ok
}

// StopwordCount returns the size of the stopword set.
func (b *Bundle) StopwordCount() int { return len(b.stopwords) }

// IsPunct reports whether r is ASCII punctuation.
func (b *Bundle) IsPunct(r rune) bool {
	return r >= 0 && r < 128 && b.punct[r]
}

// Tagger returns the part-of-speech tagger.
func (b *Bundle) Tagger() pos.Tagger { return b.tagger }

// Lemmatizer returns the lemmatizer.
func (b *Bundle) Lemmatizer() lemma.Lemmatizer { return b.lemmas }

// Package topics discovers latent topics in a collection of English
// documents with Latent Dirichlet Allocation.
//
// Documents are cleaned by a normalize.Normalizer and turned into a sparse
// term-document matrix. Topics are ranked by UMass coherence of their top
// words, most coherent first.
package topics

import (
	"cmp"
	"log/slog"
	"slices"

	"github.com/james-bowman/nlp"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/az-ai-labs/textdigest/normalize"
)

// Defaults for FindTopics arguments that are zero or negative.
const (
	DefaultWords  = 2
	DefaultPasses = 20
	DefaultSeed   = 1
)

var (
	// ErrInvalidTopics is returned when the requested topic count is not
	// positive.
	ErrInvalidTopics = errors.New("number of topics must be positive")

	// ErrEmptyCorpus is returned when no document has any token left after
	// cleaning.
	ErrEmptyCorpus = errors.New("corpus has no tokens")
)

// Term is one word of a topic with its probability within the topic.
type Term struct {
	Word   string  `json:"word" yaml:"word"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Topic is one discovered topic.
type Topic struct {
	ID        int     `json:"id" yaml:"id"`
	Terms     []Term  `json:"terms" yaml:"terms"`
	Coherence float64 `json:"coherence" yaml:"coherence"`
}

// Finder models topics over a fixed set of cleaned documents.
type Finder struct {
	docs   [][]string
	seed   uint64
	logger *slog.Logger
}

// Option configures a Finder.
type Option func(*Finder)

// WithSeed sets the random seed of the topic model. Equal seeds over equal
// documents give equal topics.
func WithSeed(seed uint64) Option {
	return func(f *Finder) { f.seed = seed }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFinder cleans every document with norm.
func NewFinder(norm *normalize.Normalizer, docs []string, opts ...Option) *Finder {
	f := &Finder{
		docs:   make([][]string, len(docs)),
		seed:   DefaultSeed,
		logger: slog.Default(),
	}
	for i, d := range docs {
		f.docs[i] = norm.Clean(d)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Documents returns the cleaned token sequence of every document.
func (f *Finder) Documents() [][]string { return f.docs }

// FindTopics fits numTopics topics in passes iterations and returns each
// with its numWords most probable words, sorted by coherence descending.
// Non-positive numWords or passes select DefaultWords and DefaultPasses.
func (f *Finder) FindTopics(numTopics, numWords, passes int) ([]Topic, error) {
	if numTopics <= 0 {
		return nil, errors.Wrapf(ErrInvalidTopics, "got %d", numTopics)
	}
	if numWords <= 0 {
		numWords = DefaultWords
	}
	if passes <= 0 {
		passes = DefaultPasses
	}

	dict := NewDictionary(f.docs)
	if dict.Len() == 0 {
		return nil, ErrEmptyCorpus
	}
	numWords = min(numWords, dict.Len())

	var corpus [][]Bow
	sets := make([]map[int]struct{}, 0, len(f.docs))
	for _, doc := range f.docs {
		bow := dict.Doc2Bow(doc)
		if len(bow) == 0 {
			continue
		}
		corpus = append(corpus, bow)
		set := make(map[int]struct{}, len(bow))
		for _, e := range bow {
			set[e.ID] = struct{}{}
		}
		sets = append(sets, set)
	}
	f.logger.Debug("topic corpus built",
		"documents", len(corpus), "skipped", len(f.docs)-len(corpus), "vocabulary", dict.Len())

	lda := nlp.NewLatentDirichletAllocation(numTopics)
	lda.Iterations = passes
	lda.TransformationPasses = passes
	lda.Processes = 1
	lda.Rnd = rand.New(rand.NewSource(f.seed))

	if _, err := lda.FitTransform(dict.Matrix(corpus)); err != nil {
		return nil, errors.Wrap(err, "failed to fit topic model")
	}

	topics := describe(lda.Components(), dict, numWords)
	for i := range topics {
		top := make([]int, len(topics[i].Terms))
		for j, t := range topics[i].Terms {
			top[j], _ = dict.ID(t.Word)
		}
		topics[i].Coherence = umass(top, sets)
	}
	slices.SortStableFunc(topics, func(a, b Topic) int {
		return cmp.Compare(b.Coherence, a.Coherence)
	})
	return topics, nil
}

// describe turns a topics-by-words matrix into topics holding their n most
// probable words. Rows are normalized to sum to 1; equal weights keep
// dictionary order.
func describe(components mat.Matrix, dict *Dictionary, n int) []Topic {
	k, _ := components.Dims()
	topics := make([]Topic, k)
	for t := range k {
		row := mat.Row(nil, t, components)
		if sum := floats.Sum(row); sum > 0 {
			floats.Scale(1/sum, row)
		}

		ids := make([]int, len(row))
		for i := range ids {
			ids[i] = i
		}
		slices.SortStableFunc(ids, func(a, b int) int {
			return cmp.Compare(row[b], row[a])
		})

		terms := make([]Term, min(n, len(ids)))
		for i := range terms {
			terms[i] = Term{Word: dict.Word(ids[i]), Weight: row[ids[i]]}
		}
		topics[t] = Topic{ID: t, Terms: terms}
	}
	return topics
}

// Command smoketest runs every pipeline over a directory of .txt files and
// checks invariants that must hold for any input:
//
//   - sentence and word tokens reconstruct their source spans
//   - summary sentences come from the document, best first
//   - keyword and summary scores are finite and sum to at most 1
//
// It also flags files whose sentences-per-paragraph ratio is far above the
// corpus median, which usually points at a splitter problem.
//
//	go run ./cmd/smoketest <directory>
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/az-ai-labs/textdigest/keywords"
	"github.com/az-ai-labs/textdigest/lexicon"
	"github.com/az-ai-labs/textdigest/normalize"
	"github.com/az-ai-labs/textdigest/summarize"
	"github.com/az-ai-labs/textdigest/tokenizer"
)

const (
	maxWorkers     = 4
	expectedArgs   = 2
	summaryLength  = 3
	outlierFactor  = 3
	scoreTolerance = 1e-9
)

type fileRatio struct {
	path       string
	sentences  int
	paragraphs int
	ratio      float64
}

// Stats aggregates results across files.
type Stats struct {
	mu               sync.Mutex
	filesScanned     int
	filesSkipped     int
	totalBytes       int64
	reconOK          int
	reconFail        int
	summaryFail      int
	keywordFail      int
	sentenceOutliers int
	sentences        int
	tokens           int
	fileRatios       []fileRatio
}

type fileState struct {
	path        string
	bytes       int64
	sentences   int
	paragraphs  int
	tokens      int
	reconFailed bool
	summaryErr  string
	keywordErr  string
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var paths []string
	err := filepath.WalkDir(os.Args[1], func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".txt") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		logger.Error("walk failed", "err", err)
		os.Exit(1)
	}

	lex, err := lexicon.Default()
	if err != nil {
		logger.Error("lexicon load failed", "err", err)
		os.Exit(1)
	}

	logger.Info("scanning", "files", len(paths))
	start := time.Now()
	stats := &Stats{}

	var g errgroup.Group
	g.SetLimit(maxWorkers)
	for _, path := range paths {
		g.Go(func() error {
			b, err := os.ReadFile(filepath.Clean(path))
			if err != nil {
				logger.Warn("read failed", "path", path, "err", err)
				return nil
			}
			if len(b) > normalize.MaxInputBytes {
				stats.skip()
				logger.Warn("file too large", "path", path, "bytes", len(b))
				return nil
			}
			fileStart := time.Now()
			state := check(path, string(b), normalize.New(lex), logger)
			logger.Debug("done", "path", path, "elapsed", time.Since(fileStart).Round(time.Millisecond))
			stats.merge(state)
			return nil
		})
	}
	_ = g.Wait()

	flagSentenceOutliers(stats, logger)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)

	if stats.reconFail+stats.summaryFail+stats.keywordFail > 0 {
		os.Exit(1)
	}
}

// check runs every pipeline over text and records invariant failures.
func check(path, text string, n *normalize.Normalizer, logger *slog.Logger) *fileState {
	st := &fileState{
		path:       path,
		bytes:      int64(len(text)),
		paragraphs: strings.Count(text, "\n\n") + 1,
	}

	sentTokens := tokenizer.SentenceTokens(text)
	wordTokens := tokenizer.WordTokens(text)
	st.sentences = len(sentTokens)
	st.tokens = len(wordTokens)
	for _, tokens := range [][]tokenizer.Token{sentTokens, wordTokens} {
		for _, tok := range tokens {
			if text[tok.Start:tok.End] != tok.Text {
				st.reconFailed = true
				logger.Warn("RECON_FAIL", "path", path, "token", tok.String())
				break
			}
		}
	}

	quiet := slog.New(slog.DiscardHandler)
	summary, err := summarize.New(n, summarize.WithLogger(quiet)).Summarize(text, summaryLength)
	if err != nil {
		st.summaryErr = err.Error()
	} else {
		st.summaryErr = checkSummary(text, summary)
	}
	if st.summaryErr != "" {
		logger.Warn("SUMMARY_FAIL", "path", path, "detail", st.summaryErr)
	}

	kws, err := keywords.New(n, keywords.WithLogger(quiet)).Extract(text)
	if err != nil {
		st.keywordErr = err.Error()
	} else {
		st.keywordErr = checkKeywords(kws)
	}
	if st.keywordErr != "" {
		logger.Warn("KEYWORD_FAIL", "path", path, "detail", st.keywordErr)
	}
	return st
}

func checkSummary(text string, s summarize.Summary) string {
	total := 0.0
	for i, r := range s.Sentences {
		if !strings.Contains(text, r.Text) {
			return fmt.Sprintf("sentence %d not in document", r.Index)
		}
		if math.IsNaN(r.Score) || r.Score < 0 {
			return fmt.Sprintf("sentence %d has score %v", r.Index, r.Score)
		}
		if i > 0 && s.Sentences[i-1].Score < r.Score {
			return fmt.Sprintf("sentence %d out of order", r.Index)
		}
		total += r.Score
	}
	if total > 1+scoreTolerance {
		return fmt.Sprintf("scores sum to %v", total)
	}
	return ""
}

func checkKeywords(kws []keywords.Keyword) string {
	if len(kws) == 0 {
		return ""
	}
	total := 0.0
	for _, kw := range kws {
		if math.IsNaN(kw.Score) || kw.Score < 0 || kw.Count < 1 {
			return fmt.Sprintf("keyword %q has score %v count %d", kw.Term, kw.Score, kw.Count)
		}
		total += kw.Score
	}
	if math.Abs(total-1) > 1e-6 {
		return fmt.Sprintf("scores sum to %v", total)
	}
	return ""
}

func (s *Stats) skip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filesSkipped++
}

func (s *Stats) merge(st *fileState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filesScanned++
	s.totalBytes += st.bytes
	s.sentences += st.sentences
	s.tokens += st.tokens

	if st.reconFailed {
		s.reconFail++
	} else {
		s.reconOK++
	}
	if st.summaryErr != "" {
		s.summaryFail++
	}
	if st.keywordErr != "" {
		s.keywordFail++
	}

	s.fileRatios = append(s.fileRatios, fileRatio{
		path:       st.path,
		sentences:  st.sentences,
		paragraphs: st.paragraphs,
		ratio:      float64(st.sentences) / float64(st.paragraphs),
	})
}

// flagSentenceOutliers computes the median sentence/paragraph ratio across all
// files and flags any file whose ratio exceeds 3x the median.
func flagSentenceOutliers(stats *Stats, logger *slog.Logger) {
	if len(stats.fileRatios) == 0 {
		return
	}

	ratios := make([]float64, len(stats.fileRatios))
	for i, fr := range stats.fileRatios {
		ratios[i] = fr.ratio
	}
	med := computeMedian(ratios)

	for _, fr := range stats.fileRatios {
		if med > 0 && fr.ratio > outlierFactor*med {
			stats.sentenceOutliers++
			logger.Warn("SENTENCE_OUTLIER", "path", fr.path,
				"sentences", fr.sentences, "paragraphs", fr.paragraphs,
				"ratio", fmt.Sprintf("%.2f", fr.ratio), "median", fmt.Sprintf("%.2f", med))
		}
	}
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Files skipped:           %d\n", stats.filesSkipped)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Sentences:               %d\n", stats.sentences)
	fmt.Printf("Word tokens:             %d\n", stats.tokens)
	fmt.Printf("Reconstruction OK:       %d\n", stats.reconOK)
	fmt.Printf("Reconstruction FAIL:     %d\n", stats.reconFail)
	fmt.Printf("Summary FAIL:            %d\n", stats.summaryFail)
	fmt.Printf("Keyword FAIL:            %d\n", stats.keywordFail)
	fmt.Printf("Sentence outliers:       %d\n", stats.sentenceOutliers)
}

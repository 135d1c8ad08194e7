// Command stopgen builds a stopword file from a JSONL corpus. Words found
// in at least --min-ratio of the documents become stopwords, optionally
// merged with the built-in English list. The output is accepted by the
// lexicon.stopwords setting.
//
//	go run ./cmd/stopgen --input corpus.jsonl --output stopwords.txt
//
// Each input line is a JSON object with a "text" field.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/textdigest/data"
	"github.com/az-ai-labs/textdigest/lemma"
	"github.com/az-ai-labs/textdigest/lexicon"
	"github.com/az-ai-labs/textdigest/normalize"
	"github.com/az-ai-labs/textdigest/pos"
	"github.com/az-ai-labs/textdigest/tokenizer"
)

const (
	scannerBufSize  = 1 << 20 // 1 MB
	defaultMinRatio = 0.5
	defaultMinDocs  = 10
)

// corpusEntry holds only the fields needed from each JSONL line.
type corpusEntry struct {
	Text string `json:"text"`
}

type options struct {
	minRatio float64
	minDocs  int
	merge    bool
}

// result is the outcome of one generation run.
type result struct {
	words     []string // sorted
	documents int
	frequent  int // words selected from the corpus
	skipped   int // malformed lines
}

func main() {
	if err := newCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCmd() *cobra.Command {
	var (
		input, output string
		opts          options
	)
	cmd := &cobra.Command{
		Use:          "stopgen",
		Short:        "Generate a stopword list from document frequencies",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(filepath.Clean(input))
			if err != nil {
				return errors.Wrap(err, "open input")
			}
			res, err := generate(f, opts)
			if cerr := f.Close(); err == nil && cerr != nil {
				err = errors.Wrap(cerr, "close input")
			}
			if err != nil {
				return err
			}

			if err := writeList(output, input, res); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Documents:       %d\n", res.documents)
			fmt.Fprintf(cmd.ErrOrStderr(), "Malformed lines: %d\n", res.skipped)
			fmt.Fprintf(cmd.ErrOrStderr(), "Frequent words:  %d\n", res.frequent)
			fmt.Fprintf(cmd.ErrOrStderr(), "Total entries:   %d\n", len(res.words))
			fmt.Fprintf(cmd.ErrOrStderr(), "Output file:     %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "JSONL corpus, one {\"text\": ...} object per line")
	cmd.Flags().StringVar(&output, "output", "stopwords.txt", "output path")
	cmd.Flags().Float64Var(&opts.minRatio, "min-ratio", defaultMinRatio, "minimum share of documents containing a word")
	cmd.Flags().IntVar(&opts.minDocs, "min-docs", defaultMinDocs, "minimum corpus size before corpus words are selected")
	cmd.Flags().BoolVar(&opts.merge, "merge", true, "include the built-in English stopwords")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// generate counts in how many documents each word appears and selects the
// frequent ones. Words are lowercased and cleaned the same way the
// normalizer cleans text before stopword removal.
func generate(r io.Reader, opts options) (result, error) {
	// No stopwords, tagging, or lemmatization: only the rewrite steps.
	n := normalize.New(lexicon.New(nil, pos.Uniform(pos.Noun), lemma.Identity{}))

	scanner := bufio.NewScanner(r)
	buf := make([]byte, scannerBufSize)
	scanner.Buffer(buf, scannerBufSize)

	var res result
	df := make(map[string]int)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var entry corpusEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			res.skipped++
			continue
		}

		res.documents++
		seen := make(map[string]struct{})
		for _, w := range tokenizer.Words(n.Rewrite(entry.Text)) {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			df[w]++
		}
	}
	if err := scanner.Err(); err != nil {
		return result{}, errors.Wrap(err, "scan input")
	}

	words := make(map[string]struct{})
	if res.documents >= opts.minDocs && res.documents > 0 {
		for w, c := range df {
			if float64(c)/float64(res.documents) >= opts.minRatio {
				words[w] = struct{}{}
				res.frequent++
			}
		}
	}
	if opts.merge {
		for _, w := range strings.Split(string(data.StopwordsEN), "\n") {
			if w = strings.TrimSpace(w); w != "" {
				words[w] = struct{}{}
			}
		}
	}

	res.words = make([]string, 0, len(words))
	for w := range words {
		res.words = append(res.words, w)
	}
	sort.Strings(res.words)
	return res, nil
}

func writeList(path, source string, res result) error {
	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return errors.Wrap(err, "create output")
	}

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# generated by stopgen from %s (%d documents)\n", filepath.Base(source), res.documents)
	for _, word := range res.words {
		fmt.Fprintln(w, word)
	}
	if err := w.Flush(); err != nil {
		_ = out.Close()
		return errors.Wrap(err, "write output")
	}
	return errors.Wrap(out.Close(), "close output")
}

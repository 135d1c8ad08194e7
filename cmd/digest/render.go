package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/az-ai-labs/textdigest/internal/config"
)

// render writes results as JSON, YAML, or plain text. A single result is
// written bare rather than as a one-element list.
func render[R any](w io.Writer, format string, results []R, text func(io.Writer, R) error) error {
	var v any = results
	if len(results) == 1 {
		v = results[0]
	}

	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "failed to encode json")
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		return errors.Wrap(enc.Close(), "failed to encode yaml")
	}

	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := text(w, r); err != nil {
			return err
		}
	}
	return nil
}

func header(w io.Writer, source string) error {
	if source == stdinName {
		return nil
	}
	_, err := fmt.Fprintf(w, "==> %s <==\n", source)
	return err
}

func textSummaries(w io.Writer, r summaryResult) error {
	if err := header(w, r.Source); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n(%d of %d sentences)\n",
		r.Summary.Text, len(r.Summary.Sentences), r.Summary.SentenceCount)
	return err
}

func textNaive(w io.Writer, r naiveResult) error {
	if err := header(w, r.Source); err != nil {
		return err
	}
	for _, s := range r.Sentences {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func textKeywords(w io.Writer, r keywordsResult) error {
	if err := header(w, r.Source); err != nil {
		return err
	}
	for _, kw := range r.Keywords {
		if _, err := fmt.Fprintf(w, "%-20s %.4f %d\n", kw.Term, kw.Score, kw.Count); err != nil {
			return err
		}
	}
	return nil
}

func textTopics(w io.Writer, r topicsResult) error {
	for _, t := range r.Topics {
		parts := make([]string, len(t.Terms))
		for i, term := range t.Terms {
			parts[i] = fmt.Sprintf("%.3f*%s", term.Weight, term.Word)
		}
		if _, err := fmt.Fprintf(w, "topic %d (coherence %.4f): %s\n",
			t.ID, t.Coherence, strings.Join(parts, " + ")); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/textdigest/internal/config"
	"github.com/az-ai-labs/textdigest/lexicon"
	"github.com/az-ai-labs/textdigest/normalize"
	"github.com/az-ai-labs/textdigest/tokenizer"
)

// flagKeys maps flag names to config keys. Flags missing from the running
// command are skipped.
var flagKeys = map[string]string{
	"format":     "format",
	"log-level":  "log.level",
	"log-format": "log.format",
	"workers":    "workers",
	"stopwords":  "lexicon.stopwords",
	"lemmatizer": "lexicon.lemmatizer",
	"tagger":     "lexicon.tagger",
	"splitter":   "lexicon.splitter",
	"sentences":  "summary.sentences",
	"scorer":     "summary.scorer",
	"window":     "keywords.window",
	"top":        "keywords.top",
	"topics":     "topics.count",
	"words":      "topics.words",
	"passes":     "topics.passes",
	"seed":       "topics.seed",
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	loader     *config.Loader
	configFile string

	cfg      *config.Config
	logger   *slog.Logger
	lex      *lexicon.Bundle
	splitter tokenizer.Splitter
}

// normalizer returns a new Normalizer over the shared bundle. Each worker
// takes its own.
func (a *app) normalizer() *normalize.Normalizer {
	return normalize.New(a.lex, normalize.WithSplitter(a.splitter))
}

func newRootCmd() *cobra.Command {
	a := &app{loader: config.NewLoader()}

	root := &cobra.Command{
		Use:           "digest",
		Short:         "Summaries, keywords, and topics for English text",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (yaml, json, or toml)")
	pf.String("format", config.FormatText, "output format: text, json, or yaml")
	pf.String("log-level", "info", "log level: debug, info, warn, or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Int("workers", 0, "files processed concurrently")
	pf.String("stopwords", "", "stopword file replacing the built-in list")
	pf.String("lemmatizer", lexicon.LemmatizerDictionary, "lemmatizer: dictionary, snowball, or none")
	pf.String("tagger", lexicon.TaggerPerceptron, "part-of-speech tagger: perceptron or none")
	pf.String("splitter", config.SplitterHeuristic, "sentence splitter: heuristic or punkt")

	root.AddCommand(
		newSummarizeCmd(a),
		newNaiveCmd(a),
		newKeywordsCmd(a),
		newTopicsCmd(a),
	)
	return root
}

// setup loads configuration, builds the logger, and loads the lexicon.
func (a *app) setup(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.loader.BindFlag(key, f); err != nil {
				return err
			}
		}
	}

	cfg, err := a.loader.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	a.lex, err = lexicon.Load(cfg.Resources())
	if err != nil {
		return errors.Wrap(err, "failed to load lexicon")
	}

	a.splitter = tokenizer.Heuristic
	if cfg.Lexicon.Splitter == config.SplitterPunkt {
		p, err := tokenizer.NewPunkt()
		if err != nil {
			return err
		}
		a.splitter = p
	}

	a.logger.Debug("configured",
		"format", cfg.Format,
		"workers", cfg.Workers,
		"lemmatizer", cfg.Lexicon.Lemmatizer,
		"tagger", cfg.Lexicon.Tagger,
		"splitter", cfg.Lexicon.Splitter,
	)
	return nil
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/az-ai-labs/textdigest/keywords"
	"github.com/az-ai-labs/textdigest/similarity"
	"github.com/az-ai-labs/textdigest/summarize"
	"github.com/az-ai-labs/textdigest/topics"
)

type summaryResult struct {
	Source  string            `json:"source" yaml:"source"`
	Summary summarize.Summary `json:"summary" yaml:"summary"`
}

type naiveResult struct {
	Source    string   `json:"source" yaml:"source"`
	Sentences []string `json:"sentences" yaml:"sentences"`
}

type keywordsResult struct {
	Source   string             `json:"source" yaml:"source"`
	Keywords []keywords.Keyword `json:"keywords" yaml:"keywords"`
}

type topicsResult struct {
	Documents int            `json:"documents" yaml:"documents"`
	Topics    []topics.Topic `json:"topics" yaml:"topics"`
}

func newSummarizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize [files...]",
		Short: "Extract the most central sentences with TextRank",
		RunE: func(cmd *cobra.Command, args []string) error {
			scorer, err := similarity.ByName(a.cfg.Summary.Scorer)
			if err != nil {
				return err
			}
			results, err := eachInput(cmd.Context(), a, cmd.InOrStdin(), args,
				func(in input) (summaryResult, error) {
					sm := summarize.New(a.normalizer(),
						summarize.WithScorer(scorer),
						summarize.WithRankOptions(a.cfg.RankOptions()),
						summarize.WithDefaultSentences(a.cfg.Summary.Sentences),
						summarize.WithLogger(a.logger.With("source", in.name)),
					)
					s, err := sm.Summarize(in.text, a.cfg.Summary.Sentences)
					return summaryResult{Source: in.name, Summary: s}, err
				})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.cfg.Format, results, textSummaries)
		},
	}
	cmd.Flags().IntP("sentences", "p", summarize.DefaultSentences, "sentences per summary")
	cmd.Flags().String("scorer", similarity.KindBM25, "sentence similarity: bm25 or jaccard")
	return cmd
}

func newNaiveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "naive [files...]",
		Short: "Pick sentences by word frequency, in document order",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := eachInput(cmd.Context(), a, cmd.InOrStdin(), args,
				func(in input) (naiveResult, error) {
					n := summarize.NewNaive(a.normalizer())
					return naiveResult{Source: in.name, Sentences: n.Summarize(in.text, a.cfg.Summary.Sentences)}, nil
				})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.cfg.Format, results, textNaive)
		},
	}
	cmd.Flags().IntP("sentences", "p", summarize.DefaultSentences, "sentences per summary")
	return cmd
}

func newKeywordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keywords [files...]",
		Short: "Rank keywords with TextRank over a co-occurrence graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := eachInput(cmd.Context(), a, cmd.InOrStdin(), args,
				func(in input) (keywordsResult, error) {
					e := keywords.New(a.normalizer(),
						keywords.WithWindow(a.cfg.Keywords.Window),
						keywords.WithRankOptions(a.cfg.RankOptions()),
						keywords.WithLogger(a.logger.With("source", in.name)),
					)
					kws, err := e.Top(in.text, a.cfg.Keywords.Top)
					return keywordsResult{Source: in.name, Keywords: kws}, err
				})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), a.cfg.Format, results, textKeywords)
		},
	}
	cmd.Flags().Int("window", 2, "co-occurrence window size")
	cmd.Flags().Int("top", 10, "keywords per input")
	return cmd
}

func newTopicsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics [files...]",
		Short: "Find topics across documents with LDA",
		Long: "Find topics across documents with LDA. Each file is one document. " +
			"Without files, each non-blank line of standard input is one document.",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := readDocuments(cmd.Context(), cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			f := topics.NewFinder(a.normalizer(), docs,
				topics.WithSeed(a.cfg.Topics.Seed),
				topics.WithLogger(a.logger),
			)
			found, err := f.FindTopics(a.cfg.Topics.Count, a.cfg.Topics.Words, a.cfg.Topics.Passes)
			if err != nil {
				return errors.Wrap(err, "topics")
			}
			return render(cmd.OutOrStdout(), a.cfg.Format,
				[]topicsResult{{Documents: len(docs), Topics: found}}, textTopics)
		},
	}
	cmd.Flags().Int("topics", 2, "number of topics")
	cmd.Flags().Int("words", topics.DefaultWords, "words per topic")
	cmd.Flags().Int("passes", topics.DefaultPasses, "training passes")
	cmd.Flags().Uint64("seed", topics.DefaultSeed, "random seed")
	return cmd
}

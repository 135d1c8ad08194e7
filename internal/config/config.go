// Package config loads digest settings from defaults, an optional config
// file, .env files, DIGEST_* environment variables, and command-line flags,
// in increasing order of precedence.
package config

import (
	"log/slog"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/az-ai-labs/textdigest/lexicon"
	"github.com/az-ai-labs/textdigest/rank"
	"github.com/az-ai-labs/textdigest/similarity"
	"github.com/az-ai-labs/textdigest/summarize"
	"github.com/az-ai-labs/textdigest/topics"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "DIGEST"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Sentence splitters.
const (
	SplitterHeuristic = "heuristic"
	SplitterPunkt     = "punkt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

type LexiconConfig struct {
	Stopwords  string `mapstructure:"stopwords"`
	Lemmatizer string `mapstructure:"lemmatizer"`
	Tagger     string `mapstructure:"tagger"`
	Splitter   string `mapstructure:"splitter"`
}

type RankConfig struct {
	Damping   float64 `mapstructure:"damping"`
	MaxIter   int     `mapstructure:"max_iter"`
	Tolerance float64 `mapstructure:"tolerance"`
}

type SummaryConfig struct {
	Sentences int    `mapstructure:"sentences"`
	Scorer    string `mapstructure:"scorer"`
}

type KeywordsConfig struct {
	Window int `mapstructure:"window"`
	Top    int `mapstructure:"top"`
}

type TopicsConfig struct {
	Count  int    `mapstructure:"count"`
	Words  int    `mapstructure:"words"`
	Passes int    `mapstructure:"passes"`
	Seed   uint64 `mapstructure:"seed"`
}

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Lexicon  LexiconConfig  `mapstructure:"lexicon"`
	Rank     RankConfig     `mapstructure:"rank"`
	Summary  SummaryConfig  `mapstructure:"summary"`
	Keywords KeywordsConfig `mapstructure:"keywords"`
	Topics   TopicsConfig   `mapstructure:"topics"`
	Format   string         `mapstructure:"format"`
	Workers  int            `mapstructure:"workers"`
}

// Loader accumulates configuration sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with every default set and DIGEST_* variables
// enabled. Nested keys map to variables with "." replaced by "_", so
// summary.sentences is read from DIGEST_SUMMARY_SENTENCES.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("lexicon.stopwords", "")
	v.SetDefault("lexicon.lemmatizer", lexicon.LemmatizerDictionary)
	v.SetDefault("lexicon.tagger", lexicon.TaggerPerceptron)
	v.SetDefault("lexicon.splitter", SplitterHeuristic)

	v.SetDefault("rank.damping", rank.DefaultDamping)
	v.SetDefault("rank.max_iter", rank.DefaultMaxIter)
	v.SetDefault("rank.tolerance", rank.DefaultTolerance)

	v.SetDefault("summary.sentences", summarize.DefaultSentences)
	v.SetDefault("summary.scorer", similarity.KindBM25)

	v.SetDefault("keywords.window", 2)
	v.SetDefault("keywords.top", 10)

	v.SetDefault("topics.count", 2)
	v.SetDefault("topics.words", topics.DefaultWords)
	v.SetDefault("topics.passes", topics.DefaultPasses)
	v.SetDefault("topics.seed", topics.DefaultSeed)

	v.SetDefault("format", FormatText)
	v.SetDefault("workers", min(runtime.NumCPU(), 8))
}

// BindFlag makes flag override key when the flag is set on the command
// line.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return errors.Errorf("no flag for key %q", key)
	}
	return errors.Wrapf(l.v.BindPFlag(key, flag), "failed to bind flag %s", flag.Name)
}

// Load reads envFiles into the environment, then configFile if set, and
// returns the validated result. With no envFiles a .env file in the
// working directory is loaded when present. Variables already set in the
// environment are never overwritten by env files.
func (l *Loader) Load(configFile string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, errors.Wrap(err, "failed to load env files")
	}

	if configFile != "" {
		l.v.SetConfigFile(configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", configFile)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Wrapf(ErrInvalid, "log.format %q", c.Log.Format)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Wrapf(ErrInvalid, "format %q", c.Format)
	}
	switch c.Lexicon.Splitter {
	case SplitterHeuristic, SplitterPunkt:
	default:
		return errors.Wrapf(ErrInvalid, "lexicon.splitter %q", c.Lexicon.Splitter)
	}
	if _, err := similarity.ByName(c.Summary.Scorer); err != nil {
		return errors.Wrapf(ErrInvalid, "summary.scorer: %v", err)
	}
	if c.Rank.Damping <= 0 || c.Rank.Damping >= 1 {
		return errors.Wrapf(ErrInvalid, "rank.damping %v not in (0, 1)", c.Rank.Damping)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalid, "workers %d", c.Workers)
	}
	if c.Keywords.Window < 1 {
		return errors.Wrapf(ErrInvalid, "keywords.window %d", c.Keywords.Window)
	}
	if c.Topics.Count < 1 {
		return errors.Wrapf(ErrInvalid, "topics.count %d", c.Topics.Count)
	}
	return nil
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, errors.Wrapf(ErrInvalid, "log.level %q", c.Log.Level)
	}
	return lvl, nil
}

// Resources returns the resource selection for lexicon.Load.
func (c *Config) Resources() lexicon.Config {
	return lexicon.Config{
		StopwordsPath: c.Lexicon.Stopwords,
		Lemmatizer:    c.Lexicon.Lemmatizer,
		Tagger:        c.Lexicon.Tagger,
	}
}

// RankOptions returns the PageRank parameters.
func (c *Config) RankOptions() rank.Options {
	return rank.Options{
		Damping:   c.Rank.Damping,
		MaxIter:   c.Rank.MaxIter,
		Tolerance: c.Rank.Tolerance,
	}
}

package rake

import (
	"context"
	"fmt"
)

// Ensure Extractor implements KeywordExtractor at compile time.
var _ KeywordExtractor = (*Extractor)(nil)

// Config is the preset configuration of an Extractor.
type Config struct {
	// StopWords is an explicit stoplist. It takes priority over StopWordPath.
	StopWords []string `json:"stopWords" yaml:"stopwords"`

	// StopWordPath names a stoplist file.
	StopWordPath string `json:"stopWordPath" yaml:"stopword_file"`

	// MinWordLength is exclusive: words must be longer than this to seed
	// a word score.
	MinWordLength int `json:"minWordLength" yaml:"min_word_length"`

	// MaxKeywords caps the ranking. Zero returns a third of all candidates.
	MaxKeywords int `json:"maxKeywords" yaml:"max_keywords"`
}

// Validate returns an error if the configuration contains invalid fields.
func (c Config) Validate() error {
	if c.MaxKeywords < 0 {
		return Errorf(EINVALID, "max keywords must be non-negative, got %d", c.MaxKeywords)
	}
	if c.MinWordLength < 0 {
		return Errorf(EINVALID, "min word length must be non-negative, got %d", c.MinWordLength)
	}
	return nil
}

// Extractor runs the RAKE pipeline with a fixed configuration. The
// configuration is never mutated, so an Extractor is safe for concurrent use
// when its StopWordLoader is.
type Extractor struct {
	config Config
	loader StopWordLoader
}

// NewExtractor creates a new Extractor. loader may be nil when no stopword
// file is ever used.
func NewExtractor(config Config, loader StopWordLoader) (*Extractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.StopWords = append([]string(nil), config.StopWords...)
	return &Extractor{config: config, loader: loader}, nil
}

// Config returns a copy of the extractor's configuration.
func (e *Extractor) Config() Config {
	c := e.config
	c.StopWords = append([]string(nil), c.StopWords...)
	return c
}

// Extract implements KeywordExtractor.
func (e *Extractor) Extract(ctx context.Context, text string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = e.resolve(opts)

	stopWords, err := e.stopWords(ctx, opts)
	if err != nil {
		return nil, err
	}

	sentences := SplitSentences(text)
	candidates := ExtractCandidates(sentences, NewMatcher(stopWords))
	scores := WordScores(CalculateWordStats(candidates, opts.MinWordLength))
	scored := ScoreCandidates(candidates, scores)

	return &Result{
		Candidates: candidates,
		Scored:     scored,
		Keywords:   RankKeywords(scored, opts.MaxKeywords),
	}, nil
}

// GenerateKeywords is like Extract but returns only the ranked keywords.
func (e *Extractor) GenerateKeywords(ctx context.Context, text string, opts Options) ([]Keyword, error) {
	result, err := e.Extract(ctx, text, opts)
	if err != nil {
		return nil, err
	}
	return result.Keywords, nil
}

// resolve fills zero-valued options from the configuration.
func (e *Extractor) resolve(opts Options) Options {
	if len(opts.StopWords) == 0 && opts.StopWordPath == "" {
		opts.StopWords = e.config.StopWords
		opts.StopWordPath = e.config.StopWordPath
	}
	if opts.MaxKeywords == 0 {
		opts.MaxKeywords = e.config.MaxKeywords
	}
	if opts.MinWordLength == 0 {
		opts.MinWordLength = e.config.MinWordLength
	}
	return opts
}

// stopWords returns the explicit list when present, otherwise the contents
// of the stoplist file. No source at all yields an empty stoplist.
func (e *Extractor) stopWords(ctx context.Context, opts Options) ([]string, error) {
	if len(opts.StopWords) > 0 {
		return opts.StopWords, nil
	}
	if opts.StopWordPath == "" {
		return nil, nil
	}
	if e.loader == nil {
		return nil, Errorf(EINVALID, "no stopword loader configured for %q", opts.StopWordPath)
	}
	words, err := e.loader.LoadStopWords(ctx, opts.StopWordPath)
	if err != nil {
		return nil, fmt.Errorf("load stopwords: %w", err)
	}
	return words, nil
}

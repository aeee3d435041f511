package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rake"
)

// Ensure LoggingExtractor implements rake.KeywordExtractor.
var _ rake.KeywordExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a KeywordExtractor with logging. At debug level it
// also logs the scored candidates before and after ranking.
type LoggingExtractor struct {
	next   rake.KeywordExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next rake.KeywordExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, text string, opts rake.Options) (result *rake.Result, err error) {
	defer func(begin time.Time) {
		var candidates, keywords int
		if result != nil {
			candidates = len(result.Candidates)
			keywords = len(result.Keywords)
		}
		e.logger.Info("keyword extraction",
			"bytes", len(text),
			"candidates", candidates,
			"keywords", keywords,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	result, err = e.next.Extract(ctx, text, opts)
	if err != nil {
		return nil, err
	}

	e.logger.DebugContext(ctx, "scored candidates", "scored", result.Scored)
	e.logger.DebugContext(ctx, "sorted keywords", "keywords", result.Keywords)
	e.logger.DebugContext(ctx, "candidate total", "total", result.Total())
	return result, nil
}

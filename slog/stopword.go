package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rake"
)

// Ensure LoggingStopWordLoader implements rake.StopWordLoader.
var _ rake.StopWordLoader = (*LoggingStopWordLoader)(nil)

// LoggingStopWordLoader wraps a StopWordLoader with logging.
type LoggingStopWordLoader struct {
	next   rake.StopWordLoader
	logger *slog.Logger
}

// NewLoggingStopWordLoader creates a new LoggingStopWordLoader.
func NewLoggingStopWordLoader(next rake.StopWordLoader, logger *slog.Logger) *LoggingStopWordLoader {
	return &LoggingStopWordLoader{next: next, logger: logger}
}

// LoadStopWords delegates to the wrapped loader and logs the word count.
func (l *LoggingStopWordLoader) LoadStopWords(ctx context.Context, path string) (words []string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load stopwords",
			"path", path,
			"count", len(words),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadStopWords(ctx, path)
}

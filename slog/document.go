package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rake"
)

// Ensure LoggingDocumentLoader implements rake.DocumentLoader.
var _ rake.DocumentLoader = (*LoggingDocumentLoader)(nil)

// LoggingDocumentLoader wraps a DocumentLoader with logging.
type LoggingDocumentLoader struct {
	next   rake.DocumentLoader
	logger *slog.Logger
}

// NewLoggingDocumentLoader creates a new LoggingDocumentLoader.
func NewLoggingDocumentLoader(next rake.DocumentLoader, logger *slog.Logger) *LoggingDocumentLoader {
	return &LoggingDocumentLoader{next: next, logger: logger}
}

// LoadDocument delegates to the wrapped loader and logs the text size.
func (l *LoggingDocumentLoader) LoadDocument(ctx context.Context, source string) (doc *rake.Document, err error) {
	defer func(begin time.Time) {
		var chars int
		if doc != nil {
			chars = len(doc.Text)
		}
		l.logger.Info("load document",
			"source", source,
			"bytes", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadDocument(ctx, source)
}

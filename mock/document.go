package mock

import (
	"context"

	"github.com/fwojciec/rake"
)

var _ rake.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of rake.DocumentLoader.
type DocumentLoader struct {
	LoadDocumentFn func(ctx context.Context, source string) (*rake.Document, error)
}

func (l *DocumentLoader) LoadDocument(ctx context.Context, source string) (*rake.Document, error) {
	return l.LoadDocumentFn(ctx, source)
}

package mock

import (
	"context"

	"github.com/fwojciec/rake"
)

var _ rake.KeywordExtractor = (*KeywordExtractor)(nil)

// KeywordExtractor is a mock implementation of rake.KeywordExtractor.
type KeywordExtractor struct {
	ExtractFn func(ctx context.Context, text string, opts rake.Options) (*rake.Result, error)
}

func (e *KeywordExtractor) Extract(ctx context.Context, text string, opts rake.Options) (*rake.Result, error) {
	return e.ExtractFn(ctx, text, opts)
}

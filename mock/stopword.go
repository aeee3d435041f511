package mock

import (
	"context"

	"github.com/fwojciec/rake"
)

var _ rake.StopWordLoader = (*StopWordLoader)(nil)

// StopWordLoader is a mock implementation of rake.StopWordLoader.
type StopWordLoader struct {
	LoadStopWordsFn func(ctx context.Context, path string) ([]string, error)
}

func (l *StopWordLoader) LoadStopWords(ctx context.Context, path string) ([]string, error) {
	return l.LoadStopWordsFn(ctx, path)
}

// Package fs provides file-based stoplist and document loading.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/rake"
)

// Ensure StopWordLoader implements rake.StopWordLoader at compile time.
var _ rake.StopWordLoader = (*StopWordLoader)(nil)

// StopWordLoader reads stoplists from disk.
type StopWordLoader struct{}

// NewStopWordLoader creates a new StopWordLoader.
func NewStopWordLoader() *StopWordLoader {
	return &StopWordLoader{}
}

// LoadStopWords reads and parses the stoplist at path.
func (l *StopWordLoader) LoadStopWords(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, rake.Errorf(rake.ENOTFOUND, "could not open stopword file %q", path)
		}
		return nil, fmt.Errorf("open stopword file: %w", err)
	}
	defer f.Close()

	return rake.ParseStopWords(f)
}

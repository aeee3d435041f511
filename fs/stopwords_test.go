package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rake"
	"github.com/fwojciec/rake/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Loading a stoplist from disk

func TestStopWordLoader_SkipsCommentLines(t *testing.T) {
	t.Parallel()

	// Given a stoplist with a comment header
	path := filepath.Join(t.TempDir(), "stoplist.txt")
	require.NoError(t, os.WriteFile(path, []byte("# header\na an the\n"), 0644))

	// When I load it
	words, err := fs.NewStopWordLoader().LoadStopWords(context.Background(), path)

	// Then only the words on the other lines are returned
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "an", "the"}, words)
	assert.Len(t, rake.NewStopWordSet(words), 3)
}

func TestStopWordLoader_MissingFileIsNotFound(t *testing.T) {
	t.Parallel()

	// Given a path that does not exist
	path := filepath.Join(t.TempDir(), "missing.txt")

	// When I load it
	_, err := fs.NewStopWordLoader().LoadStopWords(context.Background(), path)

	// Then a not found error is returned
	require.Error(t, err)
	assert.Equal(t, rake.ENOTFOUND, rake.ErrorCode(err))
	assert.Contains(t, rake.ErrorMessage(err), "missing.txt")
}

func TestStopWordLoader_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fs.NewStopWordLoader().LoadStopWords(ctx, "whatever.txt")

	require.ErrorIs(t, err, context.Canceled)
}

func TestStopWordLoader_FeedsExtractor(t *testing.T) {
	t.Parallel()

	// Given an extractor configured with a stoplist file
	path := filepath.Join(t.TempDir(), "stoplist.txt")
	require.NoError(t, os.WriteFile(path, []byte("#stoplist\nover\n"), 0644))
	e, err := rake.NewExtractor(rake.Config{StopWordPath: path}, fs.NewStopWordLoader())
	require.NoError(t, err)

	// When I extract keywords
	result, err := e.Extract(context.Background(), "linear constraints over natural numbers", rake.Options{})

	// Then the file's stopwords split the candidates
	require.NoError(t, err)
	assert.Equal(t, []string{"linear constraints", "natural numbers"}, result.Candidates)
}

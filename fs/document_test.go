package fs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/rake"
	"github.com/fwojciec/rake/fs"
	"github.com/fwojciec/rake/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Loading documents from disk

func TestDocumentLoader_ReadsPlainText(t *testing.T) {
	t.Parallel()

	// Given a text file
	path := filepath.Join(t.TempDir(), "abstract.txt")
	require.NoError(t, os.WriteFile(path, []byte("Linear constraints."), 0644))

	// When I load it
	doc, err := fs.NewDocumentLoader(nil, nil).LoadDocument(context.Background(), path)

	// Then the text is returned as is
	require.NoError(t, err)
	assert.Equal(t, &rake.Document{Source: path, Text: "Linear constraints."}, doc)
}

func TestDocumentLoader_ReadsStdin(t *testing.T) {
	t.Parallel()

	loader := fs.NewDocumentLoader(nil, nil)
	loader.Stdin = strings.NewReader("piped text")

	doc, err := loader.LoadDocument(context.Background(), fs.Stdin)

	require.NoError(t, err)
	assert.Equal(t, "piped text", doc.Text)
	assert.Equal(t, "-", doc.Source)
}

func TestDocumentLoader_ExtractsHTML(t *testing.T) {
	t.Parallel()

	// Given an HTML file
	path := filepath.Join(t.TempDir(), "page.HTML")
	require.NoError(t, os.WriteFile(path, []byte("<html><p>Natural numbers</p></html>"), 0644))

	extractor := &mock.ContentExtractor{
		ExtractFn: func(html string) (*rake.ExtractResult, error) {
			return &rake.ExtractResult{Title: "Numbers", ContentHTML: "<p>Natural numbers</p>"}, nil
		},
	}
	converter := &mock.TextConverter{
		ConvertFn: func(html string) (string, error) {
			return "Natural numbers.", nil
		},
	}

	// When I load it
	doc, err := fs.NewDocumentLoader(extractor, converter).LoadDocument(context.Background(), path)

	// Then the main content text and title are returned
	require.NoError(t, err)
	assert.Equal(t, &rake.Document{Source: path, Title: "Numbers", Text: "Natural numbers."}, doc)
}

func TestDocumentLoader_HTMLExtractionError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "page.htm")
	require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

	extractor := &mock.ContentExtractor{
		ExtractFn: func(string) (*rake.ExtractResult, error) {
			return nil, errors.New("no content")
		},
	}

	_, err := fs.NewDocumentLoader(extractor, &mock.TextConverter{}).LoadDocument(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content")
}

func TestDocumentLoader_MissingFileIsNotFound(t *testing.T) {
	t.Parallel()

	_, err := fs.NewDocumentLoader(nil, nil).LoadDocument(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))

	require.Error(t, err)
	assert.Equal(t, rake.ENOTFOUND, rake.ErrorCode(err))
}

func TestIsHTML(t *testing.T) {
	t.Parallel()

	assert.True(t, fs.IsHTML("index.html"))
	assert.True(t, fs.IsHTML("docs/page.HTM"))
	assert.False(t, fs.IsHTML("notes.txt"))
	assert.False(t, fs.IsHTML("html"))
}

package rake_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/rake"
	"github.com/fwojciec/rake/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLDocument(t *testing.T) {
	t.Parallel()

	t.Run("extracts content then converts it to text", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.ContentExtractor{
			ExtractFn: func(html string) (*rake.ExtractResult, error) {
				assert.Equal(t, "<html>raw</html>", html)
				return &rake.ExtractResult{Title: "Abstract", ContentHTML: "<p>content</p>"}, nil
			},
		}
		converter := &mock.TextConverter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<p>content</p>", html)
				return "content.", nil
			},
		}

		doc, err := rake.HTMLDocument("<html>raw</html>", extractor, converter)

		require.NoError(t, err)
		assert.Equal(t, &rake.Document{Title: "Abstract", Text: "content."}, doc)
	})

	t.Run("returns extractor errors", func(t *testing.T) {
		t.Parallel()

		extractor := &mock.ContentExtractor{
			ExtractFn: func(string) (*rake.ExtractResult, error) {
				return nil, errors.New("no content")
			},
		}

		_, err := rake.HTMLDocument("<html></html>", extractor, &mock.TextConverter{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no content")
	})

	t.Run("requires both collaborators", func(t *testing.T) {
		t.Parallel()

		_, err := rake.HTMLDocument("<html></html>", nil, nil)

		assert.Equal(t, rake.EINVALID, rake.ErrorCode(err))
	})
}

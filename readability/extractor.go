// Package readability extracts the main content of web pages with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/rake"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements rake.ContentExtractor at compile time.
var _ rake.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*rake.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, rake.Errorf(rake.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &rake.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

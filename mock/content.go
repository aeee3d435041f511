package mock

import "github.com/fwojciec/rake"

var _ rake.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of rake.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*rake.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*rake.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ rake.TextConverter = (*TextConverter)(nil)

// TextConverter is a mock implementation of rake.TextConverter.
type TextConverter struct {
	ConvertFn func(html string) (string, error)
}

func (c *TextConverter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

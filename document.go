package rake

import "context"

// Document is a text to extract keywords from.
type Document struct {
	// Source is the file path, URL or "-" the text came from.
	Source string `json:"source"`

	// Title is taken from page metadata for HTML sources.
	Title string `json:"title"`

	// Text is the plain text fed to the extractor.
	Text string `json:"text"`
}

// DocumentLoader loads a document from a source.
type DocumentLoader interface {
	// LoadDocument reads the document at source.
	// Returns ENOTFOUND if the source does not exist.
	LoadDocument(ctx context.Context, source string) (*Document, error)
}

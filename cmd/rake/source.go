package main

import (
	"context"

	"github.com/fwojciec/rake"
	rakehttp "github.com/fwojciec/rake/http"
)

// TextSource names the document passed with --text.
const TextSource = "text"

// Compile-time interface verification.
var (
	_ rake.DocumentLoader = (*SourceLoader)(nil)
	_ rake.DocumentLoader = (*TextLoader)(nil)
)

// SourceLoader routes http(s) URLs to URLs and everything else to Files.
type SourceLoader struct {
	Files rake.DocumentLoader
	URLs  rake.DocumentLoader
}

// LoadDocument implements rake.DocumentLoader.
func (l *SourceLoader) LoadDocument(ctx context.Context, source string) (*rake.Document, error) {
	if rakehttp.IsURL(source) {
		return l.URLs.LoadDocument(ctx, source)
	}
	return l.Files.LoadDocument(ctx, source)
}

// TextLoader serves a fixed text for any source.
type TextLoader struct {
	Text string
}

// LoadDocument implements rake.DocumentLoader.
func (l *TextLoader) LoadDocument(_ context.Context, source string) (*rake.Document, error) {
	return &rake.Document{Source: source, Text: l.Text}, nil
}

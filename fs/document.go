package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/rake"
)

// Stdin is the source name that reads from the loader's standard input.
const Stdin = "-"

// Ensure DocumentLoader implements rake.DocumentLoader at compile time.
var _ rake.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader reads documents from local files. Files with an .html or
// .htm extension are reduced to their main content text.
type DocumentLoader struct {
	// Stdin is read for the "-" source. Defaults to os.Stdin.
	Stdin io.Reader

	// Extractor and Converter handle HTML files.
	Extractor rake.ContentExtractor
	Converter rake.TextConverter
}

// NewDocumentLoader creates a new DocumentLoader.
func NewDocumentLoader(extractor rake.ContentExtractor, converter rake.TextConverter) *DocumentLoader {
	return &DocumentLoader{
		Stdin:     os.Stdin,
		Extractor: extractor,
		Converter: converter,
	}
}

// LoadDocument reads the file at source, or standard input for "-".
func (l *DocumentLoader) LoadDocument(ctx context.Context, source string) (*rake.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := l.read(source)
	if err != nil {
		return nil, err
	}

	if !IsHTML(source) {
		return &rake.Document{Source: source, Text: string(data)}, nil
	}

	doc, err := rake.HTMLDocument(string(data), l.Extractor, l.Converter)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", source, err)
	}
	doc.Source = source
	return doc, nil
}

func (l *DocumentLoader) read(source string) ([]byte, error) {
	if source == Stdin {
		r := l.Stdin
		if r == nil {
			r = os.Stdin
		}
		return io.ReadAll(r)
	}

	data, err := os.ReadFile(source)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, rake.Errorf(rake.ENOTFOUND, "file %q not found", source)
	}
	return data, err
}

// IsHTML reports whether path names an HTML file.
func IsHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

package http

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fwojciec/rake"
)

// Ensure DocumentLoader implements rake.DocumentLoader at compile time.
var _ rake.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader loads web pages and reduces them to their main content text.
type DocumentLoader struct {
	Fetcher     rake.Fetcher
	Extractor   rake.ContentExtractor
	Converter   rake.TextConverter
	RateLimiter rake.DomainLimiter
}

// LoadDocument fetches the page at source and returns its text.
func (l *DocumentLoader) LoadDocument(ctx context.Context, source string) (*rake.Document, error) {
	u, err := url.Parse(source)
	if err != nil || !IsURL(source) {
		return nil, rake.Errorf(rake.EINVALID, "invalid URL %q", source)
	}

	if l.RateLimiter != nil {
		if err := l.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := l.Fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", source, err)
	}

	doc, err := rake.HTMLDocument(html, l.Extractor, l.Converter)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", source, err)
	}
	doc.Source = source
	return doc, nil
}

// IsURL reports whether source is an absolute http or https URL.
func IsURL(source string) bool {
	u, err := url.Parse(source)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

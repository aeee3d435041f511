// Package bloom provides source deduplication using Bloom filters.
package bloom

import (
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter wraps a Bloom filter for source deduplication.
// It is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected sources
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(max(n, 1), fpRate),
	}
}

// Add records source as seen. It reports false if the source was
// probably seen before. Fragments of URL sources are ignored.
func (f *Filter) Add(source string) bool {
	return !f.f.TestAndAddString(normalize(source))
}

// Test returns true if the source might have been added.
// False positives are possible; false negatives are not.
func (f *Filter) Test(source string) bool {
	return f.f.TestString(normalize(source))
}

// EstimatedCount returns the approximate number of distinct sources added.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

func normalize(source string) string {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if idx := strings.Index(source, "#"); idx != -1 {
			return source[:idx]
		}
	}
	return source
}

// Package rake implements RAKE (Rapid Automatic Keyword Extraction).
// Given a document and a stoplist it produces candidate phrases ranked by how
// strongly their words co-occur with other words inside candidate phrases.
//
// This package contains the scoring pipeline, domain types and interfaces
// following Ben Johnson's Standard Package Layout. Implementations that need
// a third-party dependency live in subdirectories named after it (e.g.,
// sqlite/, goquery/, trafilatura/).
package rake

import "context"

// Keyword is a candidate phrase together with its score.
type Keyword struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// Result holds every stage of one extraction.
type Result struct {
	// Candidates lists every candidate phrase in document order.
	// Repeated phrases are kept.
	Candidates []string `json:"candidates"`

	// Scored holds one entry per distinct candidate in first-seen order.
	Scored []Keyword `json:"scored"`

	// Keywords holds the sorted and truncated ranking.
	Keywords []Keyword `json:"keywords"`
}

// Total returns the number of distinct candidate phrases.
func (r *Result) Total() int {
	return len(r.Scored)
}

// Options overrides the extractor configuration for a single call.
// Zero values fall back to the extractor's Config.
type Options struct {
	StopWords     []string
	StopWordPath  string
	MaxKeywords   int
	MinWordLength int
}

// Validate returns an error if the options contain invalid fields.
func (o Options) Validate() error {
	if o.MaxKeywords < 0 {
		return Errorf(EINVALID, "max keywords must be non-negative, got %d", o.MaxKeywords)
	}
	if o.MinWordLength < 0 {
		return Errorf(EINVALID, "min word length must be non-negative, got %d", o.MinWordLength)
	}
	return nil
}

// KeywordExtractor extracts ranked keywords from text.
type KeywordExtractor interface {
	// Extract runs the full pipeline over text.
	// Returns EINVALID for bad options and ENOTFOUND when a stopword
	// file cannot be opened.
	Extract(ctx context.Context, text string, opts Options) (*Result, error)
}

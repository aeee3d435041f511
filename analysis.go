package rake

import (
	"context"
	"time"
)

// Analysis is a stored extraction result for one document.
type Analysis struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	Candidates  int       `json:"candidates"`
	Keywords    []Keyword `json:"keywords"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.Source == "" {
		return Errorf(EINVALID, "analysis source required")
	}
	if a.Candidates < 0 {
		return Errorf(EINVALID, "analysis candidate count must be non-negative")
	}
	return nil
}

// AnalysisService represents a service for managing stored analyses.
type AnalysisService interface {
	// CreateAnalysis stores an analysis together with its keywords.
	// The text is only used to compute ContentHash and is not stored.
	CreateAnalysis(ctx context.Context, a *Analysis, text string) error

	// FindAnalysisByID retrieves an analysis and its keywords by ID.
	// Returns ENOTFOUND if the analysis does not exist.
	FindAnalysisByID(ctx context.Context, id string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter, newest first.
	// Keywords are not loaded.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)

	// DeleteAnalysis permanently removes an analysis and its keywords.
	// Returns ENOTFOUND if the analysis does not exist.
	DeleteAnalysis(ctx context.Context, id string) error
}

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	ID          *string `json:"id"`
	Source      *string `json:"source"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

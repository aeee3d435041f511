package mock

import (
	"context"

	"github.com/fwojciec/rake"
)

var _ rake.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of rake.AnalysisService.
type AnalysisService struct {
	CreateAnalysisFn   func(ctx context.Context, a *rake.Analysis, text string) error
	FindAnalysisByIDFn func(ctx context.Context, id string) (*rake.Analysis, error)
	FindAnalysesFn     func(ctx context.Context, filter rake.AnalysisFilter) ([]*rake.Analysis, error)
	DeleteAnalysisFn   func(ctx context.Context, id string) error
}

func (s *AnalysisService) CreateAnalysis(ctx context.Context, a *rake.Analysis, text string) error {
	return s.CreateAnalysisFn(ctx, a, text)
}

func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*rake.Analysis, error) {
	return s.FindAnalysisByIDFn(ctx, id)
}

func (s *AnalysisService) FindAnalyses(ctx context.Context, filter rake.AnalysisFilter) ([]*rake.Analysis, error) {
	return s.FindAnalysesFn(ctx, filter)
}

func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	return s.DeleteAnalysisFn(ctx, id)
}

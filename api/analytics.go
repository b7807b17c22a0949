package api

import (
	"context"
	"net/http"
)

// AnalyticsService covers the model-assisted analysis endpoints. The
// narrative parts of each response are produced by a language model on
// the server and vary between calls.
type AnalyticsService struct {
	core *core
}

// BurnRate computes workspace burn-rate metrics with a written
// assessment. Management roles only.
func (s *AnalyticsService) BurnRate(ctx context.Context) (*BurnRateAnalysis, error) {
	var out BurnRateAnalysis
	if err := s.core.do(ctx, http.MethodPost, "/analytics/burn-rate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnitEconomics computes CAC/LTV-style metrics with a written
// assessment. Management roles only.
func (s *AnalyticsService) UnitEconomics(ctx context.Context) (*UnitEconomicsAnalysis, error) {
	var out UnitEconomicsAnalysis
	if err := s.core.do(ctx, http.MethodPost, "/analytics/unit-economics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EstimateProject prices a project from its tasks in the given currency.
// The document's shape depends on the server's model backend, so it is
// returned undecoded.
func (s *AnalyticsService) EstimateProject(ctx context.Context, projectName, currency string) (map[string]any, error) {
	in := struct {
		ProjectName string `json:"project_name"`
		Currency    string `json:"currency,omitempty"`
	}{ProjectName: projectName, Currency: currency}

	var out map[string]any
	if err := s.core.do(ctx, http.MethodPost, "/analytics/project-estimation", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OptimizeProduct runs the product-optimization analysis. The document's
// shape depends on the server's model backend, so it is returned
// undecoded.
func (s *AnalyticsService) OptimizeProduct(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := s.core.do(ctx, http.MethodPost, "/analytics/product-optimization", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GeneratePitch builds a ten-slide investor deck from the workspace's
// live metrics.
func (s *AnalyticsService) GeneratePitch(ctx context.Context) ([]PitchSlide, error) {
	var out []PitchSlide
	if err := s.core.do(ctx, http.MethodPost, "/ai/generate-pitch", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

package api

import (
	"context"
	"net/http"
)

// DashboardService reads the workspace's aggregate counters.
type DashboardService struct {
	core *core
}

// Stats returns the dashboard counters for the caller's workspace.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := s.core.do(ctx, http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

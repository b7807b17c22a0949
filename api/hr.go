package api

import (
	"context"
	"net/http"

	oneclient "github.com/enterpriseone/oneclient"
)

// HRService covers the employee directory and leave requests.
type HRService struct {
	core *core
}

// Employees lists the workspace's members.
func (s *HRService) Employees(ctx context.Context) ([]oneclient.Profile, error) {
	var out []oneclient.Profile
	if err := s.core.do(ctx, http.MethodGet, "/hr/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Leaves lists leave requests. Non-management callers see only their
// own; management sees the whole workspace.
func (s *HRService) Leaves(ctx context.Context) ([]Leave, error) {
	var out []Leave
	if err := s.core.do(ctx, http.MethodGet, "/hr/leaves", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RequestLeave submits a leave request, which starts pending.
func (s *HRService) RequestLeave(ctx context.Context, in LeaveInput) (*Leave, error) {
	var out Leave
	if err := s.core.do(ctx, http.MethodPost, "/hr/leaves", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetLeaveStatus approves or rejects a leave request. Management roles
// only; the caller is recorded as the approver.
func (s *HRService) SetLeaveStatus(ctx context.Context, id, status string) (*Leave, error) {
	in := struct {
		Status string `json:"status"`
	}{Status: status}

	var out Leave
	if err := s.core.do(ctx, http.MethodPut, "/hr/leaves/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

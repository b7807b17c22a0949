package api

import (
	"context"
	"net/http"
)

// AuditLogsService reads the server-side audit trail. Restricted to
// compliance-capable roles; platform operators see all tenants.
type AuditLogsService struct {
	core *core
}

// List returns the most recent audit records, newest first.
func (s *AuditLogsService) List(ctx context.Context) ([]AuditLogEntry, error) {
	var out []AuditLogEntry
	if err := s.core.do(ctx, http.MethodGet, "/audit-logs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

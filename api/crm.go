package api

import (
	"context"
	"net/http"
)

// CRMService covers leads and deals. Listing is tenant-scoped for every
// role; writes require a management role and return 403 otherwise.
type CRMService struct {
	core *core
}

// Leads lists the workspace's leads.
func (s *CRMService) Leads(ctx context.Context) ([]Lead, error) {
	var out []Lead
	if err := s.core.do(ctx, http.MethodGet, "/crm/leads", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLead creates a lead assigned to the caller.
func (s *CRMService) CreateLead(ctx context.Context, in LeadInput) (*Lead, error) {
	var out Lead
	if err := s.core.do(ctx, http.MethodPost, "/crm/leads", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLead replaces a lead's mutable fields.
func (s *CRMService) UpdateLead(ctx context.Context, id string, in LeadInput) (*Lead, error) {
	var out Lead
	if err := s.core.do(ctx, http.MethodPut, "/crm/leads/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLead removes a lead.
func (s *CRMService) DeleteLead(ctx context.Context, id string) error {
	return s.core.do(ctx, http.MethodDelete, "/crm/leads/"+id, nil, nil)
}

// Deals lists the workspace's deals.
func (s *CRMService) Deals(ctx context.Context) ([]Deal, error) {
	var out []Deal
	if err := s.core.do(ctx, http.MethodGet, "/crm/deals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDeal creates a deal, optionally linked to a lead.
func (s *CRMService) CreateDeal(ctx context.Context, in DealInput) (*Deal, error) {
	var out Deal
	if err := s.core.do(ctx, http.MethodPost, "/crm/deals", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package api

import (
	"context"
	"net/http"
)

// DomainsService covers domain availability and purchase. Both endpoints
// are public: they run during signup, before any session exists.
type DomainsService struct {
	core *core
}

// Check returns availability and pricing for a base name across the
// supported extensions. Names shorter than two characters return 400.
func (s *DomainsService) Check(ctx context.Context, domain string) ([]DomainOffer, error) {
	in := struct {
		Domain string `json:"domain"`
	}{Domain: domain}

	var out []DomainOffer
	if err := s.core.do(ctx, http.MethodPost, "/domains/check", in, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Purchase registers a domain for one year. An already-registered domain
// returns 400.
func (s *DomainsService) Purchase(ctx context.Context, domain, email string) (*DomainRegistration, error) {
	in := struct {
		Domain string `json:"domain"`
		Email  string `json:"email"`
	}{Domain: domain, Email: email}

	var out DomainRegistration
	if err := s.core.do(ctx, http.MethodPost, "/domains/purchase", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package api

import (
	"context"
	"net/http"
)

// SubscriptionsService covers plan listing and hosted checkout.
type SubscriptionsService struct {
	core *core
}

// Plans lists the subscription tiers, keyed by plan ID.
func (s *SubscriptionsService) Plans(ctx context.Context) (map[string]Plan, error) {
	var out map[string]Plan
	if err := s.core.do(ctx, http.MethodGet, "/subscriptions/plans", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Checkout starts a hosted checkout session for a paid plan. originURL
// is where the payment provider sends the user back; the free plan is
// rejected with 400.
func (s *SubscriptionsService) Checkout(ctx context.Context, planID, originURL string) (*CheckoutSession, error) {
	in := struct {
		PlanID    string `json:"plan_id"`
		OriginURL string `json:"origin_url"`
	}{PlanID: planID, OriginURL: originURL}

	var out CheckoutSession
	if err := s.core.do(ctx, http.MethodPost, "/subscriptions/checkout", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status polls a checkout session. The first poll that observes "paid"
// activates the plan on the caller's account.
func (s *SubscriptionsService) Status(ctx context.Context, sessionID string) (*CheckoutStatus, error) {
	var out CheckoutStatus
	if err := s.core.do(ctx, http.MethodGet, "/subscriptions/status/"+sessionID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

package api

import (
	"context"
	"net/http"
)

// AccountService covers the caller's own account: password, company
// profile, biometric registration, and stored payment methods.
type AccountService struct {
	core *core
}

// ChangePassword replaces the caller's password after verifying the
// current one. A wrong current password returns a 400.
func (s *AccountService) ChangePassword(ctx context.Context, current, next string) error {
	in := struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}{CurrentPassword: current, NewPassword: next}

	return s.core.do(ctx, http.MethodPut, "/auth/password", in, nil)
}

// UpdateCompany applies a partial company-profile update. Renaming the
// company propagates to every member of the workspace.
func (s *AccountService) UpdateCompany(ctx context.Context, in CompanyUpdate) error {
	return s.core.do(ctx, http.MethodPut, "/auth/company", in, nil)
}

// RegisterBiometric stores a biometric credential for the caller and
// clears the mandatory-setup flag. biometricType defaults to
// "fingerprint" when empty.
func (s *AccountService) RegisterBiometric(ctx context.Context, credentialID, biometricType string) error {
	if biometricType == "" {
		biometricType = "fingerprint"
	}
	in := struct {
		CredentialID  string `json:"credential_id"`
		BiometricType string `json:"biometric_type"`
	}{CredentialID: credentialID, BiometricType: biometricType}

	return s.core.do(ctx, http.MethodPost, "/auth/biometric/register", in, nil)
}

// PaymentMethods lists the caller's stored cards.
func (s *AccountService) PaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	var out []PaymentMethod
	if err := s.core.do(ctx, http.MethodGet, "/auth/payment/methods", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddPaymentMethod stores a card. Only the last four digits come back.
func (s *AccountService) AddPaymentMethod(ctx context.Context, in PaymentMethodInput) (*PaymentMethod, error) {
	var out PaymentMethod
	if err := s.core.do(ctx, http.MethodPost, "/auth/payment/add", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

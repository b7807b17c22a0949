package oneclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/enterpriseone/oneclient/internal/httpx"
)

type authResponse struct {
	Token                  string  `json:"token"`
	User                   Profile `json:"user"`
	BiometricSetupRequired bool    `json:"biometric_setup_required"`
}

// Login authenticates with email and password. On success the returned
// token is persisted to the token store and the session becomes
// authenticated.
//
// Credential rejections return [ErrInvalidCredentials]; transport
// failures leave the session state untouched.
func (s *Session) Login(ctx context.Context, email, password string) (*Profile, error) {
	gen, err := s.beginOp()
	if err != nil {
		return nil, err
	}

	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: password,
	}

	var resp authResponse
	if err := s.caller.Do(ctx, http.MethodPost, "/auth/login", "", payload, &resp); err != nil {
		if errors.Is(err, httpx.ErrUnauthorized) {
			s.metrics.Inc(MetricLoginFailure)
			s.emitAudit(ctx, auditEventLoginFailure, false, err, map[string]string{"email": payload.Email})
			return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		s.metrics.Inc(MetricLoginUnavailable)
		return nil, err
	}

	resp.User.BiometricSetupRequired = resp.User.BiometricSetupRequired || resp.BiometricSetupRequired

	return s.settleAuthenticated(ctx, gen, auditEventLogin, MetricLoginSuccess, resp.Token, &resp.User)
}

// LoginBiometric authenticates with a registered biometric credential.
// Unknown or revoked credentials return [ErrBiometricRejected].
func (s *Session) LoginBiometric(ctx context.Context, credentialID, email string) (*Profile, error) {
	gen, err := s.beginOp()
	if err != nil {
		return nil, err
	}

	payload := struct {
		CredentialID string `json:"credential_id"`
		UserEmail    string `json:"user_email"`
	}{
		CredentialID: credentialID,
		UserEmail:    strings.ToLower(strings.TrimSpace(email)),
	}

	var resp authResponse
	if err := s.caller.Do(ctx, http.MethodPost, "/auth/biometric/login", "", payload, &resp); err != nil {
		if errors.Is(err, httpx.ErrUnauthorized) || errors.Is(err, httpx.ErrNotFound) {
			s.metrics.Inc(MetricBiometricLoginFailure)
			s.emitAudit(ctx, auditEventLoginFailure, false, err, map[string]string{"email": payload.UserEmail})
			return nil, fmt.Errorf("%w: %v", ErrBiometricRejected, err)
		}
		s.metrics.Inc(MetricLoginUnavailable)
		return nil, err
	}

	return s.settleAuthenticated(ctx, gen, auditEventBiometricLogin, MetricBiometricLoginSuccess, resp.Token, &resp.User)
}

// Register creates a workspace owner account and logs it in. An email
// that already has an account returns [ErrEmailTaken].
func (s *Session) Register(ctx context.Context, account RegisterAccount) (*Profile, error) {
	gen, err := s.beginOp()
	if err != nil {
		return nil, err
	}

	account.Email = strings.ToLower(strings.TrimSpace(account.Email))

	var resp authResponse
	if err := s.caller.Do(ctx, http.MethodPost, "/auth/register", "", account, &resp); err != nil {
		if errors.Is(err, httpx.ErrBadRequest) {
			s.metrics.Inc(MetricRegisterFailure)
			s.emitAudit(ctx, auditEventRegister, false, err, map[string]string{"email": account.Email})
			return nil, fmt.Errorf("%w: %v", ErrEmailTaken, err)
		}
		s.metrics.Inc(MetricLoginUnavailable)
		return nil, err
	}

	return s.settleAuthenticated(ctx, gen, auditEventRegister, MetricRegisterSuccess, resp.Token, &resp.User)
}

// settleAuthenticated applies a successful auth result and persists the
// token. The in-memory state is installed before the store write so a
// slow disk cannot hold the lock; a persist failure is reported but the
// session stays usable until the process exits.
func (s *Session) settleAuthenticated(ctx context.Context, gen uint64, eventType string, metric MetricID, bearer string, profile *Profile) (*Profile, error) {
	if !s.applyAuthenticated(gen, bearer, profile) {
		return nil, ErrStaleResult
	}

	s.metrics.Inc(metric)
	s.emitAudit(ctx, eventType, true, nil, nil)

	if err := s.tokens.Save(ctx, bearer); err != nil {
		return profile.Clone(), fmt.Errorf("persist token: %w", err)
	}
	return profile.Clone(), nil
}

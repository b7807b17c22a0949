package oneclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/enterpriseone/oneclient/internal/httpx"
	"github.com/enterpriseone/oneclient/store"
)

// Refresh revalidates the current token against the server and replaces
// the cached profile with the server's copy. Three outcomes:
//
//   - fresh profile: the session stays authenticated with updated data.
//   - server rejection (401): the session is demoted to anonymous, the
//     stored token is cleared, and [ErrSessionExpired] is returned.
//   - transport failure: the session state is left untouched and the
//     wrapped error is returned.
//
// With no token in memory, Refresh settles anonymous without any network
// traffic.
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	gen := s.generation
	bearer := s.bearer
	wasAuthenticated := s.status == StatusAuthenticated
	s.mu.Unlock()

	if bearer == "" {
		s.applyAnonymous(gen)
		return nil
	}

	start := time.Now()
	var profile Profile
	err := s.caller.Do(ctx, http.MethodGet, "/auth/me", bearer, nil, &profile)
	s.metrics.Observe(MetricRefreshLatency, time.Since(start))

	if err != nil {
		if errors.Is(err, httpx.ErrUnauthorized) {
			return s.settleExpired(ctx, gen, wasAuthenticated, err)
		}
		s.metrics.Inc(MetricRefreshUnavailable)
		return err
	}

	if !s.applyAuthenticated(gen, bearer, &profile) {
		return ErrStaleResult
	}
	s.metrics.Inc(MetricRefreshSuccess)
	s.emitAudit(ctx, auditEventRefresh, true, nil, nil)
	return nil
}

// settleExpired demotes the session after a server rejection. The
// in-memory state is cleared first; the stored token is removed only
// when the demotion actually applied, so a token written by a newer
// concurrent login is never deleted.
func (s *Session) settleExpired(ctx context.Context, gen uint64, wasAuthenticated bool, cause error) error {
	if !s.applyAnonymous(gen) {
		return ErrStaleResult
	}
	s.emitAudit(ctx, auditEventSessionExpired, false, cause, nil)

	s.metrics.Inc(MetricRefreshExpired)
	if wasAuthenticated {
		s.metrics.Inc(MetricSessionDemoted)
	}

	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("%w: clear stored token: %v", ErrSessionExpired, err)
	}
	return ErrSessionExpired
}

// Bootstrap resolves the initial session status exactly once per
// process. It loads the stored token, validates it against the server,
// and moves the session out of [StatusLoading]. A second call returns
// [ErrBootstrapped].
//
// On transport failure the status settles anonymous but the stored token
// is preserved, so the next app load retries the resume.
func (s *Session) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.bootstrapped {
		s.mu.Unlock()
		return ErrBootstrapped
	}
	s.bootstrapped = true
	gen := s.generation
	s.mu.Unlock()

	bearer, err := s.tokens.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			s.emitAudit(ctx, auditEventBootstrap, false, err, nil)
		}
		s.metrics.Inc(MetricBootstrapAnonymous)
		s.applyAnonymous(gen)
		return nil
	}

	// Install the stored token so Refresh validates it. Status remains
	// Loading until the server's verdict settles.
	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		s.metrics.Inc(MetricStaleResultDiscarded)
		return ErrStaleResult
	}
	s.bearer = bearer
	s.mu.Unlock()

	err = s.Refresh(ctx)
	switch {
	case err == nil && s.Status() == StatusAuthenticated:
		s.metrics.Inc(MetricBootstrapAuthenticated)
		s.emitAudit(ctx, auditEventBootstrap, true, nil, nil)
		return nil
	case errors.Is(err, ErrSessionExpired):
		s.metrics.Inc(MetricBootstrapAnonymous)
		s.emitAudit(ctx, auditEventBootstrap, false, err, nil)
		return nil
	case errors.Is(err, ErrStaleResult):
		// A newer operation settled while the refresh was in flight;
		// its state wins.
		return err
	case err != nil:
		// Transport failure: settle anonymous in memory but keep the
		// stored token so the next load retries. A newer settlement
		// wins here too.
		if !s.applyAnonymous(gen) {
			return ErrStaleResult
		}
		s.metrics.Inc(MetricBootstrapAnonymous)
		s.emitAudit(ctx, auditEventBootstrap, false, err, nil)
		return err
	default:
		s.metrics.Inc(MetricBootstrapAnonymous)
		return nil
	}
}

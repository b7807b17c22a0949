package oneclient

import (
	"context"
	"sync"
	"time"

	"github.com/enterpriseone/oneclient/internal/httpx"
	"github.com/enterpriseone/oneclient/store"
	"github.com/enterpriseone/oneclient/token"
)

// Session is the single source of truth for "who is logged in". It holds
// the bearer token, the resolved profile, and the authorization status,
// and persists the token through a [store.TokenStore] so the session
// survives restarts.
//
// All mutation goes through Login, LoginBiometric, Register, Logout,
// Refresh, and Bootstrap; every other component reads snapshots. Session
// is safe for concurrent use.
type Session struct {
	config  Config
	caller  *httpx.Caller
	tokens  store.TokenStore
	nav     []NavigationEntry
	routes  map[string]Route
	audit   *auditDispatcher
	metrics *Metrics

	mu           sync.Mutex
	status       Status
	bearer       string
	profile      *Profile
	generation   uint64
	bootstrapped bool
	closed       bool
}

// Snapshot returns an immutable copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Status:     s.status,
		Token:      s.bearer,
		Profile:    s.profile.Clone(),
		Generation: s.generation,
	}
}

// Status returns the current authorization status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Profile returns a copy of the resolved profile, or nil when the
// session is not authenticated.
func (s *Session) Profile() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// Token returns the current bearer token, empty when anonymous. It
// satisfies the api package's TokenSource, so a Session can be handed
// directly to the typed module clients.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bearer
}

// Claims returns the decoded, unverified claims of the current token.
// Advisory only; authorization always follows the server's verdict.
func (s *Session) Claims() (token.Claims, bool) {
	s.mu.Lock()
	bearer := s.bearer
	s.mu.Unlock()
	if bearer == "" {
		return token.Claims{}, false
	}
	claims, err := token.Parse(bearer)
	if err != nil {
		return token.Claims{}, false
	}
	return claims, true
}

// TokenExpiringWithin reports whether the local exp claim falls inside d
// from now, with the configured clock-skew leeway. A hint for UI
// countdowns; it never demotes the session.
func (s *Session) TokenExpiringWithin(d time.Duration) bool {
	claims, ok := s.Claims()
	if !ok || claims.ExpiresAt.IsZero() {
		return false
	}
	return claims.Expired(time.Now().Add(d), -s.config.Session.ExpiryLeeway)
}

// MetricsSnapshot returns a deep copy of all session metrics.
func (s *Session) MetricsSnapshot() MetricsSnapshot {
	if s == nil || s.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return s.metrics.Snapshot()
}

// AuditDropped returns the number of audit events shed by the
// dispatcher.
func (s *Session) AuditDropped() uint64 {
	if s == nil || s.audit == nil {
		return 0
	}
	return s.audit.Dropped()
}

// Close flushes and stops the audit dispatcher and marks the session
// closed. Subsequent operations return [ErrSessionClosed].
func (s *Session) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	if s.audit != nil {
		s.audit.Close()
	}
}

// beginOp captures the generation an operation starts from, so its
// settlement can be discarded if a newer operation changed the session
// while it was in flight.
func (s *Session) beginOp() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrSessionClosed
	}
	return s.generation, nil
}

// applyAuthenticated installs a settled authenticated result, unless the
// generation advanced since the operation began.
func (s *Session) applyAuthenticated(expected uint64, bearer string, profile *Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.generation != expected {
		s.metrics.Inc(MetricStaleResultDiscarded)
		return false
	}
	s.generation++
	s.status = StatusAuthenticated
	s.bearer = bearer
	s.profile = profile.Clone()
	return true
}

// applyAnonymous installs a settled anonymous result, unless the
// generation advanced since the operation began.
func (s *Session) applyAnonymous(expected uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.generation != expected {
		s.metrics.Inc(MetricStaleResultDiscarded)
		return false
	}
	s.generation++
	s.status = StatusAnonymous
	s.bearer = ""
	s.profile = nil
	return true
}

// forceAnonymous unconditionally clears in-memory state. Used by Logout,
// which must always succeed locally.
func (s *Session) forceAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.status = StatusAnonymous
	s.bearer = ""
	s.profile = nil
}

func (s *Session) emitAudit(ctx context.Context, eventType string, success bool, opErr error, metadata map[string]string) {
	if s.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		RequestID: httpx.RequestIDFromContext(ctx),
		Success:   success,
		Metadata:  metadata,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}

	s.mu.Lock()
	if s.profile != nil {
		event.UserID = s.profile.ID
		event.Email = s.profile.Email
		event.Company = s.profile.Company
	}
	s.mu.Unlock()

	s.audit.Emit(ctx, event)
}

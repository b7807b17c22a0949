package oneclient

import (
	"context"
	"fmt"
)

// Logout clears the session unconditionally. In-memory state is wiped
// first, so the session is anonymous even when clearing the stored token
// fails; in that case the storage error is returned for logging.
//
// Logout never talks to the server: platform tokens are stateless, so
// there is nothing to revoke remotely.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.mu.Unlock()

	s.emitAudit(ctx, auditEventLogout, true, nil, nil)
	s.forceAnonymous()
	s.metrics.Inc(MetricLogout)

	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear stored token: %w", err)
	}
	return nil
}

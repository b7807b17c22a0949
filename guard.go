package oneclient

// Decision is the route guard's verdict for one navigation attempt.
type Decision uint8

const (
	// DecisionWait defers rendering: the session status is still
	// resolving and redirecting now would bounce a valid session through
	// the login screen.
	DecisionWait Decision = iota
	// DecisionAllow renders the requested view.
	DecisionAllow
	// DecisionRedirectLogin sends the visitor to the login view.
	DecisionRedirectLogin
	// DecisionDenyRole blocks an authenticated visitor whose role is not
	// on the route's allow-list.
	DecisionDenyRole
)

// String returns a human-readable decision name.
func (d Decision) String() string {
	switch d {
	case DecisionWait:
		return "wait"
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect_login"
	case DecisionDenyRole:
		return "deny_role"
	default:
		return "unknown"
	}
}

// Authorize evaluates one protected route against the current session
// state. The decision order is fixed: while the status is resolving the
// guard waits, an anonymous visitor is redirected to login, and an
// authenticated visitor is checked against the route's allow-list. An
// empty allow-list admits every authenticated role.
//
// Role checks can be disabled via the guard configuration, reverting to
// navigation-hiding as the only role gate.
func (s *Session) Authorize(route Route) Decision {
	s.mu.Lock()
	status := s.status
	var role Role
	if s.profile != nil {
		role = s.profile.Role
	}
	s.mu.Unlock()

	switch status {
	case StatusLoading:
		s.metrics.Inc(MetricGuardWaiting)
		return DecisionWait
	case StatusAnonymous:
		s.metrics.Inc(MetricGuardRedirected)
		return DecisionRedirectLogin
	}

	if s.config.Guard.EnforceRoles && len(route.AllowedRoles) > 0 {
		allowed := false
		for _, r := range route.AllowedRoles {
			if r == role {
				allowed = true
				break
			}
		}
		if !allowed {
			s.metrics.Inc(MetricGuardDeniedRole)
			return DecisionDenyRole
		}
	}

	s.metrics.Inc(MetricGuardAllowed)
	return DecisionAllow
}

// AuthorizePath authorizes a navigation target by path. Paths present in
// the navigation set inherit its allow-list; unknown paths are treated
// as authentication-only routes.
func (s *Session) AuthorizePath(path string) Decision {
	route, ok := s.routes[path]
	if !ok {
		route = Route{Path: path}
	}
	return s.Authorize(route)
}

// LoginPath returns the configured login route, where redirected
// visitors land.
func (s *Session) LoginPath() string {
	return s.config.Guard.LoginPath
}

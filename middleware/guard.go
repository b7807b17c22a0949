package middleware

import (
	"context"
	"net/http"

	oneclient "github.com/enterpriseone/oneclient"
)

type snapshotContextKey struct{}

// SnapshotFromContext returns the session snapshot injected by [Guard]
// for requests it allowed through.
func SnapshotFromContext(ctx context.Context) (oneclient.Snapshot, bool) {
	snap, ok := ctx.Value(snapshotContextKey{}).(oneclient.Snapshot)
	return snap, ok
}

// Guard wraps an http.Handler behind the session's route guard, for
// embedded dashboards and local UIs that render over HTTP. The request
// path is authorized like a navigation target:
//
//   - wait: 503 with Retry-After, the status is still resolving
//   - redirect to login: 303 to the configured login path
//   - role denial: 403
//   - allow: the snapshot is injected into the request context
func Guard(session *oneclient.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if session == nil {
				http.Error(w, "session unavailable", http.StatusServiceUnavailable)
				return
			}

			switch session.AuthorizePath(r.URL.Path) {
			case oneclient.DecisionWait:
				w.Header().Set("Retry-After", "1")
				http.Error(w, "session resolving", http.StatusServiceUnavailable)
				return
			case oneclient.DecisionRedirectLogin:
				http.Redirect(w, r, session.LoginPath(), http.StatusSeeOther)
				return
			case oneclient.DecisionDenyRole:
				http.Error(w, "insufficient role", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), snapshotContextKey{}, session.Snapshot())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

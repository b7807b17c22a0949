// Package oneclient is the Go client core for the Enterprise One workspace
// platform. It owns the client-side session: a bearer token persisted to
// durable storage, the resolved user profile, and the three-state
// authorization status (loading, authenticated, anonymous) that every
// protected-view decision derives from.
//
// The package is designed for event-driven UI and agent workloads: Session
// methods are safe to call from multiple goroutines after initialization
// through [Builder.Build].
//
// # Architecture boundaries
//
// oneclient is the public surface. It exposes [Session], [Builder],
// [Config], the route-guard decision types, and the role-scoped navigation
// filter. HTTP plumbing (bearer injection, request IDs, error mapping)
// lives under internal/ and is never exported. Typed collaborator clients
// for the platform's CRUD modules live in the api sub-package; durable
// token backends live in store.
//
// # What this package must NOT do
//
//   - Verify token signatures or evaluate permissions the server owns.
//   - Retry failed requests: a transport fault is surfaced to the caller
//     and never demotes the session.
//   - Mutate session state anywhere outside the Session operations
//     (Login, Register, Logout, Refresh, Bootstrap).
//
// # State contract
//
// StatusAuthenticated implies both token and profile are present;
// StatusAnonymous implies both are absent. A rejected refresh is the only
// involuntary path from authenticated to anonymous.
package oneclient

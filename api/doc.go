// Package api provides typed clients for the platform's REST modules:
// CRM, projects, HR, finance, subscriptions, notifications, users,
// audit logs, dashboard, domains, validation, and analytics.
//
// # Architecture boundaries
//
// This package is a thin, stateless wire layer. Each service method maps
// to exactly one endpoint, takes a context, and returns typed results or
// an error unwrapping to the package sentinels.
//
// # What this package must NOT do
//
//   - Hold or refresh tokens. The bearer token comes from a TokenSource
//     on every call; a *oneclient.Session is the usual source.
//   - Retry, cache, or reorder requests.
//   - Make authorization decisions. A 401 or 403 is surfaced to the
//     caller; demoting the session is the session layer's job.
package api

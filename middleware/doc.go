// Package middleware adapts the session's route guard to net/http, for
// frontends that serve their views over a local HTTP surface.
//
// # What this package must NOT do
//
//   - Parse or validate tokens. The guard consumes session decisions
//     only.
//   - Mutate session state. Redirecting an anonymous visitor does not
//     log anyone out.
package middleware

// Package httpx owns the HTTP plumbing shared by the session core and the
// typed module clients: bearer-header injection, request-ID propagation,
// JSON codec, and mapping of platform error responses onto sentinel
// errors.
//
// # Architecture boundaries
//
// This package talks to exactly one collaborator shape: the platform's
// REST API, which rejects requests with a JSON body of the form
// {"detail": ...}. It knows nothing about sessions, storage, or roles.
//
// # What this package must NOT do
//
//   - Retry requests or cache responses.
//   - Read or write token storage; the token arrives as a plain argument.
//   - Import oneclient or any sibling package.
package httpx

// Package store provides durable bearer-token storage so a session
// survives process restarts. One store holds at most one token.
//
// Backends: [FileStore] for workstation use (single 0600 file, atomic
// replace), [RedisStore] for shared or headless deployments, and
// [MemoryStore] for tests and explicitly ephemeral sessions.
//
// Absence of a stored token is reported as [ErrTokenNotFound] and means
// "anonymous on load" — it is never an operational failure.
package store

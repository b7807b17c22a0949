// Package token decodes the platform's bearer tokens for client-side
// display and expiry surfacing.
//
// Tokens are HS256 JWTs carrying {user_id, role, exp}. The client never
// holds the signing secret and therefore never verifies signatures;
// validity is always the server's verdict, delivered as a 401. Decoded
// claims are advisory: suitable for showing "signed in as" hints or a
// session-expiry countdown, never for authorization decisions.
package token

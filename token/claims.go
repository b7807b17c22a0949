package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned by Parse when the token is not a decodable
// JWT. A malformed persisted token still goes through the normal refresh
// path; the server rejecting it is what demotes the session.
var ErrMalformed = errors.New("malformed token")

// Claims are the decoded, unverified payload fields of a platform token.
type Claims struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// Parse decodes the token payload without verifying its signature.
func Parse(raw string) (Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	out := Claims{}
	if v, ok := claims["user_id"].(string); ok {
		out.UserID = v
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = v
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// Expired reports whether the claims' exp has passed, with leeway for
// clock skew. Tokens without an exp claim never report expired.
func (c Claims) Expired(now time.Time, leeway time.Duration) bool {
	if c.ExpiresAt.IsZero() {
		return false
	}
	return now.After(c.ExpiresAt.Add(leeway))
}

// TimeToExpiry returns the remaining lifetime at now, which is negative
// once expired and zero when the token carries no exp claim.
func (c Claims) TimeToExpiry(now time.Time) time.Duration {
	if c.ExpiresAt.IsZero() {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}

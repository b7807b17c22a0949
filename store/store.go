package store

import (
	"context"
	"errors"
)

// ErrTokenNotFound is returned by Load when no token is persisted.
var ErrTokenNotFound = errors.New("token not found")

// TokenStore persists the session's bearer token across process
// lifetimes. Implementations must be safe for concurrent use.
type TokenStore interface {
	// Load returns the persisted token, or ErrTokenNotFound when none
	// exists.
	Load(ctx context.Context) (string, error)
	// Save persists the token, replacing any previous value.
	Save(ctx context.Context, token string) error
	// Clear removes the persisted token. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}

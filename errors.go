package oneclient

import "errors"

var (
	// ErrInvalidCredentials is returned by Login when the server rejects
	// the email/password pair. The prior session state is untouched.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrBiometricRejected is returned by LoginBiometric when the server
	// does not recognize the credential. The prior session state is
	// untouched.
	ErrBiometricRejected = errors.New("biometric authentication rejected")
	// ErrSessionExpired is returned by Refresh after the server rejected
	// the persisted token. The session has already been demoted to
	// anonymous and durable storage cleared; callers treat this as the
	// expected session-expiry flow, not a fault.
	ErrSessionExpired = errors.New("session expired")
	// ErrEmailTaken is returned by Register when the address is already
	// registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrBootstrapped is returned by Bootstrap on every call after the
	// first. Initial status resolution happens exactly once per Session.
	ErrBootstrapped = errors.New("session already bootstrapped")
	// ErrStaleResult is returned when a settled network call found the
	// session generation advanced while it was in flight. Its result was
	// discarded; current state reflects the newer operation.
	ErrStaleResult = errors.New("stale result discarded")
	// ErrSessionClosed is returned by operations on a closed Session.
	ErrSessionClosed = errors.New("session closed")
)

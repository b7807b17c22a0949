package oneclient

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config groups all tunables of the client core. Configs are value types:
// the builder clones them at Build and the Session never mutates them.
type Config struct {
	API        APIConfig
	Session    SessionConfig
	Guard      GuardConfig
	Navigation NavigationConfig
	Audit      AuditConfig
	Metrics    MetricsConfig
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig locates the platform REST API.
type APIConfig struct {
	// BaseURL is the API root, including the /api prefix the platform
	// mounts its routes under (e.g. "https://one.example.com/api").
	BaseURL string
	// Timeout applies to the default HTTP client only; a client supplied
	// via [Builder.WithHTTPClient] keeps its own settings.
	Timeout   time.Duration
	UserAgent string
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig tunes session bookkeeping.
type SessionConfig struct {
	// ExpiryLeeway is the clock-skew allowance applied when surfacing
	// local token-expiry hints. It never affects authorization: the
	// server's 401 is the only expiry verdict that demotes a session.
	ExpiryLeeway time.Duration
}

/*
====================================
GUARD CONFIG
====================================
*/

// GuardConfig tunes route-guard behavior.
type GuardConfig struct {
	// EnforceRoles makes the guard deny routes whose allow-list excludes
	// the session's role. When false, only navigation hiding applies and
	// any authenticated session may enter any route — the legacy
	// behavior, kept as an escape hatch.
	EnforceRoles bool
	// LoginPath is where anonymous sessions are redirected.
	LoginPath string
}

/*
====================================
NAVIGATION CONFIG
====================================
*/

// NavigationConfig overrides the static navigation set. Nil Entries
// selects [DefaultNavigation].
type NavigationConfig struct {
	Entries []NavigationEntry
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig tunes the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull sheds events instead of blocking the session operation
	// when the buffer is saturated. Dropped events are counted.
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig tunes the in-process metrics system.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// DefaultConfig returns the configuration a fresh [Builder] starts from.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout:   15 * time.Second,
			UserAgent: "enterprise-one-go/1",
		},
		Session: SessionConfig{
			ExpiryLeeway: 30 * time.Second,
		},
		Guard: GuardConfig{
			EnforceRoles: true,
			LoginPath:    "/login",
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("API BaseURL is required")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("API BaseURL must be http or https, got %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return errors.New("API Timeout must not be negative")
	}
	if c.Session.ExpiryLeeway < 0 {
		return errors.New("Session ExpiryLeeway must not be negative")
	}
	if c.Guard.LoginPath == "" || !strings.HasPrefix(c.Guard.LoginPath, "/") {
		return fmt.Errorf("Guard LoginPath must be an absolute path, got %q", c.Guard.LoginPath)
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit BufferSize must be positive when audit is enabled")
	}
	for i, entry := range c.Navigation.Entries {
		if entry.Path == "" || !strings.HasPrefix(entry.Path, "/") {
			return fmt.Errorf("Navigation entry %d: path must be absolute, got %q", i, entry.Path)
		}
		if entry.Label == "" {
			return fmt.Errorf("Navigation entry %d (%s): label is required", i, entry.Path)
		}
	}
	return nil
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Navigation.Entries = cloneNavigation(cfg.Navigation.Entries)
	return out
}

func cloneNavigation(entries []NavigationEntry) []NavigationEntry {
	if entries == nil {
		return nil
	}
	out := make([]NavigationEntry, len(entries))
	for i, e := range entries {
		out[i] = e
		if e.AllowedRoles != nil {
			out[i].AllowedRoles = make([]Role, len(e.AllowedRoles))
			copy(out[i].AllowedRoles, e.AllowedRoles)
		}
	}
	return out
}

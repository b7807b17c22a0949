package oneclient

import (
	"errors"
	"net/http"

	"github.com/enterpriseone/oneclient/internal/httpx"
	"github.com/enterpriseone/oneclient/store"
)

// Builder assembles a [Session]. Builders are single-use: Build returns
// an error on the second call.
type Builder struct {
	config     Config
	httpClient *http.Client
	tokens     store.TokenStore
	auditSink  AuditSink

	built bool
}

// New returns a Builder seeded with defaults.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the entire configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL sets the platform API root, including its /api prefix.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.API.BaseURL = baseURL
	return b
}

// WithHTTPClient supplies a custom HTTP client. The configured API
// timeout is not applied to it.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithTokenStore supplies the durable token backend. Required.
func (b *Builder) WithTokenStore(tokens store.TokenStore) *Builder {
	b.tokens = tokens
	return b
}

// WithNavigation replaces the static navigation set.
func (b *Builder) WithNavigation(entries []NavigationEntry) *Builder {
	b.config.Navigation.Entries = cloneNavigation(entries)
	return b
}

// WithAuditSink supplies the audit sink and enables audit dispatch.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = sink != nil
	return b
}

// WithMetricsEnabled toggles the in-process metrics system.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithRoleEnforcement toggles role checks in the route guard. Disabling
// it reverts to navigation-hiding as the only role gate.
func (b *Builder) WithRoleEnforcement(enabled bool) *Builder {
	b.config.Guard.EnforceRoles = enabled
	return b
}

// Build validates the configuration and returns the Session. The session
// starts in [StatusLoading]; call [Session.Bootstrap] to resolve the
// initial status.
func (b *Builder) Build() (*Session, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if b.tokens == nil {
		return nil, errors.New("token store required")
	}

	nav := cfg.Navigation.Entries
	if nav == nil {
		nav = DefaultNavigation()
	}

	routes := make(map[string]Route, len(nav))
	for _, entry := range nav {
		routes[entry.Path] = Route{Path: entry.Path, AllowedRoles: entry.AllowedRoles}
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.API.Timeout}
	}

	session := &Session{
		config: cfg,
		caller: &httpx.Caller{
			BaseURL:   cfg.API.BaseURL,
			HTTP:      httpClient,
			UserAgent: cfg.API.UserAgent,
		},
		tokens:  b.tokens,
		nav:     nav,
		routes:  routes,
		audit:   newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics: NewMetrics(cfg.Metrics),
		status:  StatusLoading,
	}

	b.built = true

	return session, nil
}

package api

import (
	"context"
	"net/http"

	"github.com/enterpriseone/oneclient/internal/httpx"
)

// Sentinel errors returned (wrapped) by all service methods.
var (
	ErrUnauthorized = httpx.ErrUnauthorized
	ErrForbidden    = httpx.ErrForbidden
	ErrNotFound     = httpx.ErrNotFound
	ErrBadRequest   = httpx.ErrBadRequest
	ErrUnavailable  = httpx.ErrUnavailable
)

// TokenSource yields the bearer token for each request. *oneclient.Session
// satisfies it; an empty token sends the request unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-token TokenSource, useful in tests and scripts.
type StaticToken string

// Token implements [TokenSource].
func (t StaticToken) Token() string { return string(t) }

type core struct {
	caller *httpx.Caller
	tokens TokenSource
}

func (c *core) do(ctx context.Context, method, path string, in, out any) error {
	return c.caller.Do(ctx, method, path, c.tokens.Token(), in, out)
}

// Client aggregates the platform's module services over one transport.
type Client struct {
	core

	CRM           *CRMService
	Projects      *ProjectsService
	HR            *HRService
	Finance       *FinanceService
	Subscriptions *SubscriptionsService
	Account       *AccountService
	Notifications *NotificationsService
	Users         *UsersService
	AuditLogs     *AuditLogsService
	Dashboard     *DashboardService
	Domains       *DomainsService
	Validation    *ValidationService
	Analytics     *AnalyticsService
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.caller.HTTP = h }
}

// WithUserAgent sets the User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.caller.UserAgent = ua }
}

// NewClient creates a Client against baseURL (including its /api prefix),
// drawing the bearer token from tokens on every call.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		core: core{
			caller: &httpx.Caller{BaseURL: baseURL},
			tokens: tokens,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.CRM = &CRMService{core: &c.core}
	c.Projects = &ProjectsService{core: &c.core}
	c.HR = &HRService{core: &c.core}
	c.Finance = &FinanceService{core: &c.core}
	c.Subscriptions = &SubscriptionsService{core: &c.core}
	c.Account = &AccountService{core: &c.core}
	c.Notifications = &NotificationsService{core: &c.core}
	c.Users = &UsersService{core: &c.core}
	c.AuditLogs = &AuditLogsService{core: &c.core}
	c.Dashboard = &DashboardService{core: &c.core}
	c.Domains = &DomainsService{core: &c.core}
	c.Validation = &ValidationService{core: &c.core}
	c.Analytics = &AnalyticsService{core: &c.core}

	return c
}

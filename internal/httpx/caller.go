package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrUnauthorized maps a 401 response. The session layer interprets
	// it as an invalid or expired bearer token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden maps a 403 response (insufficient role).
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound maps a 404 response.
	ErrNotFound = errors.New("not found")
	// ErrBadRequest maps a 400 response.
	ErrBadRequest = errors.New("bad request")
	// ErrUnavailable wraps transport failures and 5xx responses. It is
	// never treated as an authorization outcome.
	ErrUnavailable = errors.New("service unavailable")
)

// Error carries the HTTP status and the platform's detail message while
// unwrapping to one of the package sentinels.
type Error struct {
	Status   int
	Detail   string
	sentinel error
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
}

// Unwrap exposes the sentinel for errors.Is matching.
func (e *Error) Unwrap() error {
	return e.sentinel
}

type requestIDContextKey struct{}

// WithRequestID attaches a caller-chosen request ID to ctx. When absent,
// Do generates a fresh UUID per request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// RequestIDFromContext returns the attached request ID, if any.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

// Caller issues JSON requests against the platform API. The zero value is
// not usable; BaseURL is required and HTTP defaults to
// http.DefaultClient when nil.
type Caller struct {
	BaseURL   string
	HTTP      *http.Client
	UserAgent string
}

// Do sends one JSON request and decodes the JSON response into out (when
// out is non-nil). The Authorization header is set only when token is
// non-empty; an anonymous request carries no Authorization header at all.
// Non-2xx responses are returned as *Error values unwrapping to the
// package sentinels.
func (c *Caller) Do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	const maxErrorBody = 64 << 10

	detail := ""
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(data) > 0 {
		var payload struct {
			Detail json.RawMessage `json:"detail"`
		}
		if json.Unmarshal(data, &payload) == nil && len(payload.Detail) > 0 {
			var s string
			if json.Unmarshal(payload.Detail, &s) == nil {
				detail = s
			} else {
				detail = string(payload.Detail)
			}
		}
	}

	return &Error{
		Status:   resp.StatusCode,
		Detail:   detail,
		sentinel: sentinelFor(resp.StatusCode),
	}
}

func sentinelFor(status int) error {
	switch {
	case status == http.StatusUnauthorized:
		return ErrUnauthorized
	case status == http.StatusForbidden:
		return ErrForbidden
	case status == http.StatusNotFound:
		return ErrNotFound
	case status >= 400 && status < 500:
		return ErrBadRequest
	default:
		return ErrUnavailable
	}
}

package oneclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/enterpriseone/oneclient/store"
)

type countingTransport struct {
	calls atomic.Int64
}

func (t *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	t.calls.Add(1)
	return http.DefaultTransport.RoundTrip(r)
}

func testUser() map[string]any {
	return map[string]any{
		"id":      "u-1",
		"name":    "Ada Alvarez",
		"email":   "ada@acme.test",
		"role":    "admin",
		"company": "Acme",
	}
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("encode response: %v", err)
	}
}

func writeDetail(t *testing.T, w http.ResponseWriter, status int, detail string) {
	t.Helper()
	writeJSON(t, w, status, map[string]string{"detail": detail})
}

func newTestSession(t *testing.T, handler http.HandlerFunc) (*Session, *store.MemoryStore, *countingTransport) {
	t.Helper()
	return newTestSessionWith(t, handler, nil)
}

func newTestSessionWith(t *testing.T, handler http.HandlerFunc, customize func(*Builder) *Builder) (*Session, *store.MemoryStore, *countingTransport) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	transport := &countingTransport{}
	tokens := store.NewMemoryStore()

	builder := New().
		WithBaseURL(srv.URL).
		WithTokenStore(tokens).
		WithHTTPClient(&http.Client{Transport: transport})
	if customize != nil {
		builder = customize(builder)
	}

	session, err := builder.Build()
	if err != nil {
		t.Fatalf("build session: %v", err)
	}
	t.Cleanup(session.Close)

	return session, tokens, transport
}

func TestLoginSuccess(t *testing.T) {
	session, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode login body: %v", err)
		}
		if body.Email != "ada@acme.test" {
			t.Fatalf("email not normalized, got %q", body.Email)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"token": "tok-1", "user": testUser()})
	})

	profile, err := session.Login(context.Background(), "  Ada@Acme.Test ", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if profile.Role != RoleAdmin {
		t.Fatalf("role = %q, want admin", profile.Role)
	}

	snap := session.Snapshot()
	if snap.Status != StatusAuthenticated || snap.Token != "tok-1" {
		t.Fatalf("snapshot = %+v, want authenticated with tok-1", snap)
	}

	stored, err := tokens.Load(context.Background())
	if err != nil || stored != "tok-1" {
		t.Fatalf("stored token = %q, %v; want tok-1 persisted", stored, err)
	}
	if got := session.MetricsSnapshot().Counters[MetricLoginSuccess]; got != 1 {
		t.Fatalf("login success counter = %d, want 1", got)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	session, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		writeDetail(t, w, http.StatusUnauthorized, "Invalid credentials")
	})

	_, err := session.Login(context.Background(), "ada@acme.test", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if session.Status() == StatusAuthenticated {
		t.Fatal("session authenticated after rejected login")
	}
	if _, err := tokens.Load(context.Background()); !errors.Is(err, store.ErrTokenNotFound) {
		t.Fatalf("token persisted after rejected login: %v", err)
	}
	if got := session.MetricsSnapshot().Counters[MetricLoginFailure]; got != 1 {
		t.Fatalf("login failure counter = %d, want 1", got)
	}
}

func TestLoginTransportFailureKeepsState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // every request now fails at the transport

	tokens := store.NewMemoryStore()
	session, err := New().WithBaseURL(srv.URL).WithTokenStore(tokens).Build()
	if err != nil {
		t.Fatalf("build session: %v", err)
	}
	t.Cleanup(session.Close)

	_, err = session.Login(context.Background(), "ada@acme.test", "secret")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want transport error", err)
	}
	if got := session.MetricsSnapshot().Counters[MetricLoginUnavailable]; got != 1 {
		t.Fatalf("login unavailable counter = %d, want 1", got)
	}
}

func TestRegisterEmailTaken(t *testing.T) {
	session, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		writeDetail(t, w, http.StatusBadRequest, "Email already registered")
	})

	_, err := session.Register(context.Background(), RegisterAccount{
		Name: "Ada", Email: "ada@acme.test", Password: "secret", Company: "Acme",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterSuccessLogsIn(t *testing.T) {
	session, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"token": "tok-r", "user": testUser()})
	})

	profile, err := session.Register(context.Background(), RegisterAccount{
		Name: "Ada", Email: "ada@acme.test", Password: "secret", Company: "Acme",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if profile.Company != "Acme" || session.Status() != StatusAuthenticated {
		t.Fatalf("register did not authenticate: %+v, %v", profile, session.Status())
	}
}

func TestLoginBiometricRejected(t *testing.T) {
	session, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/biometric/login" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		writeDetail(t, w, http.StatusUnauthorized, "Biometric authentication failed")
	})

	_, err := session.LoginBiometric(context.Background(), "cred-1", "ada@acme.test")
	if !errors.Is(err, ErrBiometricRejected) {
		t.Fatalf("err = %v, want ErrBiometricRejected", err)
	}
	if got := session.MetricsSnapshot().Counters[MetricBiometricLoginFailure]; got != 1 {
		t.Fatalf("biometric failure counter = %d, want 1", got)
	}
}

func TestLogoutThenRefreshMakesNoNetworkCall(t *testing.T) {
	session, tokens, transport := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"token": "tok-1", "user": testUser()})
	})

	if _, err := session.Login(context.Background(), "ada@acme.test", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	before := transport.calls.Load()

	if err := session.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if err := session.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh after logout: %v", err)
	}

	if session.Status() != StatusAnonymous {
		t.Fatalf("status = %v, want anonymous", session.Status())
	}
	if got := transport.calls.Load(); got != before {
		t.Fatalf("refresh after logout hit the network: %d calls, want %d", got, before)
	}
	if _, err := tokens.Load(context.Background()); !errors.Is(err, store.ErrTokenNotFound) {
		t.Fatalf("token survived logout: %v", err)
	}
}

func TestRefreshExpiredDemotesAndClears(t *testing.T) {
	var loggedIn atomic.Bool
	session, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			loggedIn.Store(true)
			writeJSON(t, w, http.StatusOK, map[string]any{"token": "tok-1", "user": testUser()})
		case "/auth/me":
			writeDetail(t, w, http.StatusUnauthorized, "Token expired")
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	if _, err := session.Login(context.Background(), "ada@acme.test", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	err := session.Refresh(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}

	snap := session.Snapshot()
	if snap.Status != StatusAnonymous || snap.Token != "" || snap.Profile != nil {
		t.Fatalf("session not demoted: %+v", snap)
	}
	if _, err := tokens.Load(context.Background()); !errors.Is(err, store.ErrTokenNotFound) {
		t.Fatalf("stored token survived demotion: %v", err)
	}
	counters := session.MetricsSnapshot().Counters
	if counters[MetricRefreshExpired] != 1 || counters[MetricSessionDemoted] != 1 {
		t.Fatalf("demotion counters = %d/%d, want 1/1",
			counters[MetricRefreshExpired], counters[MetricSessionDemoted])
	}
}

func TestRefreshUpdatesProfile(t *testing.T) {
	session, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeJSON(t, w, http.StatusOK, map[string]any{"token": "tok-1", "user": testUser()})
		case "/auth/me":
			if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
				t.Fatalf("Authorization = %q, want bearer tok-1", got)
			}
			user := testUser()
			user["role"] = "manager"
			writeJSON(t, w, http.StatusOK, user)
		}
	})

	if _, err := session.Login(context.Background(), "ada@acme.test", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := session.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := session.Profile().Role; got != RoleManager {
		t.Fatalf("role after refresh = %q, want manager", got)
	}
}

func TestBootstrapResumesStoredSession(t *testing.T) {
	session, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/me" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-stored" {
			t.Fatalf("Authorization = %q", got)
		}
		writeJSON(t, w, http.StatusOK, testUser())
	})

	if err := tokens.Save(context.Background(), "tok-stored"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	if got := session.Status(); got != StatusLoading {
		t.Fatalf("status before bootstrap = %v, want loading", got)
	}

	if err := session.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if session.Status() != StatusAuthenticated {
		t.Fatalf("status = %v, want authenticated", session.Status())
	}
	if got := session.MetricsSnapshot().Counters[MetricBootstrapAuthenticated]; got != 1 {
		t.Fatalf("bootstrap authenticated counter = %d, want 1", got)
	}
}

func TestBootstrapWithoutTokenSettlesAnonymous(t *testing.T) {
	session, _, transport := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request %s", r.URL.Path)
	})

	if err := session.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if session.Status() != StatusAnonymous {
		t.Fatalf("status = %v, want anonymous", session.Status())
	}
	if transport.calls.Load() != 0 {
		t.Fatal("bootstrap without a token hit the network")
	}
}

func TestBootstrapRunsOnce(t *testing.T) {
	session, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, testUser())
	})

	if err := session.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if err := session.Bootstrap(context.Background()); !errors.Is(err, ErrBootstrapped) {
		t.Fatalf("second Bootstrap = %v, want ErrBootstrapped", err)
	}
}

func TestBootstrapTransportFailurePreservesStoredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	tokens := store.NewMemoryStore()
	if err := tokens.Save(context.Background(), "tok-keep"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	session, err := New().WithBaseURL(srv.URL).WithTokenStore(tokens).Build()
	if err != nil {
		t.Fatalf("build session: %v", err)
	}
	t.Cleanup(session.Close)

	if err := session.Bootstrap(context.Background()); err == nil {
		t.Fatal("Bootstrap succeeded against a dead server")
	}
	if session.Status() != StatusAnonymous {
		t.Fatalf("status = %v, want anonymous", session.Status())
	}
	stored, err := tokens.Load(context.Background())
	if err != nil || stored != "tok-keep" {
		t.Fatalf("stored token = %q, %v; want tok-keep preserved", stored, err)
	}
}

func TestStaleLoginResultDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	session, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		writeJSON(t, w, http.StatusOK, map[string]any{"token": "tok-slow", "user": testUser()})
	})

	done := make(chan error, 1)
	go func() {
		_, err := session.Login(context.Background(), "ada@acme.test", "secret")
		done <- err
	}()
	<-started

	// Logout advances the generation while the login is still in flight.
	if err := session.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	close(release)

	if err := <-done; !errors.Is(err, ErrStaleResult) {
		t.Fatalf("stale login err = %v, want ErrStaleResult", err)
	}
	if session.Status() != StatusAnonymous {
		t.Fatalf("status = %v, want anonymous after stale login", session.Status())
	}
	if got := session.MetricsSnapshot().Counters[MetricStaleResultDiscarded]; got != 1 {
		t.Fatalf("stale counter = %d, want 1", got)
	}
}

func TestBootstrapStaleRefreshPreservesNewerLogin(t *testing.T) {
	meStarted := make(chan struct{})
	release := make(chan struct{})
	session, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/me":
			close(meStarted)
			<-release
			writeJSON(t, w, http.StatusOK, testUser())
		case "/auth/login":
			writeJSON(t, w, http.StatusOK, map[string]any{"token": "tok-new", "user": testUser()})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})
	if err := tokens.Save(context.Background(), "tok-stored"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- session.Bootstrap(context.Background()) }()
	<-meStarted

	// A login settles while bootstrap's refresh is still in flight.
	if _, err := session.Login(context.Background(), "ada@acme.test", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	close(release)

	if err := <-done; !errors.Is(err, ErrStaleResult) {
		t.Fatalf("Bootstrap = %v, want ErrStaleResult", err)
	}
	snap := session.Snapshot()
	if snap.Status != StatusAuthenticated || snap.Token != "tok-new" {
		t.Fatalf("bootstrap's stale settlement clobbered the login: %+v", snap)
	}
	stored, err := tokens.Load(context.Background())
	if err != nil || stored != "tok-new" {
		t.Fatalf("stored token = %q, %v; want tok-new", stored, err)
	}
}

func TestBootstrapTransportFailureKeepsNewerLogin(t *testing.T) {
	meStarted := make(chan struct{})
	release := make(chan struct{})
	session, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/me":
			close(meStarted)
			<-release
			writeDetail(t, w, http.StatusBadGateway, "upstream down")
		case "/auth/login":
			writeJSON(t, w, http.StatusOK, map[string]any{"token": "tok-new", "user": testUser()})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})
	if err := tokens.Save(context.Background(), "tok-stored"); err != nil {
		t.Fatalf("seed token: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- session.Bootstrap(context.Background()) }()
	<-meStarted

	if _, err := session.Login(context.Background(), "ada@acme.test", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	close(release)

	if err := <-done; !errors.Is(err, ErrStaleResult) {
		t.Fatalf("Bootstrap = %v, want ErrStaleResult", err)
	}
	if session.Status() != StatusAuthenticated {
		t.Fatalf("status = %v, want authenticated after newer login", session.Status())
	}
}

func TestStaleExpiredRefreshEmitsNoExpiryAudit(t *testing.T) {
	sink := NewChannelSink(16)
	meStarted := make(chan struct{})
	release := make(chan struct{})
	session, _, _ := newTestSessionWith(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeJSON(t, w, http.StatusOK, map[string]any{"token": "tok-1", "user": testUser()})
		case "/auth/me":
			close(meStarted)
			<-release
			writeDetail(t, w, http.StatusUnauthorized, "Token expired")
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}, func(b *Builder) *Builder {
		return b.WithAuditSink(sink)
	})

	if _, err := session.Login(context.Background(), "ada@acme.test", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- session.Refresh(context.Background()) }()
	<-meStarted

	// Logout advances the generation; the rejected refresh is now stale.
	if err := session.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	close(release)

	if err := <-done; !errors.Is(err, ErrStaleResult) {
		t.Fatalf("stale refresh err = %v, want ErrStaleResult", err)
	}

	session.Close() // drain the dispatcher
	for {
		select {
		case event := <-sink.Events():
			if event.EventType == auditEventSessionExpired {
				t.Fatal("stale rejected refresh recorded a session_expired event")
			}
		default:
			return
		}
	}
}

func TestClosedSessionRejectsOperations(t *testing.T) {
	session, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {})

	session.Close()

	if _, err := session.Login(context.Background(), "a@b.c", "x"); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("Login on closed session = %v, want ErrSessionClosed", err)
	}
	if err := session.Refresh(context.Background()); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("Refresh on closed session = %v, want ErrSessionClosed", err)
	}
	if err := session.Logout(context.Background()); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("Logout on closed session = %v, want ErrSessionClosed", err)
	}
}

package internaldefs

import (
	oneclient "github.com/enterpriseone/oneclient"
)

// CounterDef maps one session counter to an exported metric name.
type CounterDef struct {
	ID   oneclient.MetricID
	Name string
	Help string
}

// HistogramDef maps one session histogram to an exported metric name.
type HistogramDef struct {
	ID   oneclient.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter, in exposition order.
var CounterDefs = []CounterDef{
	{ID: oneclient.MetricLoginSuccess, Name: "eone_login_success_total", Help: "Successful password logins."},
	{ID: oneclient.MetricLoginFailure, Name: "eone_login_failure_total", Help: "Rejected password logins."},
	{ID: oneclient.MetricLoginUnavailable, Name: "eone_login_unavailable_total", Help: "Auth operations lost to transport failures."},
	{ID: oneclient.MetricBiometricLoginSuccess, Name: "eone_biometric_login_success_total", Help: "Successful biometric logins."},
	{ID: oneclient.MetricBiometricLoginFailure, Name: "eone_biometric_login_failure_total", Help: "Rejected biometric credentials."},
	{ID: oneclient.MetricRegisterSuccess, Name: "eone_register_success_total", Help: "Successful workspace registrations."},
	{ID: oneclient.MetricRegisterFailure, Name: "eone_register_failure_total", Help: "Rejected workspace registrations."},
	{ID: oneclient.MetricRefreshSuccess, Name: "eone_refresh_success_total", Help: "Profile refreshes that settled authenticated."},
	{ID: oneclient.MetricRefreshExpired, Name: "eone_refresh_expired_total", Help: "Refreshes rejected by the server."},
	{ID: oneclient.MetricRefreshUnavailable, Name: "eone_refresh_unavailable_total", Help: "Refreshes lost to transport failures."},
	{ID: oneclient.MetricLogout, Name: "eone_logout_total", Help: "Voluntary logouts."},
	{ID: oneclient.MetricBootstrapAuthenticated, Name: "eone_bootstrap_authenticated_total", Help: "App loads that resumed a stored session."},
	{ID: oneclient.MetricBootstrapAnonymous, Name: "eone_bootstrap_anonymous_total", Help: "App loads that settled anonymous."},
	{ID: oneclient.MetricSessionDemoted, Name: "eone_session_demoted_total", Help: "Involuntary authenticated-to-anonymous transitions."},
	{ID: oneclient.MetricStaleResultDiscarded, Name: "eone_stale_result_discarded_total", Help: "In-flight results discarded by the generation guard."},
	{ID: oneclient.MetricGuardAllowed, Name: "eone_guard_allowed_total", Help: "Route guard decisions that rendered the view."},
	{ID: oneclient.MetricGuardDeniedRole, Name: "eone_guard_denied_role_total", Help: "Route guard decisions denied by role."},
	{ID: oneclient.MetricGuardRedirected, Name: "eone_guard_redirected_total", Help: "Route guard decisions redirected to login."},
	{ID: oneclient.MetricGuardWaiting, Name: "eone_guard_waiting_total", Help: "Route guard decisions deferred while loading."},
}

// HistogramDefs lists every exported histogram.
var HistogramDefs = []HistogramDef{
	{ID: oneclient.MetricRefreshLatency, Name: "eone_refresh_latency_seconds", Help: "Refresh round-trip latency histogram."},
}

// HistogramBounds are the bucket upper bounds, in seconds, matching the
// core histogram layout.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix are instrument-name-safe forms of the bounds.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw bucket slice to the fixed
// core layout.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts to the cumulative form
// both exporters expose.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}

package oneclient

import (
	"sync/atomic"
	"time"
)

// MetricID identifies a specific counter or histogram bucket in the
// in-process metrics system.
type MetricID uint16

const (
	// MetricLoginSuccess counts successful password logins.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts credential rejections.
	MetricLoginFailure
	// MetricLoginUnavailable counts logins lost to transport failures.
	MetricLoginUnavailable
	// MetricBiometricLoginSuccess counts successful biometric logins.
	MetricBiometricLoginSuccess
	// MetricBiometricLoginFailure counts rejected biometric credentials.
	MetricBiometricLoginFailure
	// MetricRegisterSuccess counts successful workspace registrations.
	MetricRegisterSuccess
	// MetricRegisterFailure counts rejected registrations.
	MetricRegisterFailure
	// MetricRefreshSuccess counts profile refreshes that settled
	// authenticated.
	MetricRefreshSuccess
	// MetricRefreshExpired counts refreshes the server rejected,
	// demoting the session.
	MetricRefreshExpired
	// MetricRefreshUnavailable counts refreshes lost to transport
	// failures (session state untouched).
	MetricRefreshUnavailable
	// MetricLogout counts voluntary logouts.
	MetricLogout
	// MetricBootstrapAuthenticated counts app loads that resumed a
	// stored session.
	MetricBootstrapAuthenticated
	// MetricBootstrapAnonymous counts app loads that settled anonymous.
	MetricBootstrapAnonymous
	// MetricSessionDemoted counts involuntary authenticated→anonymous
	// transitions.
	MetricSessionDemoted
	// MetricStaleResultDiscarded counts settled network results dropped
	// because the session generation advanced while they were in flight.
	MetricStaleResultDiscarded
	// MetricGuardAllowed counts guard decisions that rendered the view.
	MetricGuardAllowed
	// MetricGuardDeniedRole counts guard decisions denied by role.
	MetricGuardDeniedRole
	// MetricGuardRedirected counts guard decisions redirected to login.
	MetricGuardRedirected
	// MetricGuardWaiting counts guard decisions deferred while loading.
	MetricGuardWaiting
	// MetricRefreshLatency is the refresh round-trip latency histogram.
	MetricRefreshLatency
	metricIDCount
)

const (
	histBucketCount = 8
	cacheLineSize   = 64
)

type metricHistogram struct {
	buckets [histBucketCount]uint64
}

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds atomic counters and an optional latency histogram.
// All operations are safe for concurrent use and are no-ops when the
// metrics system is disabled.
type Metrics struct {
	enabled       bool
	enableLatency bool
	counters      [metricIDCount]paddedCounter
	histograms    [metricIDCount]metricHistogram
}

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// NewMetrics creates a [Metrics] instance configured by cfg. When
// Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:       cfg.Enabled,
		enableLatency: cfg.Enabled && cfg.EnableLatencyHistograms,
	}
}

// Enabled reports whether counters are recording.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc increments a counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe records a latency observation into the histogram bucket for d.
// Only [MetricRefreshLatency] carries a histogram.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.enabled || !m.enableLatency || id != MetricRefreshLatency {
		return
	}
	b := bucketIndex(d)
	atomic.AddUint64(&m.histograms[id].buckets[b], 1)
}

// Value returns the current value of a counter.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot returns a deep copy of all counters and histogram buckets.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}

	s := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, int(metricIDCount)),
		Histograms: make(map[MetricID][]uint64, 1),
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}

	if m.enableLatency {
		buckets := make([]uint64, histBucketCount)
		for i := 0; i < histBucketCount; i++ {
			buckets[i] = atomic.LoadUint64(&m.histograms[MetricRefreshLatency].buckets[i])
		}
		s.Histograms[MetricRefreshLatency] = buckets
	}

	return s
}

func bucketIndex(d time.Duration) int {
	ms := d.Milliseconds()

	switch {
	case ms <= 5:
		return 0
	case ms <= 10:
		return 1
	case ms <= 25:
		return 2
	case ms <= 50:
		return 3
	case ms <= 100:
		return 4
	case ms <= 250:
		return 5
	case ms <= 500:
		return 6
	default:
		return 7
	}
}

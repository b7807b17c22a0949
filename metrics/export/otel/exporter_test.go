package otel

import (
	"context"
	"sync"
	"testing"

	oneclient "github.com/enterpriseone/oneclient"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type fakeSource struct {
	mu       sync.RWMutex
	snapshot oneclient.MetricsSnapshot
	dropped  uint64
}

func (f *fakeSource) MetricsSnapshot() oneclient.MetricsSnapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := oneclient.MetricsSnapshot{
		Counters:   make(map[oneclient.MetricID]uint64, len(f.snapshot.Counters)),
		Histograms: make(map[oneclient.MetricID][]uint64, len(f.snapshot.Histograms)),
	}
	for k, v := range f.snapshot.Counters {
		out.Counters[k] = v
	}
	for k, buckets := range f.snapshot.Histograms {
		next := make([]uint64, len(buckets))
		copy(next, buckets)
		out.Histograms[k] = next
	}
	return out
}

func (f *fakeSource) AuditDropped() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.dropped
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}

	values := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					values[m.Name] = dp.Value
				}
			case metricdata.Gauge[int64]:
				for _, dp := range data.DataPoints {
					values[m.Name] = dp.Value
				}
			}
		}
	}
	return values
}

func TestExporterRegistersAndCollects(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("oneclient-test")

	src := &fakeSource{
		snapshot: oneclient.MetricsSnapshot{
			Counters: map[oneclient.MetricID]uint64{
				oneclient.MetricLoginSuccess:   3,
				oneclient.MetricSessionDemoted: 1,
			},
			Histograms: map[oneclient.MetricID][]uint64{
				oneclient.MetricRefreshLatency: {1, 1, 1, 1, 1, 1, 1, 1},
			},
		},
		dropped: 2,
	}

	exporter, err := NewExporterFromSource(meter, src)
	if err != nil {
		t.Fatalf("NewExporterFromSource: %v", err)
	}
	t.Cleanup(func() { _ = exporter.Close() })

	values := collect(t, reader)

	if got := values["eone_login_success_total"]; got != 3 {
		t.Fatalf("login success = %d, want 3", got)
	}
	if got := values["eone_session_demoted_total"]; got != 1 {
		t.Fatalf("session demoted = %d, want 1", got)
	}
	if got := values["eone_audit_dropped_total"]; got != 2 {
		t.Fatalf("audit dropped = %d, want 2", got)
	}
	// Buckets are exported cumulatively.
	if got := values["eone_refresh_latency_seconds_bucket_le_0_01"]; got != 2 {
		t.Fatalf("second bucket = %d, want 2", got)
	}
	if got := values["eone_refresh_latency_seconds_count"]; got != 8 {
		t.Fatalf("histogram count = %d, want 8", got)
	}
}

func TestExporterCollectsFreshSnapshots(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("oneclient-test")

	src := &fakeSource{
		snapshot: oneclient.MetricsSnapshot{
			Counters: map[oneclient.MetricID]uint64{oneclient.MetricLogout: 1},
		},
	}

	exporter, err := NewExporterFromSource(meter, src)
	if err != nil {
		t.Fatalf("NewExporterFromSource: %v", err)
	}
	t.Cleanup(func() { _ = exporter.Close() })

	if got := collect(t, reader)["eone_logout_total"]; got != 1 {
		t.Fatalf("first collect = %d, want 1", got)
	}

	src.mu.Lock()
	src.snapshot.Counters[oneclient.MetricLogout] = 5
	src.mu.Unlock()

	if got := collect(t, reader)["eone_logout_total"]; got != 5 {
		t.Fatalf("second collect = %d, want 5", got)
	}
}

func TestExporterRejectsNilInputs(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := provider.Meter("oneclient-test")

	if _, err := NewExporterFromSource(nil, &fakeSource{}); err != ErrNilMeter {
		t.Fatalf("nil meter err = %v", err)
	}
	if _, err := NewExporterFromSource(meter, nil); err != ErrNilSource {
		t.Fatalf("nil source err = %v", err)
	}
}

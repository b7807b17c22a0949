package oneclient

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestAuditDispatcherDeliversEvents(t *testing.T) {
	sink := NewChannelSink(8)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 8}, sink)
	t.Cleanup(d.Close)

	d.Emit(context.Background(), AuditEvent{EventType: auditEventLogin, Success: true})

	select {
	case event := <-sink.Events():
		if event.EventType != auditEventLogin || !event.Success {
			t.Fatalf("event = %+v", event)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event never delivered")
	}
}

func TestAuditDispatcherDisabledIsNil(t *testing.T) {
	if d := newAuditDispatcher(AuditConfig{Enabled: false}, NoOpSink{}); d != nil {
		t.Fatal("disabled dispatcher not nil")
	}

	var d *auditDispatcher
	d.Emit(context.Background(), AuditEvent{})
	if d.Dropped() != 0 {
		t.Fatal("nil dispatcher reported drops")
	}
	d.Close()
}

func TestAuditDispatcherDropsWhenFull(t *testing.T) {
	block := make(chan struct{})
	sink := blockingSink{release: block}
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1, DropIfFull: true}, sink)

	// First event occupies the worker, second fills the buffer, the rest
	// must be shed.
	for i := 0; i < 8; i++ {
		d.Emit(context.Background(), AuditEvent{EventType: auditEventRefresh})
	}
	close(block)
	d.Close()

	if d.Dropped() == 0 {
		t.Fatal("saturated dispatcher dropped nothing")
	}
}

type blockingSink struct {
	release <-chan struct{}
}

func (s blockingSink) Emit(context.Context, AuditEvent) {
	<-s.release
}

func TestAuditDispatcherCloseDrains(t *testing.T) {
	sink := NewChannelSink(16)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 16}, sink)

	for i := 0; i < 5; i++ {
		d.Emit(context.Background(), AuditEvent{EventType: auditEventLogout})
	}
	d.Close()

	delivered := 0
	for {
		select {
		case <-sink.Events():
			delivered++
		default:
			if delivered != 5 {
				t.Fatalf("delivered %d events, want 5", delivered)
			}
			return
		}
	}
}

func TestJSONWriterSinkWritesLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), AuditEvent{EventType: auditEventLogin, Email: "ada@acme.test", Success: true})
	sink.Emit(context.Background(), AuditEvent{EventType: auditEventLogout, Success: true})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}

	var event AuditEvent
	if err := json.Unmarshal([]byte(lines[0]), &event); err != nil {
		t.Fatalf("unmarshal line: %v", err)
	}
	if event.EventType != auditEventLogin || event.Email != "ada@acme.test" {
		t.Fatalf("event = %+v", event)
	}
}

func TestSessionEmitsAuditEvents(t *testing.T) {
	sink := NewChannelSink(16)

	_ = authenticatedSessionWith(t, RoleAdmin, func(b *Builder) *Builder {
		return b.WithAuditSink(sink)
	})

	deadline := time.After(2 * time.Second)
	for {
		select {
		case event := <-sink.Events():
			if event.EventType == auditEventLogin && event.Success {
				if event.Email != "ada@acme.test" {
					t.Fatalf("login event missing profile info: %+v", event)
				}
				return
			}
		case <-deadline:
			t.Fatal("login audit event never emitted")
		}
	}
}

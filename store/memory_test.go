package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Load(ctx); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("Load on empty store = %v, want ErrTokenNotFound", err)
	}

	if err := s.Save(ctx, "tok"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil || got != "tok" {
		t.Fatalf("Load = %q, %v", got, err)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := s.Load(ctx); !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("Load after Clear = %v, want ErrTokenNotFound", err)
	}
}

package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), time.Minute)

	got, ok := m.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if string(got) != "v" {
		t.Errorf("Get = %q, want %q", got, "v")
	}

	if _, ok := m.Get(ctx, "other"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestMemory_ExpiresAfterTTL(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	m.now = func() time.Time { return now }

	m.Set(ctx, "k", []byte("v"), 15*time.Minute)

	now = base.Add(14 * time.Minute)
	if _, ok := m.Get(ctx, "k"); !ok {
		t.Fatal("entry expired before its TTL")
	}

	now = base.Add(15*time.Minute + time.Second)
	if _, ok := m.Get(ctx, "k"); ok {
		t.Fatal("entry still readable after TTL")
	}

	// The expired entry must also be gone from the map, not just hidden.
	m.mu.Lock()
	_, present := m.entries["k"]
	m.mu.Unlock()
	if present {
		t.Error("expired entry was not evicted on read")
	}
}

func TestMemory_LastWriteWins(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("first"), time.Minute)
	m.Set(ctx, "k", []byte("second"), time.Minute)

	got, ok := m.Get(ctx, "k")
	if !ok || string(got) != "second" {
		t.Errorf("Get = %q, %v; want %q, true", got, ok, "second")
	}
}

func TestMemory_NonPositiveTTLIgnored(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "k", []byte("v"), 0)
	if _, ok := m.Get(ctx, "k"); ok {
		t.Error("zero TTL entry should not be stored")
	}
}

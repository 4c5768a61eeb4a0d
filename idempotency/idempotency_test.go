package idempotency

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestGuard(t *testing.T) *Guard {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewFromClient(client)
}

func TestClaimFirstWriter(t *testing.T) {
	guard := newTestGuard(t)
	ctx := context.Background()

	first, cachedID, err := guard.Claim(ctx, "key-1")
	if err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	if !first {
		t.Error("first claim should win")
	}
	if cachedID != "" {
		t.Errorf("cachedID = %q, want empty", cachedID)
	}
}

func TestClaimReplayReturnsRecordedID(t *testing.T) {
	guard := newTestGuard(t)
	ctx := context.Background()

	if _, _, err := guard.Claim(ctx, "key-1"); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	if err := guard.Record(ctx, "key-1", "doc-42"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	first, cachedID, err := guard.Claim(ctx, "key-1")
	if err != nil {
		t.Fatalf("replay Claim failed: %v", err)
	}
	if first {
		t.Error("replay claim should not win")
	}
	if cachedID != "doc-42" {
		t.Errorf("cachedID = %q, want doc-42", cachedID)
	}
}

func TestClaimWhileFirstWriteInFlight(t *testing.T) {
	guard := newTestGuard(t)
	ctx := context.Background()

	if _, _, err := guard.Claim(ctx, "key-1"); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}

	// No Record yet: the replay is recognized but has no id to return.
	first, cachedID, err := guard.Claim(ctx, "key-1")
	if err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	if first {
		t.Error("in-flight claim should not win")
	}
	if cachedID != "" {
		t.Errorf("cachedID = %q, want empty while pending", cachedID)
	}
}

func TestReleaseAllowsRetry(t *testing.T) {
	guard := newTestGuard(t)
	ctx := context.Background()

	if _, _, err := guard.Claim(ctx, "key-1"); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	guard.Release(ctx, "key-1")

	first, _, err := guard.Claim(ctx, "key-1")
	if err != nil {
		t.Fatalf("Claim after release failed: %v", err)
	}
	if !first {
		t.Error("claim after release should win")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	guard := newTestGuard(t)
	ctx := context.Background()

	if _, _, err := guard.Claim(ctx, "key-1"); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	first, _, err := guard.Claim(ctx, "key-2")
	if err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	if !first {
		t.Error("distinct key should claim independently")
	}
}

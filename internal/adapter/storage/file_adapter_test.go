package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestFileAdapter_GetMissingKey(t *testing.T) {
	adapter := NewFileAdapter(filepath.Join(t.TempDir(), "kv.json"))

	_, ok, err := adapter.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected miss on empty store")
	}
}

func TestFileAdapter_SetGetRoundtrip(t *testing.T) {
	adapter := NewFileAdapter(filepath.Join(t.TempDir(), "kv.json"))
	ctx := context.Background()

	if err := adapter.Set(ctx, "daily_tokens", `{"date":"2025-03-10","counter":7}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok, err := adapter.Get(ctx, "daily_tokens")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if val != `{"date":"2025-03-10","counter":7}` {
		t.Errorf("unexpected value: %s", val)
	}
}

func TestFileAdapter_Overwrite(t *testing.T) {
	adapter := NewFileAdapter(filepath.Join(t.TempDir(), "kv.json"))
	ctx := context.Background()

	adapter.Set(ctx, "k", "one")
	adapter.Set(ctx, "k", "two")

	val, _, err := adapter.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != "two" {
		t.Errorf("expected overwrite to two, got %s", val)
	}
}

func TestFileAdapter_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	ctx := context.Background()

	if err := NewFileAdapter(path).Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok, err := NewFileAdapter(path).Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok || val != "v" {
		t.Errorf("value did not survive reopen: ok=%v val=%s", ok, val)
	}
}

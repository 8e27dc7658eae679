package kv_test

import (
	"context"
	"errors"
	"testing"

	apperrors "pokerlog/internal/platform/errors"
	"pokerlog/internal/platform/kv"
)

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store, err := kv.NewFileStore(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if _, err := store.Get(ctx, "users"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing key, got %v", err)
	}
	if err := store.Set(ctx, "users", `{"alice":{}}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, "users")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != `{"alice":{}}` {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestFileStoreRejectsBadKeys(t *testing.T) {
	t.Parallel()
	store, err := kv.NewFileStore(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Set(context.Background(), "../escape", "x"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFileStoreQuota(t *testing.T) {
	t.Parallel()
	store, err := kv.NewFileStore(t.TempDir(), 16)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Set(ctx, "currentUser", "alice"); err != nil {
		t.Fatalf("small write must fit: %v", err)
	}
	err = store.Set(ctx, "users", `{"alice":{"sessions":[]}}`)
	if !errors.Is(err, apperrors.ErrStorageQuota) {
		t.Fatalf("expected ErrStorageQuota, got %v", err)
	}
	// Rewriting an existing key counts the replacement, not the sum of both.
	if err := store.Set(ctx, "currentUser", "bob"); err != nil {
		t.Fatalf("rewrite within quota: %v", err)
	}
}

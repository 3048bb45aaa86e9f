package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStoreSetGetDelete(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}

	store.Set(ctx, "pool", 42)
	v, ok := store.Get(ctx, "pool")
	if !ok || v != 42 {
		t.Fatalf("expected hit with 42, got %v ok=%t", v, ok)
	}

	store.Delete(ctx, "pool")
	if _, ok := store.Get(ctx, "pool"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestStoreTTLExpiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "pool", "v")
	time.Sleep(20 * time.Millisecond)

	if _, ok := store.Get(ctx, "pool"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestGetOrLoadCachesResult(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()
	loads := 0
	loader := func(context.Context) (any, error) {
		loads++
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		v, err := store.GetOrLoad(ctx, "pool", loader)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "loaded" {
			t.Fatalf("unexpected value: %v", v)
		}
	}

	if loads != 1 {
		t.Fatalf("expected single load, got %d", loads)
	}
}

func TestGetOrLoadPropagatesLoaderError(t *testing.T) {
	store := NewStore(time.Minute)
	wantErr := errors.New("pool unavailable")

	_, err := store.GetOrLoad(context.Background(), "pool", func(context.Context) (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected loader error, got %v", err)
	}

	// errors are not cached
	v, err := store.GetOrLoad(context.Background(), "pool", func(context.Context) (any, error) {
		return "recovered", nil
	})
	if err != nil || v != "recovered" {
		t.Fatalf("expected recovery after failed load, got %v err=%v", v, err)
	}
}

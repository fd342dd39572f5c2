package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || v != "v2" {
		t.Fatalf("expected v2, got %q ok=%v err=%v", v, ok, err)
	}

	if err := s.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("expected key removed")
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, NewMemory())
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	s, err := NewRedis(url, "test:")
	if err != nil {
		t.Fatalf("redis: %v", err)
	}
	defer s.Close()
	if err := s.Ping(context.Background()); err != nil {
		t.Skipf("redis unreachable: %v", err)
	}
	exerciseStore(t, s)
}

func TestCollectionsRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemory()

	items, err := LoadCollection[item](ctx, s, "items")
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil collection, got %#v", items)
	}

	want := []item{{ID: "a", Name: "Ana"}, {ID: "b", Name: "Bia"}}
	if err := SaveCollection(ctx, s, "items", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := LoadCollection[item](ctx, s, "items")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("unexpected collection %+v", got)
	}

	if err := s.Set(ctx, "broken", "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := LoadCollection[item](ctx, s, "broken"); err == nil {
		t.Fatalf("expected decode error")
	}
}

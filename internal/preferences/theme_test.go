package preferences

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T) (*RedisThemeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisThemeStore(client, "medicare:theme"), mr
}

func TestRedisThemeStoreDefaultsToDark(t *testing.T) {
	store, _ := newRedisStore(t)
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != ThemeDark {
		t.Fatalf("expected dark, got %s", got)
	}
}

func TestRedisThemeStoreToggle(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	next, err := Toggle(ctx, store)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if next != ThemeLight {
		t.Fatalf("expected light, got %s", next)
	}
	if raw, _ := mr.Get("medicare:theme"); raw != "light" {
		t.Fatalf("expected stored light, got %q", raw)
	}

	next, err = Toggle(ctx, store)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if next != ThemeDark {
		t.Fatalf("expected dark, got %s", next)
	}
}

func TestRedisThemeStoreIgnoresGarbage(t *testing.T) {
	store, mr := newRedisStore(t)
	if err := mr.Set("medicare:theme", "sepia"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != DefaultTheme {
		t.Fatalf("expected default, got %s", got)
	}
}

func TestRedisThemeStoreUnavailable(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("expected error when redis is down")
	}
}

func TestMemoryThemeStore(t *testing.T) {
	s := NewMemoryThemeStore()
	ctx := context.Background()
	if err := s.Save(ctx, Theme("blue")); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
	if next, _ := Toggle(ctx, s); next != ThemeLight {
		t.Fatalf("expected light, got %s", next)
	}
	if got, _ := s.Load(ctx); got != ThemeLight {
		t.Fatalf("expected light persisted, got %s", got)
	}
}

func TestParseTheme(t *testing.T) {
	if got, err := ParseTheme(" LIGHT "); err != nil || got != ThemeLight {
		t.Fatalf("got %s, %v", got, err)
	}
	if _, err := ParseTheme(""); !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}

// Package preferences persists the display theme, the one setting that
// survives restarts.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Theme is the colour scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	DefaultTheme = ThemeDark
)

var ErrInvalidTheme = errors.New("preferences: theme must be dark or light")

// ParseTheme accepts "dark" or "light" in any case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", ErrInvalidTheme
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ThemeStore reads and writes the stored theme.
type ThemeStore interface {
	Load(ctx context.Context) (Theme, error)
	Save(ctx context.Context, t Theme) error
}

// Toggle flips the stored theme and returns the new value.
func Toggle(ctx context.Context, s ThemeStore) (Theme, error) {
	cur, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	next := cur.Toggled()
	if err := s.Save(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// RedisThemeStore keeps the theme under a single key.
type RedisThemeStore struct {
	client *redis.Client
	key    string
}

func NewRedisThemeStore(client *redis.Client, key string) *RedisThemeStore {
	if client == nil {
		panic("preferences: redis client required")
	}
	if strings.TrimSpace(key) == "" {
		key = "theme"
	}
	return &RedisThemeStore{client: client, key: key}
}

// Load returns the stored theme. A missing or unreadable value yields the
// default.
func (s *RedisThemeStore) Load(ctx context.Context) (Theme, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return DefaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("preferences: load theme: %w", err)
	}
	t, err := ParseTheme(raw)
	if err != nil {
		return DefaultTheme, nil
	}
	return t, nil
}

func (s *RedisThemeStore) Save(ctx context.Context, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, string(t), 0).Err(); err != nil {
		return fmt.Errorf("preferences: save theme: %w", err)
	}
	return nil
}

// MemoryThemeStore is used when no Redis is configured.
type MemoryThemeStore struct {
	mu    sync.RWMutex
	theme Theme
}

func NewMemoryThemeStore() *MemoryThemeStore {
	return &MemoryThemeStore{theme: DefaultTheme}
}

func (s *MemoryThemeStore) Load(context.Context) (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme, nil
}

func (s *MemoryThemeStore) Save(_ context.Context, t Theme) error {
	if _, err := ParseTheme(string(t)); err != nil {
		return err
	}
	s.mu.Lock()
	s.theme = t
	s.mu.Unlock()
	return nil
}

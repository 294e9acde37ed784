package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/wolfman30/medicare-clinic/internal/preferences"
)

func themeOf(t *testing.T, rec *httptest.ResponseRecorder) preferences.Theme {
	t.Helper()
	return decodeBody[themeResponse](t, rec).Theme
}

func TestThemeToggleWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	h := NewThemeHandler(preferences.NewRedisThemeStore(client, "medicare:theme"), nil)

	rec := httptest.NewRecorder()
	h.GetTheme(rec, httptest.NewRequest(http.MethodGet, "/api/theme", nil))
	expectStatus(t, rec, http.StatusOK)
	if got := themeOf(t, rec); got != preferences.ThemeDark {
		t.Fatalf("expected dark by default, got %s", got)
	}

	rec = httptest.NewRecorder()
	h.ToggleTheme(rec, httptest.NewRequest(http.MethodPost, "/api/theme/toggle", nil))
	expectStatus(t, rec, http.StatusOK)
	if got := themeOf(t, rec); got != preferences.ThemeLight {
		t.Fatalf("expected light, got %s", got)
	}
	if v, _ := mr.Get("medicare:theme"); v != "light" {
		t.Fatalf("expected light persisted, got %q", v)
	}
}

func TestThemeUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	h := NewThemeHandler(preferences.NewRedisThemeStore(client, ""), nil)
	mr.Close()

	rec := httptest.NewRecorder()
	h.GetTheme(rec, httptest.NewRequest(http.MethodGet, "/api/theme", nil))
	expectStatus(t, rec, http.StatusOK)
	if got := themeOf(t, rec); got != preferences.DefaultTheme {
		t.Fatalf("expected default theme, got %s", got)
	}

	rec = httptest.NewRecorder()
	h.ToggleTheme(rec, httptest.NewRequest(http.MethodPost, "/api/theme/toggle", nil))
	expectStatus(t, rec, http.StatusServiceUnavailable)
}

func TestSetTheme(t *testing.T) {
	h := NewThemeHandler(nil, nil)

	rec := httptest.NewRecorder()
	h.SetTheme(rec, httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"theme":"LIGHT"}`)))
	expectStatus(t, rec, http.StatusOK)
	if got := themeOf(t, rec); got != preferences.ThemeLight {
		t.Fatalf("expected light, got %s", got)
	}

	rec = httptest.NewRecorder()
	h.SetTheme(rec, httptest.NewRequest(http.MethodPut, "/api/theme", strings.NewReader(`{"theme":"sepia"}`)))
	expectStatus(t, rec, http.StatusBadRequest)
}

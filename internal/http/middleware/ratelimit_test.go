package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterBurstAndRefill(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, 2)
	rl.now = func() time.Time { return now }

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatal("expected burst of two")
	}
	if rl.Allow("a") {
		t.Fatal("expected third request to be limited")
	}
	if !rl.Allow("b") {
		t.Fatal("keys must not share buckets")
	}

	now = now.Add(time.Second)
	if !rl.Allow("a") {
		t.Fatal("expected refill after one second")
	}

	if n := rl.Evict(now.Add(time.Minute)); n != 2 {
		t.Fatalf("expected both buckets evicted, got %d", n)
	}
}

func TestRateLimiterHandler(t *testing.T) {
	rl := NewRateLimiter(0, 1)
	h := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
		req.Header.Set(SessionHeader, "s-1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}
	if code := send(); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
}

func TestRateLimiterSessionHandlerIgnoresUnknownIDs(t *testing.T) {
	rl := NewRateLimiter(0, 1)
	live := map[string]bool{"s-live": true}
	h := rl.SessionHandler(func(id string) bool { return live[id] })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(sessionID string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
		req.RemoteAddr = "203.0.113.7:4000"
		if sessionID != "" {
			req.Header.Set(SessionHeader, sessionID)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("forged-1"); code != http.StatusOK {
		t.Fatalf("expected first request admitted, got %d", code)
	}
	// Unknown ids fall back to the IP bucket, which is now empty.
	for _, id := range []string{"forged-2", "forged-3", ""} {
		if code := send(id); code != http.StatusTooManyRequests {
			t.Fatalf("id %q: expected 429, got %d", id, code)
		}
	}
	// A live session has its own bucket.
	if code := send("s-live"); code != http.StatusOK {
		t.Fatalf("expected live session admitted, got %d", code)
	}
	if code := send("s-live"); code != http.StatusTooManyRequests {
		t.Fatalf("expected live session limited, got %d", code)
	}
}

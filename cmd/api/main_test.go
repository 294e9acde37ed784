package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appconfig "github.com/wolfman30/medicare-clinic/internal/config"
	httpmiddleware "github.com/wolfman30/medicare-clinic/internal/http/middleware"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

func TestSetupMetricsExposesMetrics(t *testing.T) {
	handler, m := setupMetrics()
	if handler == nil || m == nil {
		t.Fatalf("expected non-nil handler and metrics")
	}

	m.ObserveEvent("appointments.appointment.added.v1")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "medicare_store_events_total") {
		t.Fatalf("expected event counter to be exported")
	}
}

func testConfig() *appconfig.Config {
	return &appconfig.Config{
		AdminPassword:        "ad123",
		PatientCredentials:   "PAT001:patient123",
		AuthTokenSecret:      "test-secret",
		AuthTokenTTL:         time.Hour,
		SessionIdleTTL:       time.Hour,
		SessionSweepInterval: time.Minute,
		RateLimitRPS:         100,
		RateLimitBurst:       100,
	}
}

func TestSetupAppServesAPI(t *testing.T) {
	a, err := setupApp(context.Background(), testConfig(), logging.New("error"))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer a.close()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/admin/login", strings.NewReader(`{"password":"ad123"}`))
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if a.registry.Len() != 1 {
		t.Fatalf("expected one session, got %d", a.registry.Len())
	}

	// Store events reach the metrics endpoint through the bus.
	rr = httptest.NewRecorder()
	a.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	if !strings.Contains(body, `medicare_store_events_total{event_type="session.state.changed.v1"} 1`) {
		t.Fatalf("expected session event counted, got:\n%s", body)
	}
	if !strings.Contains(body, `medicare_auth_logins_total{outcome="accepted",role="admin"} 1`) {
		t.Fatalf("expected login counted")
	}

	rr = httptest.NewRecorder()
	a.handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	var health map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health["sessions"] != float64(1) {
		t.Fatalf("unexpected health %v", health)
	}
}

func TestSetupAppRejectsBadCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.PatientCredentials = "no-password"
	if _, err := setupApp(context.Background(), cfg, logging.New("error")); err == nil {
		t.Fatalf("expected error for malformed credentials")
	}
}

func TestSetupAppDefaultTokenSecret(t *testing.T) {
	cfg := testConfig()
	cfg.AuthTokenSecret = appconfig.DefaultAuthTokenSecret
	cfg.Env = "production"
	if _, err := setupApp(context.Background(), cfg, logging.New("error")); !errors.Is(err, errDefaultTokenSecret) {
		t.Fatalf("expected default secret to be refused in production, got %v", err)
	}

	var buf bytes.Buffer
	cfg.Env = "development"
	a, err := setupApp(context.Background(), cfg, logging.NewWithWriter(&buf, "warn"))
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer a.close()
	if !strings.Contains(buf.String(), "AUTH_TOKEN_SECRET not set") {
		t.Fatalf("expected a warning about the default secret, got %q", buf.String())
	}
}

func TestRunLimiterEvictionStops(t *testing.T) {
	limiter := httpmiddleware.NewRateLimiter(1, 1)
	limiter.Allow("k")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runLimiterEviction(ctx, limiter, 5*time.Millisecond)
		close(done)
	}()
	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("eviction loop did not stop")
	}
	if !limiter.Allow("k") {
		t.Fatalf("expected evicted bucket to start full")
	}
}

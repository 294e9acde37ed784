package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "ADMIN_PASSWORD", "PATIENT_CREDENTIALS", "SUBMIT_DELAY", "REDIS_ADDR", "CORS_ALLOWED_ORIGINS", "RATE_LIMIT_RPS", "AUTH_TOKEN_SECRET"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.AdminPassword != "ad123" {
		t.Fatalf("expected demo admin password, got %q", cfg.AdminPassword)
	}
	if cfg.PatientCredentials != "PAT001:patient123,PAT002:patient456,PAT003:patient789" {
		t.Fatalf("unexpected default patient credentials %q", cfg.PatientCredentials)
	}
	if cfg.SubmitDelay != time.Second {
		t.Fatalf("expected 1s submit delay, got %s", cfg.SubmitDelay)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected redis disabled by default, got %q", cfg.RedisAddr)
	}
	if cfg.ThemeKey != "theme" {
		t.Fatalf("expected theme key default, got %q", cfg.ThemeKey)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
	if !cfg.UsesDefaultTokenSecret() {
		t.Fatal("expected the built-in token secret")
	}
	if cfg.IsProduction() {
		t.Fatal("development must not count as production")
	}
	if cfg.RateLimitRPS != 20 {
		t.Fatalf("expected default rps 20, got %v", cfg.RateLimitRPS)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("SUBMIT_DELAY", "250ms")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, ,https://demo.example")
	t.Setenv("SESSION_IDLE_TTL", "30m")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("AUTH_TOKEN_SECRET", "rotated")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.Env != "production" || !cfg.IsProduction() {
		t.Fatalf("expected env override, got %s", cfg.Env)
	}
	if cfg.UsesDefaultTokenSecret() {
		t.Fatal("expected token secret override")
	}
	if cfg.AdminPassword != "s3cret" {
		t.Fatalf("expected admin password override, got %q", cfg.AdminPassword)
	}
	if cfg.SubmitDelay != 250*time.Millisecond {
		t.Fatalf("expected submit delay override, got %s", cfg.SubmitDelay)
	}
	if cfg.RedisAddr != "localhost:6379" || !cfg.RedisTLS {
		t.Fatalf("expected redis overrides, got %q tls=%v", cfg.RedisAddr, cfg.RedisTLS)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://demo.example" {
		t.Fatalf("unexpected CORS origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.SessionIdleTTL != 30*time.Minute {
		t.Fatalf("expected idle ttl override, got %s", cfg.SessionIdleTTL)
	}
	if cfg.RateLimitBurst != 5 || cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected rate limit overrides, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SUBMIT_DELAY", "soon")
	t.Setenv("RATE_LIMIT_BURST", "many")
	t.Setenv("REDIS_TLS", "maybe")
	cfg := Load()
	if cfg.SubmitDelay != time.Second {
		t.Fatalf("expected default delay on parse failure, got %s", cfg.SubmitDelay)
	}
	if cfg.RateLimitBurst != 40 {
		t.Fatalf("expected default burst on parse failure, got %d", cfg.RateLimitBurst)
	}
	if cfg.RedisTLS {
		t.Fatal("expected tls false on parse failure")
	}
}

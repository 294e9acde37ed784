package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAuthTokenSecret signs tokens when AUTH_TOKEN_SECRET is unset. It is
// public, so tokens signed with it can be forged.
const DefaultAuthTokenSecret = "medicare-demo-secret"

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Demo credentials. PatientCredentials is a comma separated list of
	// id:password pairs.
	AdminPassword      string
	PatientCredentials string

	AuthTokenSecret string
	AuthTokenTTL    time.Duration

	// SubmitDelay simulates network latency on login and booking forms.
	SubmitDelay time.Duration

	// Theme preference storage. Memory is used when RedisAddr is empty.
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	ThemeKey      string

	CORSAllowedOrigins []string

	SessionIdleTTL       time.Duration
	SessionSweepInterval time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  getEnv("ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		AdminPassword:        getEnv("ADMIN_PASSWORD", "ad123"),
		PatientCredentials:   getEnv("PATIENT_CREDENTIALS", "PAT001:patient123,PAT002:patient456,PAT003:patient789"),
		AuthTokenSecret:      getEnv("AUTH_TOKEN_SECRET", DefaultAuthTokenSecret),
		AuthTokenTTL:         getEnvAsDuration("AUTH_TOKEN_TTL", 8*time.Hour),
		SubmitDelay:          getEnvAsDuration("SUBMIT_DELAY", time.Second),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		RedisPassword:        getEnv("REDIS_PASSWORD", ""),
		RedisTLS:             getEnvAsBool("REDIS_TLS", false),
		ThemeKey:             getEnv("THEME_KEY", "theme"),
		CORSAllowedOrigins:   getEnvAsList("CORS_ALLOWED_ORIGINS", nil),
		SessionIdleTTL:       getEnvAsDuration("SESSION_IDLE_TTL", 2*time.Hour),
		SessionSweepInterval: getEnvAsDuration("SESSION_SWEEP_INTERVAL", 5*time.Minute),
		RateLimitRPS:         getEnvAsFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:       getEnvAsInt("RATE_LIMIT_BURST", 40),
	}
}

// UsesDefaultTokenSecret reports whether tokens would be signed with the
// built-in secret.
func (c *Config) UsesDefaultTokenSecret() bool {
	return c.AuthTokenSecret == "" || c.AuthTokenSecret == DefaultAuthTokenSecret
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "production")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

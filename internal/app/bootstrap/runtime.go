package bootstrap

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/wolfman30/medicare-clinic/internal/auth"
	appconfig "github.com/wolfman30/medicare-clinic/internal/config"
	"github.com/wolfman30/medicare-clinic/internal/latency"
	"github.com/wolfman30/medicare-clinic/internal/preferences"
	"github.com/wolfman30/medicare-clinic/internal/session"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		_ = client.Close()
		return nil
	}
	return client
}

// BuildThemeStore keeps the theme in Redis when a client is available and
// in process memory otherwise.
func BuildThemeStore(redisClient *redis.Client, cfg *appconfig.Config, logger *logging.Logger) preferences.ThemeStore {
	if logger == nil {
		logger = logging.Default()
	}
	if redisClient == nil {
		logger.Info("theme preference stored in memory")
		return preferences.NewMemoryThemeStore()
	}
	key := ""
	if cfg != nil {
		key = cfg.ThemeKey
	}
	logger.Info("theme preference stored in redis", "key", key)
	return preferences.NewRedisThemeStore(redisClient, key)
}

// Logins holds the two portal login flows.
type Logins struct {
	Admin   *auth.Login
	Patient *auth.Login
}

// BuildLogins wires the admin password and patient allow-list from config.
// Both flows share the configured submit delay.
func BuildLogins(cfg *appconfig.Config, observer auth.LoginObserver, logger *logging.Logger) (Logins, error) {
	if cfg == nil {
		return Logins{}, fmt.Errorf("bootstrap: config is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	allow, err := auth.ParseCredentials(cfg.PatientCredentials)
	if err != nil {
		return Logins{}, fmt.Errorf("bootstrap: patient credentials: %w", err)
	}
	if strings.TrimSpace(cfg.AdminPassword) == "" {
		logger.Warn("ADMIN_PASSWORD empty; admin login disabled")
	}
	if len(allow) == 0 {
		logger.Warn("PATIENT_CREDENTIALS empty; patient login disabled")
	}

	delay := latency.Fixed(cfg.SubmitDelay)
	admin := auth.NewLogin(session.UserTypeAdmin, auth.AdminPassword(cfg.AdminPassword), delay, logger.Component("admin-login"))
	patient := auth.NewLogin(session.UserTypePatient, allow, delay, logger.Component("patient-login"))
	if observer != nil {
		admin.WithObserver(observer)
		patient.WithObserver(observer)
	}
	return Logins{Admin: admin, Patient: patient}, nil
}

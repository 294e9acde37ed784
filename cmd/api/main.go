package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wolfman30/medicare-clinic/internal/api/router"
	"github.com/wolfman30/medicare-clinic/internal/app/bootstrap"
	"github.com/wolfman30/medicare-clinic/internal/auth"
	"github.com/wolfman30/medicare-clinic/internal/booking"
	appconfig "github.com/wolfman30/medicare-clinic/internal/config"
	"github.com/wolfman30/medicare-clinic/internal/events"
	"github.com/wolfman30/medicare-clinic/internal/http/handlers"
	httpmiddleware "github.com/wolfman30/medicare-clinic/internal/http/middleware"
	"github.com/wolfman30/medicare-clinic/internal/latency"
	"github.com/wolfman30/medicare-clinic/internal/observability/metrics"
	"github.com/wolfman30/medicare-clinic/internal/store"
	"github.com/wolfman30/medicare-clinic/internal/stream"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := appconfig.Load()

	// Initialize logger
	logger := logging.New(cfg.LogLevel)
	logger.Info("starting medicare clinic API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := setupApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.close()

	go app.registry.Run(ctx)
	go runLimiterEviction(ctx, app.limiter, cfg.SessionSweepInterval)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      app.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()

	logger.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

var errDefaultTokenSecret = errors.New("AUTH_TOKEN_SECRET must be set in production")

type app struct {
	handler  http.Handler
	registry *store.Registry
	limiter  *httpmiddleware.RateLimiter
	close    func()
}

// setupApp wires every component from cfg. Background loops are left to the
// caller.
func setupApp(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) (*app, error) {
	if cfg.UsesDefaultTokenSecret() {
		if cfg.IsProduction() {
			return nil, errDefaultTokenSecret
		}
		logger.Warn("AUTH_TOKEN_SECRET not set; signing tokens with the public demo secret")
	}

	metricsHandler, storeMetrics := setupMetrics()

	bus := events.NewBus(logger.Component("events"))
	bus.Subscribe(func(env events.Envelope) { storeMetrics.ObserveEvent(env.EventType) })

	registry := store.NewRegistry(store.DemoSeed, bus, logger.Component("store")).
		WithIdleTTL(cfg.SessionIdleTTL).
		WithSweepInterval(cfg.SessionSweepInterval).
		WithGauge(storeMetrics)

	logins, err := bootstrap.BuildLogins(cfg, storeMetrics, logger)
	if err != nil {
		return nil, err
	}
	tokens := auth.NewTokenIssuer(cfg.AuthTokenSecret, cfg.AuthTokenTTL)
	bookings := booking.NewService(latency.Fixed(cfg.SubmitDelay), logger.Component("booking")).
		WithObserver(storeMetrics)

	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	themeStore := bootstrap.BuildThemeStore(redisClient, cfg, logger)

	var limiter *httpmiddleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = httpmiddleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	handler := router.New(&router.Config{
		Logger:             logger,
		Registry:           registry,
		Tokens:             tokens,
		State:              handlers.NewStateHandler(logger),
		Auth:               handlers.NewAuthHandler(logins.Admin, logins.Patient, tokens, logger),
		Doctors:            handlers.NewDoctorHandler(logger),
		Appointments:       handlers.NewAppointmentHandler(bookings, logger),
		Patients:           handlers.NewPatientHandler(logger),
		Dashboards:         handlers.NewDashboardHandler(),
		Theme:              handlers.NewThemeHandler(themeStore, logger),
		Stream:             stream.NewHandler(bus, logger.Component("stream")),
		RateLimiter:        limiter,
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &app{
		handler:  handler,
		registry: registry,
		limiter:  limiter,
		close: func() {
			if redisClient != nil {
				_ = redisClient.Close()
			}
		},
	}, nil
}

func setupMetrics() (http.Handler, *metrics.StoreMetrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), metrics.NewStoreMetrics(reg)
}

// runLimiterEviction drops rate limit buckets idle for longer than interval.
func runLimiterEviction(ctx context.Context, limiter *httpmiddleware.RateLimiter, interval time.Duration) {
	if limiter == nil {
		return
	}
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			limiter.Evict(now.Add(-interval))
		}
	}
}

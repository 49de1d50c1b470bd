package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/sitebooks/backend/docs/swagger"
	"github.com/sitebooks/backend/pkg/app"
	"github.com/sitebooks/backend/pkg/auth"
	"github.com/sitebooks/backend/pkg/cache"
	"github.com/sitebooks/backend/pkg/config"
	"github.com/sitebooks/backend/pkg/database"
	"github.com/sitebooks/backend/pkg/events"
	"github.com/sitebooks/backend/pkg/httpx"
	"github.com/sitebooks/backend/pkg/logger"
	"github.com/sitebooks/backend/pkg/telemetry"
	ledgerApi "github.com/sitebooks/backend/services/ledger/application/api"
	"github.com/sitebooks/backend/services/ledger/domain/repositories"
	"github.com/sitebooks/backend/services/ledger/infrastructure/persistence/memory"
	"github.com/sitebooks/backend/services/ledger/infrastructure/persistence/postgres"
)

// @title					SiteBooks API
// @version				1.0
// @description			Bookkeeping API for a small construction business: ledger, inventory, and project tracking.
// @contact.name			API Support
// @contact.email			support@sitebooks.dev
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	// Storage backend, selected once: Postgres when DATABASE_URL is set,
	// the in-memory store otherwise. The in-memory store has no event bus.
	var (
		store    repositories.Store
		pool     *database.Database
		eventBus *events.EventBus
		checks   httpx.HealthChecks
	)
	if cfg.InMemory() {
		store = memory.NewStore()
		log.Warn("DATABASE_URL not set, using in-memory store; data is lost on restart")
	} else {
		pool, err = database.NewPool(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
		}
		defer pool.Close()
		log.Info("database pool connected")

		eventBus, err = events.NewEventBusWithForwarder(cfg, log)
		if err != nil {
			log.Error("failed to setup event bus", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer eventBus.Close() //nolint:errcheck

		if err := eventBus.StartForwarder(ctx); err != nil {
			log.Error("failed to start event forwarder", "error", err)
			os.Exit(1) //nolint:gocritic
		}

		store = postgres.NewStore(pool, eventBus)
		checks.Database = pool
		checks.EventBus = eventBus
	}

	// Redis is optional: without it the overview cache and sessions are off.
	var (
		redisClient  *cache.RedisClient
		sessionStore *auth.RedisStore
	)
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")

		sessionStore = auth.NewSessionStore(
			redisClient.Client(),
			[]byte(cfg.SessionAuthKey),
			[]byte(cfg.SessionEncryptionKey),
			cfg.Environment == config.EnvProduction,
		)
		log.Info("session store initialized", "backend", "redis")

		checks.Redis = redisClient
	}

	appConfig := &app.Application{
		Store:    store,
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}
	if sessionStore != nil {
		appConfig.SessionStore = sessionStore
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.ListenAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	ledgerApi.LedgerRoutes(r, a)
}

package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"

	"github.com/sitebooks/backend/pkg/app"
	"github.com/sitebooks/backend/pkg/cache"
	"github.com/sitebooks/backend/pkg/config"
	"github.com/sitebooks/backend/pkg/database"
	"github.com/sitebooks/backend/pkg/events"
	"github.com/sitebooks/backend/pkg/logger"
	"github.com/sitebooks/backend/pkg/telemetry"
	ledgerEvents "github.com/sitebooks/backend/services/ledger/domain/events"
)

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

	// The event bus is Postgres-backed; without a database there is
	// nothing to subscribe to.
	if cfg.InMemory() {
		log.Error("DATABASE_URL must be set to run the worker")
		os.Exit(1)
	}

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	var redisClient *cache.RedisClient
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")
	}

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more events are published.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := []string{
		ledgerEvents.TopicMovementRecorded,
		ledgerEvents.TopicProjectCostCreated,
		ledgerEvents.TopicProjectSaleCreated,
	}

	subscriptions := map[string]func(context.Context, *message.Message) error{
		ledgerEvents.TopicMovementRecorded:   handleMovementRecorded(a),
		ledgerEvents.TopicProjectCostCreated: handleProjectCostCreated(a),
		ledgerEvents.TopicProjectSaleCreated: handleProjectSaleCreated(a),
	}

	for topic, handler := range subscriptions {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		topic := topic
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleMovementRecorded returns a handler for ledger.movement_recorded events.
// Handlers must be idempotent: the EventBus retries up to 3x on failure.
// Emits a low-stock warning when the movement leaves the item at or below
// its reorder threshold, and drops the cached overview so the dashboard
// reflects the new stock level.
func handleMovementRecorded(a *app.Application) func(context.Context, *message.Message) error {
	overviewCache := newOverviewCache(a)
	return func(ctx context.Context, msg *message.Message) error {
		var evt ledgerEvents.MovementRecordedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		qty, qtyErr := decimal.NewFromString(evt.ItemQuantity)
		minLevel, minErr := decimal.NewFromString(evt.ItemMinLevel)
		if qtyErr == nil && minErr == nil && qty.LessThanOrEqual(minLevel) {
			a.Logger.WarnContext(ctx, "stock at or below reorder level",
				"item_id", evt.ItemID,
				"item_name", evt.ItemName,
				"quantity", evt.ItemQuantity,
				"min_level", evt.ItemMinLevel,
			)
		}

		invalidateOverview(ctx, a, overviewCache)

		a.Logger.InfoContext(ctx, "movement processed",
			"movement_id", evt.MovementID, "item_id", evt.ItemID, "kind", evt.Kind)
		return nil
	}
}

// handleProjectCostCreated returns a handler for ledger.project_cost_created events.
func handleProjectCostCreated(a *app.Application) func(context.Context, *message.Message) error {
	overviewCache := newOverviewCache(a)
	return func(ctx context.Context, msg *message.Message) error {
		var evt ledgerEvents.ProjectCostCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		invalidateOverview(ctx, a, overviewCache)

		a.Logger.InfoContext(ctx, "project cost processed",
			"cost_id", evt.CostID, "project_id", evt.ProjectID, "amount", evt.Amount)
		return nil
	}
}

// handleProjectSaleCreated returns a handler for ledger.project_sale_created events.
func handleProjectSaleCreated(a *app.Application) func(context.Context, *message.Message) error {
	overviewCache := newOverviewCache(a)
	return func(ctx context.Context, msg *message.Message) error {
		var evt ledgerEvents.ProjectSaleCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		invalidateOverview(ctx, a, overviewCache)

		a.Logger.InfoContext(ctx, "project sale processed",
			"sale_id", evt.SaleID, "project_id", evt.ProjectID, "price", evt.Price)
		return nil
	}
}

func newOverviewCache(a *app.Application) *cache.OverviewCache {
	if a.Redis == nil {
		return nil
	}
	return cache.NewOverviewCache(a.Redis)
}

// invalidateOverview is best-effort; the cache TTL bounds staleness anyway.
func invalidateOverview(ctx context.Context, a *app.Application, c *cache.OverviewCache) {
	if c == nil {
		return
	}
	if err := c.Invalidate(ctx); err != nil {
		a.Logger.WarnContext(ctx, "overview cache invalidation failed", "error", err)
	}
}

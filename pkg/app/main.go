package app

import (
	"github.com/gorilla/sessions"

	"github.com/sitebooks/backend/pkg/cache"
	"github.com/sitebooks/backend/pkg/database"
	"github.com/sitebooks/backend/pkg/events"
	"github.com/sitebooks/backend/pkg/logger"
	"github.com/sitebooks/backend/services/ledger/domain/repositories"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route registration calls during server initialization.
//
// Store is the single storage capability, selected once at startup:
// postgres when DATABASE_URL is configured, the in-memory fallback
// otherwise. Db, EventBus, Redis, and SessionStore may be nil depending on
// configuration; consumers must tolerate that.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's
// context methods and trace_id, span_id, and request_id are injected
// automatically:
//
//	app.Logger.InfoContext(ctx, "recording receipt", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to save", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Store        repositories.Store
	Db           *database.Database // nil when running on the in-memory store
	Logger       logger.Logger
	EventBus     *events.EventBus   // nil when no database is configured
	Redis        *cache.RedisClient // nil when no Redis is configured
	SessionStore sessions.Store     // Redis-backed session store; nil without Redis
}

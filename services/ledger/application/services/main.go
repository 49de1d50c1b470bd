package services

import (
	"github.com/sitebooks/backend/pkg/app"
	"github.com/sitebooks/backend/pkg/cache"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Ledger *LedgerService
}

// New wires all ledger application services with infrastructure from the
// Application container. The storage backend was already selected at
// startup; the overview cache is nil when Redis is not configured.
func New(a *app.Application) *Services {
	var overviewCache *cache.OverviewCache
	if a.Redis != nil {
		overviewCache = cache.NewOverviewCache(a.Redis)
	}
	return &Services{
		Ledger: NewLedgerService(a.Store, overviewCache),
	}
}

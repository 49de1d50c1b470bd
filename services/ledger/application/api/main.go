package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/sitebooks/backend/pkg/app"
	"github.com/sitebooks/backend/pkg/auth"
	"github.com/sitebooks/backend/services/ledger/application/handlers"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// LedgerRoutes registers all bookkeeping endpoints on the provided chi router.
// The identity middleware resolves the session user when one exists; all
// endpoints also accept anonymous requests with created_by in the payload.
func LedgerRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.Identity(a.SessionStore, a.Logger))

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", handlers.NewGetTransactionsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostTransactionHandler(svcs).Execute)
			r.Post("/{id}/approve", handlers.NewApproveTransactionHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteTransactionHandler(svcs).Execute)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/items", handlers.NewGetItemsHandler(svcs).Execute)
			r.Post("/items", handlers.NewPostItemHandler(svcs).Execute)
			r.Delete("/items/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
			r.Get("/movements", handlers.NewGetMovementsHandler(svcs).Execute)
			r.Post("/receipts", handlers.NewPostReceiptHandler(svcs).Execute)
			r.Post("/issues", handlers.NewPostIssueHandler(svcs).Execute)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.NewGetProjectsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostProjectHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteProjectHandler(svcs).Execute)
			r.Post("/{id}/costs", handlers.NewPostProjectCostHandler(svcs).Execute)
			r.Post("/{id}/sales", handlers.NewPostProjectSaleHandler(svcs).Execute)
			r.Get("/{id}/overview", handlers.NewGetProjectOverviewHandler(svcs).Execute)
		})

		r.Get("/overview", handlers.NewGetOverviewHandler(svcs).Execute)
	})
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// ProjectOverviewResponse is one project with its costs and sales.
type ProjectOverviewResponse struct {
	Project ProjectResponse `json:"project"`
	Costs   []CostResponse  `json:"costs"`
	Sales   []SaleResponse  `json:"sales"`
} // @name ProjectOverviewResponse

// GetProjectOverviewHandler handles GET /projects/{id}/overview requests.
type GetProjectOverviewHandler struct {
	svc *appsvcs.Services
}

// NewGetProjectOverviewHandler returns a GetProjectOverviewHandler backed by the given services.
func NewGetProjectOverviewHandler(svc *appsvcs.Services) *GetProjectOverviewHandler {
	return &GetProjectOverviewHandler{svc: svc}
}

// Execute returns one project with its booked costs and sales.
//
//	@Summary		Project overview
//	@Description	Returns a project plus only its associated costs and sales, sorted by date descending
//	@Tags			projects
//	@Produce		json
//	@Param			id	path		string	true	"Project ID"
//	@Success		200	{object}	ProjectOverviewResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/projects/{id}/overview [get]
func (h *GetProjectOverviewHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}

	ov, err := h.svc.Ledger.ProjectOverview(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ProjectOverviewResponse{
		Project: toProjectResponse(ov.Project),
		Costs:   toCostResponses(ov.Costs),
		Sales:   toSaleResponses(ov.Sales),
	})
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// DeleteProjectHandler handles DELETE /projects/{id} requests.
type DeleteProjectHandler struct {
	svc *appsvcs.Services
}

// NewDeleteProjectHandler returns a DeleteProjectHandler backed by the given services.
func NewDeleteProjectHandler(svc *appsvcs.Services) *DeleteProjectHandler {
	return &DeleteProjectHandler{svc: svc}
}

// Execute removes a project with all its booked costs and sales.
//
//	@Summary		Delete project
//	@Description	Removes a project and every cost and sale booked against it
//	@Tags			projects
//	@Produce		json
//	@Param			id	path	string	true	"Project ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/projects/{id} [delete]
func (h *DeleteProjectHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid project id"})
		return
	}

	if err := h.svc.Ledger.DeleteProject(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// GetProjectsHandler handles GET /projects requests.
type GetProjectsHandler struct {
	svc *appsvcs.Services
}

// NewGetProjectsHandler returns a GetProjectsHandler backed by the given services.
func NewGetProjectsHandler(svc *appsvcs.Services) *GetProjectsHandler {
	return &GetProjectsHandler{svc: svc}
}

// Execute lists all projects, newest first.
//
//	@Summary		List projects
//	@Description	Returns all construction projects sorted by creation time descending
//	@Tags			projects
//	@Produce		json
//	@Success		200	{array}		ProjectResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/projects [get]
func (h *GetProjectsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.Ledger.ListProjects(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toProjectResponses(projects))
}

package handlers

import (
	"net/http"

	"github.com/sitebooks/backend/pkg/errhttp"
	"github.com/sitebooks/backend/pkg/httpx"
	pkgvalidator "github.com/sitebooks/backend/pkg/validator"
	appsvcs "github.com/sitebooks/backend/services/ledger/application/services"
)

// CreateProjectRequest is the request body for POST /projects.
type CreateProjectRequest struct {
	Name     string `json:"name"     validate:"required,max=255" example:"Golden Valley"`
	Location string `json:"location" validate:"max=255" example:"Yangon"`
	Floors   int    `json:"floors"   validate:"min=0" example:"8"`
	Units    int    `json:"units"    validate:"min=0" example:"32"`
} // @name CreateProjectRequest

// PostProjectHandler handles POST /projects requests.
type PostProjectHandler struct {
	svc *appsvcs.Services
}

// NewPostProjectHandler returns a PostProjectHandler backed by the given services.
func NewPostProjectHandler(svc *appsvcs.Services) *PostProjectHandler {
	return &PostProjectHandler{svc: svc}
}

// Execute registers a construction project.
//
//	@Summary		Create project
//	@Description	Registers a construction project for cost and sale tracking
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProjectRequest	true	"Project to register"
//	@Success		201		{object}	ProjectResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/projects [post]
func (h *PostProjectHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateProjectRequest](w, r)
	if !ok {
		return
	}

	project, err := h.svc.Ledger.CreateProject(r.Context(), req.Name, req.Location, req.Floors, req.Units)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toProjectResponse(project))
}

package handlers

import (
	"net/http"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/models"
	"github.com/markjakearzadon/schoolclub-gobackend/internal/services"
)

// ApplicationHandler handles HTTP requests for membership applications
type ApplicationHandler struct {
	service *services.ApplicationService
}

func NewApplicationHandler(service *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// CreateApplication handles POST /api/applications
func (h *ApplicationHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	app, err := models.DecodeApplication(r.Body)
	if err != nil {
		respondError(w, err)
		return
	}

	id, err := h.service.CreateApplication(r.Context(), app)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"id": id, "status": "ok"})
}

// GetApplications handles GET /api/applications?status=&limit=
func (h *ApplicationHandler) GetApplications(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, services.DefaultApplicationLimit)
	if err != nil {
		respondError(w, err)
		return
	}

	docs, err := h.service.ApplicationList(r.Context(), r.URL.Query().Get("status"), limit)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, docs)
}

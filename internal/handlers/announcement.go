package handlers

import (
	"net/http"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/models"
	"github.com/markjakearzadon/schoolclub-gobackend/internal/services"
)

// AnnouncementHandler handles HTTP requests for announcements
type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler
func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// CreateAnnouncement handles POST /api/announcements
func (h *AnnouncementHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	announcement, err := models.DecodeAnnouncement(r.Body)
	if err != nil {
		respondError(w, err)
		return
	}

	id, err := h.announcementService.CreateAnnouncement(r.Context(), announcement)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"id": id})
}

// GetAnnouncements handles GET /api/announcements?limit=
func (h *AnnouncementHandler) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, services.DefaultAnnouncementLimit)
	if err != nil {
		respondError(w, err)
		return
	}

	announcements, err := h.announcementService.AnnouncementList(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, announcements)
}

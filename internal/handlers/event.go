package handlers

import (
	"net/http"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/models"
	"github.com/markjakearzadon/schoolclub-gobackend/internal/services"
)

type EventHandler struct {
	service *services.EventService
}

func NewEventHandler(service *services.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// GetEvents handles GET /api/events?limit=
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r, services.DefaultEventLimit)
	if err != nil {
		respondError(w, err)
		return
	}

	docs, err := h.service.EventList(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, docs)
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	event, err := models.DecodeEvent(r.Body)
	if err != nil {
		respondError(w, err)
		return
	}

	id, err := h.service.CreateEvent(r.Context(), event)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"id": id})
}

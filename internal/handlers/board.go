package handlers

import (
	"net/http"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/models"
	"github.com/markjakearzadon/schoolclub-gobackend/internal/services"
)

type BoardHandler struct {
	service *services.BoardService
}

func NewBoardHandler(service *services.BoardService) *BoardHandler {
	return &BoardHandler{service: service}
}

// GetBoard handles GET /api/board
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.BoardMemberList(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, docs)
}

// AddBoardMember handles POST /api/board
func (h *BoardHandler) AddBoardMember(w http.ResponseWriter, r *http.Request) {
	member, err := models.DecodeBoardMember(r.Body)
	if err != nil {
		respondError(w, err)
		return
	}

	id, err := h.service.CreateBoardMember(r.Context(), member)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"id": id})
}

package handlers

import (
	"net/http"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/services"
)

const rootMessage = "School Club API is running"

type SystemHandler struct {
	diagnostics *services.DiagnosticsService
}

func NewSystemHandler(diagnostics *services.DiagnosticsService) *SystemHandler {
	return &SystemHandler{diagnostics: diagnostics}
}

// Root handles GET /
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": rootMessage})
}

// TestDatabase handles GET /test. It always answers 200.
func (h *SystemHandler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.diagnostics.Check(r.Context()))
}

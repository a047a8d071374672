package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrorResponse mirrors the {"detail": ...} error body used by every endpoint.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

// respondError maps validation failures to 422 and everything else to 500.
func respondError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: verr.Issues})
		return
	}
	respondJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
}

// queryLimit reads the optional non-negative integer limit query parameter.
func queryLimit(r *http.Request, fallback int64) (int64, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, models.NewValidationError([]string{"query", "limit"}, "value is not a valid integer", "int_parsing")
	}
	if limit < 0 {
		return 0, models.NewValidationError([]string{"query", "limit"}, "value must be greater than or equal to 0", "greater_than_equal")
	}
	return limit, nil
}

package services

import (
	"context"
	"errors"
)

const maxDiagnosticError = 80

const (
	BackendRunning        = "✅ Running"
	DatabaseNotAvailable  = "❌ Not Available"
	DatabaseConnected     = "✅ Connected"
	DatabaseNotConfigured = "❌ Not Configured"
)

// Status is the body of the diagnostic endpoint.
type Status struct {
	Backend     string   `json:"backend"`
	Database    string   `json:"database"`
	Collections []string `json:"collections"`
}

type DiagnosticsService struct {
	store DocumentStore
}

func NewDiagnosticsService(store DocumentStore) *DiagnosticsService {
	return &DiagnosticsService{store: store}
}

// Check reports database connectivity. Failures are reported in the result, never returned.
func (s *DiagnosticsService) Check(ctx context.Context) Status {
	status := Status{
		Backend:     BackendRunning,
		Database:    DatabaseNotAvailable,
		Collections: []string{},
	}

	if s.store == nil {
		status.Database = DatabaseNotConfigured
		return status
	}

	names, err := s.store.CollectionNames(ctx)
	switch {
	case errors.Is(err, ErrNotConfigured):
		status.Database = DatabaseNotConfigured
	case err != nil:
		status.Database = "❌ Error: " + truncate(err.Error(), maxDiagnosticError)
	default:
		status.Database = DatabaseConnected
		if names != nil {
			status.Collections = names
		}
	}

	return status
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

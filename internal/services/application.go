package services

import (
	"context"
	"fmt"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// DefaultApplicationLimit caps GET /api/applications when no limit is given.
const DefaultApplicationLimit int64 = 100

type ApplicationService struct {
	store DocumentStore
}

func NewApplicationService(store DocumentStore) *ApplicationService {
	return &ApplicationService{store: store}
}

func (s *ApplicationService) CreateApplication(ctx context.Context, app *models.Application) (string, error) {
	id, err := s.store.CreateDocument(ctx, models.ApplicationCollection, app)
	if err != nil {
		logrus.WithError(err).WithField("collection", models.ApplicationCollection).Error("Failed to create application")
		return "", fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// ApplicationList returns applications, restricted to one status when status is non-empty.
func (s *ApplicationService) ApplicationList(ctx context.Context, status string, limit int64) ([]bson.M, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	docs, err := listPublic(ctx, s.store, models.ApplicationCollection, filter, limit)
	if err != nil {
		logrus.WithError(err).WithField("status", status).Error("Failed to fetch applications")
		return nil, fmt.Errorf("failed to fetch applications: %w", err)
	}
	return docs, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

const DefaultEventLimit int64 = 50

type EventService struct {
	store DocumentStore
}

func NewEventService(store DocumentStore) *EventService {
	return &EventService{store: store}
}

func (s *EventService) CreateEvent(ctx context.Context, event *models.Event) (string, error) {
	id, err := s.store.CreateDocument(ctx, models.EventCollection, event)
	if err != nil {
		logrus.WithError(err).WithField("collection", models.EventCollection).Error("Failed to create event")
		return "", fmt.Errorf("failed to create event: %w", err)
	}
	return id, nil
}

// EventList returns published events only.
func (s *EventService) EventList(ctx context.Context, limit int64) ([]bson.M, error) {
	docs, err := listPublic(ctx, s.store, models.EventCollection, bson.M{"is_published": true}, limit)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch events")
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return docs, nil
}

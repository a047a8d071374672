package services

import (
	"context"
	"fmt"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

const DefaultAnnouncementLimit int64 = 20

type AnnouncementService struct {
	store DocumentStore
}

func NewAnnouncementService(store DocumentStore) *AnnouncementService {
	return &AnnouncementService{store: store}
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, announcement *models.Announcement) (string, error) {
	id, err := s.store.CreateDocument(ctx, models.AnnouncementCollection, announcement)
	if err != nil {
		logrus.WithError(err).WithField("collection", models.AnnouncementCollection).Error("Failed to create announcement")
		return "", fmt.Errorf("failed to create announcement: %w", err)
	}
	return id, nil
}

// AnnouncementList returns published announcements only.
func (s *AnnouncementService) AnnouncementList(ctx context.Context, limit int64) ([]bson.M, error) {
	docs, err := listPublic(ctx, s.store, models.AnnouncementCollection, bson.M{"is_published": true}, limit)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch announcements")
		return nil, fmt.Errorf("failed to fetch announcements: %w", err)
	}
	return docs, nil
}

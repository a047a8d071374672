package services

import (
	"context"
	"fmt"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/models"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// BoardLimit is the fixed cap on GET /api/board.
const BoardLimit int64 = 50

type BoardService struct {
	store DocumentStore
}

func NewBoardService(store DocumentStore) *BoardService {
	return &BoardService{store: store}
}

func (s *BoardService) CreateBoardMember(ctx context.Context, member *models.BoardMember) (string, error) {
	id, err := s.store.CreateDocument(ctx, models.BoardMemberCollection, member)
	if err != nil {
		logrus.WithError(err).WithField("collection", models.BoardMemberCollection).Error("Failed to create board member")
		return "", fmt.Errorf("failed to create board member: %w", err)
	}
	return id, nil
}

func (s *BoardService) BoardMemberList(ctx context.Context) ([]bson.M, error) {
	docs, err := listPublic(ctx, s.store, models.BoardMemberCollection, bson.M{}, BoardLimit)
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch board members")
		return nil, fmt.Errorf("failed to fetch board members: %w", err)
	}
	return docs, nil
}

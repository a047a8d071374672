package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConfigured is returned by every store call when no database was configured.
var ErrNotConfigured = errors.New("database not configured: set DATABASE_URL and DATABASE_NAME")

// DocumentStore is the generic insert/query capability behind every entity service.
type DocumentStore interface {
	// CreateDocument inserts record into the kind collection and returns the new id.
	CreateDocument(ctx context.Context, kind string, record any) (string, error)
	// GetDocuments returns documents of kind matching every key of filter, at most
	// limit of them (0 means no cap), in the store's natural order.
	GetDocuments(ctx context.Context, kind string, filter bson.M, limit int64) ([]bson.M, error)
	// CollectionNames lists the collections of the database.
	CollectionNames(ctx context.Context) ([]string, error)
}

// MongoStore is the DocumentStore backed by a MongoDB database.
type MongoStore struct {
	database *mongo.Database
}

// NewMongoStore wraps database. A nil database yields a store that fails every call
// with ErrNotConfigured.
func NewMongoStore(database *mongo.Database) *MongoStore {
	return &MongoStore{database: database}
}

func (s *MongoStore) CreateDocument(ctx context.Context, kind string, record any) (string, error) {
	if s.database == nil {
		return "", ErrNotConfigured
	}

	doc, err := NewDocument(record, time.Now())
	if err != nil {
		return "", err
	}

	result, err := s.database.Collection(kind).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	return idString(result.InsertedID), nil
}

func (s *MongoStore) GetDocuments(ctx context.Context, kind string, filter bson.M, limit int64) ([]bson.M, error) {
	if s.database == nil {
		return nil, ErrNotConfigured
	}
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.database.Collection(kind).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

func (s *MongoStore) CollectionNames(ctx context.Context) ([]string, error) {
	if s.database == nil {
		return nil, ErrNotConfigured
	}
	return s.database.ListCollectionNames(ctx, bson.D{})
}

// NewDocument flattens record into a plain BSON document stamped with
// created_at and updated_at.
func NewDocument(record any, now time.Time) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	now = now.UTC()
	doc["created_at"] = now
	doc["updated_at"] = now

	return doc, nil
}

// PublicDocument returns a copy of doc where the native _id is replaced by a string id.
func PublicDocument(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	if v, ok := out["_id"]; ok {
		delete(out, "_id")
		if v != nil {
			out["id"] = idString(v)
		}
	}

	return out
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

// listPublic is the read path shared by the entity services.
func listPublic(ctx context.Context, store DocumentStore, kind string, filter bson.M, limit int64) ([]bson.M, error) {
	docs, err := store.GetDocuments(ctx, kind, filter, limit)
	if err != nil {
		return nil, err
	}

	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, PublicDocument(doc))
	}
	return out, nil
}

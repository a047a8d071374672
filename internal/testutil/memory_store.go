// Package testutil provides test doubles shared by the package tests.
package testutil

import (
	"context"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/markjakearzadon/schoolclub-gobackend/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory services.DocumentStore. Documents are kept in insertion
// order and go through the same BSON encoding as the Mongo store.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]bson.M

	// Err, when set, is returned by every call.
	Err error
	// Calls counts store calls of any kind.
	Calls int
}

var _ services.DocumentStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: map[string][]bson.M{}}
}

func (s *MemoryStore) CreateDocument(_ context.Context, kind string, record any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return "", s.Err
	}

	doc, err := services.NewDocument(record, time.Now())
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	doc["_id"] = id

	stored, err := roundTrip(doc)
	if err != nil {
		return "", err
	}
	s.collections[kind] = append(s.collections[kind], stored)

	return id.Hex(), nil
}

func (s *MemoryStore) GetDocuments(_ context.Context, kind string, filter bson.M, limit int64) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}

	out := []bson.M{}
	for _, doc := range s.collections[kind] {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		if matches(doc, filter) {
			cp, err := roundTrip(doc)
			if err != nil {
				return nil, err
			}
			out = append(out, cp)
		}
	}
	return out, nil
}

func (s *MemoryStore) CollectionNames(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Count returns the number of documents stored in kind.
func (s *MemoryStore) Count(kind string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[kind])
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func roundTrip(doc bson.M) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

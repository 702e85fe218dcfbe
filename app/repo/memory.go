package repo

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/NU394-s2025TTh/BugSnacks/app/model"
)

// MemoryStore is a map-backed Store with the same merge and not-found
// semantics as MongoStore. It backs the tests and serves as the store
// when no MONGO_URI is configured.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]model.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]model.Document)}
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyDoc(doc), nil
}

func (s *MemoryStore) Set(_ context.Context, collection, id string, doc model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]model.Document)
	}
	s.collections[collection][id] = copyDoc(doc)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, fields model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.collections[collection][id]
	if !ok {
		return ErrNotFound
	}
	for key, value := range fields {
		doc[key] = value
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections[collection], id)
	return nil
}

func (s *MemoryStore) FindByField(_ context.Context, collection, field string, value any, orderDesc string) ([]Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var snapshots []Snapshot
	for id, doc := range s.collections[collection] {
		if reflect.DeepEqual(doc[field], value) {
			snapshots = append(snapshots, Snapshot{ID: id, Data: copyDoc(doc)})
		}
	}
	if orderDesc != "" {
		sort.Slice(snapshots, func(i, j int) bool {
			return asMillis(snapshots[i].Data[orderDesc]) > asMillis(snapshots[j].Data[orderDesc])
		})
	} else {
		sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].ID < snapshots[j].ID })
	}
	return snapshots, nil
}

func copyDoc(doc model.Document) model.Document {
	out := make(model.Document, len(doc))
	for key, value := range doc {
		out[key] = value
	}
	return out
}

func asMillis(value any) int64 {
	if dt, ok := value.(primitive.DateTime); ok {
		return int64(dt)
	}
	return 0
}

package repo

import (
	"context"
	"errors"

	"github.com/NU394-s2025TTh/BugSnacks/app/model"
)

// Collection names. One flat collection per entity type, keyed by the
// server-generated identifier.
const (
	Users        = "users"
	Campuses     = "campuses"
	Projects     = "projects"
	TestRequests = "testRequests"
	Bugs         = "bugs"
)

var ErrNotFound = errors.New("document not found")

// Snapshot is one query result: the document key plus the stored fields.
type Snapshot struct {
	ID   string
	Data model.Document
}

// Store is the document database seen by the services: keyed documents
// with per-call atomicity and no cross-call transactions. Update merges
// the given fields into an existing document; FindByField is an equality
// query with an optional descending order field.
type Store interface {
	Get(ctx context.Context, collection, id string) (model.Document, error)
	Set(ctx context.Context, collection, id string, doc model.Document) error
	Update(ctx context.Context, collection, id string, fields model.Document) error
	Delete(ctx context.Context, collection, id string) error
	FindByField(ctx context.Context, collection, field string, value any, orderDesc string) ([]Snapshot, error)
}

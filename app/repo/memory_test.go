package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/NU394-s2025TTh/BugSnacks/app/model"
)

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), Projects, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreSetGetIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	doc := model.Document{"name": "BugSnacks", "campusId": "northwestern1"}
	if err := store.Set(ctx, Projects, "p1", doc); err != nil {
		t.Fatalf("Set: %v", err)
	}
	doc["name"] = "mutated after set"

	got, err := store.Get(ctx, Projects, "p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got["name"] != "BugSnacks" {
		t.Errorf("stored doc shares memory with the caller: %v", got["name"])
	}

	got["campusId"] = "mutated after get"
	again, _ := store.Get(ctx, Projects, "p1")
	if again["campusId"] != "northwestern1" {
		t.Errorf("returned doc shares memory with the store: %v", again["campusId"])
	}
}

func TestMemoryStoreUpdateMergesFields(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, TestRequests, "tr1", model.Document{
		"title":  "test checkout",
		"status": "OPEN",
	}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Update(ctx, TestRequests, "tr1", model.Document{"status": "CLOSED"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := store.Get(ctx, TestRequests, "tr1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got["status"] != "CLOSED" {
		t.Errorf("status = %v, want CLOSED", got["status"])
	}
	if got["title"] != "test checkout" {
		t.Errorf("untouched field lost: %v", got["title"])
	}

	if err := store.Update(ctx, TestRequests, "missing", model.Document{"status": "CLOSED"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreDeleteIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, Users, "u1", model.Document{"email": "a@b.edu"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete(ctx, Users, "u1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Get(ctx, Users, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, Users, "u1"); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestMemoryStoreFindByFieldOrdersByTimestampDesc(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"p1", "p2", "p3"} {
		if err := store.Set(ctx, Projects, id, model.Document{
			"campusId":  "northwestern1",
			"createdAt": primitive.NewDateTimeFromTime(base.Add(time.Duration(i) * time.Hour)),
		}); err != nil {
			t.Fatalf("Set %s: %v", id, err)
		}
	}
	if err := store.Set(ctx, Projects, "other", model.Document{"campusId": "elsewhere"}); err != nil {
		t.Fatalf("Set other: %v", err)
	}

	snapshots, err := store.FindByField(ctx, Projects, "campusId", "northwestern1", "createdAt")
	if err != nil {
		t.Fatalf("FindByField: %v", err)
	}
	if len(snapshots) != 3 {
		t.Fatalf("got %d snapshots, want 3", len(snapshots))
	}
	for i, want := range []string{"p3", "p2", "p1"} {
		if snapshots[i].ID != want {
			t.Errorf("snapshots[%d].ID = %s, want %s", i, snapshots[i].ID, want)
		}
	}

	none, err := store.FindByField(ctx, Projects, "campusId", "nowhere", "createdAt")
	if err != nil {
		t.Fatalf("FindByField empty: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d snapshots, want 0", len(none))
	}
}

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	xerrors "bestdeal-service/internal/pkg/errors"
	"bestdeal-service/internal/repository/memstore"
)

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	doc, err := store.Create(ctx, "vehicle", map[string]any{"make": "Honda"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	id, ok := doc["id"].(string)
	if !ok || id == "" {
		t.Fatalf("expected a string id, got %v", doc["id"])
	}
	created, ok := doc["created_at"].(time.Time)
	if !ok {
		t.Fatalf("expected created_at timestamp, got %v", doc["created_at"])
	}
	if !doc["updated_at"].(time.Time).Equal(created) {
		t.Fatal("created_at and updated_at should match on insert")
	}

	got, err := store.GetOne(ctx, "vehicle", map[string]any{"id": id})
	if err != nil {
		t.Fatalf("getOne: %v", err)
	}
	if got["make"] != "Honda" {
		t.Fatalf("round trip lost fields: %v", got)
	}
}

func TestGetOneMissing(t *testing.T) {
	store := memstore.New()
	_, err := store.GetOne(context.Background(), "vehicle", map[string]any{"id": "nope"})
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateMergesAndProtectsIdentity(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	doc, err := store.Create(ctx, "vehicle", map[string]any{"make": "Honda", "model": "Civic"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := doc["id"].(string)
	created := doc["created_at"].(time.Time)

	updated, err := store.Update(ctx, "vehicle", map[string]any{"id": id}, map[string]any{
		"model":      "Accord",
		"id":         "tampered",
		"created_at": time.Time{},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated["model"] != "Accord" {
		t.Fatalf("model not updated: %v", updated)
	}
	if updated["make"] != "Honda" {
		t.Fatalf("untouched field lost: %v", updated)
	}
	if updated["id"] != id {
		t.Fatalf("id must be immutable, got %v", updated["id"])
	}
	if !updated["created_at"].(time.Time).Equal(created) {
		t.Fatal("created_at must be immutable")
	}
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	store := memstore.New()
	_, err := store.Update(context.Background(), "vehicle",
		map[string]any{"id": "nope"}, map[string]any{"model": "Accord"})
	if !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteReportsRemoval(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	doc, err := store.Create(ctx, "lead", map[string]any{"subject": "Contact Us Lead"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := doc["id"].(string)

	deleted, err := store.Delete(ctx, "lead", map[string]any{"id": id})
	if err != nil || !deleted {
		t.Fatalf("first delete: deleted=%v err=%v", deleted, err)
	}
	deleted, err = store.Delete(ctx, "lead", map[string]any{"id": id})
	if err != nil || deleted {
		t.Fatalf("second delete: deleted=%v err=%v", deleted, err)
	}
}

func TestListFiltersAndLimits(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	for i := 0; i < 3; i++ {
		if _, err := store.Create(ctx, "vehicle", map[string]any{"make": "Honda"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := store.Create(ctx, "vehicle", map[string]any{"make": "Toyota"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	docs, err := store.List(ctx, "vehicle", map[string]any{"make": "Honda"}, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 Hondas, got %d", len(docs))
	}

	docs, err = store.List(ctx, "vehicle", map[string]any{}, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(docs))
	}

	docs, err = store.List(ctx, "lead", map[string]any{}, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected empty slice for empty collection, got %d", len(docs))
	}
}

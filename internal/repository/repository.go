// Package repository defines the generic document persistence contract shared
// by every entity type. Validation happens one layer up, so the store accepts
// any caller-supplied collection name and field set.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Collections used by this service.
const (
	VehicleCollection = "vehicle"
	LeadCollection    = "lead"
)

// DefaultLimit caps List calls that pass a non-positive limit.
const DefaultLimit = 100

// Document is a stored record as returned on every read path: the persisted
// field set plus created_at, updated_at and a string id substituted for the
// store's native key. The id is immutable once assigned.
type Document map[string]any

// Store is the persistence gateway consumed by the service layer.
type Store interface {
	// Create stamps created_at/updated_at, inserts and returns the record
	// re-read from the store.
	Create(ctx context.Context, collection string, fields map[string]any) (Document, error)

	// List returns up to limit records matching filter (empty filter matches
	// all) in store-native order. No matches yields an empty slice, not an
	// error.
	List(ctx context.Context, collection string, filter map[string]any, limit int64) ([]Document, error)

	// GetOne returns the first matching record or xerrors.ErrNotFound.
	GetOne(ctx context.Context, collection string, filter map[string]any) (Document, error)

	// Update merges fields into the first matching record, refreshes
	// updated_at and returns the updated record. When nothing matches it
	// returns xerrors.ErrNotFound and performs no write.
	Update(ctx context.Context, collection string, filter map[string]any, fields map[string]any) (Document, error)

	// Delete removes the first matching record and reports whether a record
	// was actually removed.
	Delete(ctx context.Context, collection string, filter map[string]any) (bool, error)
}

// Fields flattens a bson-tagged struct into the field map accepted by
// Store.Create and Store.Update.
func Fields(v any) (map[string]any, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

package mongodb

import (
	"context"
	"fmt"
	"time"

	xerrors "bestdeal-service/internal/pkg/errors"
	"bestdeal-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store implements repository.Store on top of a MongoDB database.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Create inserts fields with server-assigned timestamps, then re-reads the
// inserted record so the caller sees exactly what was stored.
func (s *Store) Create(ctx context.Context, collection string, fields map[string]any) (repository.Document, error) {
	now := time.Now().UTC()
	doc := bson.M{}
	for k, v := range fields {
		doc[k] = v
	}
	doc["created_at"] = now
	doc["updated_at"] = now

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return nil, storageErr(err)
	}
	return s.GetOne(ctx, collection, map[string]any{"_id": res.InsertedID})
}

func (s *Store) List(ctx context.Context, collection string, filter map[string]any, limit int64) ([]repository.Document, error) {
	if limit <= 0 {
		limit = repository.DefaultLimit
	}

	cur, err := s.db.Collection(collection).Find(ctx, normalizeFilter(filter), options.Find().SetLimit(limit))
	if err != nil {
		return nil, storageErr(err)
	}
	defer cur.Close(ctx)

	docs := make([]repository.Document, 0)
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, storageErr(err)
		}
		docs = append(docs, withID(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, storageErr(err)
	}
	return docs, nil
}

func (s *Store) GetOne(ctx context.Context, collection string, filter map[string]any) (repository.Document, error) {
	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, normalizeFilter(filter)).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return withID(doc), nil
}

// Update $set-merges fields into the first matching record. The id and
// created_at fields never change after creation, so they are stripped from
// the merge set.
func (s *Store) Update(ctx context.Context, collection string, filter map[string]any, fields map[string]any) (repository.Document, error) {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	delete(set, "id")
	delete(set, "_id")
	delete(set, "created_at")
	set["updated_at"] = time.Now().UTC()

	res, err := s.db.Collection(collection).UpdateOne(ctx, normalizeFilter(filter), bson.M{"$set": set})
	if err != nil {
		return nil, storageErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, xerrors.ErrNotFound
	}
	return s.GetOne(ctx, collection, filter)
}

func (s *Store) Delete(ctx context.Context, collection string, filter map[string]any) (bool, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, normalizeFilter(filter))
	if err != nil {
		return false, storageErr(err)
	}
	return res.DeletedCount > 0, nil
}

// storageErr tags a driver failure with the ErrStorage sentinel so handlers
// can map it to a 5xx response.
func storageErr(err error) error {
	return fmt.Errorf("%w: %v", xerrors.ErrStorage, err)
}

// normalizeFilter rewrites an "id" key to the native "_id" ObjectID, so id
// lookups hit the unique primary key. A malformed hex id is passed through
// unchanged and simply never matches a stored key.
func normalizeFilter(filter map[string]any) bson.M {
	out := bson.M{}
	for k, v := range filter {
		if k == "id" {
			if hex, ok := v.(string); ok {
				if oid, err := primitive.ObjectIDFromHex(hex); err == nil {
					out["_id"] = oid
					continue
				}
			}
			out["_id"] = v
			continue
		}
		out[k] = v
	}
	return out
}

// withID substitutes the native key with its hex string form. The native key
// type is never exposed to callers.
func withID(doc bson.M) repository.Document {
	out := repository.Document(doc)
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		out["id"] = oid.Hex()
		delete(out, "_id")
	}
	return out
}

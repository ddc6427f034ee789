// Package memstore provides an in-memory repository.Store used by tests. It
// honors the same contract as the MongoDB store: server-assigned timestamps,
// string ids, ErrNotFound sentinels and first-match update/delete semantics.
package memstore

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	xerrors "bestdeal-service/internal/pkg/errors"
	"bestdeal-service/internal/repository"
)

type Store struct {
	mu          sync.Mutex
	seq         int64
	collections map[string][]repository.Document
}

func New() *Store {
	return &Store{collections: make(map[string][]repository.Document)}
}

func (s *Store) Create(_ context.Context, collection string, fields map[string]any) (repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	s.seq++

	doc := repository.Document{}
	for k, v := range fields {
		doc[k] = v
	}
	doc["id"] = fmt.Sprintf("%024x", s.seq)
	doc["created_at"] = now
	doc["updated_at"] = now

	s.collections[collection] = append(s.collections[collection], doc)
	return copyDoc(doc), nil
}

func (s *Store) List(_ context.Context, collection string, filter map[string]any, limit int64) ([]repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = repository.DefaultLimit
	}

	docs := make([]repository.Document, 0)
	for _, doc := range s.collections[collection] {
		if int64(len(docs)) >= limit {
			break
		}
		if matches(doc, filter) {
			docs = append(docs, copyDoc(doc))
		}
	}
	return docs, nil
}

func (s *Store) GetOne(_ context.Context, collection string, filter map[string]any) (repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			return copyDoc(doc), nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (s *Store) Update(_ context.Context, collection string, filter map[string]any, fields map[string]any) (repository.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		for k, v := range fields {
			if k == "id" || k == "created_at" {
				continue
			}
			doc[k] = v
		}
		doc["updated_at"] = time.Now().UTC()
		return copyDoc(doc), nil
	}
	return nil, xerrors.ErrNotFound
}

func (s *Store) Delete(_ context.Context, collection string, filter map[string]any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func matches(doc repository.Document, filter map[string]any) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func copyDoc(doc repository.Document) repository.Document {
	out := make(repository.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

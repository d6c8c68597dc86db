package store

import (
	"context"
	"sync"

	"coinapi/models"
)

// MemoryStore keeps the document in memory. Used by tests and available for
// ephemeral runs; load and save deep-copy so callers never share document
// memory with the store.
type MemoryStore struct {
	mu  sync.Mutex
	doc *models.Document
}

// NewMemoryStore creates an empty in-memory document store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{doc: models.NewDocument()}
}

// Load returns a deep copy of the current document
func (s *MemoryStore) Load(_ context.Context) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone(), nil
}

// Save replaces the current document with a deep copy of doc
func (s *MemoryStore) Save(_ context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	return nil
}

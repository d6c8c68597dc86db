package store

import (
	"context"

	"coinapi/models"
)

// DocumentStore abstracts the persisted user document. Implementations hold
// exactly one document; Load returns the current state and Save replaces it
// in full.
type DocumentStore interface {
	// Load reads the entire document from storage
	Load(ctx context.Context) (*models.Document, error)

	// Save writes the entire document to storage, replacing the previous state
	Save(ctx context.Context, doc *models.Document) error
}

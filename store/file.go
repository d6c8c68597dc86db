package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"coinapi/models"
)

// FileStore persists the document as a single JSON file. A missing file
// loads as an empty document so a fresh deployment needs no seed step.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed document store at the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the document file
func (s *FileStore) Load(_ context.Context) (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return models.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document file %s: %w", s.path, err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document file %s: %w", s.path, err)
	}
	if doc.Users == nil {
		doc.Users = make([]*models.User, 0)
	}
	return &doc, nil
}

// Save encodes the document and writes it through a temp file + rename so a
// crash mid-write never leaves a truncated document behind.
func (s *FileStore) Save(_ context.Context, doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp document file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close document file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace document file %s: %w", s.path, err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"sync"

	"coinapi/events"
	"coinapi/models"
	"coinapi/store"
)

// InitialBalance is the coin balance every new user starts with
const InitialBalance int64 = 100

// userService implements the UserService interface
type userService struct {
	store           store.DocumentStore
	mu              *sync.Mutex
	bus             EventPublisher
	startingBalance int64
}

// NewUserService creates a new user service. The mutex must be shared with
// the transfer service so every load-mutate-save sequence against the store
// is serialized.
func NewUserService(st store.DocumentStore, mu *sync.Mutex, bus EventPublisher, startingBalance int64) UserService {
	return &userService{
		store:           st,
		mu:              mu,
		bus:             bus,
		startingBalance: startingBalance,
	}
}

// CreateUser registers a new user with the starting balance. Nothing is
// appended or persisted when the name is already taken.
func (s *userService) CreateUser(ctx context.Context, name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	if doc.Exists(name) {
		return nil, &DuplicateNameError{Name: name}
	}

	id, err := NewUserID()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:          id,
		UserName:    name,
		CoinBalance: s.startingBalance,
	}
	doc.Add(user)

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	s.bus.Emit(ctx, events.UserCreatedEvent{
		UserID:         user.ID,
		UserName:       user.UserName,
		InitialBalance: user.CoinBalance,
	})

	return user, nil
}

// GetUser retrieves a user by name, reloading the document from storage
func (s *userService) GetUser(ctx context.Context, name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	user := doc.FindByName(name)
	if user == nil {
		return nil, &UserNotFoundError{Name: name}
	}
	return user, nil
}

// ListUsers returns the full document in creation order
func (s *userService) ListUsers(ctx context.Context) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return doc, nil
}

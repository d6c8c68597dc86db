package service

import (
	"context"

	"coinapi/events"
	"coinapi/models"
)

// UserService defines the interface for user operations
type UserService interface {
	// CreateUser registers a new user with the starting balance
	CreateUser(ctx context.Context, name string) (*models.User, error)

	// GetUser retrieves a user by name
	GetUser(ctx context.Context, name string) (*models.User, error)

	// ListUsers returns the full document, users in creation order
	ListUsers(ctx context.Context) (*models.Document, error)
}

// TransferService defines the interface for coin transfers
type TransferService interface {
	// Transfer moves amount coins from one named user to another
	Transfer(ctx context.Context, fromName, toName string, amount int64) (*models.TransferResult, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}

package service

import (
	"context"
	"fmt"
	"sync"

	"coinapi/events"
	"coinapi/models"
	"coinapi/store"
)

// transferService implements the TransferService interface
type transferService struct {
	store store.DocumentStore
	mu    *sync.Mutex
	bus   EventPublisher
}

// NewTransferService creates a new transfer service sharing the store mutex
// with the user service.
func NewTransferService(st store.DocumentStore, mu *sync.Mutex, bus EventPublisher) TransferService {
	return &transferService{
		store: st,
		mu:    mu,
		bus:   bus,
	}
}

// Transfer moves amount coins from one named user to another. The checks run
// in a fixed order that decides which error wins when several conditions fail
// at once: both parties resolved first, then the sender's balance, then the
// sign of the amount. No mutation or save happens on any failure path.
func (s *transferService) Transfer(ctx context.Context, fromName, toName string, amount int64) (*models.TransferResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	// Both lookups happen regardless of either failing
	fromUser := doc.FindByName(fromName)
	toUser := doc.FindByName(toName)

	switch {
	case fromUser == nil && toUser == nil:
		return nil, &BothUsersNotFoundError{FromName: fromName, ToName: toName}
	case fromUser == nil:
		return nil, &UserNotFoundError{Name: fromName}
	case toUser == nil:
		return nil, &UserNotFoundError{Name: toName}
	}

	// Balance check deliberately precedes the negative-amount check
	if fromUser.CoinBalance < amount {
		return nil, &InsufficientBalanceError{
			Name:    fromUser.UserName,
			Balance: fromUser.CoinBalance,
			Amount:  amount,
		}
	}
	if amount < 0 {
		return nil, &NegativeAmountError{Amount: amount}
	}

	// A self-transfer resolves both names to the same user: the debit and
	// credit hit the same record and the balance is unchanged.
	fromBefore := fromUser.CoinBalance
	fromUser.CoinBalance -= amount
	toBefore := toUser.CoinBalance
	toUser.CoinBalance += amount

	if err := s.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	s.bus.Emit(ctx, events.CoinsTransferredEvent{
		FromUserName: fromUser.UserName,
		ToUserName:   toUser.UserName,
		Amount:       amount,
		FromBalance:  fromUser.CoinBalance,
		ToBalance:    toUser.CoinBalance,
	})

	return &models.TransferResult{
		From:       fromUser,
		To:         toUser,
		Amount:     amount,
		FromBefore: fromBefore,
		ToBefore:   toBefore,
	}, nil
}

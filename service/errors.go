package service

import "fmt"

// DuplicateNameError is returned when creating a user whose name is taken
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s is a duplicate name and already in the database!", e.Name)
}

// UserNotFoundError is returned when a named user does not exist
type UserNotFoundError struct {
	Name string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist in the database.", e.Name)
}

// BothUsersNotFoundError is returned when neither transfer party exists
type BothUsersNotFoundError struct {
	FromName string
	ToName   string
}

func (e *BothUsersNotFoundError) Error() string {
	return fmt.Sprintf("Both %s AND %s do not exist in the database.", e.FromName, e.ToName)
}

// InsufficientBalanceError is returned when the sender cannot cover the amount
type InsufficientBalanceError struct {
	Name    string
	Balance int64
	Amount  int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s only has %d coins, %d coins is too much for a possible transfer", e.Name, e.Balance, e.Amount)
}

// NegativeAmountError is returned when the transfer amount is negative
type NegativeAmountError struct {
	Amount int64
}

func (e *NegativeAmountError) Error() string {
	return fmt.Sprintf("%d is a negative amount and not allowed!", e.Amount)
}

package service

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	userIDLength   = 5
	userIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// NewUserID generates a random 5-character alphanumeric user id. Collision
// probability is treated as negligible; there is no retry.
func NewUserID() (string, error) {
	id, err := gonanoid.Generate(userIDAlphabet, userIDLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate user id: %w", err)
	}
	return id, nil
}

package models

// User represents a registered user with a coin balance
type User struct {
	ID          string `json:"id"`
	UserName    string `json:"userName"`
	CoinBalance int64  `json:"coinBalance"`
}

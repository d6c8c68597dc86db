package models

// TransferResult holds both parties after a completed transfer along with
// the balances each held when it was observed during the transfer. ToBefore
// is captured after the sender's debit, so a self-transfer reports the
// intermediate balance as the recipient's prior balance.
type TransferResult struct {
	From       *User
	To         *User
	Amount     int64
	FromBefore int64
	ToBefore   int64
}

package engine

import "errors"

// Engine operations fail with one of three recoverable error kinds.
// Every rejected call leaves the ledger and all round state untouched.
var (
	// ErrInvalidAmount rejects non-positive bets, stakes and purchase
	// amounts, and unknown catalog/actor references.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds rejects any debit larger than the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidState rejects operations attempted outside their legal phase.
	ErrInvalidState = errors.New("invalid state")
)

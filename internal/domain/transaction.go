package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientFunds indicates that the withdrawal exceeds the account balance.
	ErrInsufficientFunds = errors.New("Insufficient funds")
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount indicates negative amount.
	ErrNegativeAmount = errors.New("negative amount")
)

// Transaction types.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

// Transaction holds a single statement operation.
// Description is set for deposits only; withdrawals serialize without it.
type Transaction struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Balance folds the statement left to right: credits add, debits subtract.
// An empty statement yields zero. The statement is never mutated.
func Balance(statement []Transaction) decimal.Decimal {
	balance := decimal.Zero

	for _, tx := range statement {
		if tx.Type == TypeCredit {
			balance = balance.Add(tx.Amount)
		} else {
			balance = balance.Sub(tx.Amount)
		}
	}

	return balance
}

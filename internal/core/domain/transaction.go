package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionDirection marks whether money moved into or out of the entity.
type TransactionDirection string

const (
	DirectionCredit TransactionDirection = "CREDIT"
	DirectionDebit  TransactionDirection = "DEBIT"
)

// IsValid reports whether d is a known direction.
func (d TransactionDirection) IsValid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// Transaction is one immutable entry of an entity's append-only ledger.
// There is no edit or delete operation on transactions.
type Transaction struct {
	TransactionID string               `json:"transactionID"`
	Date          time.Time            `json:"date"`
	Description   string               `json:"description"`
	Amount        decimal.Decimal      `json:"amount"` // always positive
	Direction     TransactionDirection `json:"direction"`
	Category      string               `json:"category"`
}

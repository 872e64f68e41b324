package dto

import (
	"time"

	"github.com/SaloneDigital/business_registry_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AddTransactionRequest appends one immutable entry to an entity's ledger.
type AddTransactionRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Direction   string          `json:"direction" binding:"required,oneof=CREDIT DEBIT"`
	Category    string          `json:"category"`
}

// TransactionResponse mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Direction     string          `json:"direction"`
	Category      string          `json:"category"`
}

// ToTransactionResponse converts a domain transaction.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Description:   t.Description,
		Amount:        t.Amount,
		Direction:     string(t.Direction),
		Category:      t.Category,
	}
}

// ToListTransactionsResponse converts a slice of domain transactions.
func ToListTransactionsResponse(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}

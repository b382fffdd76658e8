package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionGenerated struct {
	RunID           string          `json:"run_id"`
	TransactionID   int             `json:"transaction_id"`
	CustomerID      int             `json:"customer_id"`
	AccountID       int             `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

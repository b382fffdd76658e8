package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction. Payment is the only kind generated today.
type TransactionType string

const (
	TransactionTypePayment TransactionType = "Payment"
)

// Transaction represents a single debit against a customer's account
type Transaction struct {
	TransactionID        int             // 1..N, assigned after the chronological sort
	CustomerID           int             // owner of AccountID
	AccountID            int             // account debited
	TransactionAmount    decimal.Decimal // always negative, 2 decimal places
	TransactionType      TransactionType // Payment
	TransactionTimestamp time.Time       // within the generation window
}

// Row returns the transaction in FactPaymentTransaction column order.
func (t Transaction) Row() []any {
	return []any{t.CustomerID, t.AccountID, t.TransactionAmount, string(t.TransactionType), t.TransactionTimestamp, t.TransactionID}
}

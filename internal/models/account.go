package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is one row of the account ledger. The provisioning stage produces one row per
// account; the ledger projection appends further snapshot rows with the same AccountID.
type Account struct {
	AccountID      int
	CustomerID     int
	AccountBalance decimal.Decimal
	LastUpdated    *time.Time // nil for savings accounts that were never touched
}

// Row returns the account in FactAccount column order.
func (a Account) Row() []any {
	var lastUpdated any
	if a.LastUpdated != nil {
		lastUpdated = *a.LastUpdated
	}
	return []any{a.AccountID, a.CustomerID, a.AccountBalance, lastUpdated}
}

package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

// Mode selects the balance each projected snapshot is computed from.
type Mode string

const (
	// ModeOrigin computes every snapshot from the account's provisioned balance,
	// ignoring earlier transactions on the same account.
	ModeOrigin Mode = "origin"
	// ModeRunning computes every snapshot from the account's previous snapshot.
	ModeRunning Mode = "running"
)

// ParseMode maps a configuration value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeOrigin, ModeRunning:
		return Mode(s), nil
	case "":
		return ModeOrigin, nil
	}
	return "", &models.ConfigurationError{Field: "ledgerMode", Reason: fmt.Sprintf("unknown mode %q", s)}
}

// Projector turns a transaction log into account balance snapshots.
type Projector struct {
	mode Mode
}

// NewProjector returns a Projector. An empty mode means ModeOrigin.
func NewProjector(mode Mode) *Projector {
	if mode == "" {
		mode = ModeOrigin
	}
	return &Projector{mode: mode}
}

// ProjectLedger returns accounts followed by one snapshot row per transaction, in the order
// the transactions are given. The input rows are copied, never modified.
func (p *Projector) ProjectLedger(transactions []models.Transaction, accounts []models.Account) ([]models.Account, error) {
	// first provisioned row per account
	origin := make(map[int]decimal.Decimal, len(accounts))
	for _, a := range accounts {
		if _, exists := origin[a.AccountID]; !exists {
			origin[a.AccountID] = a.AccountBalance
		}
	}
	running := make(map[int]decimal.Decimal)

	ledgerRows := make([]models.Account, 0, len(accounts)+len(transactions))
	ledgerRows = append(ledgerRows, accounts...)

	for _, tx := range transactions {
		balance, exists := origin[tx.AccountID]
		if !exists {
			return nil, &models.LookupError{Table: models.TableFactAccount, Key: "AccountID", ID: tx.AccountID}
		}
		if p.mode == ModeRunning {
			if last, seen := running[tx.AccountID]; seen {
				balance = last
			}
		}

		newBalance := balance.Add(tx.TransactionAmount).Round(2)
		running[tx.AccountID] = newBalance

		lastUpdated := tx.TransactionTimestamp
		ledgerRows = append(ledgerRows, models.Account{
			AccountID:      tx.AccountID,
			CustomerID:     tx.CustomerID,
			AccountBalance: newBalance,
			LastUpdated:    &lastUpdated,
		})
	}

	return ledgerRows, nil
}

// Snapshots returns every ledger row for accountID in append order.
func Snapshots(ledgerRows []models.Account, accountID int) []models.Account {
	var result []models.Account

	for _, row := range ledgerRows {
		if row.AccountID == accountID {
			result = append(result, row)
		}
	}
	return result
}

// CurrentBalance is the balance of the last ledger row appended for accountID.
func CurrentBalance(ledgerRows []models.Account, accountID int) (decimal.Decimal, error) {
	for i := len(ledgerRows) - 1; i >= 0; i-- {
		if ledgerRows[i].AccountID == accountID {
			return ledgerRows[i].AccountBalance, nil
		}
	}
	return decimal.Zero, &models.LookupError{Table: models.TableFactAccount, Key: "AccountID", ID: accountID}
}

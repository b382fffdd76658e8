package transactions

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

// Payment amounts are drawn between these two bounds, so every amount is a debit.
const (
	smallestPayment = -1.0
	largestPayment  = -500.0
)

// Window is the inclusive time range transaction timestamps fall in.
type Window struct {
	Start time.Time
	End   time.Time
}

// Generator produces the payment transaction log.
type Generator struct {
	rs     interfaces.RandomSource
	window Window
}

func NewGenerator(rs interfaces.RandomSource, window Window) *Generator {
	return &Generator{rs: rs, window: window}
}

// CreateTransactions draws count payments, each against an account owned by a randomly
// chosen customer. The result is stably sorted by TransactionTimestamp and numbered
// 1..count in that order, so a later transaction never has a lower TransactionID.
func (g *Generator) CreateTransactions(customers []models.Customer, accounts []models.Account, count int) ([]models.Transaction, error) {
	if count <= 0 {
		return []models.Transaction{}, nil
	}
	if len(customers) == 0 {
		return nil, fmt.Errorf("%w: no customers to draw transactions from", models.ErrLookup)
	}

	owned := make(map[int][]int, len(customers))
	for _, a := range accounts {
		owned[a.CustomerID] = append(owned[a.CustomerID], a.AccountID)
	}
	for _, c := range customers {
		if len(owned[c.CustomerID]) == 0 {
			return nil, &models.LookupError{Table: models.TableFactAccount, Key: "CustomerID", ID: c.CustomerID}
		}
	}

	txs := make([]models.Transaction, 0, count)
	for range count {
		customer := customers[g.rs.IntRange(0, len(customers)-1)]
		accountIDs := owned[customer.CustomerID]
		accountID := accountIDs[g.rs.IntRange(0, len(accountIDs)-1)]

		txs = append(txs, models.Transaction{
			CustomerID:           customer.CustomerID,
			AccountID:            accountID,
			TransactionAmount:    decimal.NewFromFloat(g.rs.Uniform(smallestPayment, largestPayment)).Round(2),
			TransactionType:      models.TransactionTypePayment,
			TransactionTimestamp: g.timestamp(),
		})
	}

	slices.SortStableFunc(txs, func(a, b models.Transaction) int {
		return a.TransactionTimestamp.Compare(b.TransactionTimestamp)
	})
	for i := range txs {
		txs[i].TransactionID = i + 1
	}

	return txs, nil
}

func (g *Generator) timestamp() time.Time {
	span := g.window.End.Sub(g.window.Start)
	return g.window.Start.Add(time.Duration(float64(span) * g.rs.Float64()))
}

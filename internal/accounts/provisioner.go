package accounts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

const (
	minOpeningBalance = 100.0
	maxOpeningBalance = 10000.0
)

// Options controls how many accounts each customer receives.
type Options struct {
	SavingsAccountProbability     float64
	MaxSavingsAccountsPerCustomer int
	MaxCurrentAccountsPerCustomer int
}

func (o Options) validate() error {
	if o.SavingsAccountProbability < 0 || o.SavingsAccountProbability > 1 {
		return &models.ConfigurationError{Field: "savingsAccountProbability", Reason: "must be within [0, 1]"}
	}
	if o.MaxSavingsAccountsPerCustomer < 1 {
		return &models.ConfigurationError{Field: "maxSavingsAccountsPerCustomer", Reason: "must be at least 1"}
	}
	if o.MaxCurrentAccountsPerCustomer < 1 {
		return &models.ConfigurationError{Field: "maxCurrentAccountsPerCustomer", Reason: "must be at least 1"}
	}
	return nil
}

// Provisioner opens the initial accounts for a set of customers
type Provisioner struct {
	rs   interfaces.RandomSource
	opts Options
}

func NewProvisioner(rs interfaces.RandomSource, opts Options) *Provisioner {
	return &Provisioner{rs: rs, opts: opts}
}

// CreateAccounts provisions accounts customer by customer. Every customer gets at least one
// current account; savings accounts are optional. AccountID runs 1..M over the whole result.
// Current accounts are stamped with referenceDate, savings accounts are left without a LastUpdated.
func (p *Provisioner) CreateAccounts(customers []models.Customer, referenceDate time.Time) ([]models.Account, error) {
	if err := p.opts.validate(); err != nil {
		return nil, err
	}

	accounts := make([]models.Account, 0, len(customers))

	for _, customer := range customers {
		if p.rs.Float64() < p.opts.SavingsAccountProbability {
			n := p.rs.IntRange(1, p.opts.MaxSavingsAccountsPerCustomer)
			for range n {
				accounts = append(accounts, p.newAccount(len(accounts)+1, customer.CustomerID, nil))
			}
		}

		n := p.rs.IntRange(1, p.opts.MaxCurrentAccountsPerCustomer)
		for range n {
			lastUpdated := referenceDate
			accounts = append(accounts, p.newAccount(len(accounts)+1, customer.CustomerID, &lastUpdated))
		}
	}

	return accounts, nil
}

func (p *Provisioner) newAccount(accountID, customerID int, lastUpdated *time.Time) models.Account {
	balance := decimal.NewFromFloat(p.rs.Uniform(minOpeningBalance, maxOpeningBalance)).Round(2)

	return models.Account{
		AccountID:      accountID,
		CustomerID:     customerID,
		AccountBalance: balance,
		LastUpdated:    lastUpdated,
	}
}

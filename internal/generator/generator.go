package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/accounts"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/config"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/identity"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/ledger"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/transactions"
)

// Generator runs the four generation stages in order: customers, accounts,
// transactions and the ledger projection. Each stage consumes the full output of the previous one.
type Generator struct {
	cfg    config.Config
	rs     interfaces.RandomSource
	names  interfaces.NameProvider
	logger *zap.Logger
	now    func() time.Time
}

func New(cfg config.Config, rs interfaces.RandomSource, names interfaces.NameProvider, logger *zap.Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		rs:     rs,
		names:  names,
		logger: logger,
		now:    time.Now,
	}
}

// Generate builds a complete dataset. Configuration is checked before any stage runs and
// nothing is returned on failure.
func (g *Generator) Generate(ctx context.Context) (*models.Dataset, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := ledger.ParseMode(string(g.cfg.LedgerMode))
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := g.logger.With(zap.String("run_id", runID.String()))

	customers := identity.NewGenerator(g.rs, g.names, identity.Bounds{
		Latest:   g.cfg.BirthdateLatest,
		Earliest: g.cfg.BirthdateEarliest,
	}).CreateCustomers(g.cfg.NumberOfCustomers)
	logger.Info("customers created", zap.Int("count", len(customers)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	provisioned, err := accounts.NewProvisioner(g.rs, accounts.Options{
		SavingsAccountProbability:     g.cfg.SavingsAccountProbability,
		MaxSavingsAccountsPerCustomer: g.cfg.MaxSavingsAccountsPerCustomer,
		MaxCurrentAccountsPerCustomer: g.cfg.MaxCurrentAccountsPerCustomer,
	}).CreateAccounts(customers, g.cfg.WindowStart)
	if err != nil {
		return nil, fmt.Errorf("provision accounts: %w", err)
	}
	logger.Info("accounts provisioned", zap.Int("count", len(provisioned)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	txs, err := transactions.NewGenerator(g.rs, transactions.Window{
		Start: g.cfg.WindowStart,
		End:   g.cfg.WindowEnd,
	}).CreateTransactions(customers, provisioned, g.cfg.NumberOfTransactions)
	if err != nil {
		return nil, fmt.Errorf("create transactions: %w", err)
	}
	logger.Info("transactions created", zap.Int("count", len(txs)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ledgerRows, err := ledger.NewProjector(mode).ProjectLedger(txs, provisioned)
	if err != nil {
		return nil, fmt.Errorf("project ledger: %w", err)
	}
	logger.Info("ledger projected",
		zap.String("mode", string(mode)),
		zap.Int("rows", len(ledgerRows)))

	return &models.Dataset{
		RunID:               runID,
		GeneratedAt:         g.now().UTC(),
		Customers:           customers,
		ProvisionedAccounts: provisioned,
		Accounts:            ledgerRows,
		Transactions:        txs,
	}, nil
}

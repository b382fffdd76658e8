package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

type column struct {
	name    string
	sqlType string
}

// schemas maps each exported table to its column types. Every table also carries a
// leading run_id so several runs can share a database.
var schemas = map[string][]column{
	models.TableDimCustomer: {
		{"CustomerID", "integer NOT NULL"},
		{"CustomerNumber", "text NOT NULL"},
		{"FirstName", "text NOT NULL"},
		{"LastName", "text NOT NULL"},
	},
	models.TableFactAccount: {
		{"AccountID", "integer NOT NULL"},
		{"CustomerID", "integer NOT NULL"},
		{"AccountBalance", "numeric(14,2) NOT NULL"},
		{"LastUpdated", "timestamp NULL"},
	},
	models.TableFactPaymentTransaction: {
		{"CustomerID", "integer NOT NULL"},
		{"AccountID", "integer NOT NULL"},
		{"TransactionAmount", "numeric(14,2) NOT NULL"},
		{"TransactionType", "text NOT NULL"},
		{"TransactionTimestamp", "timestamp NOT NULL"},
		{"TransactionID", "integer NOT NULL"},
	},
}

type PostgresTableStore struct {
	db    *sql.DB
	runID uuid.UUID
}

func NewPostgresTableStore(db *sql.DB, runID uuid.UUID) *PostgresTableStore {
	return &PostgresTableStore{
		db:    db,
		runID: runID,
	}
}

// WriteTable creates the table if needed and inserts every row in one transaction.
func (p *PostgresTableStore) WriteTable(ctx context.Context, table models.Table) (err error) {
	columns, ok := schemas[table.Name]
	if !ok {
		return fmt.Errorf("postgres: no schema for table %q", table.Name)
	}
	if len(table.Columns) != len(columns) {
		return fmt.Errorf("postgres: table %q has %d columns, want %d", table.Name, len(table.Columns), len(columns))
	}

	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	if _, err = dbTx.ExecContext(ctx, createTableQuery(table.Name, columns)); err != nil {
		return fmt.Errorf("postgres: create %s: %w", table.Name, err)
	}

	query := insertQuery(table.Name, columns)
	for i, row := range table.Rows {
		args := make([]any, 0, len(row)+1)
		args = append(args, p.runID)
		args = append(args, row...)

		if _, err = dbTx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("postgres: insert %s row %d: %w", table.Name, i+1, err)
		}
	}

	return dbTx.Commit()
}

func createTableQuery(table string, columns []column) string {
	defs := make([]string, 0, len(columns)+1)
	defs = append(defs, "run_id uuid NOT NULL")
	for _, c := range columns {
		defs = append(defs, pq.QuoteIdentifier(c.name)+" "+c.sqlType)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", pq.QuoteIdentifier(table), strings.Join(defs, ", "))
}

func insertQuery(table string, columns []column) string {
	names := make([]string, 0, len(columns)+1)
	params := make([]string, 0, len(columns)+1)
	names = append(names, "run_id")
	params = append(params, "$1")
	for i, c := range columns {
		names = append(names, pq.QuoteIdentifier(c.name))
		params = append(params, fmt.Sprintf("$%d", i+2))
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", pq.QuoteIdentifier(table), strings.Join(names, ", "), strings.Join(params, ", "))
}

var _ interfaces.TableSink = (*PostgresTableStore)(nil)

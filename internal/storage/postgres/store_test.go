package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

func accountsTable() models.Table {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.Table{
		Name:    models.TableFactAccount,
		Columns: models.FactAccountColumns,
		Rows: [][]any{
			{1, 1, decimal.RequireFromString("500.00"), start},
			{2, 1, decimal.RequireFromString("120.50"), nil},
		},
	}
}

func TestPostgresTableStore_WriteTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runID := uuid.New()
	store := NewPostgresTableStore(db, runID)

	t.Run("successful write", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS "FactAccount" (run_id uuid NOT NULL, "AccountID" integer NOT NULL`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "FactAccount" (run_id, "AccountID", "CustomerID", "AccountBalance", "LastUpdated") VALUES ($1, $2, $3, $4, $5)`)).
			WithArgs(sqlmock.AnyArg(), 1, 1, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "FactAccount"`)).
			WithArgs(sqlmock.AnyArg(), 2, 1, sqlmock.AnyArg(), nil).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		err := store.WriteTable(context.Background(), accountsTable())
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := store.WriteTable(context.Background(), accountsTable())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown table", func(t *testing.T) {
		err := store.WriteTable(context.Background(), models.Table{Name: "Nope"})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInsertQuery(t *testing.T) {
	got := insertQuery(models.TableDimCustomer, schemas[models.TableDimCustomer])

	assert.Equal(t, `INSERT INTO "DimCustomer" (run_id, "CustomerID", "CustomerNumber", "FirstName", "LastName") VALUES ($1, $2, $3, $4, $5)`, got)
}

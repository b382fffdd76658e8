package csvfile

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

func TestCSVTableStore_WriteTable(t *testing.T) {
	base := t.TempDir()
	createdAt := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	store, err := NewCSVTableStore(base, createdAt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "export_20240506_070809"), store.Dir())

	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	table := models.Table{
		Name:    models.TableFactAccount,
		Columns: models.FactAccountColumns,
		Rows: [][]any{
			{1, 1, decimal.RequireFromString("500"), start},
			{2, 1, decimal.RequireFromString("99.5"), nil},
			{1, 1, decimal.RequireFromString("-0.25"), start.Add(90 * time.Minute)},
		},
	}
	require.NoError(t, store.WriteTable(context.Background(), table))

	f, err := os.Open(filepath.Join(store.Dir(), "FactAccount.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"AccountID", "CustomerID", "AccountBalance", "LastUpdated"},
		{"1", "1", "500.00", "2023-01-01 00:00:00"},
		{"2", "1", "99.50", ""},
		{"1", "1", "-0.25", "2023-01-01 01:30:00"},
	}, records)
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2023, 3, 4, 5, 6, 7, 123456000, time.UTC)

	assert.Equal(t, "2023-03-04 05:06:07.123456", formatValue(ts))
	assert.Equal(t, "Payment", formatValue("Payment"))
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "42", formatValue(42))
	assert.Equal(t, "true", formatValue(true))
}

func TestCSVTableStore_RowWidthMismatch(t *testing.T) {
	store, err := NewCSVTableStore(t.TempDir(), time.Now())
	require.NoError(t, err)

	err = store.WriteTable(context.Background(), models.Table{
		Name:    models.TableDimCustomer,
		Columns: models.DimCustomerColumns,
		Rows:    [][]any{{1, "x"}},
	})
	assert.Error(t, err)
}

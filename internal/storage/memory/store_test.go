package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

func TestMemoryTableStore(t *testing.T) {
	store := NewMemoryTableStore()
	ctx := context.Background()

	customers := models.Table{
		Name:    models.TableDimCustomer,
		Columns: models.DimCustomerColumns,
		Rows:    [][]any{{1, "010190-1234", "Aino", "Virtanen"}},
	}
	require.NoError(t, store.WriteTable(ctx, customers))
	require.NoError(t, store.WriteTable(ctx, models.Table{Name: models.TableFactAccount}))

	// later writes to the caller's rows don't leak into the store
	customers.Rows[0][2] = "Changed"

	got, ok := store.Table(models.TableDimCustomer)
	require.True(t, ok)
	assert.Equal(t, "Aino", got.Rows[0][2])

	// and neither do writes to a returned copy
	got.Rows[0][2] = "Changed"
	again, _ := store.Table(models.TableDimCustomer)
	assert.Equal(t, "Aino", again.Rows[0][2])

	assert.Equal(t, []string{models.TableDimCustomer, models.TableFactAccount}, store.TableNames())

	_, ok = store.Table("missing")
	assert.False(t, ok)
}

func TestMemoryTableStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMemoryTableStore().WriteTable(ctx, models.Table{Name: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

package interfaces

import (
	"context"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

// TableSink persists a named table of rows to durable storage.
type TableSink interface {
	WriteTable(ctx context.Context, table models.Table) error
}

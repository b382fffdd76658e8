package memory

import (
	"context" // standard Go package for request-scoped context (timeouts, cancellation)
	"sync"    // standard Go package for concurrency primitives like Mutex

	"github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

// MemoryTableStore is an in-memory implementation of interfaces.TableSink.
// It keeps every written table in process and is safe for concurrent use.
type MemoryTableStore struct {
	mu     sync.Mutex              // protects tables and order
	tables map[string]models.Table // tables by name
	order  []string                // table names in first-write order
}

// NewMemoryTableStore creates and returns an empty MemoryTableStore
func NewMemoryTableStore() *MemoryTableStore {
	return &MemoryTableStore{
		tables: make(map[string]models.Table),
	}
}

// WriteTable stores a copy of table, replacing any earlier table with the same name.
func (m *MemoryTableStore) WriteTable(ctx context.Context, table models.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tables[table.Name]; !exists {
		m.order = append(m.order, table.Name)
	}
	m.tables[table.Name] = copyTable(table)
	return nil
}

// Table returns a copy of the named table so callers can't modify internal state.
func (m *MemoryTableStore) Table(name string) (models.Table, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	table, exists := m.tables[name]
	if !exists {
		return models.Table{}, false
	}
	return copyTable(table), true
}

func (m *MemoryTableStore) TableNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}

func copyTable(table models.Table) models.Table {
	copied := models.Table{
		Name:    table.Name,
		Columns: append([]string(nil), table.Columns...),
		Rows:    make([][]any, len(table.Rows)),
	}
	for i, row := range table.Rows {
		copied.Rows[i] = append([]any(nil), row...)
	}
	return copied
}

// Compile-time check: ensure MemoryTableStore implements TableSink interface
var _ interfaces.TableSink = (*MemoryTableStore)(nil)

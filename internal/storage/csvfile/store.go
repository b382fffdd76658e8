package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"
	"github.com/sheikh-saqib/payments-test-data-generator/internal/models"
)

const timestampLayout = "2006-01-02 15:04:05.999999"

// CSVTableStore writes one <table>.csv per table into a run folder named export_yyyymmdd_hhmmss.
type CSVTableStore struct {
	dir string
}

// NewCSVTableStore creates the run folder under baseDir, stamped with createdAt.
func NewCSVTableStore(baseDir string, createdAt time.Time) (*CSVTableStore, error) {
	dir := filepath.Join(baseDir, "export_"+createdAt.Format("20060102_150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("csv: create export folder: %w", err)
	}
	return &CSVTableStore{dir: dir}, nil
}

// Dir is the run folder tables are written to.
func (s *CSVTableStore) Dir() string {
	return s.dir
}

// Path returns where the named table is written.
func (s *CSVTableStore) Path(table string) string {
	return filepath.Join(s.dir, table+".csv")
}

func (s *CSVTableStore) WriteTable(ctx context.Context, table models.Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Create(s.Path(table.Name))
	if err != nil {
		return fmt.Errorf("csv: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("csv: write %s header: %w", table.Name, err)
	}

	record := make([]string, len(table.Columns))
	for i, row := range table.Rows {
		if len(row) != len(record) {
			return fmt.Errorf("csv: %s row %d has %d values, want %d", table.Name, i+1, len(row), len(record))
		}
		for j, value := range row {
			record[j] = formatValue(value)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("csv: write %s row %d: %w", table.Name, i+1, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv: flush %s: %w", table.Name, err)
	}
	return file.Close()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case decimal.Decimal:
		return v.StringFixed(2)
	case time.Time:
		return v.Format(timestampLayout)
	default:
		return fmt.Sprint(v)
	}
}

var _ interfaces.TableSink = (*CSVTableStore)(nil)

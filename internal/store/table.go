package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Row is one record of a tabular file, keyed by column name. Reading a
// column the row does not carry yields the empty string.
type Row map[string]string

// Get returns the value of a column, empty when absent.
func (r Row) Get(column string) string {
	return r[column]
}

// Table is an in-memory CSV table with a stable column order.
type Table struct {
	Columns []string
	Rows    []Row
}

func NewTable(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

func (t *Table) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// hasColumn reports whether the table schema carries the column.
func (t *Table) hasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Load reads a CSV file into a Table. A missing file is not an error: it
// loads as an empty table with the expected schema. Expected columns absent
// from the file are synthesized as empty so older files keep working.
func Load(path string, expectedColumns []string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewTable(expectedColumns), nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(records) == 0 {
		return NewTable(expectedColumns), nil
	}

	header := records[0]
	table := NewTable(header)

	for _, col := range expectedColumns {
		if !table.hasColumn(col) {
			table.Columns = append(table.Columns, col)
		}
	}

	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		table.Append(row)
	}

	return table, nil
}

// Save writes the table back as CSV, creating parent directories as needed.
// The whole file is rewritten; there is no incremental write.
func (t *Table) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			record[i] = row.Get(col)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

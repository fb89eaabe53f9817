package tables

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Table is a rectangular result set returned by the vendor's database-table
// interface. Row order is preserved from the vendor response and every cell
// is kept as the string the vendor produced; use Floats or Ints for typed
// column access.
type Table struct {
	// Columns are the field names for the table, in vendor order.
	Columns []string

	// Rows holds one slice per record. Each row has exactly len(Columns)
	// entries.
	Rows [][]string
}

// NumRows returns the number of records in the table.
func (t Table) NumRows() int { return len(t.Rows) }

// NumColumns returns the number of named columns in the table.
func (t Table) NumColumns() int { return len(t.Columns) }

// IsEmpty reports whether the table holds no records.
func (t Table) IsEmpty() bool { return len(t.Rows) == 0 }

// ColumnIndex returns the position of the named column, or -1 when the
// column is not part of the table.
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Strings returns the raw values of the named column in row order. An
// unknown column yields nil.
func (t Table) Strings(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

// Floats returns the named column coerced to float64. Values that do not
// parse as numbers become 0. An unknown column yields nil.
func (t Table) Floats(name string) []float64 {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		v, err := strconv.ParseFloat(row[idx], 64)
		if err != nil {
			v = 0
		}
		out[i] = v
	}
	return out
}

// Ints returns the named column coerced to int. Values are parsed as floats
// first so that "12.0" style identifiers survive; anything unparseable
// becomes 0. An unknown column yields nil.
func (t Table) Ints(name string) []int {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]int, len(t.Rows))
	for i, row := range t.Rows {
		v, err := strconv.ParseFloat(row[idx], 64)
		if err != nil {
			v = 0
		}
		out[i] = int(v)
	}
	return out
}

// WriteCSV writes the table as comma-separated text with a header row.
func (t Table) WriteCSV(w io.Writer) error {
	return t.WriteDelimited(w, ',')
}

// WriteDelimited writes the table as delimited text using the given
// separator, header row first.
func (t Table) WriteDelimited(w io.Writer, sep rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = sep
	if len(t.Columns) > 0 {
		if err := cw.Write(t.Columns); err != nil {
			return err
		}
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package table

// Cell holds one value loaded from a source file.
// Concrete types are string, float64, time.Time, or nil for blanks.
type Cell any

type Column struct {
	Name  string
	Cells []Cell
}

// Table is the in-memory tabular structure passed between the loader
// and the processors. Column order and row order follow the source file.
type Table struct {
	Columns []Column
}

// FromRows builds a Table from a header row and data rows.
// Short rows are padded with nil so every column has the same length.
func FromRows(header []string, rows [][]Cell) Table {
	t := Table{Columns: make([]Column, len(header))}
	for i, name := range header {
		t.Columns[i] = Column{
			Name:  name,
			Cells: make([]Cell, len(rows)),
		}
	}

	for r, row := range rows {
		for c := range t.Columns {
			if c < len(row) {
				t.Columns[c].Cells[r] = row[c]
			}
		}
	}

	return t
}

func (t Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

func (t Table) Cols() int {
	return len(t.Columns)
}

// CellCount returns rows x columns.
func (t Table) CellCount() int {
	return t.Rows() * t.Cols()
}

// Empty reports whether the table has no columns or no rows.
func (t Table) Empty() bool {
	return t.Cols() == 0 || t.Rows() == 0
}

// Column returns the column with the given name.
func (t Table) Column(name string) (Column, bool) {
	for _, col := range t.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// Names returns the column names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Row returns row r as a slice in column order.
func (t Table) Row(r int) []Cell {
	row := make([]Cell, len(t.Columns))
	for c, col := range t.Columns {
		row[c] = col.Cells[r]
	}
	return row
}

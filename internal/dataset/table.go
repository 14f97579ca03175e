package dataset

import "strconv"

// Cell is a single table value. A cell is missing, numeric, or a raw
// string; preprocessing moves cells between those states in place.
type Cell struct {
	Raw     string
	Value   float64
	Numeric bool
	Missing bool
}

// StringCell returns a cell holding a raw string value
func StringCell(raw string) Cell {
	return Cell{Raw: raw}
}

// FloatCell returns a numeric cell
func FloatCell(v float64) Cell {
	return Cell{Value: v, Numeric: true}
}

// MissingCell returns the canonical missing marker
func MissingCell() Cell {
	return Cell{Missing: true}
}

// String renders the cell the way it is written to the output file
func (c Cell) String() string {
	if c.Missing {
		return ""
	}
	if c.Numeric {
		return strconv.FormatFloat(c.Value, 'g', -1, 64)
	}
	return c.Raw
}

// Table is an ordered-column, row-major patient record table. It is the
// single mutable structure the pipeline stages pass along.
type Table struct {
	columns []string
	cells   map[string][]Cell
	rows    int
}

// New creates an empty table with the given column names and row count
func New(columns []string, rows int) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		cells:   make(map[string][]Cell, len(columns)),
		rows:    rows,
	}
	for _, col := range columns {
		t.cells[col] = make([]Cell, rows)
	}
	return t
}

// Columns returns the column names in order
func (t *Table) Columns() []string {
	return t.columns
}

// NumRows returns the number of rows
func (t *Table) NumRows() int {
	return t.rows
}

// HasColumn reports whether the named column exists
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cells[name]
	return ok
}

// Column returns the cells of the named column. The slice is shared with
// the table; mutating it mutates the table.
func (t *Table) Column(name string) []Cell {
	return t.cells[name]
}

// SetColumn replaces the named column, appending it if new. The cell count
// must match the table's row count.
func (t *Table) SetColumn(name string, cells []Cell) {
	if _, ok := t.cells[name]; !ok {
		t.columns = append(t.columns, name)
	}
	t.cells[name] = cells
}

// Project returns a new table holding only the named columns, in the given
// order. Names absent from the table are skipped silently.
func (t *Table) Project(keep []string) *Table {
	var cols []string
	for _, name := range keep {
		if t.HasColumn(name) {
			cols = append(cols, name)
		}
	}

	out := &Table{
		columns: cols,
		cells:   make(map[string][]Cell, len(cols)),
		rows:    t.rows,
	}
	for _, name := range cols {
		out.cells[name] = t.cells[name]
	}
	return out
}

package domain

// ColumnKind distinguishes data columns from utility columns.
type ColumnKind int

const (
	// ColumnData is a regular, selectable data column.
	ColumnData ColumnKind = iota
	// ColumnUtility is a non-data column (e.g. the row expander) excluded
	// from cell/range selection semantics.
	ColumnUtility
)

// Column describes one grid column.
type Column struct {
	Title string
	Kind  ColumnKind
	Width int // rendered width in cells
}

// IsUtility reports whether the column is excluded from selection.
func (c Column) IsUtility() bool { return c.Kind == ColumnUtility }

// Row is one logical grid row. Cells are aligned with the data columns of
// the column set; utility columns render their own content.
type Row struct {
	ID    int64
	Cells []string
}

// Dataset is a loaded table of rows plus its column layout.
type Dataset struct {
	Name    string
	Columns []Column
	Rows    []Row
}

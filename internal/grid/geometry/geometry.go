// Package geometry provides pure rectangle math over grid cell ranges.
package geometry

// Cell is a zero-based coordinate into the logical (not virtualized)
// row/column arrays.
type Cell struct {
	Row int
	Col int
}

// Range is a direction-preserving rectangle: a drag from bottom-right to
// top-left keeps its endpoints as supplied. Normalization happens only when
// querying containment or producing the public shape.
type Range struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// PublicRange is the normalized rectangle exposed across the event/API
// boundary: From <= To on both axes.
type PublicRange struct {
	From Cell
	To   Cell
}

// FromAnchor builds a range from a fixed anchor to the current cell,
// preserving direction. Both shift-click extension and drag-move use this.
func FromAnchor(anchor, current Cell) Range {
	return Range{
		StartRow: anchor.Row,
		StartCol: anchor.Col,
		EndRow:   current.Row,
		EndCol:   current.Col,
	}
}

// FromPublic converts a public range back to the internal representation.
func FromPublic(p PublicRange) Range {
	return Range{
		StartRow: p.From.Row,
		StartCol: p.From.Col,
		EndRow:   p.To.Row,
		EndCol:   p.To.Col,
	}
}

// SingleCell returns the degenerate range covering one cell.
func SingleCell(row, col int) Range {
	return Range{StartRow: row, StartCol: col, EndRow: row, EndCol: col}
}

// Normalized returns a range with start <= end on both axes.
func (r Range) Normalized() Range {
	if r.StartRow > r.EndRow {
		r.StartRow, r.EndRow = r.EndRow, r.StartRow
	}
	if r.StartCol > r.EndCol {
		r.StartCol, r.EndCol = r.EndCol, r.StartCol
	}
	return r
}

// Contains reports whether the cell lies inside the rectangle, inclusive on
// all edges.
func (r Range) Contains(row, col int) bool {
	n := r.Normalized()
	return row >= n.StartRow && row <= n.EndRow &&
		col >= n.StartCol && col <= n.EndCol
}

// AnyContains reports whether any of the ranges contains the cell.
func AnyContains(ranges []Range, row, col int) bool {
	for _, r := range ranges {
		if r.Contains(row, col) {
			return true
		}
	}
	return false
}

// Cells enumerates every cell of the inclusive rectangle in row-major order.
func (r Range) Cells() []Cell {
	n := r.Normalized()
	cells := make([]Cell, 0, n.CellCount())
	for row := n.StartRow; row <= n.EndRow; row++ {
		for col := n.StartCol; col <= n.EndCol; col++ {
			cells = append(cells, Cell{Row: row, Col: col})
		}
	}
	return cells
}

// CellsInRanges returns the union of Cells over all ranges, deduplicated by
// coordinate, in first-seen order. Overlapping ranges contribute only their
// novel cells.
func CellsInRanges(ranges []Range) []Cell {
	seen := make(map[Cell]struct{})
	var cells []Cell
	for _, r := range ranges {
		for _, c := range r.Cells() {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			cells = append(cells, c)
		}
	}
	return cells
}

// CellCount returns the number of cells covered by the rectangle.
func (r Range) CellCount() int {
	rows := r.EndRow - r.StartRow
	if rows < 0 {
		rows = -rows
	}
	cols := r.EndCol - r.StartCol
	if cols < 0 {
		cols = -cols
	}
	return (rows + 1) * (cols + 1)
}

// Equal reports structural equality after normalizing both sides.
func Equal(a, b Range) bool {
	return a.Normalized() == b.Normalized()
}

// Public returns the normalized external representation.
func (r Range) Public() PublicRange {
	n := r.Normalized()
	return PublicRange{
		From: Cell{Row: n.StartRow, Col: n.StartCol},
		To:   Cell{Row: n.EndRow, Col: n.EndCol},
	}
}

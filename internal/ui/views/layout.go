package views

import (
	"strconv"

	"gridsel/internal/domain"
)

const (
	columnGap    = 1
	minColWidth  = 4
	maxColWidth  = 24
	expanderMark = "▸"
)

// Layout maps between screen x coordinates and grid columns. The
// optional row-number gutter sits left of column zero and belongs to
// no column.
type Layout struct {
	GutterWidth int
	Widths      []int
}

// NewLayout sizes each column to fit its title and the widest cell,
// clamped to a sane range. Utility columns keep their configured width.
func NewLayout(columns []domain.Column, rows []domain.Row, showRowNumbers bool) *Layout {
	l := &Layout{}
	if showRowNumbers {
		gutter := len(strconv.Itoa(len(rows))) + 1
		if gutter < 4 {
			gutter = 4
		}
		l.GutterWidth = gutter
	}
	l.Widths = make([]int, len(columns))
	dataIdx := 0
	for i, col := range columns {
		if col.IsUtility() {
			w := col.Width
			if w <= 0 {
				w = 2
			}
			l.Widths[i] = w
			continue
		}
		// Row.Cells holds data columns only, so measure by data index.
		w := len(col.Title)
		for _, row := range rows {
			if dataIdx < len(row.Cells) && len(row.Cells[dataIdx]) > w {
				w = len(row.Cells[dataIdx])
			}
		}
		dataIdx++
		if w < minColWidth {
			w = minColWidth
		}
		if w > maxColWidth {
			w = maxColWidth
		}
		l.Widths[i] = w
	}
	return l
}

// ColumnAt returns the column covering screen offset x, or -1 when x
// falls in the gutter, a gap, or past the last column.
func (l *Layout) ColumnAt(x int) int {
	x -= l.GutterWidth
	if x < 0 {
		return -1
	}
	for i, w := range l.Widths {
		if x < w {
			return i
		}
		x -= w + columnGap
		if x < 0 {
			return -1
		}
	}
	return -1
}

// ColumnX returns the screen offset of a column's left edge.
func (l *Layout) ColumnX(col int) int {
	x := l.GutterWidth
	for i := 0; i < col && i < len(l.Widths); i++ {
		x += l.Widths[i] + columnGap
	}
	return x
}

// TotalWidth is the full rendered width of one grid line.
func (l *Layout) TotalWidth() int {
	w := l.GutterWidth
	for i, cw := range l.Widths {
		w += cw
		if i < len(l.Widths)-1 {
			w += columnGap
		}
	}
	return w
}

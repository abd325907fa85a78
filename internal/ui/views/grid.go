package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridsel/internal/domain"
	"gridsel/internal/grid/reconcile"
)

// GridState carries everything the renderer needs for one frame of the
// data grid itself, header and body.
type GridState struct {
	Columns        []domain.Column
	Rows           []domain.Row
	Visible        []int
	Layout         *Layout
	Surface        *FrameSurface
	FocusRow       int
	FocusCol       int
	ShowRowNumbers bool
}

func (r *Renderer) renderHeader(gs *GridState) string {
	var b strings.Builder
	if gs.ShowRowNumbers {
		b.WriteString(strings.Repeat(" ", gs.Layout.GutterWidth))
	}
	for i, col := range gs.Columns {
		title := col.Title
		if col.IsUtility() {
			title = ""
		}
		b.WriteString(r.styles.Header.Render(pad(title, gs.Layout.Widths[i])))
		if i < len(gs.Columns)-1 {
			b.WriteString(strings.Repeat(" ", columnGap))
		}
	}
	return b.String()
}

func (r *Renderer) renderRow(gs *GridState, row int) string {
	var b strings.Builder
	if gs.ShowRowNumbers {
		num := strconv.Itoa(row + 1)
		b.WriteString(r.styles.RowNumber.Render(pad(num, gs.Layout.GutterWidth-1)))
		b.WriteString(" ")
	}

	rowSelected := gs.Surface.RowSelected(row)
	for col := range gs.Columns {
		b.WriteString(r.renderCell(gs, row, col, rowSelected))
		if col < len(gs.Columns)-1 {
			gap := " "
			if rowSelected {
				gap = r.styles.SelectedRow.Render(gap)
			}
			b.WriteString(gap)
		}
	}
	return b.String()
}

func (r *Renderer) renderCell(gs *GridState, row, col int, rowSelected bool) string {
	width := gs.Layout.Widths[col]
	column := gs.Columns[col]

	var text string
	if column.IsUtility() {
		text = pad(expanderMark, width)
	} else {
		dataCol := gs.dataIndex(col)
		if row < len(gs.Rows) && dataCol < len(gs.Rows[row].Cells) {
			text = pad(gs.Rows[row].Cells[dataCol], width)
		} else {
			text = pad("", width)
		}
	}

	style := r.cellStyle(gs, row, col, rowSelected, column.IsUtility())
	return style.Render(text)
}

func (r *Renderer) cellStyle(gs *GridState, row, col int, rowSelected, utility bool) lipgloss.Style {
	focused := row == gs.FocusRow && col == gs.FocusCol
	if focused && !utility {
		if !gs.Surface.FocusSuppressed() {
			return r.styles.Focus
		}
		// Selection owns the focus visuals; fall back to a quiet cursor
		// on unselected cells so navigation stays visible.
		if gs.Surface.CellFlags(row, col) == 0 && !rowSelected {
			return r.styles.FocusDim
		}
	}
	if utility {
		return r.styles.Expander
	}
	if rowSelected {
		return r.styles.SelectedRow
	}

	flags := gs.Surface.CellFlags(row, col)
	switch {
	case flags.Has(reconcile.FlagEdgeBottom):
		return r.styles.EdgeBottom
	case flags.Has(reconcile.FlagEdgeTop):
		return r.styles.EdgeTop
	case flags.Has(reconcile.FlagEdgeFirst):
		return r.styles.EdgeFirst
	case flags.Has(reconcile.FlagEdgeLast):
		return r.styles.EdgeLast
	case flags.Has(reconcile.FlagSelected):
		return r.styles.Selected
	}
	return r.styles.Cell
}

// dataIndex maps a grid column to its index inside Row.Cells, skipping
// utility columns that carry no data.
func (gs *GridState) dataIndex(col int) int {
	idx := 0
	for i := 0; i < col; i++ {
		if !gs.Columns[i].IsUtility() {
			idx++
		}
	}
	return idx
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width > 1 {
			return string(runes[:width-1]) + "…"
		}
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

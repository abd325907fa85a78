// Package reconcile reapplies selection styling to the host's currently
// mounted cells. Virtualization recycles mounted nodes for different logical
// rows as the viewport scrolls, so styling is re-derived from scratch on
// every pass rather than patched incrementally.
package reconcile

import (
	"gridsel/internal/grid/geometry"
	"gridsel/internal/grid/selection"
)

// CellFlags marks the selection styling a mounted cell must carry.
type CellFlags uint8

const (
	FlagSelected CellFlags = 1 << iota
	FlagEdgeTop
	FlagEdgeBottom
	FlagEdgeFirst
	FlagEdgeLast
)

// Has reports whether all given flags are set.
func (f CellFlags) Has(flags CellFlags) bool {
	return f&flags == flags
}

// Surface is the host's view of its mounted nodes. Implementations are
// expected to scope every operation to what is currently mounted.
type Surface interface {
	// MountedRows lists the logical row indices with mounted nodes.
	MountedRows() []int
	ColumnCount() int
	IsUtilityColumn(col int) bool

	// Reset strips all selection styling from mounted nodes and re-enables
	// the host's native cell-focus styling.
	Reset()
	MarkRowSelected(row int)
	MarkCell(row, col int, flags CellFlags)
	// SuppressCellFocus disables the host's native focus styling for this
	// pass; row and range selection own the focus visuals in their modes.
	SuppressCellFocus()
}

// Apply re-derives the styling of every mounted node from the selection
// state. Running it twice with unchanged state yields identical styling.
func Apply(state *selection.State, s Surface) {
	s.Reset()

	switch state.Mode {
	case selection.ModeCell:
		// Native focus styling already marks the selected cell.

	case selection.ModeRow:
		s.SuppressCellFocus()
		for _, row := range s.MountedRows() {
			if _, ok := state.Row.Selected[row]; ok {
				s.MarkRowSelected(row)
			}
		}

	case selection.ModeRange:
		s.SuppressCellFocus()
		applyRanges(state, s)
	}
}

func applyRanges(state *selection.State, s Surface) {
	ranges := state.Range.Ranges
	if len(ranges) == 0 {
		return
	}

	var active geometry.Range
	hasActive := false
	if ar := state.ActiveRange(); ar != nil {
		active = ar.Normalized()
		hasActive = true
	}

	cols := s.ColumnCount()
	for _, row := range s.MountedRows() {
		for col := 0; col < cols; col++ {
			if !geometry.AnyContains(ranges, row, col) {
				continue
			}
			flags := FlagSelected
			if hasActive && !s.IsUtilityColumn(col) && active.Contains(row, col) {
				if row == active.StartRow {
					flags |= FlagEdgeTop
				}
				if row == active.EndRow {
					flags |= FlagEdgeBottom
				}
				if col == active.StartCol {
					flags |= FlagEdgeFirst
				}
				if col == active.EndCol {
					flags |= FlagEdgeLast
				}
			}
			s.MarkCell(row, col, flags)
		}
	}
}

package views

import (
	"gridsel/internal/grid/geometry"
	"gridsel/internal/grid/reconcile"
)

// FrameSurface collects per-cell selection flags for the rows currently
// inside the viewport. One instance is reused across frames; SetWindow
// rebinds it to the new viewport before each reconcile pass.
type FrameSurface struct {
	rows         []int
	cols         int
	isUtility    func(int) bool
	cellFlags    map[geometry.Cell]reconcile.CellFlags
	selectedRows map[int]bool
	focusOff     bool
}

func NewFrameSurface() *FrameSurface {
	return &FrameSurface{
		cellFlags:    make(map[geometry.Cell]reconcile.CellFlags),
		selectedRows: make(map[int]bool),
	}
}

// SetWindow binds the surface to the visible rows for the next frame.
func (s *FrameSurface) SetWindow(rows []int, cols int, isUtility func(int) bool) {
	s.rows = rows
	s.cols = cols
	s.isUtility = isUtility
}

func (s *FrameSurface) MountedRows() []int { return s.rows }

func (s *FrameSurface) ColumnCount() int { return s.cols }

func (s *FrameSurface) IsUtilityColumn(col int) bool {
	return s.isUtility != nil && s.isUtility(col)
}

func (s *FrameSurface) Reset() {
	for k := range s.cellFlags {
		delete(s.cellFlags, k)
	}
	for k := range s.selectedRows {
		delete(s.selectedRows, k)
	}
	s.focusOff = false
}

func (s *FrameSurface) MarkRowSelected(row int) {
	s.selectedRows[row] = true
}

func (s *FrameSurface) MarkCell(row, col int, flags reconcile.CellFlags) {
	s.cellFlags[geometry.Cell{Row: row, Col: col}] = flags
}

func (s *FrameSurface) SuppressCellFocus() {
	s.focusOff = true
}

// CellFlags returns the flags recorded for a cell in the last pass.
func (s *FrameSurface) CellFlags(row, col int) reconcile.CellFlags {
	return s.cellFlags[geometry.Cell{Row: row, Col: col}]
}

// RowSelected reports whether a whole row was marked selected.
func (s *FrameSurface) RowSelected(row int) bool {
	return s.selectedRows[row]
}

// FocusSuppressed reports whether the focus highlight should be hidden.
func (s *FrameSurface) FocusSuppressed() bool {
	return s.focusOff
}

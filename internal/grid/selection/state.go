// Package selection holds the in-memory selection state for one grid
// instance. Exactly one per-mode container is populated; the Input
// Interpreter is the only writer.
package selection

import (
	"sort"

	"gridsel/internal/grid/geometry"
)

// Mode determines how input is interpreted. It is fixed for the lifetime of
// an engine instance; switching modes means creating a new engine.
type Mode string

const (
	ModeCell  Mode = "cell"
	ModeRow   Mode = "row"
	ModeRange Mode = "range"
)

// CellState is the cell-mode container: at most one selected coordinate.
type CellState struct {
	Selected *geometry.Cell
}

// RowState is the row-mode container.
type RowState struct {
	Selected     map[int]struct{}
	Anchor       int // fixed start row for shift-range replay, -1 when unset
	LastSelected int // -1 when unset
}

// RangeState is the range-mode container. Ranges stay direction-preserving;
// Active indexes the most recently touched range (-1 when none) and, when
// valid, always refers to an element of Ranges.
type RangeState struct {
	Ranges   []geometry.Range
	Active   int
	Anchor   *geometry.Cell
	Dragging bool
}

// KeyboardUpdate is a deferred instruction recorded by the keyboard handler
// and consumed by the next render pass.
type KeyboardUpdate struct {
	Shift bool
}

// State is a tagged variant: the container matching Mode is non-nil, the
// other two stay nil.
type State struct {
	Mode    Mode
	Cell    *CellState
	Row     *RowState
	Range   *RangeState
	Pending *KeyboardUpdate
}

// NewState creates an empty state for the given mode.
func NewState(mode Mode) *State {
	s := &State{Mode: mode}
	switch mode {
	case ModeCell:
		s.Cell = &CellState{}
	case ModeRow:
		s.Row = &RowState{
			Selected:     make(map[int]struct{}),
			Anchor:       -1,
			LastSelected: -1,
		}
	case ModeRange:
		s.Range = &RangeState{Active: -1}
	}
	return s
}

// ClearAll resets the active mode container along with anchors, the drag
// flag, and any pending keyboard update.
func (s *State) ClearAll() {
	switch s.Mode {
	case ModeCell:
		s.Cell.Selected = nil
	case ModeRow:
		s.Row.Selected = make(map[int]struct{})
		s.Row.Anchor = -1
		s.Row.LastSelected = -1
	case ModeRange:
		s.Range.Ranges = nil
		s.Range.Active = -1
		s.Range.Anchor = nil
		s.Range.Dragging = false
	}
	s.Pending = nil
}

// IsEmpty reports whether nothing is selected.
func (s *State) IsEmpty() bool {
	switch s.Mode {
	case ModeCell:
		return s.Cell.Selected == nil
	case ModeRow:
		return len(s.Row.Selected) == 0
	case ModeRange:
		return len(s.Range.Ranges) == 0
	}
	return true
}

// ActiveRange returns the most recently touched range, nil when none.
func (s *State) ActiveRange() *geometry.Range {
	if s.Mode != ModeRange {
		return nil
	}
	r := s.Range
	if r.Active < 0 || r.Active >= len(r.Ranges) {
		return nil
	}
	return &r.Ranges[r.Active]
}

// SortedRows returns the selected row indices in ascending order.
func (s *State) SortedRows() []int {
	if s.Mode != ModeRow {
		return nil
	}
	rows := make([]int, 0, len(s.Row.Selected))
	for row := range s.Row.Selected {
		rows = append(rows, row)
	}
	sort.Ints(rows)
	return rows
}

// PublicRanges derives the single public selection shape regardless of mode:
// cell mode yields one degenerate range, row mode one full-width range per
// selected row, range mode the normalized ranges in order. columnCount is
// needed only for the row-mode width.
func (s *State) PublicRanges(columnCount int) []geometry.PublicRange {
	switch s.Mode {
	case ModeCell:
		if s.Cell.Selected == nil {
			return []geometry.PublicRange{}
		}
		c := *s.Cell.Selected
		return []geometry.PublicRange{{From: c, To: c}}

	case ModeRow:
		lastCol := columnCount - 1
		if lastCol < 0 {
			lastCol = 0
		}
		rows := s.SortedRows()
		ranges := make([]geometry.PublicRange, 0, len(rows))
		for _, row := range rows {
			ranges = append(ranges, geometry.PublicRange{
				From: geometry.Cell{Row: row, Col: 0},
				To:   geometry.Cell{Row: row, Col: lastCol},
			})
		}
		return ranges

	case ModeRange:
		ranges := make([]geometry.PublicRange, 0, len(s.Range.Ranges))
		for _, r := range s.Range.Ranges {
			ranges = append(ranges, r.Public())
		}
		return ranges
	}
	return []geometry.PublicRange{}
}

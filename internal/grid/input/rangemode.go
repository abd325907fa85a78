package input

import (
	"gridsel/internal/grid/geometry"
	"gridsel/internal/grid/selection"
)

// rangeMode accumulates rectangular ranges built from an anchor by
// shift-click, keyboard extension, or mouse drag.
type rangeMode struct {
	in *Interpreter
}

func (m *rangeMode) Click(row, col int, mods Modifiers) bool {
	in := m.in
	if in.ctx.IsUtilityColumn(col) {
		return false
	}

	rs := in.state.Range
	clicked := geometry.Cell{Row: row, Col: col}

	switch {
	case mods.Shift && !mods.Ctrl && rs.Anchor != nil:
		rs.Ranges = []geometry.Range{geometry.FromAnchor(*rs.Anchor, clicked)}
		rs.Active = 0

	case mods.Shift && mods.Ctrl && rs.Anchor != nil:
		// Extend only the most recent range, keeping earlier ones.
		extended := geometry.FromAnchor(*rs.Anchor, clicked)
		if len(rs.Ranges) == 0 {
			rs.Ranges = append(rs.Ranges, extended)
		} else {
			rs.Ranges[len(rs.Ranges)-1] = extended
		}
		rs.Active = len(rs.Ranges) - 1

	case mods.Ctrl:
		rs.Ranges = append(rs.Ranges, geometry.SingleCell(row, col))
		rs.Active = len(rs.Ranges) - 1
		rs.Anchor = &clicked

	default:
		rs.Ranges = []geometry.Range{geometry.SingleCell(row, col)}
		rs.Active = 0
		rs.Anchor = &clicked
	}

	in.emitChange()
	in.ctx.RequestPostRender()
	return true
}

func (m *rangeMode) Key(ev KeyEvent) bool {
	in := m.in

	if ev.Key == KeyA && ev.Mods.Ctrl {
		rows, cols := in.ctx.RowCount(), in.ctx.ColumnCount()
		if rows > 0 && cols > 0 {
			rs := in.state.Range
			rs.Ranges = []geometry.Range{{EndRow: rows - 1, EndCol: cols - 1}}
			rs.Active = 0
			in.emitChange()
			in.ctx.RequestPostRender()
		}
		// Consumed even when an empty grid declines the select-all.
		return true
	}

	if !ev.Key.IsNavigation() {
		return false
	}

	// Tab moves focus, it never extends the selection.
	extend := ev.Mods.Shift && ev.Key != KeyTab

	// The anchor is the pre-navigation cursor, so it must be captured now,
	// before the host's own key handler moves focus.
	rs := in.state.Range
	if extend && rs.Anchor == nil {
		rs.Anchor = &geometry.Cell{Row: in.ctx.FocusRow(), Col: in.ctx.FocusCol()}
	}
	in.state.Pending = &selection.KeyboardUpdate{Shift: extend}

	// Virtualization-driven renders may skip the post-render hook; ask for
	// one explicitly so the pending update is consumed.
	in.ctx.RequestPostRender()
	return false
}

// applyKeyboardUpdate resolves a pending keyboard update against the host's
// post-navigation focus.
func (m *rangeMode) applyKeyboardUpdate(shift bool) {
	in := m.in
	rs := in.state.Range
	focus := geometry.Cell{Row: in.ctx.FocusRow(), Col: in.ctx.FocusCol()}

	if shift {
		// An intervening clear invalidated the anchor; the update is moot.
		if rs.Anchor == nil {
			return
		}
		rs.Ranges = []geometry.Range{geometry.FromAnchor(*rs.Anchor, focus)}
		rs.Active = 0
	} else {
		rs.Ranges = nil
		rs.Active = -1
		rs.Anchor = &focus
	}
	in.emitChange()
}

// MouseDown starts a drag on a data cell. A press that coincides with an
// in-progress shift-extension defers to the click handler instead.
func (m *rangeMode) MouseDown(row, col int, mods Modifiers) bool {
	in := m.in
	if row < 0 || in.ctx.IsUtilityColumn(col) {
		return false
	}

	rs := in.state.Range
	if mods.Shift && rs.Anchor != nil {
		return false
	}

	pressed := geometry.Cell{Row: row, Col: col}
	rs.Dragging = true
	rs.Anchor = &pressed
	if !mods.Ctrl {
		rs.Ranges = nil
	}
	rs.Ranges = append(rs.Ranges, geometry.SingleCell(row, col))
	rs.Active = len(rs.Ranges) - 1

	in.emitChange()
	in.ctx.RequestPostRender()
	return true
}

// MouseMove recomputes the drag rectangle from the anchor to the pointer.
func (m *rangeMode) MouseMove(row, col int) bool {
	in := m.in
	rs := in.state.Range
	if !rs.Dragging || rs.Anchor == nil || len(rs.Ranges) == 0 {
		return false
	}

	// The rectangle must not include the utility strip: clamp the target
	// column to the first data column.
	if in.ctx.IsUtilityColumn(col) {
		first := in.firstDataColumn()
		if first < 0 {
			return true
		}
		col = first
	}

	current := geometry.FromAnchor(*rs.Anchor, geometry.Cell{Row: row, Col: col})
	last := len(rs.Ranges) - 1
	if rs.Ranges[last] == current {
		return true
	}
	rs.Ranges[last] = current
	rs.Active = last

	in.emitChange()
	in.ctx.RequestPostRender()
	return true
}

// MouseUp ends the drag without touching the accumulated ranges.
func (m *rangeMode) MouseUp() bool {
	rs := m.in.state.Range
	if !rs.Dragging {
		return false
	}
	rs.Dragging = false
	return true
}

package input

import (
	"gridsel/internal/grid/geometry"
)

// cellMode tracks a single selected coordinate that shadows the host's
// focus cursor.
type cellMode struct {
	in *Interpreter
}

func (m *cellMode) Click(row, col int, mods Modifiers) bool {
	in := m.in
	if in.ctx.IsUtilityColumn(col) {
		return false
	}

	// Modifiers carry no meaning in cell mode.
	in.state.Cell.Selected = &geometry.Cell{Row: row, Col: col}
	in.emitChange()
	in.ctx.RequestPostRender()
	return true
}

func (m *cellMode) Key(ev KeyEvent) bool {
	if !ev.Key.IsNavigation() {
		return false
	}

	// The host performs its own focus navigation for this key; the
	// selected cell follows once the host's handler has run.
	in := m.in
	in.ctx.Defer(func() {
		row, col := in.ctx.FocusRow(), in.ctx.FocusCol()
		if row < 0 || col < 0 {
			return
		}
		prev := in.state.Cell.Selected
		if prev != nil && prev.Row == row && prev.Col == col {
			return
		}
		in.state.Cell.Selected = &geometry.Cell{Row: row, Col: col}
		in.emitChange()
		in.ctx.RequestPostRender()
	})
	return false
}

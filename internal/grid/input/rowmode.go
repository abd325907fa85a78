package input

// rowMode selects whole rows. Utility columns are not excluded here: a
// click anywhere on a row, expander included, selects that row.
type rowMode struct {
	in *Interpreter
}

func (m *rowMode) Click(row, col int, mods Modifiers) bool {
	in := m.in
	rs := in.state.Row

	switch {
	case mods.Shift && rs.Anchor >= 0:
		start, end := rs.Anchor, row
		if start > end {
			start, end = end, start
		}
		if !mods.Ctrl {
			rs.Selected = make(map[int]struct{})
		}
		for i := start; i <= end; i++ {
			rs.Selected[i] = struct{}{}
		}
		rs.LastSelected = row

	case mods.Ctrl:
		if _, ok := rs.Selected[row]; ok {
			delete(rs.Selected, row)
		} else {
			rs.Selected[row] = struct{}{}
		}
		rs.Anchor = row
		rs.LastSelected = row

	default:
		rs.Selected = map[int]struct{}{row: {}}
		rs.Anchor = row
		rs.LastSelected = row
	}

	in.emitChange()
	in.ctx.RequestPostRender()
	return true
}

func (m *rowMode) Key(ev KeyEvent) bool {
	if ev.Key != KeyUp && ev.Key != KeyDown {
		return false
	}

	// Selection follows the host's cursor after it finishes moving.
	in := m.in
	in.ctx.Defer(func() {
		row := in.ctx.FocusRow()
		if row < 0 {
			return
		}
		rs := in.state.Row
		rs.Selected = map[int]struct{}{row: {}}
		rs.Anchor = row
		rs.LastSelected = row
		in.emitChange()
		in.ctx.RequestPostRender()
	})
	return false
}

// Package input interprets click, keyboard, and mouse-drag events into
// selection state transitions. Interpretation depends on the selection mode
// fixed at construction; each mode has its own handler.
package input

import (
	"gridsel/internal/grid/events"
	"gridsel/internal/grid/selection"
)

// Interpreter is the single writer of a grid's selection state.
type Interpreter struct {
	state   *selection.State
	ctx     Context
	bus     events.Bus
	handler modeHandler
}

// New creates an interpreter for the state's mode.
func New(state *selection.State, ctx Context, bus events.Bus) *Interpreter {
	in := &Interpreter{state: state, ctx: ctx, bus: bus}
	switch state.Mode {
	case selection.ModeCell:
		in.handler = &cellMode{in: in}
	case selection.ModeRow:
		in.handler = &rowMode{in: in}
	case selection.ModeRange:
		in.handler = &rangeMode{in: in}
	}
	return in
}

// CellClick handles a click on the cell at (row, col). The returned bool
// tells the host whether to stop further propagation.
func (in *Interpreter) CellClick(row, col int, mods Modifiers) bool {
	return in.handler.Click(row, col, mods)
}

// KeyDown handles a keyboard event. Escape is consumed in every mode and
// clears the active selection; navigation keys are left to the host (the
// return value is false) with deferred reconciliation where the mode calls
// for it.
func (in *Interpreter) KeyDown(ev KeyEvent) bool {
	if ev.Key == KeyEscape {
		in.Clear()
		return true
	}
	return in.handler.Key(ev)
}

// MouseDown starts a drag in range mode. Other modes ignore mouse presses.
func (in *Interpreter) MouseDown(row, col int, mods Modifiers) bool {
	rm, ok := in.handler.(*rangeMode)
	if !ok {
		return false
	}
	return rm.MouseDown(row, col, mods)
}

// MouseMove extends the active drag rectangle.
func (in *Interpreter) MouseMove(row, col int) bool {
	rm, ok := in.handler.(*rangeMode)
	if !ok {
		return false
	}
	return rm.MouseMove(row, col)
}

// MouseUp ends a drag. The accumulated ranges are left untouched.
func (in *Interpreter) MouseUp() bool {
	rm, ok := in.handler.(*rangeMode)
	if !ok {
		return false
	}
	return rm.MouseUp()
}

// Clear empties the active mode's selection containers and emits a change
// with zero ranges. A keyboard update still pending at this point is
// dropped so it cannot extend from an invalidated anchor.
func (in *Interpreter) Clear() {
	in.state.ClearAll()
	in.emitChange()
	in.ctx.RequestPostRender()
}

// ProcessPending consumes a deferred keyboard update. The engine calls this
// at the start of every post-render pass so the anchor/shift decision is
// applied exactly once, on the very next render.
func (in *Interpreter) ProcessPending() {
	p := in.state.Pending
	if p == nil {
		return
	}
	in.state.Pending = nil

	if in.state.Mode != selection.ModeRange {
		return
	}
	rm, ok := in.handler.(*rangeMode)
	if !ok {
		return
	}
	rm.applyKeyboardUpdate(p.Shift)
}

// emitChange publishes the normalized selection-change notification.
func (in *Interpreter) emitChange() {
	in.bus.Publish(events.ChangedEvent{
		Mode:   in.state.Mode,
		Ranges: in.state.PublicRanges(in.ctx.ColumnCount()),
	})
}

// firstDataColumn returns the leftmost non-utility column, or -1 when every
// column is a utility column.
func (in *Interpreter) firstDataColumn() int {
	for col := 0; col < in.ctx.ColumnCount(); col++ {
		if !in.ctx.IsUtilityColumn(col) {
			return col
		}
	}
	return -1
}

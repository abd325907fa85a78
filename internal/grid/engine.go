// Package grid is the selection engine of the data-grid widget. It tracks
// what is selected under one of three modes (cell, row, range), interprets
// host input, and re-labels the host's mounted nodes after every render
// pass. It never renders, never moves focus, and never reads the screen
// back: input flows in, state changes, styling and events flow out.
package grid

import (
	"gridsel/internal/grid/events"
	"gridsel/internal/grid/geometry"
	"gridsel/internal/grid/input"
	"gridsel/internal/grid/reconcile"
	"gridsel/internal/grid/selection"
)

// Host is the virtualization/rendering collaborator. It owns row and column
// data, the focus cursor, and render scheduling; the engine only reads from
// it.
type Host interface {
	RowCount() int
	ColumnCount() int
	IsUtilityColumn(col int) bool
	FocusRow() int
	FocusCol() int
	RequestRender()
	// RequestPostRender asks the host to run a post-render pass
	// (Engine.AfterRender) even when it would otherwise skip one.
	RequestPostRender()
}

// Snapshot is the public view of the current selection.
type Snapshot struct {
	Mode   selection.Mode
	Ranges []geometry.PublicRange
	Anchor *geometry.Cell
}

// Engine wires the selection state, the input interpreter, the event
// emitter, and the render reconciler for one grid instance. Not safe for
// concurrent use; the host's event loop is the only caller.
type Engine struct {
	mode selection.Mode
	host Host
	bus  events.Bus

	state       *selection.State
	interpreter *input.Interpreter
	deferred    []func()
	attached    bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithBus sets the bus selection-change events are published on. The
// default is a NullBus.
func WithBus(bus events.Bus) Option {
	return func(e *Engine) { e.bus = bus }
}

// New creates a detached engine. The mode is fixed for the engine's
// lifetime.
func New(mode selection.Mode, host Host, opts ...Option) *Engine {
	e := &Engine{
		mode: mode,
		host: host,
		bus:  &events.NullBus{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Attach()
	return e
}

// Attach creates fresh, empty selection state. Attaching an already
// attached engine resets it.
func (e *Engine) Attach() {
	e.state = selection.NewState(e.mode)
	e.interpreter = input.New(e.state, &hostContext{engine: e}, e.bus)
	e.deferred = nil
	e.attached = true
}

// Detach clears all state so nothing leaks into a later re-attachment.
func (e *Engine) Detach() {
	if !e.attached {
		return
	}
	e.state.ClearAll()
	e.deferred = nil
	e.attached = false
}

// Mode returns the engine's fixed selection mode.
func (e *Engine) Mode() selection.Mode { return e.mode }

// CellClick handles a click on a cell. The return value tells the host
// whether to stop propagating the event.
func (e *Engine) CellClick(row, col int, mods input.Modifiers) bool {
	if !e.attached {
		return false
	}
	return e.interpreter.CellClick(row, col, mods)
}

// KeyDown handles a keyboard event. A false return means the host should
// run its own handling (focus navigation) for the key.
func (e *Engine) KeyDown(ev input.KeyEvent) bool {
	if !e.attached {
		return false
	}
	return e.interpreter.KeyDown(ev)
}

// CellMouseDown handles a mouse press on a cell.
func (e *Engine) CellMouseDown(row, col int, mods input.Modifiers) bool {
	if !e.attached {
		return false
	}
	return e.interpreter.MouseDown(row, col, mods)
}

// CellMouseMove handles pointer motion during a drag.
func (e *Engine) CellMouseMove(row, col int) bool {
	if !e.attached {
		return false
	}
	return e.interpreter.MouseMove(row, col)
}

// CellMouseUp ends a drag.
func (e *Engine) CellMouseUp() bool {
	if !e.attached {
		return false
	}
	return e.interpreter.MouseUp()
}

// FlushDeferred runs work queued during input handling. The host calls this
// after its own synchronous handling of the same event, so deferred work
// observes the host's final focus coordinates for the tick.
func (e *Engine) FlushDeferred() {
	for len(e.deferred) > 0 {
		tasks := e.deferred
		e.deferred = nil
		for _, task := range tasks {
			task()
		}
	}
}

// AfterRender is the post-render pass: it consumes a pending keyboard
// update, then reapplies selection styling to the surface's mounted nodes.
// The host invokes it after every full render and after every scroll-driven
// recycle.
func (e *Engine) AfterRender(s reconcile.Surface) {
	if !e.attached {
		return
	}
	e.interpreter.ProcessPending()
	reconcile.Apply(e.state, s)
}

// Selection returns the current mode, public ranges, and anchor.
func (e *Engine) Selection() Snapshot {
	snap := Snapshot{
		Mode:   e.mode,
		Ranges: e.state.PublicRanges(e.host.ColumnCount()),
	}
	switch e.mode {
	case selection.ModeCell:
		if c := e.state.Cell.Selected; c != nil {
			anchor := *c
			snap.Anchor = &anchor
		}
	case selection.ModeRow:
		if e.state.Row.Anchor >= 0 {
			snap.Anchor = &geometry.Cell{Row: e.state.Row.Anchor}
		}
	case selection.ModeRange:
		if a := e.state.Range.Anchor; a != nil {
			anchor := *a
			snap.Anchor = &anchor
		}
	}
	return snap
}

// SelectedCells returns every selected cell, deduplicated, in row-major
// order per range.
func (e *Engine) SelectedCells() []geometry.Cell {
	ranges := e.state.PublicRanges(e.host.ColumnCount())
	internal := make([]geometry.Range, len(ranges))
	for i, p := range ranges {
		internal[i] = geometry.FromPublic(p)
	}
	return geometry.CellsInRanges(internal)
}

// Contains reports whether the cell at (row, col) is selected.
func (e *Engine) Contains(row, col int) bool {
	switch e.mode {
	case selection.ModeCell:
		c := e.state.Cell.Selected
		return c != nil && c.Row == row && c.Col == col
	case selection.ModeRow:
		_, ok := e.state.Row.Selected[row]
		return ok
	case selection.ModeRange:
		return geometry.AnyContains(e.state.Range.Ranges, row, col)
	}
	return false
}

// Dragging reports whether a mouse drag is in progress.
func (e *Engine) Dragging() bool {
	return e.mode == selection.ModeRange && e.state.Range.Dragging
}

// Clear empties the selection and emits a change with zero ranges.
func (e *Engine) Clear() {
	if !e.attached {
		return
	}
	e.interpreter.Clear()
}

// SetRanges replaces the selection programmatically. The anchor moves to
// the start of the last supplied range. Outside range mode the ranges are
// projected onto the mode's own shape: the last range's start cell in cell
// mode, the covered row indices in row mode.
func (e *Engine) SetRanges(ranges []geometry.PublicRange) {
	if !e.attached {
		return
	}

	switch e.mode {
	case selection.ModeCell:
		if len(ranges) == 0 {
			e.state.Cell.Selected = nil
		} else {
			from := ranges[len(ranges)-1].From
			e.state.Cell.Selected = &from
		}

	case selection.ModeRow:
		rs := e.state.Row
		rs.Selected = make(map[int]struct{})
		rs.Anchor = -1
		rs.LastSelected = -1
		for _, p := range ranges {
			for row := p.From.Row; row <= p.To.Row; row++ {
				rs.Selected[row] = struct{}{}
			}
		}
		if len(ranges) > 0 {
			last := ranges[len(ranges)-1]
			rs.Anchor = last.From.Row
			rs.LastSelected = last.To.Row
		}

	case selection.ModeRange:
		rs := e.state.Range
		rs.Ranges = make([]geometry.Range, len(ranges))
		for i, p := range ranges {
			rs.Ranges[i] = geometry.FromPublic(p)
		}
		rs.Active = len(rs.Ranges) - 1
		rs.Anchor = nil
		if len(ranges) > 0 {
			from := ranges[len(ranges)-1].From
			rs.Anchor = &from
		}
	}

	e.bus.Publish(events.ChangedEvent{
		Mode:   e.mode,
		Ranges: e.state.PublicRanges(e.host.ColumnCount()),
	})
	e.host.RequestRender()
	e.host.RequestPostRender()
}

// hostContext adapts the engine's host plus its deferral queue to the
// interpreter's context interface.
type hostContext struct {
	engine *Engine
}

func (c *hostContext) RowCount() int                { return c.engine.host.RowCount() }
func (c *hostContext) ColumnCount() int             { return c.engine.host.ColumnCount() }
func (c *hostContext) IsUtilityColumn(col int) bool { return c.engine.host.IsUtilityColumn(col) }
func (c *hostContext) FocusRow() int                { return c.engine.host.FocusRow() }
func (c *hostContext) FocusCol() int                { return c.engine.host.FocusCol() }
func (c *hostContext) RequestRender()               { c.engine.host.RequestRender() }
func (c *hostContext) RequestPostRender()           { c.engine.host.RequestPostRender() }

func (c *hostContext) Defer(fn func()) {
	c.engine.deferred = append(c.engine.deferred, fn)
}

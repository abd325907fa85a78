package input

// Modifiers carries the modifier keys active during an input event. Ctrl
// also stands in for Cmd on macOS hosts.
type Modifiers struct {
	Shift bool
	Ctrl  bool
}

// Key identifies the keys the interpreter cares about. Anything else maps
// to KeyNone and is ignored.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyTab
	KeyEscape
	KeyA
)

// KeyEvent is a normalized keyboard event.
type KeyEvent struct {
	Key  Key
	Mods Modifiers
}

// IsNavigation reports whether the key moves the host's focus cursor.
func (k Key) IsNavigation() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd, KeyPageUp, KeyPageDown, KeyTab:
		return true
	}
	return false
}

// Context provides read-only access to the host collaborator plus the two
// scheduling requests the interpreter needs. The host owns rows, columns,
// and the focus cursor; the interpreter never writes any of them.
type Context interface {
	RowCount() int
	ColumnCount() int
	IsUtilityColumn(col int) bool

	// FocusRow and FocusCol report the host's authoritative cursor. They
	// are only final after the host's own key handling has run, which is
	// why keyboard reconciliation goes through Defer.
	FocusRow() int
	FocusCol() int

	RequestRender()
	// RequestPostRender asks for a post-render pass even when the host
	// would otherwise skip one.
	RequestPostRender()

	// Defer schedules fn to run after the current input dispatch completes
	// but before the next render.
	Defer(fn func())
}

// modeHandler interprets click and keyboard input for one selection mode.
type modeHandler interface {
	Click(row, col int, mods Modifiers) bool
	Key(ev KeyEvent) bool
}

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	gridinput "gridsel/internal/grid/input"
)

// translateKey normalizes a Bubble Tea key message into a selection key
// event. Keys the selection engine has no interest in return ok=false.
func translateKey(msg tea.KeyMsg) (gridinput.KeyEvent, bool) {
	parts := strings.Split(msg.String(), "+")
	base := parts[len(parts)-1]

	var mods gridinput.Modifiers
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "shift":
			mods.Shift = true
		case "ctrl":
			mods.Ctrl = true
		}
	}

	var key gridinput.Key
	switch base {
	case "up":
		key = gridinput.KeyUp
	case "down":
		key = gridinput.KeyDown
	case "left":
		key = gridinput.KeyLeft
	case "right":
		key = gridinput.KeyRight
	case "home":
		key = gridinput.KeyHome
	case "end":
		key = gridinput.KeyEnd
	case "pgup":
		key = gridinput.KeyPageUp
	case "pgdown":
		key = gridinput.KeyPageDown
	case "tab":
		key = gridinput.KeyTab
	case "esc":
		key = gridinput.KeyEscape
	case "a":
		if !mods.Ctrl {
			return gridinput.KeyEvent{}, false
		}
		key = gridinput.KeyA
	default:
		return gridinput.KeyEvent{}, false
	}

	return gridinput.KeyEvent{Key: key, Mods: mods}, true
}

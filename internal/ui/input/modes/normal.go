package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"gridsel/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	}

	switch msg.String() {
	// Shift and ctrl variants still move focus; selection handling for
	// the modifiers happens upstream of this mode.
	case "shift+up", "ctrl+shift+up":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "shift+down", "ctrl+shift+down":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "shift+left", "ctrl+shift+left":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "shift+right", "ctrl+shift+right":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "shift+home":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "shift+end":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "shift+pgup":
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case "shift+pgdown":
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true

	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "bottom"}}, true

	case "g":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "n":
		return []types.Action{types.NextMatchAction{}}, true

	case "N":
		return []types.Action{types.NextMatchAction{Reverse: true}}, true

	case "m":
		return []types.Action{types.CycleSelectionModeAction{}}, true

	case "#":
		return []types.Action{types.ToggleRowNumbersAction{}}, true

	case "v":
		if ctx.HasSelection() {
			return []types.Action{types.ExportSelectionAction{}}, true
		}
		return nil, false

	case "r":
		return []types.Action{types.ReloadAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}

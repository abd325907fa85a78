package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gridsel/internal/ui/input/types"
)

// TextMode drives the search and goto prompts. Both share the handler's
// text input; the mode tag tells the submit path which prompt fired.
type TextMode struct {
	mode   types.Mode
	name   string
	prompt string
	input  *textinput.Model
}

func NewTextMode(mode types.Mode, name, prompt string, input *textinput.Model) *TextMode {
	return &TextMode{mode: mode, name: name, prompt: prompt, input: input}
}

func (m *TextMode) Name() string   { return m.name }
func (m *TextMode) Prompt() string { return m.prompt }

func (m *TextMode) Enter(ctx types.Context) []types.Action {
	m.input.Reset()
	m.input.Focus()
	m.input.Prompt = "" // the status line renders the prompt label
	return nil
}

func (m *TextMode) Exit(ctx types.Context) []types.Action {
	m.input.Blur()
	m.input.Reset()
	return nil
}

func (m *TextMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case tea.KeyEnter:
		return []types.Action{
			types.SubmitTextAction{Text: m.input.Value(), Mode: m.mode},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	default:
		// Everything else belongs to the text input itself.
		return nil, false
	}
}

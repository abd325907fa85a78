package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end", "top", "bottom"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type NextMatchAction struct {
	Reverse bool
}

func (a NextMatchAction) Type() string { return "next_match" }

// Command actions
type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ExportSelectionAction struct{}

func (a ExportSelectionAction) Type() string { return "export_selection" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ToggleRowNumbersAction struct{}

func (a ToggleRowNumbersAction) Type() string { return "toggle_row_numbers" }

type CycleSelectionModeAction struct{}

func (a CycleSelectionModeAction) Type() string { return "cycle_selection_mode" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }

package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsel/internal/config"
	"gridsel/internal/dataset"
	"gridsel/internal/eventbus"
	"gridsel/internal/grid/selection"
)

func newTestModel(t *testing.T, mode string) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Mode = mode
	m := NewModel(eventbus.New(), cfg)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(EventMsg{Event: eventbus.RowsLoadedEvent{Dataset: dataset.SampleDataset(20)}})
	require.NotNil(t, m.dataset)
	return m
}

// cellXY maps a logical cell to the screen coordinates of its left edge.
func cellXY(m *Model, row, col int) (int, int) {
	return m.layout.ColumnX(col), gridTop + row - m.navigator.Offset()
}

func clickCell(m *Model, row, col int, shift, ctrl bool) {
	x, y := cellXY(m, row, col)
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Shift: shift, Ctrl: ctrl})
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, Shift: shift, Ctrl: ctrl})
}

func pressKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestClickSelectsCell(t *testing.T) {
	m := newTestModel(t, "range")

	clickCell(m, 2, 1, false, false)

	assert.True(t, m.engine.Contains(2, 1))
	assert.Len(t, m.engine.Selection().Ranges, 1)
	assert.Equal(t, 2, m.navigator.FocusRow())
	assert.Equal(t, 1, m.navigator.FocusCol())
}

func TestClickOnExpanderColumnIsIgnored(t *testing.T) {
	m := newTestModel(t, "range")
	require.True(t, m.isUtilityCell(0))

	clickCell(m, 2, 0, false, false)

	assert.Empty(t, m.engine.Selection().Ranges)
}

func TestDragSweepsRange(t *testing.T) {
	m := newTestModel(t, "range")

	x1, y1 := cellXY(m, 2, 1)
	x2, y2 := cellXY(m, 4, 2)
	m.Update(tea.MouseMsg{X: x1, Y: y1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.engine.Dragging())
	m.Update(tea.MouseMsg{X: x2, Y: y2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: x2, Y: y2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.False(t, m.engine.Dragging())
	// Release after a drag must not collapse the swept range to a click.
	assert.Len(t, m.engine.Selection().Ranges, 1)
	assert.Len(t, m.engine.SelectedCells(), 6)
	assert.True(t, m.engine.Contains(4, 2))
}

func TestShiftArrowExtendsRange(t *testing.T) {
	m := newTestModel(t, "range")

	clickCell(m, 2, 1, false, false)
	pressKey(m, tea.KeyMsg{Type: tea.KeyShiftRight})
	pressKey(m, tea.KeyMsg{Type: tea.KeyShiftDown})

	assert.Equal(t, 3, m.navigator.FocusRow())
	assert.Equal(t, 2, m.navigator.FocusCol())
	assert.Len(t, m.engine.SelectedCells(), 4)
}

func TestPlainArrowCollapsesRangeToFocus(t *testing.T) {
	m := newTestModel(t, "range")

	clickCell(m, 2, 1, false, false)
	pressKey(m, tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, 3, m.navigator.FocusRow())
	assert.Empty(t, m.engine.Selection().Ranges)

	// The collapsed anchor follows focus, so a later shift extends from it.
	pressKey(m, tea.KeyMsg{Type: tea.KeyShiftDown})
	assert.Len(t, m.engine.SelectedCells(), 2)
}

func TestEscapeClearsSelection(t *testing.T) {
	m := newTestModel(t, "range")

	clickCell(m, 2, 1, false, false)
	require.NotEmpty(t, m.engine.Selection().Ranges)

	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, m.engine.Selection().Ranges)
}

func TestCtrlASelectsAll(t *testing.T) {
	m := newTestModel(t, "range")

	pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlA})

	cells := m.engine.SelectedCells()
	// 20 rows, 6 grid columns including the expander.
	assert.Len(t, cells, 20*6)
}

func TestRowModeClickSelectsRow(t *testing.T) {
	m := newTestModel(t, "row")

	clickCell(m, 3, 1, false, false)
	assert.True(t, m.engine.Contains(3, 0))
	assert.Len(t, m.engine.Selection().Ranges, 1)

	clickCell(m, 5, 1, false, true)
	assert.Len(t, m.engine.Selection().Ranges, 2)
}

func TestCycleSelectionMode(t *testing.T) {
	m := newTestModel(t, "cell")

	pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	assert.Equal(t, selection.ModeRow, m.engine.Mode())

	pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	assert.Equal(t, selection.ModeRange, m.engine.Mode())

	pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	assert.Equal(t, selection.ModeCell, m.engine.Mode())
}

func TestSearchJumpsToMatch(t *testing.T) {
	m := newTestModel(t, "range")

	pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.True(t, m.inputHandler.InTextMode())

	pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("rivet")})
	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.inputHandler.InTextMode())
	// "Rivet #1" is row 7 of the sample inventory.
	assert.Equal(t, 7, m.navigator.FocusRow())
	assert.NotEmpty(t, m.searchHits)
}

func TestGotoPosition(t *testing.T) {
	m := newTestModel(t, "range")

	pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	require.True(t, m.inputHandler.InTextMode())
	pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12,2")})
	pressKey(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 11, m.navigator.FocusRow())
	assert.Equal(t, 2, m.navigator.FocusCol(), "column is one-based over data columns")
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, "range")

	cmd := pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestViewRendersFrame(t *testing.T) {
	m := newTestModel(t, "range")

	out := m.View()
	assert.Contains(t, out, "sample inventory")
	assert.Contains(t, out, "Item")
	assert.Contains(t, out, "Hex bolt #1")
}

func TestStatusLineReflectsSelectionEvents(t *testing.T) {
	m := newTestModel(t, "range")

	clickCell(m, 2, 1, false, false)

	require.NotNil(t, m.lastChange)
	assert.Equal(t, selection.ModeRange, m.lastChange.Mode)
	assert.Len(t, m.lastChange.Ranges, 1)
	assert.Equal(t, "1 ranges, 1 cells", m.selectionSummary())

	pressKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.selectionSummary())
}

func TestDatasetErrorShowsStatus(t *testing.T) {
	m := newTestModel(t, "range")

	m.Update(EventMsg{Event: eventbus.DatasetErrorEvent{Message: "table missing"}})

	assert.True(t, m.statusErr)
	assert.Contains(t, m.View(), "table missing")
}

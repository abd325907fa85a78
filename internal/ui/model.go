package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"gridsel/internal/config"
	"gridsel/internal/domain"
	"gridsel/internal/eventbus"
	"gridsel/internal/grid"
	"gridsel/internal/grid/events"
	"gridsel/internal/grid/geometry"
	gridinput "gridsel/internal/grid/input"
	"gridsel/internal/grid/selection"
	"gridsel/internal/ui/input"
	"gridsel/internal/ui/input/types"
	"gridsel/internal/ui/logic"
	"gridsel/internal/ui/views"
)

// Screen rows above the first data row: title, blank, header.
const gridTop = 3

// Screen rows that are not grid body: chrome above plus status/help below.
const chromeHeight = 7

// Model is the Bubble Tea model for the grid demo. It owns focus and
// scrolling and hosts the selection engine, which owns all selection state.
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	dataset *domain.Dataset
	columns []domain.Column

	engine    *grid.Engine
	navigator *logic.Navigator
	surface   *views.FrameSurface
	layout    *views.Layout
	renderer  *views.Renderer

	inputHandler *input.Handler
	pagerOps     *PagerOps
	help         help.Model
	keys         keyMap

	// lastChange mirrors the engine's most recent selection event and
	// backs the status line.
	lastChange *events.ChangedEvent

	width          int
	height         int
	showHelp       bool
	showRowNumbers bool

	status    string
	statusErr bool

	searchHits []int
	searchPos  int

	// Mouse drag bookkeeping. A press that never moves is a click.
	pressed   bool
	pressCell geometry.Cell
	dragMoved bool

	quitting bool
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	m := &Model{
		bus:            bus,
		config:         cfg,
		navigator:      logic.NewNavigator(),
		surface:        views.NewFrameSurface(),
		renderer:       views.NewRenderer(),
		inputHandler:   input.New(),
		pagerOps:       NewPagerOps(),
		help:           help.New(),
		keys:           newKeyMap(),
		showRowNumbers: cfg.UI.ShowRowNumbers,
	}
	mode := selection.Mode(cfg.Mode)
	switch mode {
	case selection.ModeCell, selection.ModeRow, selection.ModeRange:
	default:
		mode = selection.ModeRange
	}
	m.engine = m.newEngine(mode)
	return m
}

// newEngine builds a selection engine whose change events feed the
// status line.
func (m *Model) newEngine(mode selection.Mode) *grid.Engine {
	dispatcher := events.NewDispatcher()
	dispatcher.Subscribe(events.EventType(events.ChangedEvent{}), func(e interface{}) {
		if ce, ok := e.(events.ChangedEvent); ok {
			m.lastChange = &ce
		}
	})
	return grid.New(mode, m, grid.WithBus(dispatcher))
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pagerOps.SetProgram(p)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		vh := msg.Height - chromeHeight
		if vh < 1 {
			vh = 1
		}
		m.navigator.SetViewportHeight(vh)
		m.reconcile()
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		m.reconcile()
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("export failed: %v", msg.err))
		} else {
			m.status = "export closed"
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		m.reconcile()
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text modes own the keyboard outright.
	if m.inputHandler.InTextMode() {
		actions, inputCmd := m.inputHandler.HandleKey(msg, m)
		cmd := m.applyActions(actions)
		m.reconcile()
		return m, tea.Batch(inputCmd, cmd)
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	m.status = ""
	m.statusErr = false

	// The selection engine sees the key first. A true return means it
	// consumed the event and focus must not move.
	if ev, ok := translateKey(msg); ok {
		if m.engine.KeyDown(ev) {
			m.reconcile()
			return m, nil
		}
	}

	actions, inputCmd := m.inputHandler.HandleKey(msg, m)
	cmd := m.applyActions(actions)

	// Deferred selection work runs after focus has settled for this key.
	m.engine.FlushDeferred()
	m.reconcile()
	return m, tea.Batch(inputCmd, cmd)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.navigator.Scroll(-1)
		return
	case tea.MouseButtonWheelDown:
		m.navigator.Scroll(1)
		return
	}

	mods := gridinput.Modifiers{Shift: msg.Shift, Ctrl: msg.Ctrl}
	cell, hit := m.hitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !hit {
			return
		}
		m.pressed = true
		m.pressCell = cell
		m.dragMoved = false
		if !m.isUtilityCell(cell.Col) {
			m.navigator.SetFocus(cell.Row, cell.Col)
		}
		m.engine.CellMouseDown(cell.Row, cell.Col, mods)
		m.engine.FlushDeferred()

	case tea.MouseActionMotion:
		if !m.pressed || !hit {
			return
		}
		if cell != m.pressCell {
			m.dragMoved = true
		}
		m.engine.CellMouseMove(cell.Row, cell.Col)

	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		m.engine.CellMouseUp()
		// A drag swallows the click that would otherwise fire on release.
		if !m.dragMoved && hit {
			m.engine.CellClick(cell.Row, cell.Col, mods)
		}
		m.engine.FlushDeferred()
	}
}

func (m *Model) handleEvent(event domain.DomainEvent) {
	switch e := event.(type) {
	case eventbus.RowsLoadedEvent:
		ds := e.Dataset
		m.setDataset(&ds)
		m.status = fmt.Sprintf("loaded %d rows from %s", len(e.Dataset.Rows), e.Dataset.Name)
		m.statusErr = false

	case eventbus.DatasetErrorEvent:
		m.setError(e.Message)
	}
}

func (m *Model) setDataset(ds *domain.Dataset) {
	m.dataset = ds
	m.columns = m.columns[:0]
	if m.config.UI.ExpanderColumn {
		m.columns = append(m.columns, domain.Column{Kind: domain.ColumnUtility, Width: 2})
	}
	m.columns = append(m.columns, ds.Columns...)
	m.layout = views.NewLayout(m.columns, ds.Rows, m.showRowNumbers)
	m.navigator.SetDimensions(len(ds.Rows), len(m.columns))
	m.searchHits = nil
}

func (m *Model) applyActions(actions []types.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		switch a := action.(type) {
		case types.NavigateAction:
			m.navigator.Move(a.Direction)

		case types.UpdateTextAction:
			if m.inputHandler.CurrentMode() == types.ModeSearch {
				m.liveSearch(a.Text)
			}

		case types.SubmitTextAction:
			switch a.Mode {
			case types.ModeSearch:
				m.commitSearch(a.Text)
			case types.ModeGoto:
				m.gotoPosition(a.Text)
			}

		case types.CancelTextAction:
			m.searchHits = nil
			m.status = ""

		case types.NextMatchAction:
			m.nextMatch(a.Reverse)

		case types.ReloadAction:
			m.bus.Publish(eventbus.ReloadRequestedEvent{})
			m.status = "reloading..."
			m.statusErr = false

		case types.ExportSelectionAction:
			cmds = append(cmds, m.exportSelection())

		case types.ToggleHelpAction:
			m.showHelp = !m.showHelp

		case types.ToggleRowNumbersAction:
			m.showRowNumbers = !m.showRowNumbers
			if m.dataset != nil {
				m.layout = views.NewLayout(m.columns, m.dataset.Rows, m.showRowNumbers)
			}

		case types.CycleSelectionModeAction:
			m.cycleSelectionMode()

		case types.QuitAction:
			m.quitting = true
			cmds = append(cmds, tea.Quit)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) cycleSelectionMode() {
	var next selection.Mode
	switch m.engine.Mode() {
	case selection.ModeCell:
		next = selection.ModeRow
	case selection.ModeRow:
		next = selection.ModeRange
	default:
		next = selection.ModeCell
	}
	m.engine.Detach()
	m.engine = m.newEngine(next)
	m.lastChange = nil
	m.status = fmt.Sprintf("selection mode: %s", next)
	m.statusErr = false
}

func (m *Model) liveSearch(query string) {
	if m.dataset == nil {
		return
	}
	m.searchHits = logic.SearchRows(query, m.dataset.Rows)
	m.searchPos = 0
	if len(m.searchHits) > 0 {
		m.navigator.SetFocus(m.searchHits[0], m.firstDataColumn())
	}
}

func (m *Model) commitSearch(query string) {
	m.liveSearch(query)
	if len(m.searchHits) == 0 {
		m.setError(fmt.Sprintf("no match for %q", query))
		return
	}
	m.status = fmt.Sprintf("%d rows match %q", len(m.searchHits), query)
	m.statusErr = false
}

// nextMatch cycles focus through the current search hits.
func (m *Model) nextMatch(reverse bool) {
	if len(m.searchHits) == 0 {
		m.status = "no active search"
		m.statusErr = false
		return
	}
	if reverse {
		m.searchPos = (m.searchPos - 1 + len(m.searchHits)) % len(m.searchHits)
	} else {
		m.searchPos = (m.searchPos + 1) % len(m.searchHits)
	}
	m.navigator.SetFocus(m.searchHits[m.searchPos], m.firstDataColumn())
	m.status = fmt.Sprintf("match %d of %d", m.searchPos+1, len(m.searchHits))
	m.statusErr = false
}

// gotoPosition accepts "row" or "row,col", both one-based.
func (m *Model) gotoPosition(text string) {
	parts := strings.SplitN(strings.TrimSpace(text), ",", 2)
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		m.setError(fmt.Sprintf("bad position %q", text))
		return
	}
	col := m.navigator.FocusCol()
	if len(parts) == 2 {
		c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			m.setError(fmt.Sprintf("bad position %q", text))
			return
		}
		col = c - 1 + m.firstDataColumn()
	}
	m.navigator.SetFocus(row-1, col)
}

func (m *Model) exportSelection() tea.Cmd {
	content := m.selectionTSV()
	if content == "" {
		m.status = "nothing selected"
		return nil
	}
	return func() tea.Msg {
		return pagerClosedMsg{err: m.pagerOps.ShowInPager(content)}
	}
}

// selectionTSV renders the selected cells row by row, tab separated.
func (m *Model) selectionTSV() string {
	cells := m.engine.SelectedCells()
	if len(cells) == 0 || m.dataset == nil {
		return ""
	}
	byRow := make(map[int][]geometry.Cell)
	var order []int
	for _, c := range cells {
		if _, seen := byRow[c.Row]; !seen {
			order = append(order, c.Row)
		}
		byRow[c.Row] = append(byRow[c.Row], c)
	}
	var b strings.Builder
	for _, row := range order {
		values := make([]string, 0, len(byRow[row]))
		for _, c := range byRow[row] {
			values = append(values, m.cellValue(c.Row, c.Col))
		}
		b.WriteString(strings.Join(values, "\t"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) cellValue(row, col int) string {
	if m.dataset == nil || row < 0 || row >= len(m.dataset.Rows) {
		return ""
	}
	if col < 0 || col >= len(m.columns) || m.columns[col].IsUtility() {
		return ""
	}
	dataCol := col - m.firstDataColumn()
	cells := m.dataset.Rows[row].Cells
	if dataCol < 0 || dataCol >= len(cells) {
		return ""
	}
	return cells[dataCol]
}

func (m *Model) firstDataColumn() int {
	for i, col := range m.columns {
		if !col.IsUtility() {
			return i
		}
	}
	return 0
}

func (m *Model) isUtilityCell(col int) bool {
	return col >= 0 && col < len(m.columns) && m.columns[col].IsUtility()
}

// hitTest maps screen coordinates to a grid cell.
func (m *Model) hitTest(x, y int) (geometry.Cell, bool) {
	if m.dataset == nil || m.layout == nil {
		return geometry.Cell{}, false
	}
	row := m.navigator.Offset() + (y - gridTop)
	if y < gridTop || row < 0 || row >= len(m.dataset.Rows) {
		return geometry.Cell{}, false
	}
	col := m.layout.ColumnAt(x)
	if col < 0 {
		return geometry.Cell{}, false
	}
	return geometry.Cell{Row: row, Col: col}, true
}

// reconcile runs the post-render selection pass over the visible window.
func (m *Model) reconcile() {
	m.surface.SetWindow(m.navigator.VisibleRows(), len(m.columns), m.isUtilityCell)
	m.engine.AfterRender(m.surface)
}

func (m *Model) setError(msg string) {
	m.status = msg
	m.statusErr = true
}

func (m *Model) selectionSummary() string {
	ce := m.lastChange
	if ce == nil || len(ce.Ranges) == 0 {
		return ""
	}
	switch ce.Mode {
	case selection.ModeCell:
		c := ce.Ranges[0].From
		return fmt.Sprintf("cell %d,%d", c.Row+1, c.Col+1)
	case selection.ModeRow:
		return fmt.Sprintf("%d rows selected", len(ce.Ranges))
	default:
		cells := 0
		for _, p := range ce.Ranges {
			cells += geometry.FromPublic(p).CellCount()
		}
		return fmt.Sprintf("%d ranges, %d cells", len(ce.Ranges), cells)
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	vs := &views.ViewState{
		SelectionMode: string(m.engine.Mode()),
		Status:        m.status,
		StatusError:   m.statusErr,
		Selection:     m.selectionSummary(),
		ShowHelp:      m.showHelp,
		Width:         m.width,
		Height:        m.height,
	}

	if m.dataset != nil {
		vs.DatasetName = m.dataset.Name
		vs.RowCount = len(m.dataset.Rows)
		vs.Grid = &views.GridState{
			Columns:        m.columns,
			Rows:           m.dataset.Rows,
			Visible:        m.navigator.VisibleRows(),
			Layout:         m.layout,
			Surface:        m.surface,
			FocusRow:       m.navigator.FocusRow(),
			FocusCol:       m.navigator.FocusCol(),
			ShowRowNumbers: m.showRowNumbers,
		}
	} else {
		vs.DatasetName = "(loading)"
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		vs.Prompt = m.inputHandler.Prompt()
		vs.InputView = ti.View()
	}

	vs.HelpView = m.help.View(m.keys)

	return m.renderer.Render(vs)
}

// Host interface for the selection engine.

func (m *Model) RowCount() int {
	if m.dataset == nil {
		return 0
	}
	return len(m.dataset.Rows)
}

func (m *Model) ColumnCount() int {
	return len(m.columns)
}

func (m *Model) IsUtilityColumn(col int) bool {
	return m.isUtilityCell(col)
}

func (m *Model) FocusRow() int { return m.navigator.FocusRow() }

func (m *Model) FocusCol() int { return m.navigator.FocusCol() }

// RequestRender is a no-op: Bubble Tea redraws after every Update.
func (m *Model) RequestRender() {}

// RequestPostRender is satisfied by the reconcile call at the end of
// every Update, so nothing extra is scheduled here.
func (m *Model) RequestPostRender() {}

// HasSelection satisfies the input handler's context.
func (m *Model) HasSelection() bool {
	return len(m.engine.Selection().Ranges) > 0
}

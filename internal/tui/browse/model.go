// Package browse is the interactive module browser.
package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-envmodules/internal/models"
	"github.com/jakoblorz/go-envmodules/internal/tui"
	"github.com/jakoblorz/go-envmodules/internal/tui/components"
	"github.com/jakoblorz/go-envmodules/internal/view"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
)

// actionDoneMsg carries the outcome of a module-manager call run off the
// UI goroutine
type actionDoneMsg struct {
	action models.Action
	report view.Report
	loaded string
}

// modulesChangedMsg reports that the modules root changed on disk
type modulesChangedMsg struct{}

// Option configures the browser
type Option func(*Model)

// WithChanges rescans the module list whenever changes delivers a value
func WithChanges(changes <-chan struct{}) Option {
	return func(m *Model) {
		m.changes = changes
	}
}

// Model is the bubbletea model for the module browser
type Model struct {
	view *view.SyncedView
	keys keyMap
	help help.Model

	// Components
	list    components.ModuleListModel
	search  textinput.Model
	loaded  viewport.Model
	spinner spinner.Model
	dialog  *components.DialogModel

	changes <-chan struct{}

	// State
	focus    focusArea
	busy     bool
	running  models.Action
	selected string
	metadata *models.MetadataResult
	width    int
	height   int
	quitting bool
}

// NewModel creates a browser over an initialized SyncedView
func NewModel(v *view.SyncedView, opts ...Option) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search modules"
	search.PlaceholderStyle = tui.DescStyle
	search.Blur()

	loaded := viewport.New(defaultWidth, 5)
	loaded.KeyMap = viewport.KeyMap{
		Up:   key.NewBinding(key.WithKeys("shift+up")),
		Down: key.NewBinding(key.WithKeys("shift+down")),
	}

	m := Model{
		view:    v,
		keys:    defaultKeyMap(),
		help:    help.New(),
		list:    components.NewModuleList(10),
		search:  search,
		loaded:  loaded,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(tui.FocusedStyle)),
		focus:   focusList,
	}
	for _, opt := range opts {
		opt(&m)
	}

	state := v.State()
	m.search.SetValue(state.Query)
	m.loaded.SetContent(state.Loaded)
	m.syncList()
	m.resize(defaultWidth, defaultHeight)

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return modulesChangedMsg{}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case actionDoneMsg:
		return m.finish(msg), nil

	case modulesChangedMsg:
		m.view.Rediscover()
		m.syncList()
		return m, waitForChange(m.changes)

	case components.PickedMsg:
		return m.pick(msg.Name), nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

		if m.dialog != nil {
			dialog, cmd := m.dialog.Update(msg)
			if dialog.IsDone() {
				m.dialog = nil
			} else {
				m.dialog = &dialog
			}
			return m, cmd
		}

		if m.focus == focusSearch {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

// updateSearch feeds keys to the search box and re-filters on change
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.view.SetQuery("")
		m.syncList()
		m.focusList()
		return m, nil
	case "enter", "tab", "down":
		m.focusList()
		return m, nil
	}

	before := m.search.Value()

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if m.search.Value() != before {
		m.view.SetQuery(m.search.Value())
		m.syncList()
	}
	return m, cmd
}

// updateList handles navigation and actions while the list has focus
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.list.Blur()
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Load):
		return m.run(models.ActionLoad)
	case key.Matches(msg, m.keys.Unload):
		return m.run(models.ActionUnload)
	case key.Matches(msg, m.keys.Restore):
		return m.run(models.ActionRestore)
	case key.Matches(msg, m.keys.Status):
		return m.run(models.ActionStatus)
	case key.Matches(msg, m.keys.Rescan):
		m.view.Rediscover()
		m.syncList()
		return m.run(models.ActionList)
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.loaded, cmd = m.loaded.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) focusList() {
	m.search.Blur()
	m.list.Focus()
	m.focus = focusList
}

// pick selects name and loads its metadata
func (m Model) pick(name string) Model {
	if err := m.view.Select(name); err != nil {
		return m
	}
	m.syncList()
	return m
}

// run starts action in the background. Actions that need a module and
// have none selected are answered immediately without a tool call.
func (m Model) run(action models.Action) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	if action.RequiresModule() {
		if _, ok := m.view.Selected(); !ok {
			return m.finish(actionDoneMsg{
				action: action,
				report: m.view.Perform(action),
				loaded: m.view.Loaded(),
			}), nil
		}
	}

	m.busy = true
	m.running = action

	v := m.view
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		report := v.Perform(action)
		return actionDoneMsg{action: action, report: report, loaded: v.Loaded()}
	})
}

// finish applies a completed action: the loaded panel always takes the
// latest text and every report except a plain refresh opens a dialog
func (m Model) finish(msg actionDoneMsg) Model {
	m.busy = false
	m.running = ""
	m.loaded.SetContent(msg.loaded)

	if msg.action == models.ActionList && msg.report.Kind == view.ReportInfo {
		return m
	}

	kind := components.DialogInfo
	if msg.report.Kind == view.ReportWarning {
		kind = components.DialogWarning
	}

	dialog := components.NewDialog(kind, msg.report.Title, msg.report.Text, m.dialogWidth(), m.dialogHeight())
	m.dialog = &dialog
	return m
}

// syncList copies visible modules and selection from the view and reloads
// metadata when the selection changed
func (m *Model) syncList() {
	state := m.view.State()
	m.list.SetItems(state.Visible, state.Selected)

	if state.Selected != m.selected || (m.metadata == nil && state.Selected != "") {
		m.selected = state.Selected
		m.metadata = m.view.Metadata()
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	loadedHeight := max(height/4, 3)
	listHeight := max(height-loadedHeight-14, 3)

	m.list.SetHeight(listHeight)
	m.loaded.Width = max(width-4, 10)
	m.loaded.Height = loadedHeight
	m.search.Width = max(width-6, 10)
	m.help.Width = width
}

func (m Model) dialogWidth() int {
	return max(min(m.width-8, 72), 20)
}

// dialogHeight leaves room for the dialog's border, title and help line
func (m Model) dialogHeight() int {
	return max(m.height-12, 3)
}

// Selected returns the selected module, if any
func (m Model) Selected() (string, bool) {
	return m.view.Selected()
}

// Busy reports whether a module-manager call is in flight
func (m Model) Busy() bool {
	return m.busy
}

// Dialog returns the open dialog, if any
func (m Model) Dialog() *components.DialogModel {
	return m.dialog
}

// Metadata returns the metadata shown for the selected module
func (m Model) Metadata() *models.MetadataResult {
	return m.metadata
}

func (m Model) statusLine() string {
	if m.busy {
		return fmt.Sprintf("%s Running %s…", m.spinner.View(), m.running)
	}
	return m.help.View(m.keys)
}

package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/go-envmodules/internal/tui"
)

// PickedMsg is emitted when the user picks the module under the cursor
type PickedMsg struct {
	Name string
}

// ModuleListModel is a scrollable single-select list of modules.
// Moving the cursor does not change the selection; picking does.
type ModuleListModel struct {
	items    []string
	selected string
	cursor   int
	offset   int
	height   int
	focused  bool
}

// NewModuleList creates a list showing height rows at a time
func NewModuleList(height int) ModuleListModel {
	if height < 1 {
		height = 1
	}
	return ModuleListModel{
		items:   []string{},
		height:  height,
		focused: true,
	}
}

// Init initializes the component
func (m ModuleListModel) Init() tea.Cmd {
	return nil
}

// SetItems replaces the list. The cursor follows the selected module when
// it is still listed and is clamped otherwise.
func (m *ModuleListModel) SetItems(items []string, selected string) {
	m.items = items
	m.selected = selected

	if i := m.indexOf(selected); i >= 0 {
		m.cursor = i
	} else if m.cursor >= len(items) {
		m.cursor = max(len(items)-1, 0)
	}
	m.scroll()
}

// SetSelected marks name as the selected module
func (m *ModuleListModel) SetSelected(name string) {
	m.selected = name
}

// SetHeight changes the number of visible rows
func (m *ModuleListModel) SetHeight(height int) {
	m.height = max(height, 1)
	m.scroll()
}

// Focus makes the list react to navigation keys
func (m *ModuleListModel) Focus() { m.focused = true }

// Blur stops the list from reacting to keys
func (m *ModuleListModel) Blur() { m.focused = false }

// Focused reports whether the list has focus
func (m ModuleListModel) Focused() bool { return m.focused }

// Update handles messages
func (m ModuleListModel) Update(msg tea.Msg) (ModuleListModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "pgup":
		m.cursor = max(m.cursor-m.height, 0)
	case "pgdown":
		m.cursor = max(min(m.cursor+m.height, len(m.items)-1), 0)
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(m.items)-1, 0)
	case "enter", " ":
		name, ok := m.Current()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return PickedMsg{Name: name} }
	}

	m.scroll()
	return m, nil
}

// View renders the visible window of the list
func (m ModuleListModel) View() string {
	if len(m.items) == 0 {
		return tui.SubtleStyle.Render("No modules found")
	}

	var b strings.Builder

	end := min(m.offset+m.height, len(m.items))
	for i := m.offset; i < end; i++ {
		item := m.items[i]

		cursor := " "
		if m.focused && m.cursor == i {
			cursor = tui.SelectedStyle.Render("›")
		}

		marker := tui.UncheckedStyle.Render("○")
		if item == m.selected {
			marker = tui.CheckedStyle.Render("●")
		}

		itemStyle := lipgloss.NewStyle()
		if m.cursor == i {
			itemStyle = tui.SelectedStyle
		}

		b.WriteString(fmt.Sprintf("%s %s %s", cursor, marker, itemStyle.Render(item)))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Current returns the module under the cursor
func (m ModuleListModel) Current() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return "", false
	}
	return m.items[m.cursor], true
}

// Cursor returns the cursor index
func (m ModuleListModel) Cursor() int {
	return m.cursor
}

// Len returns the number of listed modules
func (m ModuleListModel) Len() int {
	return len(m.items)
}

func (m ModuleListModel) indexOf(name string) int {
	if name == "" {
		return -1
	}
	for i, item := range m.items {
		if item == name {
			return i
		}
	}
	return -1
}

// scroll keeps the cursor inside the visible window
func (m *ModuleListModel) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	if maxOffset := max(len(m.items)-m.height, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/go-envmodules/internal/tui"
)

// DialogKind picks the dialog's title styling
type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogWarning
)

// NoOutput is shown below tool output that has no visible text
const NoOutput = "(no output)"

// DialogModel is a modal text dialog dismissed with enter or esc.
// Text taller than the dialog scrolls.
type DialogModel struct {
	kind  DialogKind
	title string
	text  string
	width int
	body  viewport.Model
	done  bool
}

// NewDialog creates a dialog. Long lines are wrapped at width and the body
// is at most height lines tall; zero means unbounded.
func NewDialog(kind DialogKind, title, text string, width, height int) DialogModel {
	content := text
	if strings.TrimSpace(text) == "" {
		content = text + tui.SubtleStyle.Render(NoOutput)
	}

	bodyWidth := 0
	if width > 0 {
		// rounded border plus horizontal padding
		bodyWidth = max(width-6, 10)
		content = lipgloss.NewStyle().Width(bodyWidth).Render(content)
	}

	lines := lipgloss.Height(content)
	bodyHeight := lines
	if height > 0 {
		bodyHeight = min(lines, height)
	}

	body := viewport.New(bodyWidth, bodyHeight)
	body.SetContent(content)

	return DialogModel{
		kind:  kind,
		title: title,
		text:  text,
		width: width,
		body:  body,
	}
}

// Init initializes the component
func (m DialogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DialogModel) Update(msg tea.Msg) (DialogModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", " ", "q", "o":
			m.done = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

// View renders the dialog
func (m DialogModel) View() string {
	if m.done {
		return ""
	}

	title := tui.TitleStyle.Render(m.title)
	if m.kind == DialogWarning {
		title = tui.WarningStyle.MarginBottom(1).Render("⚠️  " + m.title)
	}

	help := "enter ok"
	if m.Scrollable() {
		help = fmt.Sprintf("↑/↓ scroll (%d%%) • enter ok", int(m.body.ScrollPercent()*100))
	}

	style := tui.BorderStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}

	return style.Render(fmt.Sprintf("%s\n%s\n%s",
		title,
		m.body.View(),
		tui.HelpStyle.Render(help)))
}

// Scrollable reports whether the text is taller than the dialog
func (m DialogModel) Scrollable() bool {
	return m.body.TotalLineCount() > m.body.Height
}

// Title returns the dialog title
func (m DialogModel) Title() string {
	return m.title
}

// Text returns the dialog body as given
func (m DialogModel) Text() string {
	return m.text
}

// Kind returns the dialog kind
func (m DialogModel) Kind() DialogKind {
	return m.kind
}

// IsDone returns whether the user dismissed the dialog
func (m DialogModel) IsDone() bool {
	return m.done
}

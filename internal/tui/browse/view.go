package browse

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/go-envmodules/internal/render"
	"github.com/jakoblorz/go-envmodules/internal/tui"
)

// LoadedTitle heads the panel that mirrors the tool's `list` output
const LoadedTitle = "Available and Loaded Modules"

// View renders the current state
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.dialog != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.dialog.View())
	}

	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("📦 Environment Modules"))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.viewColumns())
	b.WriteString("\n")
	b.WriteString(tui.HeaderStyle.Render(LoadedTitle))
	b.WriteString("\n")
	b.WriteString(tui.PanelStyle.Render(m.loaded.View()))
	b.WriteString("\n")
	b.WriteString(m.statusLine())

	return b.String()
}

// viewColumns renders the module list next to the metadata pane
func (m Model) viewColumns() string {
	leftWidth := max(m.width/3, 20)
	rightWidth := max(m.width-leftWidth-6, 20)

	left := tui.PanelStyle.Width(leftWidth).Render(m.list.View())
	right := tui.PanelStyle.Width(rightWidth).Height(lipgloss.Height(left) - 2).Render(m.viewMetadata())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) viewMetadata() string {
	title := "Metadata"
	if m.selected != "" {
		title = m.selected
	}

	return tui.SelectedStyle.Render(title) + "\n\n" + render.Metadata(m.metadata)
}

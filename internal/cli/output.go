package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jakoblorz/go-envmodules/internal/tui"
	"github.com/jakoblorz/go-envmodules/internal/tui/browse"
	"github.com/jakoblorz/go-envmodules/internal/tui/components"
	"github.com/jakoblorz/go-envmodules/internal/view"
)

// printReport writes an action report the way the browser's dialog shows it
func printReport(w io.Writer, report view.Report) {
	if report.Kind == view.ReportWarning {
		_, _ = fmt.Fprintf(w, "⚠️  %s: %s\n", report.Title, report.Text)
		return
	}

	_, _ = fmt.Fprintln(w, tui.TitleStyle.Render(report.Title))
	writeText(w, report.Text)
}

// printLoaded writes the loaded-modules text under its panel header
func printLoaded(w io.Writer, loaded string) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, tui.HeaderStyle.Render(browse.LoadedTitle))
	writeText(w, loaded)
}

// writeText writes tool output as received. Output without visible text is
// followed by a placeholder line.
func writeText(w io.Writer, text string) {
	_, _ = io.WriteString(w, text)
	if text != "" && !strings.HasSuffix(text, "\n") {
		_, _ = fmt.Fprintln(w)
	}
	if strings.TrimSpace(text) == "" {
		_, _ = fmt.Fprintln(w, tui.SubtleStyle.Render(components.NoOutput))
	}
}

package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/whichperiod/whichperiod/pkg/match"
)

const dateLayout = "2006-01-02"

// Init applies the color mode from app settings. "auto" enables color
// only when stdout is a terminal.
func Init(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
		pterm.EnableColor()
	case "auto":
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return
		}
		fallthrough
	default:
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	}
}

// RenderMatch renders a matched period: the key, its comment when
// present, and the window that contained the query date.
func RenderMatch(m *match.Match) string {
	var b strings.Builder
	b.WriteString(PeriodStyle.Render(m.Key))
	if m.Comment != "" {
		b.WriteString(" " + MutedStyle.Render("("+m.Comment+")"))
	}
	b.WriteString(" " + MutedStyle.Render(m.Window.String()))
	return b.String()
}

// RenderFallback renders the configured fallback period name used
// when no rule matches.
func RenderFallback(name string) string {
	return MutedStyle.Render(name)
}

// WindowRow is one line of the rule listing table.
type WindowRow struct {
	Key     string
	Date    string
	Window  string
	Comment string

	// Err is the per-year resolution failure, if any; shown inline
	// instead of a window.
	Err error
}

// RenderWindowTable renders the merged rule list with each rule's
// resolved window for one year.
func RenderWindowTable(year int, rows []WindowRow) (string, error) {
	data := pterm.TableData{{"PERIOD", "DATE", fmt.Sprintf("WINDOW %d", year), "COMMENT"}}
	for _, row := range rows {
		window := row.Window
		if row.Err != nil {
			window = ErrorStyle.Render(row.Err.Error())
		}
		data = append(data, []string{row.Key, row.Date, window, row.Comment})
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithData(data).
		Srender()
}

// FormatWindow formats an inclusive date window for table display.
func FormatWindow(w match.Window) string {
	return w.Start.Format(dateLayout) + " .. " + w.End.Format(dateLayout)
}

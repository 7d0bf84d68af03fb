package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles derived from CurrentTheme. It is rebuilt on every
// frame so a theme switch takes effect immediately.
type palette struct {
	title   lipgloss.Style
	subtle  lipgloss.Style
	text    lipgloss.Style
	compare lipgloss.Style
	swap    lipgloss.Style
	done    lipgloss.Style
	mark    lipgloss.Style
	active  lipgloss.Style
	warning lipgloss.Style
	panel   lipgloss.Style
	code    lipgloss.Style
	codeHi  lipgloss.Style
	message lipgloss.Style
	keyHint lipgloss.Style
	keyName lipgloss.Style
}

func styles() palette {
	t := CurrentTheme
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	return palette{
		title:   fg(t.Primary).Bold(true),
		subtle:  fg(t.Muted),
		text:    fg(t.Text),
		compare: fg(t.Compare).Bold(true),
		swap:    fg(t.Swap).Bold(true),
		done:    fg(t.Done),
		mark:    fg(t.Mark).Bold(true),
		active:  fg(t.Accent).Bold(true).Reverse(true),
		warning: fg(t.Warning).Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		code:    fg(t.Muted),
		codeHi:  fg(t.Accent).Bold(true),
		message: fg(t.Text).Italic(true).MarginTop(1),
		keyHint: fg(t.Muted).Italic(true),
		keyName: fg(t.Primary).Bold(true),
	}
}

// ProgressBar renders the cursor position within a sequence.
func ProgressBar(cursor, total, width int) string {
	if width <= 0 {
		return ""
	}
	filled := width
	if total > 1 {
		filled = cursor * width / (total - 1)
	}
	filled = max(0, min(filled, width))
	p := styles()
	return p.done.Render(strings.Repeat("█", filled)) + p.subtle.Render(strings.Repeat("░", width-filled))
}

func Separator(width int) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return styles().subtle.Render(left + " ◆ " + right)
}

func keyHelp(pairs ...string) string {
	p := styles()
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, p.keyName.Render(pairs[i])+p.keyHint.Render(" "+pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

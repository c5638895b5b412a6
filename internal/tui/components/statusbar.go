package components

import (
	"github.com/charmbracelet/lipgloss"

	"jangbogo/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// a transient notice (warning or confirmation) on the right.
func RenderStatusBar(width int, hints, notice string, noticeIsWarning bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	noticeStyle := lipgloss.NewStyle().Foreground(t.Green)
	if noticeIsWarning {
		noticeStyle = lipgloss.NewStyle().Foreground(t.Orange)
	}

	left := " " + hints
	right := ""
	if notice != "" {
		right = noticeStyle.Render(notice) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}

// Package components provides reusable TUI widgets for the jangbogo screens.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jangbogo/internal/tui/theme"
)

// Steps are the three stages of the shopping flow, in order.
var Steps = []string{"1. 미션 선택", "2. 쇼핑", "3. 결과 제출"}

// RenderStepBar renders the flow progress bar with the active step
// highlighted. Unlike a tab bar, steps are not clickable shortcuts; the
// flow itself decides which step is active.
func RenderStepBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	doneStyle := lipgloss.NewStyle().
		Foreground(t.Accent)

	pendingStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	sepStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	parts := make([]string, 0, len(Steps))
	for i, step := range Steps {
		switch {
		case i == activeIdx:
			parts = append(parts, activeStyle.Render("● "+step))
		case i < activeIdx:
			parts = append(parts, doneStyle.Render("✓ "+step))
		default:
			parts = append(parts, pendingStyle.Render("○ "+step))
		}
	}

	bar := " " + strings.Join(parts, sepStyle.Render("  ─  "))

	rowStyle := lipgloss.NewStyle().Width(width)
	return rowStyle.Render(bar)
}

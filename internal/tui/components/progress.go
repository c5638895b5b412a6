package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"jangbogo/internal/tui/theme"
)

// BudgetBar renders the spent-vs-budget bar for the shop screen. The fill
// color shifts as spending approaches the budget and turns red past it.
// spent may exceed budget; the bar clamps but the color does not lie.
func BudgetBar(spent, budget int64, width int) string {
	t := theme.Active

	pct := 0.0
	if budget > 0 {
		pct = float64(spent) / float64(budget)
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barColor lipgloss.Color
	switch {
	case pct > 1.0:
		barColor = t.Red
	case pct >= 0.9:
		barColor = t.Orange
	case pct >= 0.7:
		barColor = t.Yellow
	default:
		barColor = t.Green
	}

	filledStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(filledStyle.Render(strings.Repeat("█", filled)))
	b.WriteString(emptyStyle.Render(strings.Repeat("░", width-filled)))
	return b.String()
}

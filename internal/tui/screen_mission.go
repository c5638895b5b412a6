package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"jangbogo/internal/cli"
	"jangbogo/internal/session"
	"jangbogo/internal/tui/components"
	"jangbogo/internal/tui/theme"
)

func (a App) updateMission(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" {
		return a, tea.Quit
	}
	return a.updateMissionForm(msg)
}

func (a App) updateMissionForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.missionForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.missionForm = f
	}

	if a.missionForm.State == huh.StateCompleted {
		pick := *a.missionPick
		if pick < 0 || pick >= len(a.missions) {
			pick = 0
		}
		a.dispatch(session.ChooseMission{Mission: a.missions[pick]})
		a.setNotice(fmt.Sprintf("선택한 미션: %s", a.missions[pick].Label), false)
		return a, nil
	}

	if a.missionForm.State == huh.StateAborted {
		return a, tea.Quit
	}

	return a, cmd
}

func (a App) viewMission(cw int) (content, hints string) {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	title := titleStyle.Render("🧾 예산 장보기 미션") + "\n" +
		labelStyle.Render("1. 미션(예산) 선택하기") + "\n\n"

	body := a.missionForm.View()

	// Live preview of the highlighted mission's budget
	pick := *a.missionPick
	if pick >= 0 && pick < len(a.missions) {
		m := a.missions[pick]
		body += "\n" + components.ContentCard("", fmt.Sprintf("%s %s",
			labelStyle.Render("예산:"),
			valueStyle.Render(cli.FormatWon(m.Budget))), cw/2)
	}

	hints = "[enter]미션 선택 완료 ➜ 쇼핑하러 가기  [?]도움말  [q]종료"
	return title + body, hints
}

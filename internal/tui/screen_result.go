package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jangbogo/internal/cli"
	"jangbogo/internal/session"
	"jangbogo/internal/submission"
	"jangbogo/internal/tui/components"
	"jangbogo/internal/tui/theme"
)

func (a App) updateReasonInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		a.editing = false
		a.reason.Blur()
		a.dispatch(session.SetReason{Text: a.reason.Value()})
		return a, nil
	}

	var cmd tea.Cmd
	a.reason, cmd = a.reason.Update(msg)
	return a, cmd
}

func (a App) updateResult(key string) (tea.Model, tea.Cmd) {
	if !a.st.HasMission() {
		switch key {
		case "b", "m", "enter":
			return a, a.dispatch(session.GoMission{})
		case "q":
			return a, tea.Quit
		}
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit

	case "e", "enter":
		a.editing = true
		return a, a.reason.Focus()

	case "b":
		a.dispatch(session.GoShop{})
		a.setNotice("", false)

	case "s":
		if strings.TrimSpace(a.st.Reason) == "" {
			a.setNotice("구매 이유를 입력해주세요.", true)
			return a, nil
		}
		path, err := submission.Export(
			a.st.Mission.Label, a.st.Budget, a.st.Cart, a.st.Reason,
			a.wrapWidth, a.outputDir,
		)
		if err != nil {
			a.setNotice(fmt.Sprintf("저장 실패: %v", err), true)
			return a, nil
		}
		a.savedPath = path
		a.setNotice("제출이 완료되었습니다!", false)
	}

	return a, nil
}

func (a App) viewResult(cw int) (content, hints string) {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	title := titleStyle.Render("📋 결과 화면") + "\n" +
		labelStyle.Render("3. 구매 결과 확인 및 이유 작성") + "\n\n"

	if !a.st.HasMission() {
		warn := components.WarningCard("먼저 미션을 선택하고 쇼핑을 완료해주세요.", cw)
		return title + warn, "[b]미션 선택 화면으로 가기  [q]종료"
	}

	header := fmt.Sprintf("%s %s    %s %s",
		labelStyle.Render("미션:"),
		lipgloss.NewStyle().Foreground(t.TextPrimary).Render(a.st.Mission.Label),
		labelStyle.Render("예산:"),
		lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render(cli.FormatWon(a.st.Budget)),
	)

	var b strings.Builder
	b.WriteString(title)
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(a.renderPurchases(cw))
	b.WriteString("\n")
	b.WriteString(a.renderReason(cw))

	if a.savedPath != "" {
		saved := lipgloss.NewStyle().Foreground(t.Green).Render(
			"결과 PNG 저장 위치: " + a.savedPath)
		b.WriteString("\n")
		b.WriteString(saved)
	}

	if a.editing {
		hints = "[esc]작성 완료"
	} else {
		hints = "[e]구매 이유 작성 [s]제출 (PNG로 출력) [b]쇼핑 화면으로 [?]도움말"
	}
	return b.String(), hints
}

func (a App) renderPurchases(cw int) string {
	t := theme.Active

	if len(a.st.Cart) == 0 {
		return components.ContentCard("🧺 내가 구매한 물품", "구매한 물품이 없습니다.", cw)
	}

	itemStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	priceStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	totalStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)

	var b strings.Builder
	for _, it := range a.st.Cart {
		fmt.Fprintf(&b, "%s %s\n",
			itemStyle.Render("- "+it.Name),
			priceStyle.Render("("+cli.FormatWon(it.Price)+")"))
	}
	fmt.Fprintf(&b, "\n%s %s\n",
		totalStyle.Render("합계:"),
		totalStyle.Render(cli.FormatWon(a.st.CartTotal())))
	b.WriteString(remainingLine(a.st))

	return components.ContentCard("🧺 내가 구매한 물품", b.String(), cw)
}

func (a App) renderReason(cw int) string {
	t := theme.Active

	if a.editing {
		return components.ContentCard("✏️ 구매 이유 작성", a.reason.View(), cw)
	}

	text := a.st.Reason
	if strings.TrimSpace(text) == "" {
		text = lipgloss.NewStyle().Foreground(t.TextDim).Render(
			"(아직 작성하지 않았습니다. e 키로 작성)")
	}
	return components.ContentCard("✏️ 구매 이유 작성", text, cw)
}

package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jangbogo/internal/catalog"
	"jangbogo/internal/cli"
	"jangbogo/internal/session"
	"jangbogo/internal/tui/components"
	"jangbogo/internal/tui/theme"
)

func (a App) updateShop(key string) (tea.Model, tea.Cmd) {
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

	case "j", "down":
		if a.cursor < len(a.products)-1 {
			a.cursor++
		}

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}

	case "g":
		a.cursor = 0

	case "G":
		if len(a.products) > 0 {
			a.cursor = len(a.products) - 1
		}

	case "enter", "a":
		if a.catalogErr != nil || len(a.products) == 0 {
			return a, nil
		}
		p := a.products[a.cursor]
		a.dispatch(session.AddToCart{Item: session.CartItem{
			Name:     p.Name,
			Price:    p.Price,
			ImageURL: p.ImageURL,
		}})
		a.setNotice(fmt.Sprintf("장바구니에 '%s'을(를) 담았습니다.", p.Name), false)

	case "b":
		cmd := a.dispatch(session.GoMission{})
		a.setNotice("", false)
		return a, cmd

	case "c":
		if len(a.st.Cart) == 0 {
			a.setNotice("장바구니에 물품을 한 개 이상 담아주세요.", true)
			return a, nil
		}
		a.dispatch(session.Checkout{})
		a.setNotice("", false)
	}

	return a, nil
}

func (a App) viewShop(cw int) (content, hints string) {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	title := titleStyle.Render("🛒 쇼핑 화면") + "\n" +
		labelStyle.Render("2. 물품 선택하기") + "\n\n"

	if !a.st.HasMission() {
		warn := components.WarningCard("먼저 미션을 선택해주세요.", cw)
		return title + warn, "[b]미션 선택 화면으로 돌아가기  [q]종료"
	}

	header := fmt.Sprintf("%s %s    %s %s",
		labelStyle.Render("현재 미션:"),
		lipgloss.NewStyle().Foreground(t.TextPrimary).Render(a.st.Mission.Label),
		labelStyle.Render("예산:"),
		lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render(cli.FormatWon(a.st.Budget)),
	)

	body := title + header + "\n\n" +
		a.renderProductList(cw) + "\n" +
		a.renderCart(cw)

	hints = "[j/k]이동 [enter]담기 [c]구매하기 ➜ 결과 화면 [b]미션 화면 [?]도움말"
	return body, hints
}

// renderProductList shows the catalog, or the relevant notice when the
// file is missing or a required column is absent.
func (a App) renderProductList(cw int) string {
	t := theme.Active

	if a.catalogErr != nil {
		if errors.Is(a.catalogErr, fs.ErrNotExist) {
			return components.WarningCard(fmt.Sprintf(
				"'%s' 파일을 찾을 수 없습니다. 앱과 같은 폴더에 넣어 주세요.", a.catalogPath), cw)
		}
		var mce *catalog.MissingColumnError
		if errors.As(a.catalogErr, &mce) {
			return components.WarningCard(fmt.Sprintf(
				"products.csv에 '%s' 또는 '%s' 열이 필요합니다. (%s)",
				mce.Korean, mce.English, mce.Label), cw)
		}
		return components.WarningCard(a.catalogErr.Error(), cw)
	}

	if len(a.products) == 0 {
		return components.ContentCard("상품 목록", "(상품이 없습니다)", cw)
	}

	selStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	priceStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	imgStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for i, p := range a.products {
		marker := "  "
		style := nameStyle
		if i == a.cursor {
			marker = "▸ "
			style = selStyle
		}

		img := p.ImageURL
		if img == "" {
			img = "(이미지 없음)"
		}

		fmt.Fprintf(&b, "%s%s  %s  %s\n",
			marker,
			style.Render(p.Name),
			priceStyle.Render("가격: "+cli.FormatWon(p.Price)),
			imgStyle.Render(img),
		)
	}

	return components.ContentCard("상품 목록", strings.TrimRight(b.String(), "\n"), cw)
}

// renderCart shows the cart summary, total, budget bar, and the remaining
// budget line, green when within budget, red when over.
func (a App) renderCart(cw int) string {
	t := theme.Active

	if len(a.st.Cart) == 0 {
		return components.ContentCard("🧺 장바구니", "장바구니가 비어 있습니다.", cw)
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

	total := a.st.CartTotal()
	fmt.Fprintf(&b, "\n%s %s\n",
		totalStyle.Render("합계:"),
		totalStyle.Render(cli.FormatWon(total)))

	barWidth := components.CardInnerWidth(cw) - 2
	if barWidth > 40 {
		barWidth = 40
	}
	b.WriteString(components.BudgetBar(total, a.st.Budget, barWidth))
	b.WriteString("\n")

	b.WriteString(remainingLine(a.st))

	return components.ContentCard("🧺 장바구니", b.String(), cw)
}

// remainingLine renders the remaining-budget verdict shared by the shop and
// result screens.
func remainingLine(st session.State) string {
	t := theme.Active
	remaining := st.Remaining()
	if remaining >= 0 {
		return lipgloss.NewStyle().Foreground(t.Green).Render(
			fmt.Sprintf("남은 예산: %s", cli.FormatWon(remaining)))
	}
	return lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render(
		fmt.Sprintf("예산을 %s 초과했습니다!", cli.FormatWon(-remaining)))
}

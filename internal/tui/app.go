// Package tui provides the interactive Bubble Tea flow for jangbogo:
// mission selection, shopping, and result submission.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"jangbogo/internal/catalog"
	"jangbogo/internal/session"
	"jangbogo/internal/tui/components"
	"jangbogo/internal/tui/theme"
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 100
	minContentHeight = 5
)

// App is the root Bubble Tea model. All flow state lives in st and changes
// only through session.Reduce; the rest is view machinery.
type App struct {
	st       session.State
	missions []session.Mission

	catalogPath string
	outputDir   string
	wrapWidth   int

	// Shop screen: catalog reloaded on every entry, never cached.
	products   []catalog.Product
	catalogErr error
	cursor     int

	// Mission screen (huh form). The pick lives behind a pointer so the
	// form keeps writing to the same cell across Bubble Tea model copies.
	missionForm *huh.Form
	missionPick *int

	// Result screen
	reason  textarea.Model
	editing bool

	// UI state
	width     int
	height    int
	showHelp  bool
	notice    string
	noticeBad bool
	savedPath string
}

// NewApp creates the TUI model.
func NewApp(missions []session.Mission, catalogPath, outputDir string, wrapWidth int) App {
	ta := textarea.New()
	ta.Placeholder = "왜 이렇게 구매했는지 이유를 적어보세요."
	ta.CharLimit = 2000
	ta.SetHeight(8)

	a := App{
		st:          session.New(),
		missions:    missions,
		catalogPath: catalogPath,
		outputDir:   outputDir,
		wrapWidth:   wrapWidth,
		reason:      ta,
		missionPick: new(int),
	}
	a.missionForm = a.newMissionForm()
	return a
}

// dispatch runs one action through the reducer and reconciles view state
// with the resulting screen. The returned command starts the mission form
// when the flow lands back on the mission screen.
func (a *App) dispatch(action session.Action) tea.Cmd {
	prev := a.st.Screen
	a.st = session.Reduce(a.st, action)

	if a.st.Screen == prev {
		return nil
	}

	switch a.st.Screen {
	case session.ScreenShop:
		// Fresh read on every entry; the cart is untouched.
		a.loadCatalog()
	case session.ScreenMission:
		a.missionForm = a.newMissionForm()
		return a.missionForm.Init()
	case session.ScreenResult:
		a.reason.SetValue(a.st.Reason)
		a.editing = false
		a.savedPath = ""
	}
	return nil
}

func (a *App) loadCatalog() {
	a.products, a.catalogErr = catalog.Load(a.catalogPath)
	if a.cursor >= len(a.products) {
		a.cursor = len(a.products) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) newMissionForm() *huh.Form {
	opts := make([]huh.Option[int], len(a.missions))
	for i, m := range a.missions {
		opts[i] = huh.NewOption(m.Label, i)
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("원하는 미션을 선택하세요.").
			Description("학생은 세 가지 미션 중 하나를 선택하여 장보기를 진행합니다.").
			Options(opts...).
			Value(a.missionPick),
	))

	if a.width > 0 {
		form = form.WithWidth(a.contentWidth())
	}
	return form
}

func (a *App) setNotice(msg string, warn bool) {
	a.notice = msg
	a.noticeBad = warn
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.missionForm.Init()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.missionForm != nil {
			a.missionForm = a.missionForm.WithWidth(a.contentWidth())
		}
		a.reason.SetWidth(components.CardInnerWidth(a.contentWidth()))
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// The justification textarea consumes everything except esc.
		if a.st.Screen == session.ScreenResult && a.editing {
			return a.updateReasonInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch a.st.Screen {
		case session.ScreenMission:
			return a.updateMission(msg)
		case session.ScreenShop:
			return a.updateShop(key)
		case session.ScreenResult:
			return a.updateResult(key)
		}
		return a, nil
	}

	// Forward unhandled messages to the mission form (cursor blinks, etc.)
	if a.st.Screen == session.ScreenMission && a.missionForm != nil {
		return a.updateMissionForm(msg)
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderStepBar(int(a.st.Screen), w)

	var content, hints string
	switch a.st.Screen {
	case session.ScreenMission:
		content, hints = a.viewMission(cw)
	case session.ScreenShop:
		content, hints = a.viewShop(cw)
	case session.ScreenResult:
		content, hints = a.viewResult(cw)
	}

	statusBar := components.RenderStatusBar(w, hints, a.notice, a.noticeBad)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf(
		"\n  터미널이 너무 좁습니다 (%d cols)\n\n  jangbogo needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	h := a.height
	if h < 5 {
		h = 5
	}
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	bindings := []struct{ key, desc string }{
		{"j/k ↑/↓", "이동"},
		{"enter/a", "장바구니에 담기 (쇼핑 화면)"},
		{"c", "구매하기 ➜ 결과 화면"},
		{"e", "구매 이유 작성 (결과 화면)"},
		{"s", "제출 (PNG로 출력)"},
		{"b", "이전 화면으로"},
		{"?", "도움말"},
		{"q", "종료"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("🧾 예산 장보기 미션"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-9s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("아무 키나 누르면 닫힙니다"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

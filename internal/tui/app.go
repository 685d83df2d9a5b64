package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// App is the top-level Bubble Tea model that routes between pages and owns
// the toast line shared by all of them.
type App struct {
	pages      map[string]Page
	activePage string
	width      int
	height     int

	toast        *ToastMsg
	toastID      int
	toastTimeout time.Duration
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(pages ...Page) *App {
	pageMap := make(map[string]Page, len(pages))
	var firstID string
	for i, p := range pages {
		pageMap[p.ID()] = p
		if i == 0 {
			firstID = p.ID()
		}
	}
	return &App{
		pages:        pageMap,
		activePage:   firstID,
		toastTimeout: defaultToastTimeout,
	}
}

// ActivePage returns the ID of the page currently shown.
func (a *App) ActivePage() string { return a.activePage }

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.activePage]; ok {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	case ToastMsg:
		a.toastID++
		a.toast = &msg
		id := a.toastID
		return a, tea.Tick(a.toastTimeout, func(_ time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		})
	case toastExpiredMsg:
		// A newer toast replaced this one; leave it up.
		if msg.id == a.toastID {
			a.toast = nil
		}
		return a, nil
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)

	if nav != nil {
		if next, exists := a.pages[nav.PageID]; exists {
			if r, ok := next.(ParamsReceiver); ok {
				r.SetParams(nav.Params)
			}
			a.activePage = nav.PageID
			return a, tea.Batch(cmd, next.Init())
		}
	}

	return a, cmd
}

func (a *App) View() string {
	p, ok := a.pages[a.activePage]
	if !ok {
		return "No active page"
	}

	status := a.renderStatusLine()
	body := p.View(a.width, max(0, a.height-lipgloss.Height(status)))
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}

// renderStatusLine renders the toast (if any) on the left and the branding
// on the right.
func (a *App) renderStatusLine() string {
	w := a.width
	if w <= 0 {
		w = 80
	}

	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	left := ""
	if a.toast != nil {
		left = renderToast(*a.toast)
	}

	right := ""
	if w >= 30 {
		right = renderBranding()
	}

	rightWidth := lipgloss.Width(right) + 1
	leftWidth := max(0, w-rightWidth)

	leftPart := baseStyle.Width(leftWidth).Align(lipgloss.Left).Render(left)
	rightPart := baseStyle.Width(rightWidth).Align(lipgloss.Right).Render(right)
	return lipgloss.JoinHorizontal(lipgloss.Top, leftPart, rightPart)
}

// renderBranding renders "logwindow" with a green to light blue gradient.
func renderBranding() string {
	colors := []string{
		"#49E209", "#3FE01C", "#35DD2F", "#2BDB42", "#21D955",
		"#17D668", "#0DD47B", "#00D0A1", "#00CAC7",
	}

	var result string
	for i, char := range "logwindow" {
		style := lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(lipgloss.Color(colors[i])).Bold(true)
		result += style.Render(string(char))
	}
	return result
}

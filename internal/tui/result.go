package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/logwindow/internal/model"
	"github.com/tinytelemetry/logwindow/internal/output"
)

// ResultPage shows the most recent conversion and its copy actions.
type ResultPage struct {
	deps     Deps
	keys     KeyMap
	help     help.Model
	viewport viewport.Model
	result   *model.Result
}

func NewResultPage(deps Deps) *ResultPage {
	return &ResultPage{
		deps:     deps.withDefaults(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		viewport: viewport.New(80, 20),
	}
}

func (p *ResultPage) ID() string { return ResultPageID }

func (p *ResultPage) Init() tea.Cmd { return nil }

// SetParams replaces the shown result. Only the latest one is kept.
func (p *ResultPage) SetParams(params interface{}) {
	if res, ok := params.(model.Result); ok {
		p.result = &res
		p.viewport.SetContent(output.Text(res))
		p.viewport.GotoTop()
	}
}

// Result returns the result on display, or nil.
func (p *ResultPage) Result() *model.Result { return p.result }

func (p *ResultPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return cmd, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Quit), key.Matches(keyMsg, p.keys.ForceQuit):
		return tea.Quit, nil
	case key.Matches(keyMsg, p.keys.Another):
		return nil, &PageNav{PageID: FormPageID}
	case p.result == nil:
		return nil, nil
	case key.Matches(keyMsg, p.keys.CopyCommand):
		return p.copy("Copied grep command", p.result.Command), nil
	case key.Matches(keyMsg, p.keys.CopyResult):
		return p.copy("Copied conversion result", p.result.HumanReadable), nil
	case key.Matches(keyMsg, p.keys.Up):
		p.viewport.LineUp(1)
		return nil, nil
	case key.Matches(keyMsg, p.keys.Down):
		p.viewport.LineDown(1)
		return nil, nil
	case key.Matches(keyMsg, p.keys.PageUp):
		p.viewport.HalfViewUp()
		return nil, nil
	case key.Matches(keyMsg, p.keys.PageDown):
		p.viewport.HalfViewDown()
		return nil, nil
	}
	return nil, nil
}

func (p *ResultPage) copy(title, text string) tea.Cmd {
	if err := p.deps.Clipboard.WriteAll(text); err != nil {
		p.deps.Logger.Warnw("clipboard write failed", "err", err)
		return showToast(ToastFailure, "Error", "Could not copy to clipboard")
	}
	return showToast(ToastSuccess, title, "")
}

func (p *ResultPage) View(width, height int) string {
	if p.result == nil {
		return "No conversion yet"
	}

	helpLine := p.help.View(resultHelp{p.keys})
	if width > 0 && height > 0 {
		// Outer border and padding take 4 columns and 2 rows each side.
		p.viewport.Width = max(20, width-8)
		p.viewport.Height = max(3, height-lipgloss.Height(helpLine)-6)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, p.viewport.View(), "", helpLine)
	panel := panelStyle.Render(content)
	if width <= 0 || height <= 0 {
		return panel
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultToastTimeout = 4 * time.Second

// ToastStyle classifies a toast.
type ToastStyle int

const (
	ToastSuccess ToastStyle = iota
	ToastFailure
	ToastWarning
)

// ToastMsg asks the App to show a transient notice in the status line.
type ToastMsg struct {
	Style   ToastStyle
	Title   string
	Message string
}

// toastExpiredMsg clears the toast with the given id.
type toastExpiredMsg struct {
	id int
}

// showToast returns a command that emits a ToastMsg.
func showToast(style ToastStyle, title, message string) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Style: style, Title: title, Message: message}
	}
}

func renderToast(t ToastMsg) string {
	var icon string
	var color lipgloss.Color
	switch t.Style {
	case ToastFailure:
		icon, color = "✗", ColorRed
	case ToastWarning:
		icon, color = "!", ColorOrange
	default:
		icon, color = "✓", ColorGreen
	}

	iconStyle := lipgloss.NewStyle().Background(ColorNavy).Foreground(color).Bold(true)
	headStyle := lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorWhite).Bold(true)
	msgStyle := lipgloss.NewStyle().Background(ColorNavy).Foreground(ColorGray)

	out := iconStyle.Render(" "+icon+" ") + headStyle.Render(t.Title)
	if t.Message != "" {
		out += msgStyle.Render(" · " + t.Message)
	}
	return out
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/logwindow/internal/clipboard"
)

func newTestApp(cb clipboard.Writer) (*App, *FormPage, *ResultPage) {
	deps := testDeps(cb)
	form := NewFormPage(deps)
	result := NewResultPage(deps)
	return NewApp(form, result), form, result
}

func TestApp_SubmitNavigatesToResult(t *testing.T) {
	t.Parallel()

	app, form, result := newTestApp(&clipboard.Memory{})
	if app.ActivePage() != FormPageID {
		t.Fatalf("active page = %q, want form", app.ActivePage())
	}

	form.timeInput.SetValue("6:30am")
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if app.ActivePage() != ResultPageID {
		t.Fatalf("active page = %q, want result", app.ActivePage())
	}
	if result.Result() == nil || result.Result().UTCISO8601 != "2024-01-15T14:30:00Z" {
		t.Errorf("result page got %+v", result.Result())
	}

	app.Update(runes("n"))
	if app.ActivePage() != FormPageID {
		t.Errorf("active page = %q, want form after convert another", app.ActivePage())
	}
	if form.timeInput.Value() != "6:30am" {
		t.Errorf("form lost previous input: %q", form.timeInput.Value())
	}
}

func TestApp_ToastLifecycle(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp(&clipboard.Memory{})
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 30})

	_, cmd := app.Update(ToastMsg{Style: ToastSuccess, Title: "Converted to UTC", Message: "Result copied to clipboard"})
	if cmd == nil {
		t.Fatal("expected expiry tick")
	}
	if !strings.Contains(app.View(), "Result copied to clipboard") {
		t.Error("toast not rendered")
	}

	firstID := app.toastID
	app.Update(ToastMsg{Style: ToastFailure, Title: "Error", Message: "second"})

	// The first toast's expiry must not clear the newer one.
	app.Update(toastExpiredMsg{id: firstID})
	if app.toast == nil || app.toast.Message != "second" {
		t.Fatalf("toast = %+v, want second", app.toast)
	}

	app.Update(toastExpiredMsg{id: app.toastID})
	if app.toast != nil {
		t.Errorf("toast = %+v, want cleared", app.toast)
	}
}

func TestApp_UnknownNavIgnored(t *testing.T) {
	t.Parallel()

	app := NewApp(stubPage{id: "only", nav: &PageNav{PageID: "missing"}})
	app.Update(runes("x"))
	if app.ActivePage() != "only" {
		t.Errorf("active page = %q, want only", app.ActivePage())
	}
}

type stubPage struct {
	id  string
	nav *PageNav
}

func (s stubPage) ID() string { return s.id }
func (s stubPage) Init() tea.Cmd { return nil }
func (s stubPage) Update(tea.Msg) (tea.Cmd, *PageNav) { return nil, s.nav }
func (s stubPage) View(int, int) string { return s.id }

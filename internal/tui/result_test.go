package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/logwindow/internal/clipboard"
	"github.com/tinytelemetry/logwindow/internal/model"
)

func convertedResult(t *testing.T, clock string, logType model.LogType) model.Result {
	t.Helper()
	res, err := testDeps(nil).Converter.Convert(clock, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), logType)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	return res
}

func TestResultPage_CopyActions(t *testing.T) {
	t.Parallel()

	cb := &clipboard.Memory{}
	p := NewResultPage(testDeps(cb))
	res := convertedResult(t, "6:30am", model.LogTypeError)
	p.SetParams(res)

	cmd, nav := p.Update(runes("c"))
	if nav != nil {
		t.Fatalf("nav = %+v, want nil", nav)
	}
	if cb.Text != res.Command {
		t.Errorf("clipboard = %q, want command", cb.Text)
	}
	if toast := toastFrom(t, cmd); toast.Title != "Copied grep command" {
		t.Errorf("toast = %+v", toast)
	}

	cmd, _ = p.Update(runes("r"))
	if cb.Text != res.HumanReadable {
		t.Errorf("clipboard = %q, want readable result", cb.Text)
	}
	if toast := toastFrom(t, cmd); toast.Title != "Copied conversion result" {
		t.Errorf("toast = %+v", toast)
	}
}

func TestResultPage_CopyFailure(t *testing.T) {
	t.Parallel()

	p := NewResultPage(testDeps(failingClipboard{}))
	p.SetParams(convertedResult(t, "6:30am", model.LogTypeAccess))

	cmd, _ := p.Update(runes("c"))
	if toast := toastFrom(t, cmd); toast.Style != ToastFailure {
		t.Errorf("toast = %+v, want failure", toast)
	}
}

func TestResultPage_ConvertAnother(t *testing.T) {
	t.Parallel()

	p := NewResultPage(testDeps(&clipboard.Memory{}))
	p.SetParams(convertedResult(t, "6:30am", model.LogTypeError))

	for _, msg := range []tea.KeyMsg{runes("n"), {Type: tea.KeyEsc}} {
		_, nav := p.Update(msg)
		if nav == nil || nav.PageID != FormPageID {
			t.Errorf("%s: nav = %+v, want form page", msg, nav)
		}
	}
}

func TestResultPage_KeepsOnlyLatest(t *testing.T) {
	t.Parallel()

	p := NewResultPage(testDeps(&clipboard.Memory{}))
	p.SetParams(convertedResult(t, "6:30am", model.LogTypeError))
	second := convertedResult(t, "7:45pm", model.LogTypeAccess)
	p.SetParams(second)

	if got := p.Result(); got == nil || *got != second {
		t.Fatalf("result = %+v, want latest", got)
	}
	p.SetParams("not a result")
	if got := p.Result(); got == nil || *got != second {
		t.Error("non-result params replaced the shown result")
	}
}

func TestResultPage_View(t *testing.T) {
	t.Parallel()

	p := NewResultPage(testDeps(&clipboard.Memory{}))
	if got := p.View(100, 30); got != "No conversion yet" {
		t.Errorf("empty view = %q", got)
	}

	p.SetParams(convertedResult(t, "6:30am", model.LogTypeError))
	out := p.View(200, 40)
	for _, want := range []string{"UTC Conversion Result", "Grep Command for Nginx Error Logs", "2024/01/15"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

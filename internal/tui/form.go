package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/logwindow/internal/clipboard"
	"github.com/tinytelemetry/logwindow/internal/logger"
	"github.com/tinytelemetry/logwindow/internal/model"
)

const (
	FormPageID   = "form"
	ResultPageID = "result"

	dateLayout = "2006-01-02"

	invalidTimeMessage = "Invalid time format. Please use format like '6:30am'"
	invalidDateMessage = "Invalid date. Please use format like '2024-01-15'"
)

// ErrInvalidDate is returned when the date field is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date")

// formField identifies the focused form field.
type formField int

const (
	fieldTime formField = iota
	fieldDate
	fieldLogType
	fieldCount
)

// Deps provides the collaborators of the form and result pages.
type Deps struct {
	Converter      model.Converter
	Clipboard      clipboard.Writer
	Clock          model.Clock
	Location       *time.Location // zone "today" is computed in
	Logger         *logger.Logger
	CopyOnConvert  bool
	DefaultLogType model.LogType
}

func (d Deps) withDefaults() Deps {
	if d.Clipboard == nil {
		d.Clipboard = clipboard.System{}
	}
	if d.Clock == nil {
		d.Clock = model.RealClock{}
	}
	if d.Location == nil {
		d.Location = time.Local
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	if !d.DefaultLogType.Valid() {
		d.DefaultLogType = model.LogTypeError
	}
	return d
}

// FormPage collects the time, date and log type of a conversion.
type FormPage struct {
	deps    Deps
	keys    KeyMap
	help    help.Model
	focus   formField
	logType model.LogType

	timeInput textinput.Model
	dateInput textinput.Model
}

// NewFormPage creates the input form with the date prefilled to today.
func NewFormPage(deps Deps) *FormPage {
	deps = deps.withDefaults()

	timeInput := textinput.New()
	timeInput.Placeholder = "6:30am"
	timeInput.CharLimit = 16
	timeInput.Width = 20
	timeInput.Focus()

	dateInput := textinput.New()
	dateInput.Placeholder = dateLayout
	dateInput.CharLimit = 10
	dateInput.Width = 20
	dateInput.SetValue(deps.Clock.Now().In(deps.Location).Format(dateLayout))

	return &FormPage{
		deps:      deps,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logType:   deps.DefaultLogType,
		timeInput: timeInput,
		dateInput: dateInput,
	}
}

func (p *FormPage) ID() string { return FormPageID }

func (p *FormPage) Init() tea.Cmd {
	return textinput.Blink
}

func (p *FormPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p.updateFocusedInput(msg), nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.ForceQuit), keyMsg.String() == "esc":
		return tea.Quit, nil
	case key.Matches(keyMsg, p.keys.Submit):
		return p.submit()
	case key.Matches(keyMsg, p.keys.NextField):
		return p.setFocus((p.focus + 1) % fieldCount), nil
	case key.Matches(keyMsg, p.keys.PrevField):
		return p.setFocus((p.focus + fieldCount - 1) % fieldCount), nil
	case p.focus == fieldLogType && key.Matches(keyMsg, p.keys.ToggleType):
		p.toggleLogType()
		return nil, nil
	}

	return p.updateFocusedInput(msg), nil
}

func (p *FormPage) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch p.focus {
	case fieldTime:
		p.timeInput, cmd = p.timeInput.Update(msg)
	case fieldDate:
		p.dateInput, cmd = p.dateInput.Update(msg)
	}
	return cmd
}

func (p *FormPage) setFocus(f formField) tea.Cmd {
	p.focus = f
	p.timeInput.Blur()
	p.dateInput.Blur()
	switch f {
	case fieldTime:
		return p.timeInput.Focus()
	case fieldDate:
		return p.dateInput.Focus()
	}
	return nil
}

func (p *FormPage) toggleLogType() {
	for i, t := range model.LogTypes {
		if t == p.logType {
			p.logType = model.LogTypes[(i+1)%len(model.LogTypes)]
			return
		}
	}
	p.logType = model.LogTypes[0]
}

// parseDate reads the date field; empty means today.
func (p *FormPage) parseDate() (time.Time, error) {
	v := strings.TrimSpace(p.dateInput.Value())
	if v == "" {
		return p.deps.Clock.Now().In(p.deps.Location), nil
	}
	d, err := time.ParseInLocation(dateLayout, v, p.deps.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, v)
	}
	return d, nil
}

// submit converts the form values. On success the command is copied to the
// clipboard and the result page is shown; on failure the form stays.
func (p *FormPage) submit() (tea.Cmd, *PageNav) {
	date, err := p.parseDate()
	if err != nil {
		p.deps.Logger.Debugw("date rejected", "err", err)
		return showToast(ToastFailure, "Error", invalidDateMessage), nil
	}

	res, err := p.deps.Converter.Convert(p.timeInput.Value(), date, p.logType)
	if err != nil {
		p.deps.Logger.Debugw("conversion failed", "err", err)
		return showToast(ToastFailure, "Error", invalidTimeMessage), nil
	}
	p.deps.Logger.Infow("converted",
		"utc", res.UTCISO8601,
		"logType", res.Request.LogType.String(),
		"zone", res.ZoneLabel,
	)

	toast := showToast(ToastSuccess, "Converted to UTC", "Press c to copy the grep command")
	if p.deps.CopyOnConvert {
		if err := p.deps.Clipboard.WriteAll(res.Command); err != nil {
			p.deps.Logger.Warnw("clipboard write failed", "err", err)
			toast = showToast(ToastWarning, "Converted to UTC", "Could not copy to clipboard")
		} else {
			toast = showToast(ToastSuccess, "Converted to UTC", "Result copied to clipboard")
		}
	}

	return toast, &PageNav{PageID: ResultPageID, Params: res}
}

func (p *FormPage) View(width, height int) string {
	rows := []string{
		titleStyle.Render("Convert local time to UTC"),
		"",
		p.renderRow(fieldTime, "Time", p.timeInput.View()),
		p.renderRow(fieldDate, "Date", p.dateInput.View()),
		p.renderRow(fieldLogType, "Log Type", p.renderLogTypes()),
		"",
		p.help.View(formHelp{p.keys}),
	}

	form := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if width <= 0 || height <= 0 {
		return form
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}

func (p *FormPage) renderRow(f formField, label, value string) string {
	style := labelStyle
	if p.focus == f {
		style = focusedLabelStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), value)
}

func (p *FormPage) renderLogTypes() string {
	var opts []string
	for _, t := range model.LogTypes {
		if t == p.logType {
			opts = append(opts, selectedOptionStyle.Render(t.Title()))
		} else {
			opts = append(opts, optionStyle.Render(t.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, opts...)
}

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/logwindow/internal/model"
)

// Renderer writes a conversion Result to an output stream.
type Renderer interface {
	Render(res model.Result) error
}

// New returns the renderer for format ("text", "json" or "yaml").
func New(format string, w io.Writer) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return NewTextRenderer(w), nil
	case "json":
		return NewJSONRenderer(w), nil
	case "yaml", "yml":
		return NewYAMLRenderer(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// ---------------------------------------------------------------------------
// Text Renderer
// ---------------------------------------------------------------------------

var (
	styleTitle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	styleHeading = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	styleCommand = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
)

// TextRenderer prints a result as a styled block for terminals.
type TextRenderer struct {
	w io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) Render(res model.Result) error {
	_, err := fmt.Fprintln(r.w, Text(res))
	return err
}

// Text renders res the way the result screen shows it.
func Text(res model.Result) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("UTC Conversion Result"))
	b.WriteString("\n\n")
	b.WriteString(res.HumanReadable)
	b.WriteString("\n\n")
	b.WriteString(styleHeading.Render(CommandHeading(res.Request.LogType)))
	b.WriteString("\n\n")
	b.WriteString(styleCommand.Render(res.Command))
	if res.Window.CrossesDay() {
		b.WriteString("\n\n")
		b.WriteString(styleWarn.Render(CrossDayWarning))
	}
	return b.String()
}

// CrossDayWarning explains why a midnight-spanning window misses lines.
const CrossDayWarning = "Window crosses midnight UTC: the command compares times as text and will miss lines after 00:00."

// CommandHeading titles the command section, e.g. "Grep Command for Nginx Error Logs".
func CommandHeading(t model.LogType) string {
	name := t.String()
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("Grep Command for Nginx %s Logs", name)
}

// ---------------------------------------------------------------------------
// Structured renderers (JSON / YAML)
// ---------------------------------------------------------------------------

// record is the structured shape shared by the JSON and YAML renderers.
type record struct {
	UTC         string        `json:"utc" yaml:"utc"`
	Readable    string        `json:"readable" yaml:"readable"`
	GrepCommand string        `json:"grepCommand" yaml:"grepCommand"`
	LogType     model.LogType `json:"logType" yaml:"logType"`
	LogPath     string        `json:"logPath" yaml:"logPath"`
	WindowStart string        `json:"windowStart" yaml:"windowStart"`
	WindowEnd   string        `json:"windowEnd" yaml:"windowEnd"`
	CrossesDay  bool          `json:"crossesDay" yaml:"crossesDay"`
	Zone        string        `json:"zone" yaml:"zone"`
}

func toRecord(res model.Result) record {
	return record{
		UTC:         res.UTCISO8601,
		Readable:    res.HumanReadable,
		GrepCommand: res.Command,
		LogType:     res.Request.LogType,
		LogPath:     res.LogPath,
		WindowStart: res.Window.Start.UTC().Format(time.RFC3339),
		WindowEnd:   res.Window.End.UTC().Format(time.RFC3339),
		CrossesDay:  res.Window.CrossesDay(),
		Zone:        res.ZoneLabel,
	}
}

// JSONRenderer prints each result as a single JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
}

func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) Render(res model.Result) error {
	return r.enc.Encode(toRecord(res))
}

// YAMLRenderer prints each result as a YAML document.
type YAMLRenderer struct {
	w io.Writer
}

func NewYAMLRenderer(w io.Writer) *YAMLRenderer {
	return &YAMLRenderer{w: w}
}

func (r *YAMLRenderer) Render(res model.Result) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(toRecord(res)); err != nil {
		return err
	}
	return enc.Close()
}

// Package timewindow converts a local wall-clock time into a UTC instant and
// the nginx log search command for the window around it.
package timewindow

import (
	"fmt"
	"time"

	"github.com/tinytelemetry/logwindow/internal/model"
)

const readableLayout = "January 2, 2006 at 3:04 PM"

// Converter holds the immutable settings of a conversion. It keeps no state
// between calls, so the same inputs always yield the same Result.
type Converter struct {
	loc           *time.Location
	label         string
	span          time.Duration
	errorLogPath  string
	accessLogPath string
}

// Option configures a Converter.
type Option func(*Converter)

// WithLocation sets the zone input times are read in. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *Converter) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithZoneLabel overrides the zone name shown next to the local time.
func WithZoneLabel(label string) Option {
	return func(c *Converter) { c.label = label }
}

// WithSpan sets the half-width of the search window.
func WithSpan(span time.Duration) Option {
	return func(c *Converter) {
		if span > 0 {
			c.span = span
		}
	}
}

// WithLogPaths overrides the nginx log file paths. Empty values keep the defaults.
func WithLogPaths(errorPath, accessPath string) Option {
	return func(c *Converter) {
		if errorPath != "" {
			c.errorLogPath = errorPath
		}
		if accessPath != "" {
			c.accessLogPath = accessPath
		}
	}
}

// New creates a Converter. Without options it reads times in the process
// zone with a ±10 minute window over the default nginx log paths.
func New(opts ...Option) *Converter {
	c := &Converter{
		loc:           time.Local,
		span:          model.DefaultWindowSpan,
		errorLogPath:  model.DefaultErrorLogPath,
		accessLogPath: model.DefaultAccessLogPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Location returns the zone input times are read in.
func (c *Converter) Location() *time.Location { return c.loc }

// Span returns the half-width of the search window.
func (c *Converter) Span() time.Duration { return c.span }

// Convert reads timeText on date's calendar day in the source zone and
// builds the UTC rendering and search command. It fails with
// ErrInvalidTimeFormat or model.ErrUnknownLogType and never returns a
// partial Result.
func (c *Converter) Convert(timeText string, date time.Time, logType model.LogType) (model.Result, error) {
	if !logType.Valid() {
		return model.Result{}, fmt.Errorf("%w: %d", model.ErrUnknownLogType, int(logType))
	}

	hour, minute, err := ParseClock(timeText)
	if err != nil {
		return model.Result{}, err
	}

	// Hour and minute go onto the input date as given; only the UTC side may
	// land on another calendar day.
	local := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, c.loc)
	utc := local.UTC()

	label := c.label
	if label == "" {
		label = zoneLabel(local)
	}

	window := model.Window{
		Start: utc.Add(-c.span),
		End:   utc.Add(c.span),
	}

	var path, command string
	switch logType {
	case model.LogTypeError:
		path = c.errorLogPath
		command = errorLogCommand(path, utc, window)
	case model.LogTypeAccess:
		path = c.accessLogPath
		command = accessLogCommand(path, utc, window)
	}

	return model.Result{
		Request: model.Request{
			TimeText: timeText,
			Date:     time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.loc),
			LogType:  logType,
		},
		Local:         local,
		UTC:           utc,
		UTCISO8601:    utc.Format(time.RFC3339),
		HumanReadable: humanReadable(local, utc, label),
		ZoneLabel:     label,
		Window:        window,
		LogPath:       path,
		Command:       command,
	}, nil
}

func humanReadable(local, utc time.Time, label string) string {
	return fmt.Sprintf("UTC: %s UTC\nLocal: %s (%s)",
		utc.Format(readableLayout),
		local.Format(readableLayout),
		label,
	)
}

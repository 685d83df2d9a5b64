package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownLogType is returned for a log type other than error or access.
var ErrUnknownLogType = errors.New("unknown log type")

// LogType selects which nginx log a search command targets.
type LogType int

const (
	LogTypeError LogType = iota
	LogTypeAccess
)

// LogTypes lists every supported log type in display order.
var LogTypes = []LogType{LogTypeError, LogTypeAccess}

// ParseLogType converts "error" or "access" (any case) to a LogType.
func ParseLogType(s string) (LogType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LogTypeError, nil
	case "access":
		return LogTypeAccess, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLogType, s)
	}
}

func (t LogType) String() string {
	switch t {
	case LogTypeError:
		return "error"
	case LogTypeAccess:
		return "access"
	default:
		return fmt.Sprintf("LogType(%d)", int(t))
	}
}

// Title is the label shown in the form selector.
func (t LogType) Title() string {
	switch t {
	case LogTypeError:
		return "Error Logs"
	case LogTypeAccess:
		return "Access Logs"
	default:
		return t.String()
	}
}

// Valid reports whether t is one of LogTypes.
func (t LogType) Valid() bool {
	return t == LogTypeError || t == LogTypeAccess
}

// MarshalText lets LogType appear as "error"/"access" in JSON and YAML output.
func (t LogType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLogType, int(t))
	}
	return []byte(t.String()), nil
}

// Request is one conversion submitted by the user.
type Request struct {
	TimeText string    // wall clock like "6:30am"
	Date     time.Time // only year, month and day are used
	LogType  LogType
}

// Window is the log search interval around a UTC instant.
type Window struct {
	Start time.Time
	End   time.Time
}

// Duration returns End - Start.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether t lies strictly inside the window.
func (w Window) Contains(t time.Time) bool {
	return w.Start.Before(t) && t.Before(w.End)
}

// CrossesDay reports whether Start and End fall on different UTC days.
// Commands compare HH:mm:ss and dd/MMM/yyyy strings lexically, so such a
// window does not match every line it should.
func (w Window) CrossesDay() bool {
	s, e := w.Start.UTC(), w.End.UTC()
	return s.YearDay() != e.YearDay() || s.Year() != e.Year()
}

// Result is the outcome of a successful conversion. A fresh value is built
// for every request and never mutated afterwards.
type Result struct {
	Request       Request
	Local         time.Time // input wall clock in the source zone
	UTC           time.Time
	UTCISO8601    string
	HumanReadable string
	ZoneLabel     string
	Window        Window
	LogPath       string
	Command       string
}

package timewindow

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when the time text is not h:mma.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// clockRegex matches h:mma, e.g. "6:30am", "06:30PM".
var clockRegex = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})([ap]m)$`)

// ParseClock parses a 12-hour wall clock with an am/pm marker and returns the
// hour of day (0-23) and minute.
func ParseClock(text string) (hour, minute int, err error) {
	m := clockRegex.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q out of range", ErrInvalidTimeFormat, text)
	}

	// 12am is midnight, 12pm is noon
	hour %= 12
	if strings.EqualFold(m[3], "pm") {
		hour += 12
	}
	return hour, minute, nil
}

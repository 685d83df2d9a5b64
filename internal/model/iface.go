package model

import "time"

// Converter turns a wall-clock time on a date into a log search Result.
type Converter interface {
	Convert(timeText string, date time.Time, logType LogType) (Result, error)
}

// Clock abstracts time.Now so "today" is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

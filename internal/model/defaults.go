package model

import "time"

// Shared defaults used by the converter, the CLI and the TUI.
const (
	DefaultTimezone      = "America/Los_Angeles"
	DefaultWindowSpan    = 10 * time.Minute
	DefaultErrorLogPath  = "/var/log/nginx/error.log"
	DefaultAccessLogPath = "/var/log/nginx/access.log"
	DefaultLogType       = "error"
	DefaultLogLevel      = "info"
)

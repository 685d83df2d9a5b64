package timewindow

import (
	"fmt"
	"time"

	"github.com/tinytelemetry/logwindow/internal/model"
)

// Layouts used inside generated commands. nginx error logs start with
// "2006/01/02 15:04:05", access logs carry "[02/Jan/2006:15:04:05 -0700]".
const (
	errorDateLayout       = "2006/01/02"
	errorTimeLayout       = "15:04:05"
	accessTimestampLayout = "02/Jan/2006:15:04:05"
	accessMinuteLayout    = "02/Jan/2006:15:04"
)

// errorLogCommand greps the UTC day, then keeps lines whose second field
// (HH:mm:ss) lies inside the window.
func errorLogCommand(path string, utc time.Time, w model.Window) string {
	return fmt.Sprintf(`grep "%s" "%s" | awk -v start="%s" -v end="%s" '$2 >= start && $2 <= end'`,
		utc.Format(errorDateLayout),
		path,
		w.Start.Format(errorTimeLayout),
		w.End.Format(errorTimeLayout),
	)
}

// accessLogCommand compares the bracketed fourth field against the window
// bounds, then keeps lines from the converted minute.
func accessLogCommand(path string, utc time.Time, w model.Window) string {
	return fmt.Sprintf(`awk -v start="%s" -v end="%s" '$4 >= "["start && $4 <= "["end' "%s" | grep "%s"`,
		w.Start.Format(accessTimestampLayout),
		w.End.Format(accessTimestampLayout),
		path,
		utc.Format(accessMinuteLayout),
	)
}

package timewindow

import (
	"fmt"
	"strings"
	"time"
)

// LoadLocation resolves a configured zone name. Empty and "Local" mean the
// zone of the running process; anything else is looked up in the IANA
// database.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "" || strings.EqualFold(name, "local"):
		return time.Local, nil
	case strings.EqualFold(name, "utc"):
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// zoneLabel names the zone t was read in. For the process zone the label
// carries the active abbreviation so it never claims a named zone that was
// not used.
func zoneLabel(t time.Time) string {
	loc := t.Location()
	if loc == time.Local {
		abbr, _ := t.Zone()
		return abbr + ", local"
	}
	return loc.String()
}

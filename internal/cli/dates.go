package cli

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing a start date.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02-January-2006",
	"Mon 02-January-2006",
	"2 January 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
}

// ParseDate parses a calendar date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package format

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// longDateLayout is the en-US long form, e.g. "March 5, 2024".
const longDateLayout = "January 2, 2006"

// ParseDate reads s as a calendar date in UTC, accepting ISO dates such as
// "2024-03-05" and the other common layouts dateparse recognizes. It reports
// false for input without digits, bare digit runs longer than a year, and
// anything that does not parse to a date with a year.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "0123456789") {
		return time.Time{}, false
	}
	// dateparse can panic on some malformed inputs.
	defer func() {
		if recover() != nil {
			t, ok = time.Time{}, false
		}
	}()
	// dateparse reads long digit runs as Unix timestamps.
	if len(s) > 4 && strings.Trim(s, "0123456789") == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil || t.Year() == 0 {
		return time.Time{}, false
	}
	return t, true
}

// LongDate renders a date string such as "2024-03-05" as "March 5, 2024".
// Input that does not parse as a date is returned unchanged.
func LongDate(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return s
	}
	return t.Format(longDateLayout)
}

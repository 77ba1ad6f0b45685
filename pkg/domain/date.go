package domain

import (
	"strings"
	"time"

	dErrors "people/pkg/domain-errors"
)

// DateLayout is the boundary format for calendar dates (MM-DD-YYYY).
const DateLayout = "01-02-2006"

// Date builds a calendar date at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an MM-DD-YYYY date received at a trust boundary.
func ParseDate(s, label string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, dErrors.Newf(dErrors.CodeInvalidInput, "invalid date format for %s; expected MM-DD-YYYY", label)
	}
	return t, nil
}

// FormatDate renders a date in boundary format; the zero time renders empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// CalendarDate drops the time of day, keeping the date as seen in t's own
// location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Today is the calendar date of now in now's location.
func Today(now time.Time) time.Time {
	return CalendarDate(now)
}

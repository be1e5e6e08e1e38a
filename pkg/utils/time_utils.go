package utils

import (
	"strings"
	"time"
)

// Accepted layouts for dates coming from clients and from the model. The
// mobile client sends ISO-8601 with fractional seconds; the model is asked
// for plain YYYY-MM-DD but does not always comply.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
}

// ParseCalendarDate parses s against the known layouts and truncates the
// result to a UTC calendar date. Placeholder or instructional strings simply
// fail to parse.
func ParseCalendarDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return TruncateToDate(t), true
		}
	}
	return time.Time{}, false
}

func TruncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func FormatCalendarDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DaysBetween returns the length in days of the [start, end) span, rounded
// up. A same-day trip still counts as one day.
func DaysBetween(start, end time.Time) int {
	span := end.Sub(start)
	days := int(span / (24 * time.Hour))
	if span%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days
}

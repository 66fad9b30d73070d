package utils

import (
	"time"
)

// Date layouts shared with the frontend. DateToFormat is the human-readable
// form shown on cards and tables, DateToISODatetime feeds datetime-local form
// inputs, DateToFCFormat is the calendar date key.

func DateToFormat(t time.Time) string {
	return t.Format("02/01/2006 03:04 PM")
}

func DateToISODatetime(t time.Time) string {
	return t.Format("2006-01-02T15:04")
}

func DateToFCFormat(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseISODatetime parses the value of a datetime-local input. A plain date
// without the time part is also accepted.
func ParseISODatetime(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04", s)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

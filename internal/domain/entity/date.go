package entity

import (
	"time"

	"tiffin/internal/domain/constants"
)

const day = 24 * time.Hour

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string, or an RFC 3339 timestamp, into a calendar day.
// A timestamp keeps the day it names in its own offset.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateLayout, s)
	if err == nil {
		return t, nil
	}

	ts, tsErr := time.Parse(time.RFC3339, s)
	if tsErr != nil {
		return time.Time{}, err
	}

	y, m, d := ts.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders a calendar day as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(constants.DateLayout)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// HasAdvanceNotice reports whether target lies at least notice after now.
func HasAdvanceNotice(target, now time.Time, notice time.Duration) bool {
	return target.Sub(now) >= notice
}

// MonthRange returns the first instant of the month containing t and of the next month.
func MonthRange(t time.Time) (time.Time, time.Time) {
	y, m, _ := t.UTC().Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(0, 1, 0)
}

// DayRange returns midnight of t's day and of the following day.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := DateOnly(t)

	return start, start.Add(day)
}

package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutDate     = "02/01/2006"
	layoutDateTime = "02/01/2006 15:04:05"
)

// Accepted on input, tried in order. dd/MM/yyyy is the wire default.
var dateInputLayouts = []string{
	layoutDate,
	"2006-01-02",
	"02-01-2006",
	"2006/01/02",
	"02.01.2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	layoutDateTime,
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateOnly drops the time of day, keeping the calendar day as seen in t's location.
// The result is always UTC midnight so dates compare regardless of origin.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a calendar date in any supported layout.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty, expected format dd/MM/yyyy")
	}
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q, expected format dd/MM/yyyy", s)
}

// FormatDate renders dd/MM/yyyy.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// FormatDateTime renders "dd/MM/yyyy HH:mm:ss" in UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(layoutDateTime)
}

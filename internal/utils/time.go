package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(layoutDate, strings.TrimSpace(s))
}

// FormatDate formats time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// IsFutureDate reports whether s parses as YYYY-MM-DD and is today or later.
func IsFutureDate(s string) bool {
	t, err := ParseDate(s)
	if err != nil {
		return false
	}
	today := NowUTC().Truncate(24 * time.Hour)
	return !t.Before(today)
}

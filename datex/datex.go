package datex

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Arithmetic
// ─────────────────────────────────────────────────────────────────────────────

// AddDays returns t shifted by n calendar days (n may be negative).
func AddDays(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) }

// AddMonths returns t shifted by n calendar months, normalizing overflow
// (Jan 31 + 1 month lands in early March).
func AddMonths(t time.Time, n int) time.Time { return t.AddDate(0, n, 0) }

// AddYears returns t shifted by n calendar years.
func AddYears(t time.Time, n int) time.Time { return t.AddDate(n, 0, 0) }

// DaysBetween returns the number of whole calendar days from a to b,
// negative when b is before a. Time-of-day is ignored: the count is taken
// between the two midnights, so adjacent days are always 1 apart regardless
// of clock times or DST transitions.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	// Re-anchor both calendar days in UTC so DST shifts cannot skew the count.
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// ─────────────────────────────────────────────────────────────────────────────
// Boundaries
// ─────────────────────────────────────────────────────────────────────────────

// StartOfDay returns midnight of t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1).Day()
}

// ─────────────────────────────────────────────────────────────────────────────
// Formats & epoch
// ─────────────────────────────────────────────────────────────────────────────

// FormatISO renders t as RFC 3339 / ISO-8601 with second precision, the
// `date -Iseconds` format.
func FormatISO(t time.Time) string { return t.Format(time.RFC3339) }

// FormatDate renders just the calendar date, the `date +%F` format.
func FormatDate(t time.Time) string { return t.Format(time.DateOnly) }

// ParseISO parses an RFC 3339 / ISO-8601 timestamp.
func ParseISO(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("datex: parse %q: %w", s, err)
	}
	return t, nil
}

// ParseDate parses a bare "2006-01-02" calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("datex: parse %q: %w", s, err)
	}
	return t, nil
}

// FromUnix converts a Unix timestamp in seconds to a UTC time.
func FromUnix(sec int64) time.Time { return time.Unix(sec, 0).UTC() }

// ToUnix returns t as a Unix timestamp in seconds.
func ToUnix(t time.Time) int64 { return t.Unix() }

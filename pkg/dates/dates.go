// Package dates implements the civil-date arithmetic shared by the holiday
// catalog. Dates are day-granular: every time.Time produced here is midnight
// UTC, and the wire format is the ISO "YYYY-MM-DD" string whose lexicographic
// order equals chronological order.
package dates

import (
	"fmt"
	"time"
)

// ISO is the wire format for all dates crossing component boundaries.
const ISO = "2006-01-02"

// compact is the iCalendar / Google Calendar date form.
const compact = "20060102"

// Parse decodes an ISO date string into a midnight-UTC time. It rejects
// anything that is not a zero-padded, real calendar date.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ISO, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Valid reports whether s is a well-formed ISO date.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Format encodes a time as an ISO date string.
func Format(t time.Time) string {
	return t.Format(ISO)
}

// FormatCompact encodes a time as YYYYMMDD.
func FormatCompact(t time.Time) string {
	return t.Format(compact)
}

// AddDays returns t shifted by n whole days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// Midnight truncates t to its civil date in t's own location, re-anchored at
// midnight UTC so day arithmetic stays exact.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b (negative when b
// precedes a). Both arguments must be midnight-UTC dates.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// DaySpan returns the inclusive day count of the [start, end] interval; a
// single-day interval spans 1.
func DaySpan(start, end time.Time) int {
	return DaysBetween(start, end) + 1
}

// NthWeekday returns the date of the n-th occurrence of dow in the given
// month. When the month holds fewer than n such weekdays it falls back to the
// first of the month; no US federal holiday ever reaches that branch.
func NthWeekday(year int, month time.Month, dow time.Weekday, n int) time.Time {
	count := 0
	for d := 1; d <= 31; d++ {
		t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		if t.Month() != month {
			break
		}
		if t.Weekday() == dow {
			count++
			if count == n {
				return t
			}
		}
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// LastWeekday returns the date of the final occurrence of dow in the month.
func LastWeekday(year int, month time.Month, dow time.Weekday) time.Time {
	last := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := 1; d <= 31; d++ {
		t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		if t.Month() != month {
			break
		}
		if t.Weekday() == dow {
			last = t
		}
	}
	return last
}

// FormatLong renders "Sunday, Mar 2, 2026".
func FormatLong(t time.Time) string {
	return fmt.Sprintf("%s, %s %d, %d", t.Weekday(), t.Month().String()[:3], t.Day(), t.Year())
}

// FormatShort renders "Sun, Mar 2".
func FormatShort(t time.Time) string {
	return fmt.Sprintf("%s, %s %d", t.Weekday().String()[:3], t.Month().String()[:3], t.Day())
}

// FormatDisplay renders "Mar 2, 2026".
func FormatDisplay(t time.Time) string {
	return fmt.Sprintf("%s %d, %d", t.Month().String()[:3], t.Day(), t.Year())
}

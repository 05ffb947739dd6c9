package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", Format(d))
	assert.Equal(t, "20260302", FormatCompact(d))
	assert.Equal(t, time.UTC, d.Location())
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, raw := range []string{"", "2026-3-2", "03/02/2026", "2026-13-01", "not-a-date"} {
		_, err := Parse(raw)
		assert.Error(t, err, raw)
		assert.False(t, Valid(raw), raw)
	}
	assert.True(t, Valid("2026-03-02"))
}

func TestDaysBetween(t *testing.T) {
	a, _ := Parse("2025-12-30")
	b, _ := Parse("2026-01-02")
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestDaySpanIsInclusive(t *testing.T) {
	a, _ := Parse("2026-04-02")
	b, _ := Parse("2026-04-09")
	assert.Equal(t, 8, DaySpan(a, b))
	assert.Equal(t, 1, DaySpan(a, a))
}

func TestAddDaysCrossesMonthAndYear(t *testing.T) {
	d, _ := Parse("2025-12-31")
	assert.Equal(t, "2026-01-01", Format(AddDays(d, 1)))
	assert.Equal(t, "2025-12-30", Format(AddDays(d, -1)))
}

func TestNthWeekday(t *testing.T) {
	// Third Monday of January 2026 is the 19th.
	assert.Equal(t, "2026-01-19", Format(NthWeekday(2026, time.January, time.Monday, 3)))
	// Fourth Thursday of November 2026 is the 26th.
	assert.Equal(t, "2026-11-26", Format(NthWeekday(2026, time.November, time.Thursday, 4)))
	// First Monday of September 2026 is the 7th.
	assert.Equal(t, "2026-09-07", Format(NthWeekday(2026, time.September, time.Monday, 1)))
}

func TestLastWeekday(t *testing.T) {
	// Last Monday of May 2026 is the 25th.
	assert.Equal(t, "2026-05-25", Format(LastWeekday(2026, time.May, time.Monday)))
	// Last Friday of February 2024 (leap year) is the 23rd.
	assert.Equal(t, "2024-02-23", Format(LastWeekday(2024, time.February, time.Friday)))
}

func TestDisplayFormats(t *testing.T) {
	d, _ := Parse("2026-03-02")
	assert.Equal(t, "Monday, Mar 2, 2026", FormatLong(d))
	assert.Equal(t, "Mon, Mar 2", FormatShort(d))
	assert.Equal(t, "Mar 2, 2026", FormatDisplay(d))
}

func TestMidnight(t *testing.T) {
	d := time.Date(2026, time.March, 2, 17, 45, 3, 12, time.UTC)
	assert.Equal(t, "2026-03-02", Format(Midnight(d)))
	assert.Equal(t, 0, Midnight(d).Hour())
}

package hebcal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventsFor(t *testing.T, base string, events []Event) []Event {
	t.Helper()
	var out []Event
	for _, ev := range events {
		if ev.BaseName == base {
			out = append(out, ev)
		}
	}
	return out
}

func TestEventsExpandsEveAndMainDays(t *testing.T) {
	events := NewStaticSource().Events(2025, 1, false)

	erev := eventsFor(t, "Erev Rosh Hashana", events)
	require.Len(t, erev, 1)
	assert.Equal(t, "2025-09-22", erev[0].Date)
	assert.True(t, erev[0].IsEve)

	main := eventsFor(t, "Rosh Hashana", events)
	require.Len(t, main, 2)
	assert.Equal(t, "2025-09-23", main[0].Date)
	assert.Equal(t, "2025-09-24", main[1].Date)
	for _, ev := range main {
		assert.False(t, ev.IsEve)
	}
}

func TestEventsFastDaysHaveNoEve(t *testing.T) {
	events := NewStaticSource().Events(2025, 1, false)

	fast := eventsFor(t, "Tzom Gedaliah", events)
	require.Len(t, fast, 1)
	assert.Equal(t, "2025-09-25", fast[0].Date)
	assert.False(t, fast[0].IsEve)

	for _, ev := range events {
		if strings.HasPrefix(ev.BaseName, "Erev ") {
			assert.True(t, ev.IsEve, ev.BaseName)
		} else {
			assert.False(t, ev.IsEve, ev.BaseName+" "+ev.Date)
		}
	}
}

func TestEventsChanukahSpansEightDays(t *testing.T) {
	events := NewStaticSource().Events(2025, 1, false)

	assert.Len(t, eventsFor(t, "Erev Chanukah", events), 1)
	main := eventsFor(t, "Chanukah", events)
	require.Len(t, main, 8)
	assert.Equal(t, "2025-12-15", main[0].Date)
	assert.Equal(t, "2025-12-22", main[7].Date)
}

func TestEventsWindowFiltersByYear(t *testing.T) {
	src := NewStaticSource()

	for _, ev := range src.Events(2026, 1, false) {
		assert.True(t, strings.HasPrefix(ev.Date, "2026-"), ev.Date)
	}

	// A span crossing the year boundary is filtered per day, not per span.
	events := src.Events(2027, 1, false)
	chanukah := eventsFor(t, "Chanukah", events)
	require.NotEmpty(t, chanukah)
	for _, ev := range chanukah {
		assert.True(t, strings.HasPrefix(ev.Date, "2027-12-"), ev.Date)
	}

	next := eventsFor(t, "Chanukah", src.Events(2028, 1, false))
	var janDays int
	for _, ev := range next {
		if strings.HasPrefix(ev.Date, "2028-01-") {
			janDays++
		}
	}
	assert.Equal(t, 1, janDays)
}

func TestEventsEmptyOutsideDataset(t *testing.T) {
	assert.Empty(t, NewStaticSource().Events(2040, 3, false))
}

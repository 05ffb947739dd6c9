package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)

func TestEncodeAllDayEvent(t *testing.T) {
	out, err := Encode("Purim", "2026-03-02", "2026-03-03", stamp)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "PRODID:-//Luach//Holiday Catalog//EN")
	assert.Contains(t, out, "CALSCALE:GREGORIAN")
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "SUMMARY:Purim")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20260302")
	// Inclusive end 03-03 encodes as the exclusive day after.
	assert.Contains(t, out, "DTEND;VALUE=DATE:20260304")
	assert.Contains(t, out, "UID:20260302-20260304-purim@luach.app")
	assert.Contains(t, out, "END:VCALENDAR")
}

func TestEncodeUsesCRLFThroughout(t *testing.T) {
	out, err := Encode("Purim", "2026-03-02", "2026-03-03", stamp)
	require.NoError(t, err)

	// Every line must terminate with CRLF; a bare LF anywhere breaks strict
	// iCalendar consumers.
	assert.True(t, strings.HasSuffix(out, "\r\n"))
	assert.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\n")
	assert.NotContains(t, strings.ReplaceAll(out, "\r\n", ""), "\r")
}

func TestEncodeRejectsBadDates(t *testing.T) {
	_, err := Encode("Purim", "03/02/2026", "2026-03-03", stamp)
	assert.Error(t, err)
	_, err = Encode("Purim", "2026-03-02", "bad", stamp)
	assert.Error(t, err)
}

func TestEncodeIsDeterministic(t *testing.T) {
	a, err := Encode("Pesach", "2026-04-01", "2026-04-09", stamp)
	require.NoError(t, err)
	b, err := Encode("Pesach", "2026-04-01", "2026-04-09", stamp)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestUID(t *testing.T) {
	assert.Equal(t, "20260302-20260304-purim@luach.app", UID("Purim", "2026-03-02", "2026-03-03"))
	assert.Equal(t, "20260401-20260410-pesach@luach.app", UID("Pesach", "2026-04-01", "2026-04-09"))
	// Quotes drop, other punctuation hyphenates.
	assert.Equal(t, "20260722-20260724-tisha-bav@luach.app", UID("Tisha B'Av", "2026-07-22", "2026-07-23"))
}

func TestUIDFallbackSlug(t *testing.T) {
	assert.Equal(t, "20260302-20260303-event@luach.app", UID("!!!", "2026-03-02", "2026-03-02"))
}

func TestGoogleCalendarLink(t *testing.T) {
	link, err := GoogleCalendarLink("Tisha B'Av", "2026-07-22", "2026-07-23")
	require.NoError(t, err)
	assert.Equal(t,
		"https://calendar.google.com/calendar/render?action=TEMPLATE&text=Tisha%20B%27Av&dates=20260722/20260724",
		link)

	_, err = GoogleCalendarLink("x", "2026-07-22", "nope")
	assert.Error(t, err)
}

func TestGoogleCalendarLinkEncodesSpacesAsPercent20(t *testing.T) {
	link, err := GoogleCalendarLink("Rosh Hashana", "2025-09-22", "2025-09-24")
	require.NoError(t, err)
	assert.Contains(t, link, "text=Rosh%20Hashana")
	assert.NotContains(t, link, "+")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "purim-2026-03-02-to-2026-03-03.ics", Filename("Purim", "2026-03-02", "2026-03-03"))
	assert.Equal(t, "yom-kippur-2025-10-02.ics", Filename("Yom Kippur", "2025-10-02", "2025-10-02"))
	assert.Equal(t, "calendar-event.ics", Filename("", "", ""))
}

func TestSlugifyTruncates(t *testing.T) {
	long := strings.Repeat("abcde-", 20)
	got := slugify(long, uidSlugMax, fallbackSlug)
	assert.LessOrEqual(t, len(got), uidSlugMax)
	assert.False(t, strings.HasSuffix(got, "-"))
	assert.False(t, strings.HasPrefix(got, "-"))
}

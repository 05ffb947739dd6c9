// Package ics renders a single holiday occurrence as an iCalendar payload, a
// Google Calendar deep link and a download filename. Both calendar formats
// use the all-day convention where an inclusive last day must be encoded as
// the exclusive day after it.
package ics

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/luachhq/luach-api/pkg/dates"
)

const (
	productID    = "-//Luach//Holiday Catalog//EN"
	uidDomain    = "luach.app"
	gcalBase     = "https://calendar.google.com/calendar/render"
	uidSlugMax   = 40
	fileSlugMax  = 80
	fallbackSlug = "event"
	fallbackFile = "calendar-event"
)

// Encode renders one all-day occurrence as an iCalendar v2.0 document. start
// and end are inclusive ISO dates; now stamps DTSTAMP and is passed in so
// exports stay testable.
func Encode(title, start, end string, now time.Time) (string, error) {
	startT, err := dates.Parse(start)
	if err != nil {
		return "", err
	}
	endT, err := dates.Parse(end)
	if err != nil {
		return "", err
	}
	endExclusive := dates.AddDays(endT, 1)

	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ical.MethodPublish)

	event := cal.AddEvent(UID(title, start, end))
	event.SetDtStampTime(now.UTC())
	event.SetSummary(title)
	event.SetAllDayStartAt(startT)
	event.SetAllDayEndAt(endExclusive)

	// RFC 5545 requires CRLF line delimiters; the library defaults to bare LF.
	return cal.Serialize(ical.WithNewLineWindows), nil
}

// UID derives a deterministic identifier from the encoded dates and a slug of
// the title, so re-exporting the same occurrence always yields the same UID.
func UID(title, start, end string) string {
	startC, endC := compactPair(start, end)
	return fmt.Sprintf("%s-%s-%s@%s", startC, endC, slugify(title, uidSlugMax, fallbackSlug), uidDomain)
}

// GoogleCalendarLink builds the render-template deep link for the occurrence.
func GoogleCalendarLink(title, start, end string) (string, error) {
	if !dates.Valid(start) || !dates.Valid(end) {
		return "", fmt.Errorf("invalid date range %q..%q", start, end)
	}
	startC, endC := compactPair(start, end)
	// Spaces encode as %20, not +, matching what browsers produce for this URL.
	text := strings.ReplaceAll(url.QueryEscape(title), "+", "%20")
	return fmt.Sprintf("%s?action=TEMPLATE&text=%s&dates=%s/%s",
		gcalBase, text, startC, endC), nil
}

// Filename produces the attachment name for an ICS download:
// "<title>-<start>[_to_<end>].ics", slugged and length-capped.
func Filename(title, start, end string) string {
	datePart := start
	if start != end {
		datePart = start + "_to_" + end
	}
	return slugify(title+"-"+datePart, fileSlugMax, fallbackFile) + ".ics"
}

// compactPair returns the YYYYMMDD start and the exclusive YYYYMMDD end.
func compactPair(start, end string) (string, string) {
	startT, _ := dates.Parse(start)
	endT, _ := dates.Parse(end)
	return dates.FormatCompact(startT), dates.FormatCompact(dates.AddDays(endT, 1))
}

// slugify lowercases, drops quotes, turns every other non-alphanumeric run
// into a single hyphen and trims to max runes. Titles that reduce to nothing
// fall back to the given placeholder.
func slugify(s string, max int, fallback string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	hyphen := false
	for _, r := range s {
		switch {
		case r == '\'' || r == '"':
			// dropped
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		default:
			hyphen = true
		}
	}
	out := b.String()
	if len(out) > max {
		out = strings.Trim(out[:max], "-")
	}
	if out == "" {
		return fallback
	}
	return out
}

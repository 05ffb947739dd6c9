// Package hebcal is the lunisolar calendar event source. The service does not
// derive Hebrew-calendar astronomy itself; it consumes a pre-computed stream
// of dated events, each tagged with a base holiday name and an erev flag,
// sourced from hebcal.com data embedded at build time.
package hebcal

import (
	"time"

	"github.com/luachhq/luach-api/pkg/dates"
)

// Event is one dated calendar event. Erev events carry the "Erev " prefixed
// base name and mark the evening before a holiday's first day.
type Event struct {
	BaseName string
	Date     string
	IsEve    bool
}

// Source produces lunisolar calendar events for a civil-year range.
type Source interface {
	Events(startYear, numYears int, inIsrael bool) []Event
}

// StaticSource serves the embedded dataset. The dataset is diaspora-shaped;
// Israel observance differences are the resolver's concern, so the locale
// flag only exists to honour the source contract.
type StaticSource struct{}

// NewStaticSource returns the embedded event source.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// Events expands the embedded holiday spans into per-day events and returns
// those whose date falls inside [startYear, startYear+numYears).
func (s *StaticSource) Events(startYear, numYears int, inIsrael bool) []Event {
	_ = inIsrael
	endYear := startYear + numYears

	var out []Event
	emit := func(base string, t time.Time, eve bool) {
		if y := t.Year(); y < startYear || y >= endYear {
			return
		}
		out = append(out, Event{BaseName: base, Date: dates.Format(t), IsEve: eve})
	}

	for _, sp := range dataset {
		start, err := dates.Parse(sp.start)
		if err != nil {
			continue
		}
		end, err := dates.Parse(sp.end)
		if err != nil {
			continue
		}
		first := start
		if sp.hasEve {
			emit("Erev "+sp.base, start, true)
			first = dates.AddDays(start, 1)
		}
		for t := first; !t.After(end); t = dates.AddDays(t, 1) {
			emit(sp.base, t, false)
		}
	}
	return out
}

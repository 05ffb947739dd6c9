// Package uscivil computes US federal holidays. Pure arithmetic: fixed
// month/day rules plus the nth-weekday and last-weekday primitives.
package uscivil

import (
	"time"

	"github.com/luachhq/luach-api/internal/models"
	"github.com/luachhq/luach-api/pkg/dates"
)

// Generate returns the eleven federal holidays observed in the given year.
// All are single-day events categorised us-federal.
func Generate(year int) []models.RawEvent {
	fixed := func(title string, month time.Month, day int) models.RawEvent {
		return single(title, time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
	}

	return []models.RawEvent{
		fixed("New Year's Day", time.January, 1),
		single("Martin Luther King Jr. Day", dates.NthWeekday(year, time.January, time.Monday, 3)),
		single("Presidents' Day", dates.NthWeekday(year, time.February, time.Monday, 3)),
		single("Memorial Day", dates.LastWeekday(year, time.May, time.Monday)),
		fixed("Juneteenth", time.June, 19),
		fixed("Independence Day", time.July, 4),
		single("Labor Day", dates.NthWeekday(year, time.September, time.Monday, 1)),
		single("Columbus Day", dates.NthWeekday(year, time.October, time.Monday, 2)),
		fixed("Veterans Day", time.November, 11),
		single("Thanksgiving", dates.NthWeekday(year, time.November, time.Thursday, 4)),
		fixed("Christmas Day", time.December, 25),
	}
}

func single(title string, t time.Time) models.RawEvent {
	d := dates.Format(t)
	return models.RawEvent{
		Title:    title,
		Start:    d,
		End:      d,
		Category: models.CategoryUSFederal,
	}
}

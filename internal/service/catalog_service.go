package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/luachhq/luach-api/internal/hebcal"
	"github.com/luachhq/luach-api/internal/models"
	"github.com/luachhq/luach-api/internal/uscivil"
	"github.com/luachhq/luach-api/pkg/dates"
	appErrors "github.com/luachhq/luach-api/pkg/errors"
)

// CatalogService resolves the holiday catalog: it unions calendar events per
// definition, merges date-adjacent days into occurrence segments, applies
// erev/sunset-shift start rules and Israel variants, and groups everything
// into Holiday records with next-occurrence projections. Catalogs are
// immutable snapshots keyed by locale and rebuilt wholesale, never patched.
type CatalogService struct {
	source      hebcal.Source
	cache       *CacheService
	metrics     *MetricsService
	logger      *zap.Logger
	windowYears int
	nowFn       func() time.Time

	mu        sync.RWMutex
	snapshots map[models.Locale]catalogSnapshot
}

type catalogSnapshot struct {
	day      string
	holidays []models.Holiday
}

// NewCatalogService constructs the service. windowYears bounds the rolling
// resolution window starting at the current civil year.
func NewCatalogService(source hebcal.Source, cache *CacheService, metrics *MetricsService, logger *zap.Logger, windowYears int) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if windowYears <= 0 {
		windowYears = 6
	}
	return &CatalogService{
		source:      source,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
		windowYears: windowYears,
		nowFn:       time.Now,
		snapshots:   make(map[models.Locale]catalogSnapshot),
	}
}

// ParseLocale validates a locale query value, defaulting the empty string to
// the diaspora observance.
func ParseLocale(raw string) (models.Locale, error) {
	switch models.Locale(raw) {
	case "":
		return models.LocaleDiaspora, nil
	case models.LocaleDiaspora:
		return models.LocaleDiaspora, nil
	case models.LocaleIsrael:
		return models.LocaleIsrael, nil
	}
	return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown locale %q", raw))
}

// Resolve returns the catalog snapshot for the locale, building it when the
// snapshot is missing or stale (built for a previous day). The returned slice
// is a read-only snapshot shared between callers.
func (s *CatalogService) Resolve(ctx context.Context, locale models.Locale) ([]models.Holiday, error) {
	today := dates.Midnight(s.nowFn())
	day := dates.Format(today)

	s.mu.RLock()
	snap, ok := s.snapshots[locale]
	s.mu.RUnlock()
	if ok && snap.day == day {
		return snap.holidays, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if snap, ok := s.snapshots[locale]; ok && snap.day == day {
		return snap.holidays, nil
	}

	key := fmt.Sprintf("catalog:%s:%s", locale, day)
	var holidays []models.Holiday
	if s.cache.Get(ctx, key, &holidays) {
		s.snapshots[locale] = catalogSnapshot{day: day, holidays: holidays}
		return holidays, nil
	}

	start := time.Now()
	holidays = s.build(locale == models.LocaleIsrael, today)
	if s.metrics != nil {
		s.metrics.ObserveCatalogRebuild(string(locale), len(holidays), time.Since(start))
	}
	s.logger.Info("catalog rebuilt",
		zap.String("locale", string(locale)),
		zap.String("as_of", day),
		zap.Int("holidays", len(holidays)),
	)

	s.cache.Set(ctx, key, holidays, 0)
	s.snapshots[locale] = catalogSnapshot{day: day, holidays: holidays}
	return holidays, nil
}

// Upcoming returns the first limit holidays that have not started yet.
func (s *CatalogService) Upcoming(ctx context.Context, locale models.Locale, limit int) ([]models.Holiday, error) {
	holidays, err := s.Resolve(ctx, locale)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}
	out := make([]models.Holiday, 0, limit)
	for _, h := range holidays {
		if h.DaysUntil < 0 {
			continue
		}
		out = append(out, h)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// Rebuild discards all snapshots and cached entries and rebuilds both
// locales. Invoked at startup and by the nightly refresh job.
func (s *CatalogService) Rebuild(ctx context.Context) {
	s.mu.Lock()
	s.snapshots = make(map[models.Locale]catalogSnapshot)
	s.mu.Unlock()
	s.cache.Invalidate(ctx, "catalog:*")

	for _, locale := range models.Locales() {
		if _, err := s.Resolve(ctx, locale); err != nil {
			s.logger.Error("catalog rebuild failed", zap.String("locale", string(locale)), zap.Error(err))
		}
	}
}

// holidayGroup accumulates the occurrences of one logical title before the
// upcoming filter runs.
type holidayGroup struct {
	title       string
	category    models.Category
	hebrew      string
	description string
	occurrences []models.Occurrence
}

func (s *CatalogService) build(inIsrael bool, today time.Time) []models.Holiday {
	startYear := today.Year()

	byBase := make(map[string][]hebcal.Event)
	for _, ev := range s.source.Events(startYear, s.windowYears, inIsrael) {
		byBase[ev.BaseName] = append(byBase[ev.BaseName], ev)
	}

	var order []string
	groups := make(map[string]*holidayGroup)
	add := func(title string, category models.Category, hebrew, description string, occ models.Occurrence) {
		g, ok := groups[title]
		if !ok {
			g = &holidayGroup{title: title, category: category, hebrew: hebrew, description: description}
			groups[title] = g
			order = append(order, title)
		}
		g.occurrences = append(g.occurrences, occ)
	}

	for _, def := range jewishHolidayDefinitions {
		variant := def.Israel
		if inIsrael && variant != nil && variant.Excluded {
			continue
		}

		// Union the (date, isEve) pairs of every constituent base name.
		// The eve flag is sticky: once a date is an eve, it stays one.
		eveByDate := make(map[string]bool)
		for _, base := range def.BaseNames {
			for _, ev := range byBase[base] {
				eveByDate[ev.Date] = eveByDate[ev.Date] || ev.IsEve
			}
		}
		if len(eveByDate) == 0 {
			// Base names absent from the window: not observed, not an error.
			continue
		}

		days := make([]time.Time, 0, len(eveByDate))
		for d := range eveByDate {
			if t, err := dates.Parse(d); err == nil {
				days = append(days, t)
			}
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

		title, hebrew := def.Title, def.Hebrew
		endDelta := 0
		if inIsrael && variant != nil {
			if variant.Title != "" {
				title = variant.Title
			}
			if variant.Hebrew != "" {
				hebrew = variant.Hebrew
			}
			endDelta = variant.EndDelta
		}

		for _, seg := range segmentDays(days) {
			occ := resolveSegment(seg, eveByDate, def.Category, endDelta)
			add(title, def.Category, hebrew, def.Description, occ)
		}
	}

	for year := startYear; year < startYear+s.windowYears; year++ {
		for _, ev := range uscivil.Generate(year) {
			add(ev.Title, ev.Category, ev.Hebrew, ev.Description, models.Occurrence{
				Start:        ev.Start,
				End:          ev.End,
				DisplayStart: ev.Start,
				DisplayEnd:   ev.End,
			})
		}
	}

	todayISO := dates.Format(today)
	holidays := make([]models.Holiday, 0, len(order))
	for _, title := range order {
		g := groups[title]
		upcoming := make([]models.Occurrence, 0, len(g.occurrences))
		for _, occ := range g.occurrences {
			if occ.End >= todayISO {
				upcoming = append(upcoming, occ)
			}
		}
		if len(upcoming) == 0 {
			// Nothing left in the window: the holiday goes invisible.
			continue
		}
		sort.Slice(upcoming, func(i, j int) bool { return upcoming[i].Start < upcoming[j].Start })
		holidays = append(holidays, buildHoliday(g, upcoming, today))
	}

	sort.SliceStable(holidays, func(i, j int) bool { return holidays[i].DaysUntil < holidays[j].DaysUntil })
	return holidays
}

// segmentDays partitions sorted days into maximal runs where consecutive
// days are at most one day apart. Each run becomes one occurrence segment.
func segmentDays(days []time.Time) [][]time.Time {
	var segments [][]time.Time
	var current []time.Time
	for _, d := range days {
		if len(current) > 0 && dates.DaysBetween(current[len(current)-1], d) > 1 {
			segments = append(segments, current)
			current = nil
		}
		current = append(current, d)
	}
	if len(current) > 0 {
		segments = append(segments, current)
	}
	return segments
}

// resolveSegment derives one occurrence from a segment. The raw start is the
// earliest eve-flagged day when one exists; otherwise sunset-shift categories
// anchor to the day before the segment and fast days to the segment itself.
// The display start re-applies the sunset shift on top of the raw start.
func resolveSegment(seg []time.Time, eveByDate map[string]bool, category models.Category, endDelta int) models.Occurrence {
	first, last := seg[0], seg[len(seg)-1]

	start := first
	if eve := firstEve(seg, eveByDate); eve != nil {
		start = *eve
	} else if category.SunsetShift() {
		start = dates.AddDays(first, -1)
	}

	displayStart := start
	if category.SunsetShift() {
		displayStart = dates.AddDays(start, 1)
	}

	end := dates.AddDays(last, endDelta)
	return models.Occurrence{
		Start:        dates.Format(start),
		End:          dates.Format(end),
		DisplayStart: dates.Format(displayStart),
		DisplayEnd:   dates.Format(end),
	}
}

// firstEve returns the earliest eve-flagged day of the segment, nil when the
// segment has none.
func firstEve(seg []time.Time, eveByDate map[string]bool) *time.Time {
	for _, d := range seg {
		if eveByDate[dates.Format(d)] {
			d := d
			return &d
		}
	}
	return nil
}

func buildHoliday(g *holidayGroup, upcoming []models.Occurrence, today time.Time) models.Holiday {
	next := upcoming[0]
	nextEnd, _ := dates.Parse(next.End)
	nextDisplayStart, _ := dates.Parse(next.DisplayStart)
	nextDisplayEnd, _ := dates.Parse(next.DisplayEnd)

	daysUntil := dates.DaysBetween(today, nextDisplayStart)
	daysUntilEnd := dates.DaysBetween(today, nextEnd)

	return models.Holiday{
		Title:            g.title,
		Category:         g.category,
		Hebrew:           g.hebrew,
		Description:      g.description,
		Style:            g.category.Style(),
		Occurrences:      upcoming,
		NextStart:        next.Start,
		NextEnd:          next.End,
		NextDisplayStart: next.DisplayStart,
		NextDisplayEnd:   next.DisplayEnd,
		NextStartLong:    dates.FormatLong(nextDisplayStart),
		NextStartShort:   dates.FormatShort(nextDisplayStart),
		NextStartDisplay: dates.FormatDisplay(nextDisplayStart),
		DayCount:         dates.DaySpan(nextDisplayStart, nextDisplayEnd),
		DaysUntil:        daysUntil,
		DaysUntilEnd:     daysUntilEnd,
		CountdownLabel:   countdownLabel(daysUntil, daysUntilEnd),
	}
}

// countdownLabel mirrors the relative labels users see: a holiday currently
// in progress wins over the day-count phrasing.
func countdownLabel(daysUntil, daysUntilEnd int) string {
	switch {
	case daysUntil <= 0 && daysUntilEnd >= 0:
		return "Happening now"
	case daysUntil == 0:
		return "Today"
	case daysUntil == 1:
		return "Tomorrow"
	case daysUntil < 0:
		return "Past"
	default:
		return fmt.Sprintf("%d days away", daysUntil)
	}
}

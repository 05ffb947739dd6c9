package models

// Category classifies a holiday for styling and search ranking.
type Category string

const (
	CategoryMajor     Category = "major"
	CategoryMinor     Category = "minor"
	CategoryFast      Category = "fast"
	CategoryModern    Category = "modern"
	CategoryUSFederal Category = "us-federal"
)

var categoryWeights = map[Category]int{
	CategoryMajor:     0,
	CategoryFast:      1,
	CategoryModern:    2,
	CategoryMinor:     3,
	CategoryUSFederal: 4,
}

// Weight returns the search/sort priority of the category; lower sorts first.
// Unknown categories sink to the bottom.
func (c Category) Weight() int {
	if w, ok := categoryWeights[c]; ok {
		return w
	}
	return 5
}

// SunsetShift reports whether holidays of this category begin at the
// preceding sunset, which shifts the displayed start one day past the raw
// start. Fast days and US federal holidays begin at their own civil date.
func (c Category) SunsetShift() bool {
	return c == CategoryMajor || c == CategoryMinor || c == CategoryModern
}

// Jewish reports whether the category belongs to the Jewish calendar.
func (c Category) Jewish() bool {
	return c != CategoryUSFederal
}

// Style carries the display treatment of a category.
type Style struct {
	Color      string `json:"color"`
	Background string `json:"background"`
	Label      string `json:"label"`
}

var categoryStyles = map[Category]Style{
	CategoryMajor:     {Color: "#2C3E6B", Background: "#E6EAF3", Label: "Major"},
	CategoryMinor:     {Color: "#2C3E6B", Background: "#E6EAF3", Label: "Minor"},
	CategoryFast:      {Color: "#8B3A3A", Background: "#FDF0F0", Label: "Fast Day"},
	CategoryModern:    {Color: "#2D6B4F", Background: "#EDF7F2", Label: "Modern"},
	CategoryUSFederal: {Color: "#7A4419", Background: "#FDF4EC", Label: "US Federal"},
}

// Style returns the display treatment for the category, falling back to the
// minor style for anything unrecognised.
func (c Category) Style() Style {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return categoryStyles[CategoryMinor]
}

// RawEvent is one dated instance of a holiday before grouping. Start and End
// are inclusive ISO dates.
type RawEvent struct {
	Title       string
	Start       string
	End         string
	Category    Category
	Hebrew      string
	Description string
}

// Occurrence is a resolved contiguous date span for one holiday. Start/End
// hold the calendar-defined span; DisplayStart/DisplayEnd the span adjusted
// for the sunset shift. Only the start ever shifts: DisplayEnd == End.
type Occurrence struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	DisplayStart string `json:"displayStart"`
	DisplayEnd   string `json:"displayEnd"`
}

// Holiday is the unit surfaced to callers: one logical holiday with every
// upcoming occurrence in the window plus denormalized fields for the nearest
// one. Catalogs are immutable snapshots; a Holiday is never mutated after the
// catalog build.
type Holiday struct {
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Hebrew      string   `json:"hebrew,omitempty"`
	Description string   `json:"description,omitempty"`
	Style       Style    `json:"style"`

	Occurrences []Occurrence `json:"occurrences"`

	NextStart        string `json:"nextStart"`
	NextEnd          string `json:"nextEnd"`
	NextDisplayStart string `json:"nextDisplayStart"`
	NextDisplayEnd   string `json:"nextDisplayEnd"`
	NextStartLong    string `json:"nextStartLong"`
	NextStartShort   string `json:"nextStartShort"`
	NextStartDisplay string `json:"nextStartDisplay"`

	DayCount       int    `json:"dayCount"`
	DaysUntil      int    `json:"daysUntil"`
	DaysUntilEnd   int    `json:"daysUntilEnd"`
	CountdownLabel string `json:"countdownLabel"`
}

// IsraelVariant describes how a holiday differs when observed in Israel.
type IsraelVariant struct {
	// Title and Hebrew replace the diaspora strings when non-empty.
	Title  string
	Hebrew string
	// EndDelta is added to every occurrence end (negative shortens).
	EndDelta int
	// Excluded drops the holiday from Israel catalogs entirely.
	Excluded bool
}

// JewishHolidayDefinition maps one or more event-source base names onto a
// single logical holiday. A definition whose base names never appear in the
// event stream simply yields no occurrences.
type JewishHolidayDefinition struct {
	Title       string
	Category    Category
	Hebrew      string
	Description string
	BaseNames   []string
	Israel      *IsraelVariant
}

// Locale selects between the diaspora and Israel observance rules.
type Locale string

const (
	LocaleDiaspora Locale = "diaspora"
	LocaleIsrael   Locale = "israel"
)

// Locales lists every supported locale.
func Locales() []Locale {
	return []Locale{LocaleDiaspora, LocaleIsrael}
}

package service

import (
	"context"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/luachhq/luach-api/internal/ics"
	"github.com/luachhq/luach-api/internal/models"
	appErrors "github.com/luachhq/luach-api/pkg/errors"
	"github.com/luachhq/luach-api/pkg/export"
)

// CalendarEventRequest names one occurrence to export as an ICS file or a
// Google Calendar link. Dates are inclusive ISO days.
type CalendarEventRequest struct {
	Title string `form:"title" validate:"required,max=200"`
	Start string `form:"start" validate:"required,datetime=2006-01-02"`
	End   string `form:"end" validate:"required,datetime=2006-01-02"`
}

// CalendarFile is a rendered ICS download.
type CalendarFile struct {
	Filename string
	Body     []byte
}

// ExportService renders occurrences and catalog tables into downloadable
// formats.
type ExportService struct {
	catalog  *CatalogService
	validate *validator.Validate
	logger   *zap.Logger
	nowFn    func() time.Time
}

// NewExportService constructs the service.
func NewExportService(catalog *CatalogService, validate *validator.Validate, logger *zap.Logger) *ExportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{catalog: catalog, validate: validate, logger: logger, nowFn: time.Now}
}

func (s *ExportService) checkRequest(req CalendarEventRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export request")
	}
	if req.End < req.Start {
		return appErrors.Clone(appErrors.ErrValidation, "end date precedes start date")
	}
	return nil
}

// ICS renders the occurrence as an iCalendar attachment. The output is
// deterministic apart from DTSTAMP.
func (s *ExportService) ICS(req CalendarEventRequest) (*CalendarFile, error) {
	if err := s.checkRequest(req); err != nil {
		return nil, err
	}
	body, err := ics.Encode(req.Title, req.Start, req.End, s.nowFn())
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode calendar")
	}
	return &CalendarFile{
		Filename: ics.Filename(req.Title, req.Start, req.End),
		Body:     []byte(body),
	}, nil
}

// Link builds the Google Calendar deep link for the occurrence.
func (s *ExportService) Link(req CalendarEventRequest) (string, error) {
	if err := s.checkRequest(req); err != nil {
		return "", err
	}
	link, err := ics.GoogleCalendarLink(req.Title, req.Start, req.End)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "build calendar link")
	}
	return link, nil
}

// CSV renders the locale's upcoming catalog as a CSV download.
func (s *ExportService) CSV(ctx context.Context, locale models.Locale) ([]byte, error) {
	holidays, err := s.catalog.Resolve(ctx, locale)
	if err != nil {
		return nil, err
	}
	data, err := export.CSV(catalogTable(holidays, true))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv")
	}
	return data, nil
}

// PDF renders the locale's upcoming catalog as a PDF download. Hebrew columns
// are left out because the PDF fonts only cover Latin text.
func (s *ExportService) PDF(ctx context.Context, locale models.Locale) ([]byte, error) {
	holidays, err := s.catalog.Resolve(ctx, locale)
	if err != nil {
		return nil, err
	}
	data, err := export.PDF(catalogTable(holidays, false), "Upcoming Holidays")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf")
	}
	return data, nil
}

func catalogTable(holidays []models.Holiday, withHebrew bool) export.Table {
	columns := []string{"Title", "Category", "Starts", "Ends", "Days", "Countdown"}
	if withHebrew {
		columns = append(columns, "Hebrew")
	}
	rows := make([][]string, 0, len(holidays))
	for _, h := range holidays {
		row := []string{
			h.Title,
			string(h.Category),
			h.NextDisplayStart,
			h.NextDisplayEnd,
			strconv.Itoa(h.DayCount),
			h.CountdownLabel,
		}
		if withHebrew {
			row = append(row, h.Hebrew)
		}
		rows = append(rows, row)
	}
	return export.Table{Columns: columns, Rows: rows}
}

package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luachhq/luach-api/internal/hebcal"
	"github.com/luachhq/luach-api/internal/models"
	appErrors "github.com/luachhq/luach-api/pkg/errors"
)

func newTestExport(t *testing.T) *ExportService {
	t.Helper()
	catalog := newTestCatalog(t, hebcal.NewStaticSource(), "2025-09-15")
	svc := NewExportService(catalog, nil, nil)
	svc.nowFn = func() time.Time {
		return time.Date(2025, time.September, 15, 8, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestExportICS(t *testing.T) {
	svc := newTestExport(t)
	file, err := svc.ICS(CalendarEventRequest{Title: "Purim", Start: "2026-03-02", End: "2026-03-03"})
	require.NoError(t, err)

	assert.Equal(t, "purim-2026-03-02-to-2026-03-03.ics", file.Filename)
	body := string(file.Body)
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "SUMMARY:Purim")
	assert.Contains(t, body, "DTSTART;VALUE=DATE:20260302")
	assert.Contains(t, body, "DTEND;VALUE=DATE:20260304")
}

func TestExportICSValidation(t *testing.T) {
	svc := newTestExport(t)

	cases := []CalendarEventRequest{
		{Title: "", Start: "2026-03-02", End: "2026-03-03"},
		{Title: "Purim", Start: "03/02/2026", End: "2026-03-03"},
		{Title: "Purim", Start: "2026-03-02", End: ""},
		{Title: "Purim", Start: "2026-03-03", End: "2026-03-02"},
	}
	for _, req := range cases {
		_, err := svc.ICS(req)
		require.Error(t, err)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	}
}

func TestExportLink(t *testing.T) {
	svc := newTestExport(t)
	link, err := svc.Link(CalendarEventRequest{Title: "Yom Kippur", Start: "2025-10-02", End: "2025-10-02"})
	require.NoError(t, err)
	assert.Equal(t,
		"https://calendar.google.com/calendar/render?action=TEMPLATE&text=Yom%20Kippur&dates=20251002/20251003",
		link)
}

func TestExportCSV(t *testing.T) {
	svc := newTestExport(t)
	data, err := svc.CSV(context.Background(), models.LocaleDiaspora)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Greater(t, len(lines), 1)
	assert.Equal(t, "Title,Category,Starts,Ends,Days,Countdown,Hebrew", strings.TrimSpace(lines[0]))
	assert.Contains(t, string(data), "Rosh Hashana")
	assert.Contains(t, string(data), "2025-09-23")
}

func TestExportPDF(t *testing.T) {
	svc := newTestExport(t)
	data, err := svc.PDF(context.Background(), models.LocaleDiaspora)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

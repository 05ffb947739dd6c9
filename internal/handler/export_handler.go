package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luachhq/luach-api/internal/models"
	"github.com/luachhq/luach-api/internal/service"
	"github.com/luachhq/luach-api/pkg/response"
)

type exporter interface {
	ICS(req service.CalendarEventRequest) (*service.CalendarFile, error)
	Link(req service.CalendarEventRequest) (string, error)
	CSV(ctx context.Context, locale models.Locale) ([]byte, error)
	PDF(ctx context.Context, locale models.Locale) ([]byte, error)
}

// ExportHandler serves calendar and table downloads.
type ExportHandler struct {
	service exporter
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exporter) *ExportHandler {
	return &ExportHandler{service: service}
}

func eventRequest(c *gin.Context) service.CalendarEventRequest {
	return service.CalendarEventRequest{
		Title: c.Query("title"),
		Start: c.Query("start"),
		End:   c.Query("end"),
	}
}

// ICS godoc
// @Summary Download one occurrence as an iCalendar file
// @Tags Export
// @Produce text/calendar
// @Param title query string true "Event title"
// @Param start query string true "Inclusive start date (YYYY-MM-DD)"
// @Param end query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {string} string
// @Router /export/ics [get]
func (h *ExportHandler) ICS(c *gin.Context) {
	file, err := h.service.ICS(eventRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", file.Body)
}

// Link godoc
// @Summary Google Calendar deep link for one occurrence
// @Tags Export
// @Produce json
// @Param title query string true "Event title"
// @Param start query string true "Inclusive start date (YYYY-MM-DD)"
// @Param end query string true "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /export/link [get]
func (h *ExportHandler) Link(c *gin.Context) {
	link, err := h.service.Link(eventRequest(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"url": link})
}

// CSV godoc
// @Summary Download the upcoming catalog as CSV
// @Tags Export
// @Produce text/csv
// @Param locale query string false "Observance locale (diaspora or israel)"
// @Success 200 {string} string
// @Router /export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	locale, err := localeParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.service.CSV(c.Request.Context(), locale)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "holidays-"+string(locale)+".csv"))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// PDF godoc
// @Summary Download the upcoming catalog as PDF
// @Tags Export
// @Produce application/pdf
// @Param locale query string false "Observance locale (diaspora or israel)"
// @Success 200 {string} string
// @Router /export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	locale, err := localeParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.service.PDF(c.Request.Context(), locale)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "holidays-"+string(locale)+".pdf"))
	c.Data(http.StatusOK, "application/pdf", data)
}

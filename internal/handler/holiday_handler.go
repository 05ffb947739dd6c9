package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/luachhq/luach-api/internal/models"
	"github.com/luachhq/luach-api/internal/service"
	"github.com/luachhq/luach-api/pkg/response"
)

type catalogReader interface {
	Resolve(ctx context.Context, locale models.Locale) ([]models.Holiday, error)
	Upcoming(ctx context.Context, locale models.Locale, limit int) ([]models.Holiday, error)
}

type holidaySearcher interface {
	Search(ctx context.Context, locale models.Locale, query string) ([]models.Holiday, error)
}

// HolidayHandler serves the holiday catalog endpoints.
type HolidayHandler struct {
	catalog       catalogReader
	search        holidaySearcher
	upcomingLimit int
}

// NewHolidayHandler constructs the handler.
func NewHolidayHandler(catalog catalogReader, search holidaySearcher, upcomingLimit int) *HolidayHandler {
	if upcomingLimit <= 0 {
		upcomingLimit = 5
	}
	return &HolidayHandler{catalog: catalog, search: search, upcomingLimit: upcomingLimit}
}

func localeParam(c *gin.Context) (models.Locale, error) {
	return service.ParseLocale(strings.TrimSpace(c.Query("locale")))
}

// List godoc
// @Summary Resolved holiday catalog
// @Tags Holidays
// @Produce json
// @Param locale query string false "Observance locale (diaspora or israel)"
// @Success 200 {object} response.Envelope
// @Router /holidays [get]
func (h *HolidayHandler) List(c *gin.Context) {
	locale, err := localeParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	holidays, err := h.catalog.Resolve(c.Request.Context(), locale)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, holidays, map[string]interface{}{
		"locale": string(locale),
		"count":  len(holidays),
	})
}

// Upcoming godoc
// @Summary Nearest upcoming holidays
// @Tags Holidays
// @Produce json
// @Param locale query string false "Observance locale (diaspora or israel)"
// @Param limit query int false "Maximum holidays to return"
// @Success 200 {object} response.Envelope
// @Router /holidays/upcoming [get]
func (h *HolidayHandler) Upcoming(c *gin.Context) {
	locale, err := localeParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	limit := h.upcomingLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	holidays, err := h.catalog.Upcoming(c.Request.Context(), locale, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, holidays, map[string]interface{}{
		"locale": string(locale),
		"count":  len(holidays),
	})
}

// Search godoc
// @Summary Search holidays by name, alias or Hebrew text
// @Tags Holidays
// @Produce json
// @Param q query string true "Search query"
// @Param locale query string false "Observance locale (diaspora or israel)"
// @Success 200 {object} response.Envelope
// @Router /holidays/search [get]
func (h *HolidayHandler) Search(c *gin.Context) {
	locale, err := localeParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	results, err := h.search.Search(c.Request.Context(), locale, c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, results, map[string]interface{}{
		"locale": string(locale),
		"count":  len(results),
	})
}

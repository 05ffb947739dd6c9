package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API surface under the given router group.
func RegisterRoutes(rg *gin.RouterGroup, holidays *HolidayHandler, exports *ExportHandler) {
	rg.GET("/holidays", holidays.List)
	rg.GET("/holidays/upcoming", holidays.Upcoming)
	rg.GET("/holidays/search", holidays.Search)

	rg.GET("/export/ics", exports.ICS)
	rg.GET("/export/link", exports.Link)
	rg.GET("/export/csv", exports.CSV)
	rg.GET("/export/pdf", exports.PDF)
}

// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"github.com/Narug1fps/cardapio-sub000/config"
	"github.com/Narug1fps/cardapio-sub000/services"
	"github.com/Narug1fps/cardapio-sub000/utils"
	"github.com/gin-gonic/gin"
)

const reportDateLayout = "2006-01-02"

// GetReports serves GET /api/reports?type=stats|range&startDate&endDate.
// type=stats computes today's report live; type=range returns one report
// per day over [startDate, endDate].
func GetReports(c *gin.Context) {
	reportService := services.NewReportService(config.DB)

	switch c.DefaultQuery("type", "stats") {
	case "stats":
		report, err := reportService.DailyReport(time.Now())
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)

	case "range":
		startDate, err := time.Parse(reportDateLayout, c.Query("startDate"))
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid startDate, expected YYYY-MM-DD")
			return
		}
		endDate, err := time.Parse(reportDateLayout, c.Query("endDate"))
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid endDate, expected YYYY-MM-DD")
			return
		}

		reports, err := reportService.RangeReport(startDate, endDate)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, reports)

	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown report type")
	}
}

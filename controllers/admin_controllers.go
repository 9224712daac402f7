package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/bar-app/services"
	"github.com/yeremiapane/bar-app/utils"
)

// AdminController serves the manager's financial views.
type AdminController struct {
	Bar *services.Bar
}

func NewAdminController(bar *services.Bar) *AdminController {
	return &AdminController{Bar: bar}
}

// GetDashboardStats -> ringkasan hari ini termasuk meja terbuka
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Daily stats", ac.Bar.DailyStats())
}

// GetDailySummary -> ?date=YYYY-MM-DD, default hari ini
func (ac *AdminController) GetDailySummary(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Daily summary", ac.Bar.FinancialSummaryForDate(c.Query("date")))
}

// GetRangeSummary -> ?start=&end=
func (ac *AdminController) GetRangeSummary(c *gin.Context) {
	summary := ac.Bar.FinancialSummaryForRange(c.Query("start"), c.Query("end"))
	utils.RespondJSON(c, http.StatusOK, "Range summary", summary)
}

// GetDailySeries -> satu ringkasan per hari
func (ac *AdminController) GetDailySeries(c *gin.Context) {
	series, err := ac.Bar.DailySeries(c.Query("start"), c.Query("end"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Daily series", series)
}

// ExportCSV
func (ac *AdminController) ExportCSV(c *gin.Context) {
	summary := ac.Bar.FinancialSummaryForRange(c.Query("start"), c.Query("end"))
	series, err := ac.Bar.DailySeries(summary.StartDate, summary.EndDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteFinanceCSV(&buf, series); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filename := fmt.Sprintf("financeiro-%s-%s.csv", summary.StartDate, summary.EndDate)
	utils.RespondFile(c, "text/csv; charset=utf-8", filename, false, buf.Bytes())
}

// ExportPDF
func (ac *AdminController) ExportPDF(c *gin.Context) {
	summary := ac.Bar.FinancialSummaryForRange(c.Query("start"), c.Query("end"))
	series, err := ac.Bar.DailySeries(summary.StartDate, summary.EndDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.WriteFinancePDF(&buf, summary, series); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filename := fmt.Sprintf("financeiro-%s-%s.pdf", summary.StartDate, summary.EndDate)
	utils.RespondFile(c, "application/pdf", filename, false, buf.Bytes())
}

package api

import (
	"fmt"
	"net/http"

	"auracash/middleware"
	"auracash/models"
	"auracash/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler monthly summary and exports
type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// ReportView reports page payload
type ReportView struct {
	Months []models.MonthSummary `json:"months"`
}

// Summary per-month totals
// @Summary Monthly report
// @Description Income, expense and balance per month, newest first.
// @Tags reports
// @Produce json
// @Success 200 {object} Response{data=ReportView}
// @Router /relatorios [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	months, err := h.reports.MonthlySummary(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, ReportView{Months: months})
}

// Export downloads the ledger
// @Summary Export transactions
// @Description Full ledger as an Excel workbook or CSV file.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param formato query string false "xlsx (default) or csv"
// @Success 200 {file} file
// @Failure 400 {object} Response
// @Router /relatorios/exportar [get]
func (h *ReportHandler) Export(c *gin.Context) {
	out, err := h.reports.Export(c.Request.Context(), middleware.GetCurrentUserID(c), c.Query("formato"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", out.Filename))
	c.Data(http.StatusOK, out.ContentType, out.Data)
}

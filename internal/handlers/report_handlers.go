package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Johnmalala/fedhaplus-sub001/internal/export"
	"github.com/Johnmalala/fedhaplus-sub001/internal/models"
	"github.com/Johnmalala/fedhaplus-sub001/internal/services"
	"github.com/Johnmalala/fedhaplus-sub001/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves the printable reports as JSON tables or downloadable
// PDF/XLSX exports.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

type reportBuilder func(ctx context.Context, businessID uuid.UUID, now time.Time) (*models.ReportTable, error)

// GetSalesReport generates the sales report for a business.
func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	h.respondReport(c, h.reportService.SalesReport)
}

// GetFeeReport generates the school fee report for a business.
func (h *ReportHandler) GetFeeReport(c *gin.Context) {
	h.respondReport(c, h.reportService.FeeReport)
}

// GetInventoryReport generates the inventory report for a business.
func (h *ReportHandler) GetInventoryReport(c *gin.Context) {
	h.respondReport(c, h.reportService.InventoryReport)
}

// respondReport builds a report table and renders it in the requested
// format: json (default), pdf, or xlsx.
func (h *ReportHandler) respondReport(c *gin.Context, build reportBuilder) {
	businessID, err := uuid.Parse(c.Param("business_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid business ID format.", err.Error()))
		return
	}

	table, err := build(c.Request.Context(), businessID, time.Now())
	if err != nil {
		utils.LogError(err, "respondReport: Failed to build report")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate report.", "Internal error"))
		return
	}

	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		c.JSON(http.StatusOK, table)
	case "pdf":
		c.Header("Content-Type", "application/pdf")
		c.Header("Content-Disposition", "attachment; filename="+table.Filename("pdf"))
		if err := export.WritePDF(c.Writer, table); err != nil {
			utils.LogError(err, "respondReport: Failed to write PDF")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		}
	case "xlsx":
		c.Header("Content-Type", xlsxContentType)
		c.Header("Content-Disposition", "attachment; filename="+table.Filename("xlsx"))
		if err := export.WriteXLSX(c.Writer, table); err != nil {
			utils.LogError(err, "respondReport: Failed to write XLSX")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate workbook"})
		}
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Unsupported format. Use json, pdf or xlsx.", format))
	}
}

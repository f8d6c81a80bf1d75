package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Johnmalala/fedhaplus-sub001/internal/repositories"
	"github.com/Johnmalala/fedhaplus-sub001/internal/services"
	"github.com/Johnmalala/fedhaplus-sub001/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DashboardHandler serves the dashboard summary tiles.
type DashboardHandler struct {
	statsService services.StatsService
	businessRepo repositories.BusinessRepository
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ss services.StatsService, br repositories.BusinessRepository) *DashboardHandler {
	return &DashboardHandler{statsService: ss, businessRepo: br}
}

// GetBusinessStats returns the aggregated dashboard summary for a business.
// The optional "at" query parameter (RFC 3339) pins the reference instant;
// it defaults to the current wall-clock time.
func (h *DashboardHandler) GetBusinessStats(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("business_id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid business ID format.", err.Error()))
		return
	}

	refTime := time.Now()
	if at := c.Query("at"); at != "" {
		refTime, err = time.Parse(time.RFC3339, at)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid 'at' timestamp. Use RFC 3339.", err.Error()))
			return
		}
	}

	business, err := h.businessRepo.GetBusinessByID(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Business not found.", ""))
			return
		}
		utils.LogError(err, "GetBusinessStats: Failed to look up business")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load business.", "Internal error"))
		return
	}

	summary := h.statsService.GetBusinessStats(c.Request.Context(), businessID, business.BusinessType, refTime)

	c.JSON(http.StatusOK, gin.H{
		"business_id":   business.ID,
		"business_name": business.Name,
		"business_type": business.BusinessType,
		"stats":         summary,
	})
}

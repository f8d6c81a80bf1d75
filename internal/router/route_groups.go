package router

import (
	"github.com/Johnmalala/fedhaplus-sub001/internal/handlers"
	"github.com/Johnmalala/fedhaplus-sub001/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupDashboardRoutes sets up the dashboard summary routes.
func SetupDashboardRoutes(authenticatedGroup *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboardRoutes := authenticatedGroup.Group("/businesses/:business_id")
	dashboardRoutes.Use(middleware.RoleAuthMiddleware("Owner", "Manager", "Staff"))
	{
		dashboardRoutes.GET("/stats", dashboardHandler.GetBusinessStats)
	}
}

// SetupReportRoutes sets up the printable report routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/businesses/:business_id/reports")
	reportRoutes.Use(middleware.RoleAuthMiddleware("Owner", "Manager"))
	{
		reportRoutes.GET("/sales", reportHandler.GetSalesReport)
		reportRoutes.GET("/fees", reportHandler.GetFeeReport)
		reportRoutes.GET("/inventory", reportHandler.GetInventoryReport)
	}
}

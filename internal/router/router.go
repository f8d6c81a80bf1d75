package router

import (
	"database/sql"
	"time"

	"github.com/Johnmalala/fedhaplus-sub001/internal/handlers"
	"github.com/Johnmalala/fedhaplus-sub001/internal/middleware"
	"github.com/Johnmalala/fedhaplus-sub001/internal/repositories"
	"github.com/Johnmalala/fedhaplus-sub001/internal/services"

	"github.com/gin-gonic/gin"
)

// Options carries the runtime knobs the route tree needs.
type Options struct {
	// ReportingLocation is the fixed timezone month windows are resolved in.
	ReportingLocation *time.Location
	// StatsTimeout bounds a single aggregation's database work.
	StatsTimeout time.Duration
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, opts Options) {
	// Initialize Repositories
	businessRepo := repositories.NewBusinessRepository(db)
	revenueRepo := repositories.NewRevenueRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Initialize Services
	statsService := services.NewStatsService(revenueRepo, opts.ReportingLocation, opts.StatsTimeout)
	reportService := services.NewReportService(reportRepo)

	// Initialize Handlers
	dashboardHandler := handlers.NewDashboardHandler(statsService, businessRepo)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupDashboardRoutes(authenticated, dashboardHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}
}

package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Johnmalala/fedhaplus-sub001/internal/database"
	router_pkg "github.com/Johnmalala/fedhaplus-sub001/internal/router"
	"github.com/Johnmalala/fedhaplus-sub001/internal/services"
	"github.com/Johnmalala/fedhaplus-sub001/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	utils.InitLogger()

	// Load database configuration from environment variables
	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "fedha_plus_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "fedha_plus_password")
	dbName := utils.Getenv("DB_NAME", "fedha_plus_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
	dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "")

	database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode, dbSchemaPath)
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	// The reporting timezone is fixed per deployment so month windows are
	// unambiguous regardless of where the server runs.
	tzName := utils.Getenv("REPORTING_TIMEZONE", "Africa/Nairobi")
	reportingLoc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatalf("Invalid REPORTING_TIMEZONE %q: %v", tzName, err)
	}

	statsTimeout := services.DefaultStatsTimeout
	if raw := os.Getenv("STATS_TIMEOUT"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			log.Fatalf("Invalid STATS_TIMEOUT %q: want a positive number of seconds", raw)
		}
		statsTimeout = time.Duration(seconds) * time.Second
	}

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"} // Default origins
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	dbConn := database.GetDB()
	router_pkg.Setup(engine, dbConn, router_pkg.Options{
		ReportingLocation: reportingLoc,
		StatsTimeout:      statsTimeout,
	})

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port, "reporting_timezone": tzName})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}

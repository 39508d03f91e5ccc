// Package main is the entry point for the Employee Directory API
package main

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/dealsdray/empdirapi/internal/api"
	"github.com/dealsdray/empdirapi/internal/api/middleware"
	"github.com/dealsdray/empdirapi/internal/config"
	"github.com/dealsdray/empdirapi/internal/repository"
	"github.com/dealsdray/empdirapi/internal/service"
	"github.com/dealsdray/empdirapi/pkg/utils/zaplogger"
)

func main() {
	// Setup logger
	defer zaplogger.Sync()

	// startUpMessage
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Employee Directory API")

	// Load configuration
	cfg, err := config.Get()
	if err != nil {
		zaplogger.Fatal("failed to load configuration", zaplogger.Fields{"error": err.Error()})
	}
	zaplogger.Info("  * loaded")
	zaplogger.SetLogLevel(cfg.ServerLogLevel)

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware
	middleware.SetupLoggerMiddleware(e)
	middleware.SetupCORSMiddleware(e, cfg)

	// Connect to Postgres
	db, err := repository.ConnectPostgres(cfg)
	if err != nil {
		zaplogger.Fatal("failed to connect to Postgres", zaplogger.Fields{"error": err.Error()})
	}

	// Connect Redis
	redisClient, err := repository.ConnectRedis(cfg)
	if err != nil {
		zaplogger.Fatal("failed to connect to Redis", zaplogger.Fields{"error": err.Error()})
	}

	// Setup routes
	api.SetupRoutes(e, cfg, db, redisClient)

	// Setup and start cron jobs
	cronService := service.NewCronService(cfg, db, redisClient)
	cronService.Start()

	// Start the server
	startServer(e, cfg)
}

// startServer starts the Echo server on the specified port
func startServer(e *echo.Echo, cfg *config.Config) {
	port := cfg.ServerPort
	if port == "" {
		port = "3000"
	}
	startupMessage := fmt.Sprintf("%s %s Server [:%s] started", cfg.APIName, cfg.APIVersion, port)

	zaplogger.Info(config.SingleLine)
	zaplogger.Info(startupMessage)
	zaplogger.Info(config.SingleLine)
	e.Logger.Fatal(e.Start(":" + port))
}

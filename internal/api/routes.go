// Package api contains the API routes for the Employee Directory API
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dealsdray/empdirapi/internal/api/handlers"
	"github.com/dealsdray/empdirapi/internal/api/middleware"
	"github.com/dealsdray/empdirapi/internal/config"
	"github.com/dealsdray/empdirapi/internal/service"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes configures the routes for the API
func SetupRoutes(e *echo.Echo, cfg *config.Config, db *gorm.DB, redisClient *redis.Client) {

	// Liveness route
	e.GET("/", indexRoute)

	// Auth routes (unprotected)
	authService := service.NewAuthService(db, cfg)
	authHandler := handlers.NewAuthHandler(authService)
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)

	// Employee routes (protected)
	employeeService := service.NewEmployeeService(db, redisClient)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	employeeGroup := e.Group("/employees")
	employeeGroup.Use(middleware.AuthMiddleware(cfg))
	employeeGroup.GET("", employeeHandler.GetAllEmployees)
	employeeGroup.POST("", employeeHandler.CreateEmployee)
	employeeGroup.GET("/:id", employeeHandler.GetEmployeeByID)
	employeeGroup.PUT("/:id", employeeHandler.UpdateEmployee)
	employeeGroup.DELETE("/:id", employeeHandler.DeleteEmployee)
	employeeGroup.POST("/filter", employeeHandler.SearchEmployees)
	employeeGroup.POST("/email-check", employeeHandler.EmailCheck)
}

// indexRoute sets up the liveness route for the API
func indexRoute(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"msg": "Hello"})
}

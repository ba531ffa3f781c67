package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// NewApp builds the Fiber application serving the dashboard
func NewApp(dashboard *DashboardHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "AgriBridge Dashboard",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
		})
	})

	app.Get("/health/backend", dashboard.GetBackendHealth)

	app.Get("/", dashboard.GetDashboard)

	api := app.Group("/api")
	api.Get("/dashboard", dashboard.GetDashboardData)
	api.Get("/metrics", dashboard.GetLoaderMetrics)

	return app
}

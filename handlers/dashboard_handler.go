package handlers

import (
	"bytes"
	"time"

	"github.com/fenilmodi00/agribridge-dashboard/models"
	"github.com/fenilmodi00/agribridge-dashboard/services"
	"github.com/fenilmodi00/agribridge-dashboard/views"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	Loader   *services.DashboardLoader
	Health   *services.DashboardLoader
	Renderer *views.Renderer
}

// NewDashboardHandler serves pages from loader. Backend health checks use a
// separate loader so they never count towards the page fetch metrics.
func NewDashboardHandler(loader *services.DashboardLoader, renderer *views.Renderer) *DashboardHandler {
	return &DashboardHandler{Loader: loader, Health: loader.Probe(), Renderer: renderer}
}

// GetDashboard loads every resource and renders the HTML dashboard. Unavailable
// resources show their empty state, so the page itself is always served.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	snapshot := h.Loader.Load(c.UserContext())

	var page bytes.Buffer
	if err := h.Renderer.Render(&page, snapshot); err != nil {
		logrus.WithFields(logrus.Fields{
			"component":  "DashboardHandler",
			"mount_id":   snapshot.MountID,
			"request_id": c.Locals("requestid"),
		}).WithError(err).Error("Failed to render dashboard")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to render dashboard",
		})
	}

	c.Type("html", "utf-8")
	return c.Send(page.Bytes())
}

// GetDashboardData returns the loaded view state as JSON
func (h *DashboardHandler) GetDashboardData(c *fiber.Ctx) error {
	snapshot := h.Loader.Load(c.UserContext())
	return c.JSON(fiber.Map{
		"success": true,
		"data":    snapshot,
	})
}

// GetLoaderMetrics returns per-resource fetch counters
func (h *DashboardHandler) GetLoaderMetrics(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.Loader.Metrics.GetSnapshot(),
	})
}

// GetBackendHealth probes the four analytics resources and scores the backend
func (h *DashboardHandler) GetBackendHealth(c *fiber.Ctx) error {
	resources := fiber.Map{}
	healthScore := 0
	for update := range h.Health.Stream(c.UserContext()) {
		resources[string(update.Resource)] = update.State
		if update.State == models.SlotPopulated {
			healthScore++
		}
	}

	totalChecks := len(models.Resources)
	status := "unhealthy"
	switch {
	case healthScore == totalChecks:
		status = "healthy"
	case healthScore > 0:
		status = "degraded"
	}

	return c.JSON(fiber.Map{
		"status":    status,
		"passed":    healthScore,
		"total":     totalChecks,
		"resources": resources,
		"timestamp": time.Now().Unix(),
	})
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"studymate/resume-analyzer/internal/models"
	"studymate/resume-analyzer/internal/services"
)

type HealthHandler struct {
	reporter services.HealthReporter
	info     models.ServiceInfo
}

func NewHealthHandler(reporter services.HealthReporter, info models.ServiceInfo) *HealthHandler {
	return &HealthHandler{
		reporter: reporter,
		info:     info,
	}
}

// HandleHealth handles GET /health. It always answers 200; problems are
// reported in the body.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(h.reporter.Report(c.UserContext()))
}

// HandleInfo handles GET /
func (h *HealthHandler) HandleInfo(c *fiber.Ctx) error {
	return c.JSON(h.info)
}

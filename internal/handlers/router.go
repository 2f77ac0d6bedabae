package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Register mounts every route on app.
func Register(app *fiber.App, analyze *AnalyzeHandler, health *HealthHandler, search *SearchHandler) {
	app.Get("/", health.HandleInfo)
	app.Get("/health", health.HandleHealth)
	app.Post("/analyze-resume", analyze.HandleAnalyze)
	app.Get("/resumes/search", search.HandleSearch)
}

// ErrorHandler renders every error as {"error": ..., "code": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

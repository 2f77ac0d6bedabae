package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"studymate/resume-analyzer/internal/models"
	"studymate/resume-analyzer/internal/services"
)

type SearchHandler struct {
	index services.ResumeIndex
}

func NewSearchHandler(index services.ResumeIndex) *SearchHandler {
	return &SearchHandler{index: index}
}

// HandleSearch handles GET /resumes/search
func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	if !h.index.Enabled() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Resume search is not enabled")
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "q is required")
	}

	hits, err := h.index.Search(c.UserContext(), query, c.Query("user_id"), c.QueryInt("limit", 5))
	if err != nil {
		log.Errorf("❌ Resume search failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error: "+err.Error())
	}

	if hits == nil {
		hits = []models.SearchHit{}
	}

	return c.JSON(models.SearchResponse{
		Query:   query,
		Results: hits,
	})
}

package services

import (
	"context"
	"time"

	"studymate/resume-analyzer/internal/config"
	"studymate/resume-analyzer/internal/models"
	"studymate/resume-analyzer/internal/repositories"
)

const (
	ServiceName    = "resume-analyzer"
	ServiceTitle   = "StudyMate Resume Analyzer"
	ServiceVersion = "2.0.0"
)

type HealthReporter interface {
	Report(ctx context.Context) models.HealthReport
}

type healthReporter struct {
	repo      repositories.ResumeAnalysisRepository
	providers models.ProviderAvailability
	index     ResumeIndex
}

// NewHealthReporter snapshots provider availability from cfg; it is not
// re-checked per request.
func NewHealthReporter(cfg *config.Config, repo repositories.ResumeAnalysisRepository, index ResumeIndex) HealthReporter {
	return &healthReporter{
		repo: repo,
		providers: models.ProviderAvailability{
			GroqAvailable:   cfg.Providers.GroqEnabled(),
			GeminiAvailable: cfg.Providers.GeminiEnabled(),
			ClaudeAvailable: cfg.Providers.ClaudeEnabled(),
		},
		index: index,
	}
}

func (h *healthReporter) Report(ctx context.Context) models.HealthReport {
	database := h.repo.HealthCheck(ctx)

	status := "healthy"
	if database.Status == repositories.HealthUnhealthy {
		status = "degraded"
	}

	return models.HealthReport{
		Status:      status,
		Service:     ServiceName,
		Database:    database,
		AIProviders: h.providers,
		ResumeIndex: models.IndexStatus{Enabled: h.index.Enabled()},
		Timestamp:   time.Now().UTC(),
	}
}

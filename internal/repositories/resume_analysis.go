package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"studymate/resume-analyzer/internal/config"
	"studymate/resume-analyzer/internal/models"
)

const (
	HealthHealthy   = "healthy"
	HealthUnhealthy = "unhealthy"
	HealthDisabled  = "disabled"
)

var ErrPersistenceDisabled = errors.New("persistence is disabled")

type ResumeAnalysisRepository interface {
	Init(ctx context.Context) error
	Close() error
	SaveResumeAnalysis(ctx context.Context, userID string, data *models.ResumeAnalysisData) (string, error)
	HealthCheck(ctx context.Context) models.DatabaseHealth
	ListForIndexing(ctx context.Context, afterID string, limit int) ([]models.ResumeAnalysis, error)
}

type resumeAnalysisRepository struct {
	db     *gorm.DB
	driver string
}

// NewResumeAnalysisRepository wraps db. A nil db selects the disabled
// repository.
func NewResumeAnalysisRepository(db *gorm.DB, driver string) ResumeAnalysisRepository {
	if db == nil {
		return disabledRepository{}
	}
	return &resumeAnalysisRepository{db: db, driver: driver}
}

func (r *resumeAnalysisRepository) Init(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.ResumeAnalysis{}); err != nil {
		return fmt.Errorf("failed to migrate resume_analyses: %w", err)
	}
	return nil
}

func (r *resumeAnalysisRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

func (r *resumeAnalysisRepository) SaveResumeAnalysis(ctx context.Context, userID string, data *models.ResumeAnalysisData) (string, error) {
	record := &models.ResumeAnalysis{
		ID:              uuid.New(),
		UserID:          userID,
		Filename:        data.Filename,
		FileSize:        data.FileSize,
		FileKey:         data.FileKey,
		JobRole:         data.JobRole,
		ExtractedText:   data.ExtractedText,
		SkillGaps:       data.SkillGaps,
		Recommendations: data.Recommendations,
	}
	if data.AIAnalysis != nil {
		record.AIAnalysis = *data.AIAnalysis
		record.AIProvider = data.AIAnalysis.AIProvider
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return "", fmt.Errorf("failed to save resume analysis: %w", err)
	}

	return record.ID.String(), nil
}

func (r *resumeAnalysisRepository) HealthCheck(ctx context.Context) models.DatabaseHealth {
	health := models.DatabaseHealth{Status: HealthHealthy, Driver: r.driver}

	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		health.Status = HealthUnhealthy
		health.Error = err.Error()
	}

	return health
}

// ListForIndexing pages through analyses in ID order, starting after afterID.
func (r *resumeAnalysisRepository) ListForIndexing(ctx context.Context, afterID string, limit int) ([]models.ResumeAnalysis, error) {
	query := r.db.WithContext(ctx).Order("id ASC").Limit(limit)
	if afterID != "" {
		query = query.Where("id > ?", afterID)
	}

	var analyses []models.ResumeAnalysis
	if err := query.Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("failed to list resume analyses: %w", err)
	}
	return analyses, nil
}

type disabledRepository struct{}

func (disabledRepository) Init(context.Context) error { return nil }

func (disabledRepository) Close() error { return nil }

func (disabledRepository) SaveResumeAnalysis(context.Context, string, *models.ResumeAnalysisData) (string, error) {
	return "", ErrPersistenceDisabled
}

func (disabledRepository) HealthCheck(context.Context) models.DatabaseHealth {
	return models.DatabaseHealth{Status: HealthDisabled, Driver: config.DriverNone}
}

func (disabledRepository) ListForIndexing(context.Context, string, int) ([]models.ResumeAnalysis, error) {
	return nil, ErrPersistenceDisabled
}

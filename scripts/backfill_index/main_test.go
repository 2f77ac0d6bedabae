package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/resume-analyzer/internal/models"
	"studymate/resume-analyzer/internal/services"
)

type pagedRepository struct {
	rows    []models.ResumeAnalysis
	listErr error
	calls   int
}

func (r *pagedRepository) Init(context.Context) error { return nil }
func (r *pagedRepository) Close() error               { return nil }

func (r *pagedRepository) SaveResumeAnalysis(context.Context, string, *models.ResumeAnalysisData) (string, error) {
	return "", errors.New("not used")
}

func (r *pagedRepository) HealthCheck(context.Context) models.DatabaseHealth {
	return models.DatabaseHealth{}
}

func (r *pagedRepository) ListForIndexing(_ context.Context, afterID string, limit int) ([]models.ResumeAnalysis, error) {
	r.calls++
	if r.listErr != nil && r.calls > 1 {
		return nil, r.listErr
	}

	start := 0
	if afterID != "" {
		for i, row := range r.rows {
			if row.ID.String() == afterID {
				start = i + 1
			}
		}
	}
	end := min(start+limit, len(r.rows))
	return r.rows[start:end], nil
}

type recordingIndex struct {
	indexed []string
	failIDs map[string]bool
}

func (i *recordingIndex) Enabled() bool { return true }

func (i *recordingIndex) IndexResume(_ context.Context, resume services.IndexedResume) (int, error) {
	if i.failIDs[resume.ResumeID] {
		return 0, errors.New("embedding failed")
	}
	i.indexed = append(i.indexed, resume.ResumeID)
	return 1, nil
}

func (i *recordingIndex) Search(context.Context, string, string, int) ([]models.SearchHit, error) {
	return nil, nil
}

func (i *recordingIndex) Close() error { return nil }

func analyses(n int) []models.ResumeAnalysis {
	rows := make([]models.ResumeAnalysis, n)
	for i := range rows {
		rows[i] = models.ResumeAnalysis{ID: uuid.New(), UserID: "user-1", ExtractedText: "Go developer"}
	}
	return rows
}

func TestBackfill_IndexesEveryPage(t *testing.T) {
	repo := &pagedRepository{rows: analyses(pageSize + 3)}
	index := &recordingIndex{}

	result, err := backfill(context.Background(), repo, index)
	require.NoError(t, err)

	assert.Equal(t, pageSize+3, result.succeeded)
	assert.Zero(t, result.failed)
	assert.Len(t, index.indexed, pageSize+3)
	assert.Equal(t, 3, repo.calls)
}

func TestBackfill_CountsFailedResumes(t *testing.T) {
	rows := analyses(3)
	index := &recordingIndex{failIDs: map[string]bool{rows[1].ID.String(): true}}

	result, err := backfill(context.Background(), &pagedRepository{rows: rows}, index)
	require.NoError(t, err)

	assert.Equal(t, summary{succeeded: 2, failed: 1}, result)
}

func TestBackfill_ReturnsListError(t *testing.T) {
	repo := &pagedRepository{rows: analyses(pageSize + 1), listErr: errors.New("connection reset")}
	index := &recordingIndex{}

	result, err := backfill(context.Background(), repo, index)
	require.Error(t, err)

	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, pageSize, result.succeeded)
}

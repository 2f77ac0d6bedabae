package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"studymate/resume-analyzer/internal/models"
)

type fakeProvider struct {
	name       string
	configured bool
	result     *models.AnalysisResult
	err        error
	delay      time.Duration

	mu       sync.Mutex
	calls    int
	requests []models.AnalysisRequest
}

func (f *fakeProvider) Name() string     { return f.name }
func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	f.mu.Lock()
	f.calls++
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if f.err != nil {
		return nil, f.err
	}

	result := *f.result
	result.AIProvider = f.name
	return &result, nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func succeeding(name string) *fakeProvider {
	return &fakeProvider{
		name:       name,
		configured: true,
		result: &models.AnalysisResult{
			OverallScore:  88,
			JobMatchScore: 80,
			ATSScore:      75,
			SkillGaps:     []string{"Kubernetes"},
		},
	}
}

func failing(name string) *fakeProvider {
	return &fakeProvider{name: name, configured: true, err: errors.New(name + " unavailable")}
}

type fakeRepository struct {
	saveErr error
	saved   []*models.ResumeAnalysisData
	userIDs []string
	health  models.DatabaseHealth
}

func (f *fakeRepository) Init(context.Context) error { return nil }
func (f *fakeRepository) Close() error               { return nil }

func (f *fakeRepository) SaveResumeAnalysis(_ context.Context, userID string, data *models.ResumeAnalysisData) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, data)
	f.userIDs = append(f.userIDs, userID)
	return "7f1c1c1e-0000-4000-8000-000000000001", nil
}

func (f *fakeRepository) HealthCheck(context.Context) models.DatabaseHealth { return f.health }

func (f *fakeRepository) ListForIndexing(context.Context, string, int) ([]models.ResumeAnalysis, error) {
	return nil, nil
}

type fakeArchive struct {
	enabled bool
	err     error
	stored  []string
}

func (f *fakeArchive) Enabled() bool { return f.enabled }

func (f *fakeArchive) Store(_ context.Context, userID string, doc *models.UploadedDocument) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	key := "resumes/" + userID + "/fixed" + doc.Extension()
	f.stored = append(f.stored, key)
	return key, nil
}

type fakeIndex struct {
	enabled bool
	err     error
	indexed []IndexedResume
}

func (f *fakeIndex) Enabled() bool { return f.enabled }

func (f *fakeIndex) IndexResume(_ context.Context, resume IndexedResume) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.indexed = append(f.indexed, resume)
	return 1, nil
}

func (f *fakeIndex) Search(context.Context, string, string, int) ([]models.SearchHit, error) {
	return nil, nil
}

func (f *fakeIndex) Close() error { return nil }

type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []float32{float32(len(text)), 1}, nil
}

type fakeVectorStore struct {
	points      []VectorPoint
	deleted     []string
	searchUser  string
	searchLimit int
	hits        []models.SearchHit
}

func (f *fakeVectorStore) EnsureCollection(context.Context) error { return nil }

func (f *fakeVectorStore) Upsert(_ context.Context, points []VectorPoint) error {
	f.points = append(f.points, points...)
	return nil
}

func (f *fakeVectorStore) Search(_ context.Context, _ []float32, userID string, limit int) ([]models.SearchHit, error) {
	f.searchUser = userID
	f.searchLimit = limit
	return f.hits, nil
}

func (f *fakeVectorStore) DeleteResume(_ context.Context, resumeID string) error {
	f.deleted = append(f.deleted, resumeID)
	return nil
}

func (f *fakeVectorStore) Close() error { return nil }

type fakePutter struct {
	err   error
	input *s3.PutObjectInput
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

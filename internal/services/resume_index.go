package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"studymate/resume-analyzer/internal/models"
)

var ErrIndexDisabled = errors.New("resume index is not enabled")

const (
	indexChunkSize    = 1000
	indexChunkOverlap = 200
	maxSearchLimit    = 20
)

// Embedder turns text into a vector.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// ResumeIndex makes persisted resumes searchable by similarity.
type ResumeIndex interface {
	Enabled() bool
	IndexResume(ctx context.Context, resume IndexedResume) (int, error)
	Search(ctx context.Context, query, userID string, limit int) ([]models.SearchHit, error)
	Close() error
}

// IndexedResume is the part of a persisted analysis the index stores.
type IndexedResume struct {
	ResumeID string
	UserID   string
	JobRole  string
	Text     string
}

type resumeIndex struct {
	store    VectorStore
	embedder Embedder
	chunker  TextChunker
}

type disabledIndex struct{}

// NewResumeIndex prepares the collection and returns an index over store.
// A nil store yields a disabled index.
func NewResumeIndex(ctx context.Context, store VectorStore, embedder Embedder, chunker TextChunker) (ResumeIndex, error) {
	if store == nil {
		log.Info("ℹ️  Resume index not configured")
		return disabledIndex{}, nil
	}

	if err := store.EnsureCollection(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize resume index: %w", err)
	}

	return &resumeIndex{
		store:    store,
		embedder: embedder,
		chunker:  chunker,
	}, nil
}

func (r *resumeIndex) Enabled() bool { return true }

// IndexResume replaces every chunk of the resume and returns the number of
// chunks written. Point IDs derive from the resume ID, so re-indexing is
// idempotent.
func (r *resumeIndex) IndexResume(ctx context.Context, resume IndexedResume) (int, error) {
	chunks := r.chunker.ChunkText(resume.Text, indexChunkSize, indexChunkOverlap)
	if len(chunks) == 0 {
		return 0, nil
	}

	points := make([]VectorPoint, 0, len(chunks))
	for i, chunk := range chunks {
		embedding, err := r.embedder.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return 0, fmt.Errorf("failed to embed chunk %d: %w", i, err)
		}

		points = append(points, VectorPoint{
			ID:         ChunkPointID(resume.ResumeID, i),
			ResumeID:   resume.ResumeID,
			UserID:     resume.UserID,
			JobRole:    resume.JobRole,
			ChunkIndex: i,
			Text:       chunk,
			Vector:     embedding,
		})
	}

	if err := r.store.DeleteResume(ctx, resume.ResumeID); err != nil {
		return 0, err
	}

	if err := r.store.Upsert(ctx, points); err != nil {
		return 0, err
	}

	return len(points), nil
}

func (r *resumeIndex) Search(ctx context.Context, query, userID string, limit int) ([]models.SearchHit, error) {
	limit = ClampSearchLimit(limit)

	embedding, err := r.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	return r.store.Search(ctx, embedding, userID, limit)
}

func (r *resumeIndex) Close() error {
	return r.store.Close()
}

// ChunkPointID is a stable UUID for chunk i of a resume.
func ChunkPointID(resumeID string, i int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(resumeID+"#"+strconv.Itoa(i))).String()
}

func ClampSearchLimit(limit int) int {
	if limit <= 0 {
		return 5
	}
	return min(limit, maxSearchLimit)
}

func (disabledIndex) Enabled() bool { return false }

func (disabledIndex) IndexResume(context.Context, IndexedResume) (int, error) {
	return 0, ErrIndexDisabled
}

func (disabledIndex) Search(context.Context, string, string, int) ([]models.SearchHit, error) {
	return nil, ErrIndexDisabled
}

func (disabledIndex) Close() error { return nil }

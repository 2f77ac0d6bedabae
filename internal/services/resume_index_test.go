package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/resume-analyzer/internal/models"
)

func TestResumeIndex_IndexResume(t *testing.T) {
	store := &fakeVectorStore{}
	embedder := &fakeEmbedder{}

	index, err := NewResumeIndex(context.Background(), store, embedder, NewTextChunker())
	require.NoError(t, err)
	require.True(t, index.Enabled())

	text := strings.Repeat("Built distributed systems in Go and Python.\n", 60)
	count, err := index.IndexResume(context.Background(), IndexedResume{
		ResumeID: "resume-1",
		UserID:   "user-1",
		JobRole:  "SRE",
		Text:     text,
	})
	require.NoError(t, err)

	assert.Greater(t, count, 1)
	assert.Len(t, store.points, count)
	assert.Equal(t, count, embedder.calls)
	assert.Equal(t, []string{"resume-1"}, store.deleted)

	for i, p := range store.points {
		assert.Equal(t, ChunkPointID("resume-1", i), p.ID)
		assert.Equal(t, i, p.ChunkIndex)
		assert.Equal(t, "user-1", p.UserID)
		assert.NotEmpty(t, p.Vector)
	}
}

func TestResumeIndex_EmbeddingFailureWritesNothing(t *testing.T) {
	store := &fakeVectorStore{}
	index, err := NewResumeIndex(context.Background(), store, &fakeEmbedder{err: errors.New("quota")}, NewTextChunker())
	require.NoError(t, err)

	_, err = index.IndexResume(context.Background(), IndexedResume{ResumeID: "r", Text: "Go developer"})
	assert.ErrorContains(t, err, "quota")
	assert.Empty(t, store.points)
	assert.Empty(t, store.deleted)
}

func TestResumeIndex_Search(t *testing.T) {
	store := &fakeVectorStore{hits: []models.SearchHit{{ResumeID: "r1", Score: 0.9}}}
	index, err := NewResumeIndex(context.Background(), store, &fakeEmbedder{}, NewTextChunker())
	require.NoError(t, err)

	hits, err := index.Search(context.Background(), "kubernetes", "user-1", 100)
	require.NoError(t, err)

	assert.Equal(t, store.hits, hits)
	assert.Equal(t, "user-1", store.searchUser)
	assert.Equal(t, 20, store.searchLimit)
}

func TestResumeIndex_Disabled(t *testing.T) {
	index, err := NewResumeIndex(context.Background(), nil, nil, nil)
	require.NoError(t, err)

	assert.False(t, index.Enabled())
	_, err = index.IndexResume(context.Background(), IndexedResume{})
	assert.ErrorIs(t, err, ErrIndexDisabled)
	_, err = index.Search(context.Background(), "q", "", 5)
	assert.ErrorIs(t, err, ErrIndexDisabled)
	assert.NoError(t, index.Close())
}

func TestChunkPointID_Stable(t *testing.T) {
	assert.Equal(t, ChunkPointID("r", 0), ChunkPointID("r", 0))
	assert.NotEqual(t, ChunkPointID("r", 0), ChunkPointID("r", 1))
	assert.Len(t, ChunkPointID("r", 0), 36)
}

func TestClampSearchLimit(t *testing.T) {
	assert.Equal(t, 5, ClampSearchLimit(0))
	assert.Equal(t, 5, ClampSearchLimit(-3))
	assert.Equal(t, 7, ClampSearchLimit(7))
	assert.Equal(t, 20, ClampSearchLimit(50))
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/resume-analyzer/internal/models"
)

func TestFallbackAnalyzer_PrimarySuccessShortCircuits(t *testing.T) {
	primary := succeeding(models.ProviderGroq)
	secondary := succeeding(models.ProviderGemini)

	result := NewFallbackAnalyzer(time.Second, primary, secondary).Analyze(context.Background(), testRequest)

	assert.Equal(t, models.ProviderGroq, result.AIProvider)
	assert.Equal(t, 1, primary.callCount())
	assert.Equal(t, 0, secondary.callCount())
}

func TestFallbackAnalyzer_FallsThroughToSecondary(t *testing.T) {
	primary := failing(models.ProviderGroq)
	secondary := succeeding(models.ProviderGemini)

	result := NewFallbackAnalyzer(time.Second, primary, secondary).Analyze(context.Background(), testRequest)

	assert.Equal(t, models.ProviderGemini, result.AIProvider)
	assert.Equal(t, 1, primary.callCount())
	assert.Equal(t, 1, secondary.callCount())
}

func TestFallbackAnalyzer_AllFailReturnsStaticFallback(t *testing.T) {
	primary := failing(models.ProviderGroq)
	secondary := failing(models.ProviderGemini)

	result := NewFallbackAnalyzer(time.Second, primary, secondary).Analyze(context.Background(), testRequest)

	assert.Equal(t, models.FallbackAnalysis(), result)
	assert.Equal(t, models.Score(50), result.OverallScore)
	assert.Equal(t, 1, primary.callCount())
	assert.Equal(t, 1, secondary.callCount())
}

func TestFallbackAnalyzer_SkipsUnconfiguredProviders(t *testing.T) {
	primary := succeeding(models.ProviderGroq)
	primary.configured = false
	secondary := succeeding(models.ProviderGemini)

	result := NewFallbackAnalyzer(time.Second, primary, secondary).Analyze(context.Background(), testRequest)

	assert.Equal(t, models.ProviderGemini, result.AIProvider)
	assert.Equal(t, 0, primary.callCount())
}

func TestFallbackAnalyzer_NoProvidersConfigured(t *testing.T) {
	primary := succeeding(models.ProviderGroq)
	primary.configured = false
	secondary := succeeding(models.ProviderGemini)
	secondary.configured = false

	result := NewFallbackAnalyzer(time.Second, primary, secondary).Analyze(context.Background(), testRequest)

	assert.Equal(t, models.ProviderFallback, result.AIProvider)
	assert.Equal(t, 0, primary.callCount()+secondary.callCount())
}

func TestFallbackAnalyzer_TimeoutMovesOn(t *testing.T) {
	primary := succeeding(models.ProviderGroq)
	primary.delay = time.Second
	secondary := succeeding(models.ProviderGemini)

	start := time.Now()
	result := NewFallbackAnalyzer(50*time.Millisecond, primary, secondary).Analyze(context.Background(), testRequest)

	assert.Equal(t, models.ProviderGemini, result.AIProvider)
	assert.Less(t, time.Since(start), 900*time.Millisecond)
}

func TestFallbackAnalyzer_CancelledContextYieldsFallback(t *testing.T) {
	primary := succeeding(models.ProviderGroq)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewFallbackAnalyzer(time.Second, primary).Analyze(ctx, testRequest)

	require.NotNil(t, result)
	assert.Equal(t, models.ProviderFallback, result.AIProvider)
	assert.Equal(t, 0, primary.callCount())
}

func TestFallbackAnalyzer_PassesRequestUnchanged(t *testing.T) {
	primary := failing(models.ProviderGroq)
	secondary := succeeding(models.ProviderGemini)

	NewFallbackAnalyzer(time.Second, primary, secondary).Analyze(context.Background(), testRequest)

	assert.Equal(t, []models.AnalysisRequest{testRequest}, primary.requests)
	assert.Equal(t, []models.AnalysisRequest{testRequest}, secondary.requests)
}

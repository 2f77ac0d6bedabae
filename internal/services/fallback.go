package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"studymate/resume-analyzer/internal/models"
)

// ResumeAnalyzer produces an analysis for a request. Implementations never
// fail; they degrade to models.FallbackAnalysis.
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) *models.AnalysisResult
}

type fallbackAnalyzer struct {
	providers []Provider
	timeout   time.Duration
}

// NewFallbackAnalyzer tries providers strictly in order, one at a time, each
// bounded by timeout. There are no retries.
func NewFallbackAnalyzer(timeout time.Duration, providers ...Provider) ResumeAnalyzer {
	return &fallbackAnalyzer{
		providers: providers,
		timeout:   timeout,
	}
}

func (f *fallbackAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) *models.AnalysisResult {
	var failures []string

	for _, provider := range f.providers {
		result, err := f.call(ctx, provider, req)
		if err == nil {
			log.Infof("✅ Analysis completed by %s", provider.Name())
			return result
		}

		log.Warnf("⚠️  %s analysis failed: %v", provider.Name(), err)
		failures = append(failures, fmt.Sprintf("%s: %v", provider.Name(), err))
	}

	log.Errorf("❌ All AI providers failed, returning fallback analysis [%s]", strings.Join(failures, "; "))
	return models.FallbackAnalysis()
}

func (f *fallbackAnalyzer) call(ctx context.Context, provider Provider, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if !provider.Configured() {
		return nil, ErrProviderNotConfigured
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("request cancelled: %w", err)
	}

	callCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	log.Infof("🤖 Analyzing resume with %s...", provider.Name())
	return provider.Analyze(callCtx, req)
}

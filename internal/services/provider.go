package services

import (
	"context"
	"errors"

	"studymate/resume-analyzer/internal/config"
	"studymate/resume-analyzer/internal/models"
)

var ErrProviderNotConfigured = errors.New("provider not configured")

// Provider is one LLM backend able to produce a structured resume analysis.
type Provider interface {
	Name() string
	Configured() bool
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

// BuildProviderChain returns the providers in fallback order. Claude is only
// part of the chain when its key is set.
func BuildProviderChain(cfg config.ProvidersConfig, gemini GeminiService, prompts *PromptBuilder) []Provider {
	chain := []Provider{
		NewGroqProvider(cfg.Groq, prompts),
		NewGeminiProvider(gemini, prompts),
	}

	if cfg.ClaudeEnabled() {
		chain = append(chain, NewClaudeProvider(cfg.Claude, prompts))
	}

	return chain
}

// ProviderNames lists the chain in order, for service metadata.
func ProviderNames(chain []Provider) []string {
	names := make([]string, 0, len(chain))
	for _, p := range chain {
		names = append(names, p.Name())
	}
	return names
}

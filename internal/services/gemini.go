package services

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"google.golang.org/genai"

	"studymate/resume-analyzer/internal/config"
	"studymate/resume-analyzer/internal/models"
)

// GeminiService wraps the genai client for text generation and embeddings.
type GeminiService interface {
	Configured() bool
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type geminiService struct {
	client     *genai.Client
	modelName  string
	embedModel string
}

// NewGeminiService returns an unconfigured service when no API key is set;
// every call on it fails with ErrProviderNotConfigured.
func NewGeminiService(ctx context.Context, cfg config.GeminiConfig) (GeminiService, error) {
	svc := &geminiService{
		modelName:  cfg.Model,
		embedModel: cfg.EmbedModel,
	}

	if cfg.APIKey == "" {
		log.Warn("⚠️  GEMINI_API_KEY not set, Gemini disabled")
		return svc, nil
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	svc.client = client

	log.Infof("✅ Gemini client ready (model %s)", cfg.Model)
	return svc, nil
}

func (g *geminiService) Configured() bool {
	return g.client != nil
}

// GenerateEmbedding implements GeminiService.
func (g *geminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	if g.client == nil {
		return nil, ErrProviderNotConfigured
	}

	// Embedding input is capped at roughly 10000 tokens.
	text = models.TruncateRunes(text, 40000)

	result, err := g.client.Models.EmbedContent(ctx, g.embedModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.client == nil {
		return "", ErrProviderNotConfigured
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: 4096,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

type geminiProvider struct {
	gemini  GeminiService
	prompts *PromptBuilder
}

// NewGeminiProvider is the secondary provider. Gemini gets the prompt only,
// without a system instruction.
func NewGeminiProvider(gemini GeminiService, prompts *PromptBuilder) Provider {
	return &geminiProvider{
		gemini:  gemini,
		prompts: prompts,
	}
}

func (p *geminiProvider) Name() string { return models.ProviderGemini }

func (p *geminiProvider) Configured() bool {
	return p.gemini != nil && p.gemini.Configured()
}

func (p *geminiProvider) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if !p.Configured() {
		return nil, ErrProviderNotConfigured
	}

	response, err := p.gemini.GenerateText(ctx, p.prompts.BuildAnalysisPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	log.Debugf("📊 Gemini response received: %d characters", len(response))

	return DecodeAnalysis(response, models.ProviderGemini)
}

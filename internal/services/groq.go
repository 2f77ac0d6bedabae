package services

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	openai "github.com/sashabaranov/go-openai"

	"studymate/resume-analyzer/internal/config"
	"studymate/resume-analyzer/internal/models"
)

const (
	analysisTemperature = 0.1
	analysisMaxTokens   = 2000
)

type groqProvider struct {
	client  *openai.Client
	model   string
	prompts *PromptBuilder
}

// NewGroqProvider is the primary provider. Groq speaks the OpenAI chat
// completions protocol, so the OpenAI client is pointed at its base URL.
func NewGroqProvider(cfg config.GroqConfig, prompts *PromptBuilder) Provider {
	p := &groqProvider{
		model:   cfg.Model,
		prompts: prompts,
	}

	if cfg.APIKey == "" {
		log.Warn("⚠️  GROQ_API_KEY not set, Groq disabled")
		return p
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	p.client = openai.NewClientWithConfig(clientConfig)

	return p
}

func (p *groqProvider) Name() string { return models.ProviderGroq }

func (p *groqProvider) Configured() bool { return p.client != nil }

func (p *groqProvider) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if p.client == nil {
		return nil, ErrProviderNotConfigured
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: AnalysisSystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: p.prompts.BuildAnalysisPrompt(req)},
		},
		Temperature: analysisTemperature,
		MaxTokens:   analysisMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("groq request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("groq returned no choices")
	}

	content := resp.Choices[0].Message.Content
	log.Debugf("📊 Groq response received: %d characters", len(content))

	return DecodeAnalysis(content, models.ProviderGroq)
}

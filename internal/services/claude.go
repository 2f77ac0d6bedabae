package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/gofiber/fiber/v2/log"

	"studymate/resume-analyzer/internal/config"
	"studymate/resume-analyzer/internal/models"
)

type claudeProvider struct {
	client     anthropic.Client
	model      string
	configured bool
	prompts    *PromptBuilder
}

// NewClaudeProvider is the optional tertiary provider.
func NewClaudeProvider(cfg config.ClaudeConfig, prompts *PromptBuilder) Provider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// The orchestrator moves on to the next provider instead of retrying.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &claudeProvider{
		client:     anthropic.NewClient(opts...),
		model:      cfg.Model,
		configured: cfg.APIKey != "",
		prompts:    prompts,
	}
}

func (p *claudeProvider) Name() string { return models.ProviderClaude }

func (p *claudeProvider) Configured() bool { return p.configured }

func (p *claudeProvider) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error) {
	if !p.configured {
		return nil, ErrProviderNotConfigured
	}

	response, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   analysisMaxTokens,
		Temperature: anthropic.Float(analysisTemperature),
		System: []anthropic.TextBlockParam{
			{Text: AnalysisSystemInstruction},
		},
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: p.prompts.BuildAnalysisPrompt(req)},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	var textBuilder strings.Builder
	for _, content := range response.Content {
		if content.Type == "text" {
			textBuilder.WriteString(content.AsText().Text)
		}
	}

	if textBuilder.Len() == 0 {
		return nil, fmt.Errorf("claude returned no text content")
	}

	log.Debugf("📊 Claude response received: %d characters", textBuilder.Len())

	return DecodeAnalysis(textBuilder.String(), models.ProviderClaude)
}

package chat

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/ashwinyue/mindwell/internal/config"
)

// Provider produces one assistant reply for a transcript
type Provider interface {
	Name() string
	Generate(ctx context.Context, transcript []*schema.Message) (string, error)
}

// geminiProvider talks to Gemini through its OpenAI-compatible endpoint.
// Gemini has no system role, so the transcript is flattened into a single
// prompt with the system instructions on top.
type geminiProvider struct {
	primary   ecomodel.BaseChatModel
	fallback  ecomodel.BaseChatModel
	modelName string
}

// NewGeminiProvider builds the primary provider. When the configured model is
// not gemini-pro, a gemini-pro model is prepared alongside it for the
// model-not-found retry.
func NewGeminiProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	aiCfg := cfg.AI.Gemini

	primary, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  aiCfg.APIKey,
		BaseURL: aiCfg.BaseURL,
		Model:   aiCfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini chat model: %w", err)
	}

	p := &geminiProvider{primary: primary, modelName: aiCfg.Model}
	if aiCfg.Model != "gemini-pro" {
		fallback, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:  aiCfg.APIKey,
			BaseURL: aiCfg.BaseURL,
			Model:   "gemini-pro",
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini fallback chat model: %w", err)
		}
		p.fallback = fallback
	}
	return p, nil
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Generate(ctx context.Context, transcript []*schema.Message) (string, error) {
	prompt := flattenTranscript(transcript)
	messages := []*schema.Message{{Role: schema.User, Content: prompt}}

	resp, err := p.primary.Generate(ctx, messages)
	if err == nil {
		return resp.Content, nil
	}

	if isModelNotFound(err) && p.fallback != nil {
		log.Printf("gemini model %q unavailable, retrying with gemini-pro", p.modelName)
		resp, retryErr := p.fallback.Generate(ctx, messages)
		if retryErr != nil {
			return "", fmt.Errorf("gemini fallback generate: %w", retryErr)
		}
		return resp.Content, nil
	}
	return "", fmt.Errorf("gemini generate: %w", err)
}

// flattenTranscript renders a transcript as plain text: system content first,
// then Human/Assistant turns
func flattenTranscript(transcript []*schema.Message) string {
	var b strings.Builder
	for _, msg := range transcript {
		switch msg.Role {
		case schema.System:
			b.WriteString(msg.Content + "\n\n")
		case schema.Assistant:
			b.WriteString("Assistant: " + msg.Content + "\n\n")
		default:
			b.WriteString("Human: " + msg.Content + "\n\n")
		}
	}
	return b.String()
}

func isModelNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "404") || strings.Contains(msg, "not found")
}

// openaiProvider is the secondary provider; it keeps structured roles
type openaiProvider struct {
	model ecomodel.BaseChatModel
}

// NewOpenAIProvider builds the secondary provider with the chat-completion
// settings used for supportive replies
func NewOpenAIProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	aiCfg := cfg.AI.OpenAI

	maxTokens := 1000
	temperature := float32(0.7)
	model, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      aiCfg.APIKey,
		BaseURL:     aiCfg.BaseURL,
		Model:       aiCfg.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("create openai chat model: %w", err)
	}
	return &openaiProvider{model: model}, nil
}

func (p *openaiProvider) Name() string { return "openai" }

func (p *openaiProvider) Generate(ctx context.Context, transcript []*schema.Message) (string, error) {
	resp, err := p.model.Generate(ctx, transcript)
	if err != nil {
		return "", fmt.Errorf("openai generate: %w", err)
	}
	return resp.Content, nil
}

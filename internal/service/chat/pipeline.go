package chat

import (
	"context"
	"log"
	"time"

	"github.com/cloudwego/eino/schema"

	"github.com/ashwinyue/mindwell/internal/model"
)

// Confidence recorded on assistant messages: substantive provider replies,
// terse provider replies, and deterministic fallbacks.
const (
	confidenceHigh     = 0.9
	confidenceLow      = 0.7
	confidenceFallback = 0.1
)

// Pipeline tries each provider in order and falls back to the deterministic
// supportive reply when all of them fail. Respond never returns an empty
// string.
type Pipeline struct {
	providers []Provider
	timeout   time.Duration
}

// NewPipeline creates the response pipeline. timeout bounds each individual
// provider call; zero disables the bound.
func NewPipeline(timeout time.Duration, providers ...Provider) *Pipeline {
	return &Pipeline{providers: providers, timeout: timeout}
}

// BuildTranscript assembles the provider transcript: the system prompt for
// the session type, the prior conversation with system messages dropped and
// non-assistant roles mapped to user, then the new user message.
func BuildTranscript(sessionType string, history []model.Message, userText string) []*schema.Message {
	transcript := make([]*schema.Message, 0, len(history)+2)
	transcript = append(transcript, &schema.Message{Role: schema.System, Content: SystemPrompt(sessionType)})

	for _, msg := range history {
		switch msg.Role {
		case model.RoleSystem:
			continue
		case model.RoleAssistant:
			transcript = append(transcript, &schema.Message{Role: schema.Assistant, Content: msg.Content})
		default:
			transcript = append(transcript, &schema.Message{Role: schema.User, Content: msg.Content})
		}
	}

	transcript = append(transcript, &schema.Message{Role: schema.User, Content: userText})
	return transcript
}

// Respond returns the assistant reply and its confidence.
func (p *Pipeline) Respond(ctx context.Context, transcript []*schema.Message, latestUserText, sessionType string) (string, float64) {
	for _, provider := range p.providers {
		reply, err := p.generate(ctx, provider, transcript)
		if err != nil {
			log.Printf("ai pipeline: %s provider failed: %v", provider.Name(), err)
			continue
		}
		if reply == "" {
			log.Printf("ai pipeline: %s provider returned empty reply", provider.Name())
			continue
		}
		if len(reply) > 10 {
			return reply, confidenceHigh
		}
		return reply, confidenceLow
	}

	return SupportiveFallback(latestUserText, sessionType), confidenceFallback
}

func (p *Pipeline) generate(ctx context.Context, provider Provider, transcript []*schema.Message) (string, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return provider.Generate(ctx, transcript)
}

package service

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ashwinyue/mindwell/internal/config"
	"github.com/ashwinyue/mindwell/internal/repository"
	"github.com/ashwinyue/mindwell/internal/service/assessment"
	"github.com/ashwinyue/mindwell/internal/service/auth"
	"github.com/ashwinyue/mindwell/internal/service/booking"
	"github.com/ashwinyue/mindwell/internal/service/chat"
	"github.com/ashwinyue/mindwell/internal/service/counselor"
	"github.com/ashwinyue/mindwell/internal/service/notify"
	"github.com/ashwinyue/mindwell/internal/service/resource"
)

// Services aggregates all business services
type Services struct {
	Auth       *auth.Service
	Chat       *chat.Service
	Booking    *booking.Service
	Counselor  *counselor.Service
	Resource   *resource.Service
	Assessment *assessment.Service

	Config *config.Config
}

// NewServices wires repositories, the AI providers and the chat state
// manager into the service layer
func NewServices(repo *repository.Repositories, cfg *config.Config, redisClient *redis.Client) (*Services, error) {
	ctx := context.Background()

	counselorSvc := counselor.NewService(repo.Counselor)
	resourceSvc := resource.NewService(repo.Resource)
	assessmentSvc := assessment.NewService(repo.Assessment)

	mailer := notify.NewJSONMailer(cfg)
	bookingSvc := booking.NewService(repo.Booking, repo.Counselor, repo.Auth, mailer)

	pipeline := chat.NewPipeline(
		time.Duration(cfg.AI.Timeout)*time.Second,
		newProviders(ctx, cfg)...,
	)
	flow := chat.NewBookingFlow(counselorSvc, bookingSvc)
	state := chat.NewStateManager(redisClient)

	chatSvc := chat.NewService(
		repo.Session,
		state,
		pipeline,
		flow,
		resourceSvc,
		assessmentSvc,
		counselorSvc,
	)

	return &Services{
		Auth:       auth.NewService(repo.Auth),
		Chat:       chatSvc,
		Booking:    bookingSvc,
		Counselor:  counselorSvc,
		Resource:   resourceSvc,
		Assessment: assessmentSvc,
		Config:     cfg,
	}, nil
}

// newProviders builds the AI provider chain, primary first. A provider that
// fails to initialize is skipped; the pipeline falls back to its canned
// replies when none is available.
func newProviders(ctx context.Context, cfg *config.Config) []chat.Provider {
	var providers []chat.Provider

	add := func(name string, build func(context.Context, *config.Config) (chat.Provider, error)) {
		provider, err := build(ctx, cfg)
		if err != nil {
			log.Printf("Warning: failed to create %s provider: %v", name, err)
			return
		}
		providers = append(providers, provider)
	}

	if cfg.AI.Provider == "openai" {
		add("openai", chat.NewOpenAIProvider)
		add("gemini", chat.NewGeminiProvider)
	} else {
		add("gemini", chat.NewGeminiProvider)
		add("openai", chat.NewOpenAIProvider)
	}
	return providers
}

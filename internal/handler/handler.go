package handler

import (
	"github.com/ashwinyue/mindwell/internal/service"
)

// Handlers aggregates all HTTP handlers
type Handlers struct {
	Auth       *AuthHandler
	Chat       *ChatHandler
	Booking    *BookingHandler
	Counselor  *CounselorHandler
	Resource   *ResourceHandler
	Assessment *AssessmentHandler
}

// NewHandlers creates all handlers
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc),
		Chat:       NewChatHandler(svc),
		Booking:    NewBookingHandler(svc),
		Counselor:  NewCounselorHandler(svc),
		Resource:   NewResourceHandler(svc),
		Assessment: NewAssessmentHandler(svc),
	}
}

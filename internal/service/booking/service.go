// Package booking creates counseling session requests and notifies the
// counselor by mail.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashwinyue/mindwell/internal/model"
	"github.com/ashwinyue/mindwell/internal/service/notify"
)

var (
	ErrCounselorNotFound = errors.New("counselor not found")
	ErrValidation        = errors.New("validation failed")
)

// The booking row stores the 24h default slot; the notification mail shows
// the user-facing wording when no time was given.
const (
	storedDefaultTime = "16:00-17:00"
	mailDefaultTime   = "4-5 PM"
)

// quickSendWindow is how long Create waits for the mail result before
// reporting it as queued.
const quickSendWindow = 3500 * time.Millisecond

// BookingStore is the persistence surface for bookings
type BookingStore interface {
	Create(booking *model.Booking) error
	ListByUser(userID string) ([]*model.Booking, error)
}

// CounselorStore resolves counselors by email or name
type CounselorStore interface {
	FindActiveByEmail(email string) (*model.Counselor, error)
	FindActiveByName(name string) (*model.Counselor, error)
}

// UserStore loads the requesting user for the notification payload
type UserStore interface {
	GetUserByID(id string) (*model.User, error)
}

// CreateInput is a booking request as submitted by the caller
type CreateInput struct {
	CounselorEmail string `json:"counselorEmail"`
	CounselorName  string `json:"counselorName"`
	Reason         string `json:"reason"`
	PreferredTime  string `json:"preferredTime"`
}

// EmailStatus reports how far the counselor notification got within the
// request's quick-send window
type EmailStatus struct {
	Queued    bool   `json:"queued,omitempty"`
	Provider  string `json:"provider,omitempty"`
	MessageID string `json:"messageId,omitempty"`
}

// Service books counseling sessions
type Service struct {
	bookings   BookingStore
	counselors CounselorStore
	users      UserStore
	mailer     notify.Mailer
	sendWait   time.Duration
}

// NewService creates the booking service
func NewService(bookings BookingStore, counselors CounselorStore, users UserStore, mailer notify.Mailer) *Service {
	return &Service{
		bookings:   bookings,
		counselors: counselors,
		users:      users,
		mailer:     mailer,
		sendWait:   quickSendWindow,
	}
}

// Create resolves the counselor by email first, then by name, persists the
// request and kicks off the notification mail. The mail is not awaited past
// the quick-send window; a slow delivery is reported as queued.
func (s *Service) Create(ctx context.Context, userID string, input CreateInput) (*model.Booking, *EmailStatus, error) {
	if input.Reason == "" {
		return nil, nil, fmt.Errorf("%w: reason is required", ErrValidation)
	}

	counselor, err := s.resolveCounselor(input.CounselorEmail, input.CounselorName)
	if err != nil {
		return nil, nil, err
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load user: %w", err)
	}

	preferredTime := input.PreferredTime
	if preferredTime == "" {
		preferredTime = storedDefaultTime
	}

	booking := &model.Booking{
		ID:             uuid.NewString(),
		UserID:         userID,
		CounselorID:    counselor.ID,
		CounselorName:  counselor.Name,
		CounselorEmail: counselor.Email,
		Reason:         input.Reason,
		PreferredTime:  preferredTime,
		Status:         model.BookingStatusRequested,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, nil, fmt.Errorf("create booking: %w", err)
	}

	mailTime := input.PreferredTime
	if mailTime == "" {
		mailTime = mailDefaultTime
	}
	status := s.notifyCounselor(user, counselor, input.Reason, mailTime)

	return booking, status, nil
}

// CreateForCounselor persists a booking for an already-resolved counselor.
// The chat booking flow calls this after its own directory lookup.
func (s *Service) CreateForCounselor(ctx context.Context, userID string, counselor *model.Counselor, reason, preferredTime string) (*model.Booking, error) {
	if reason == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrValidation)
	}

	user, err := s.users.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	if preferredTime == "" {
		preferredTime = storedDefaultTime
	}

	booking := &model.Booking{
		ID:             uuid.NewString(),
		UserID:         userID,
		CounselorID:    counselor.ID,
		CounselorName:  counselor.Name,
		CounselorEmail: counselor.Email,
		Reason:         reason,
		PreferredTime:  preferredTime,
		Status:         model.BookingStatusRequested,
	}
	if err := s.bookings.Create(booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.notifyCounselor(user, counselor, reason, preferredTime)
	return booking, nil
}

// ListByUser returns the caller's bookings, newest first
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*model.Booking, error) {
	bookings, err := s.bookings.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

func (s *Service) resolveCounselor(email, name string) (*model.Counselor, error) {
	if email != "" {
		counselor, err := s.counselors.FindActiveByEmail(email)
		if err == nil {
			return counselor, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resolve counselor: %w", err)
		}
	}
	if name != "" {
		counselor, err := s.counselors.FindActiveByName(name)
		if err == nil {
			return counselor, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resolve counselor: %w", err)
		}
	}
	return nil, ErrCounselorNotFound
}

// notifyCounselor sends the request mail in the background and waits at most
// sendWait for its outcome
func (s *Service) notifyCounselor(user *model.User, counselor *model.Counselor, reason, preferredTime string) *EmailStatus {
	userName := user.Name
	if userName == "" {
		userName = user.Email
	}
	req := notify.CounselingRequest{
		CounselorEmail: counselor.Email,
		CounselorName:  counselor.Name,
		UserName:       userName,
		UserEmail:      user.Email,
		Reason:         reason,
		PreferredTime:  preferredTime,
	}

	type sendOutcome struct {
		result *notify.Result
		err    error
	}
	done := make(chan sendOutcome, 1)
	go func() {
		result, err := s.mailer.SendCounselingRequest(context.Background(), req)
		done <- sendOutcome{result: result, err: err}
		if err != nil {
			log.Printf("booking email send error: %v", err)
		} else {
			log.Printf("booking email status: provider=%s messageId=%s", result.Provider, result.MessageID)
		}
	}()

	select {
	case outcome := <-done:
		if outcome.err != nil {
			return &EmailStatus{Queued: true}
		}
		return &EmailStatus{Provider: outcome.result.Provider, MessageID: outcome.result.MessageID}
	case <-time.After(s.sendWait):
		return &EmailStatus{Queued: true}
	}
}

package chat

import (
	"context"
	"log"
	"strings"

	"github.com/ashwinyue/mindwell/internal/model"
)

// Booking flow stages. Only StageIdle means no flow is in progress; every
// other stage makes the flow consume set/submit intents before generic
// dispatch.
const (
	StageIdle                = ""
	StageCollectingCounselor = "collecting_counselor"
	StageCollectingReason    = "collecting_reason"
	StageCollectingTime      = "collecting_time"
	StageReadyToSubmit       = "ready_to_submit"
)

// draftDefaultTime is what users see in prompts; storedDefaultTime is what
// direct bookings persist when no time was given.
const (
	draftDefaultTime  = "4-5 PM"
	storedDefaultTime = "16:00-17:00"
)

const (
	promptStart       = "Okay, let’s book a counseling session. Who is the counselor you want to meet?"
	promptReason      = "Got it. What is the reason for counseling?"
	promptTime        = "Thanks. What time do you prefer? The standard is 4-5 PM."
	promptConfirm     = "Great. Say \"confirm\" to send the booking request."
	replyNotFound     = "I could not find that counselor. Please say the counselor’s name again."
	replySubmitFailed = "Sorry, I could not submit the booking right now."
	replyDirectFailed = "Sorry, I could not process that booking right now."
)

// BookingDraft holds the fields collected across turns
type BookingDraft struct {
	CounselorName string `json:"counselorName"`
	Reason        string `json:"reason"`
	PreferredTime string `json:"preferredTime"`
}

// BookingState is the per-session flow state. It lives on the conversation
// state object so concurrent sessions never share a draft.
type BookingState struct {
	Stage string       `json:"stage"`
	Draft BookingDraft `json:"draft"`
}

// Active reports whether a flow is in progress
func (s *BookingState) Active() bool {
	return s.Stage != StageIdle
}

func (s *BookingState) reset() {
	*s = BookingState{}
}

// CounselorFinder resolves a counselor by name. A nil counselor with a nil
// error means no active counselor matched.
type CounselorFinder interface {
	FindCounselorByName(ctx context.Context, name string) (*model.Counselor, error)
}

// BookingCreator persists a resolved booking request and triggers the
// counselor notification.
type BookingCreator interface {
	CreateForCounselor(ctx context.Context, userID string, counselor *model.Counselor, reason, preferredTime string) (*model.Booking, error)
}

// BookingFlow drives the multi-turn booking conversation
type BookingFlow struct {
	counselors CounselorFinder
	bookings   BookingCreator
}

// NewBookingFlow creates the booking flow
func NewBookingFlow(counselors CounselorFinder, bookings BookingCreator) *BookingFlow {
	return &BookingFlow{counselors: counselors, bookings: bookings}
}

// Start begins (or restarts) the flow and returns the opening prompt
func (f *BookingFlow) Start(state *BookingState) string {
	state.Stage = StageCollectingCounselor
	state.Draft = BookingDraft{PreferredTime: draftDefaultTime}
	return promptStart
}

// Offer hands an intent to an active flow. It returns the conversational
// reply and whether the flow consumed the intent; an unconsumed intent falls
// through to generic dispatch. Field-set intents advance the stage without
// enforcing order; submit is accepted from any active stage.
func (f *BookingFlow) Offer(ctx context.Context, state *BookingState, userID string, intent Intent) (string, bool) {
	if !state.Active() {
		return "", false
	}

	switch intent.Kind {
	case IntentBookingSet:
		return f.setField(state, intent.Field, intent.Value), true
	case IntentBookingSubmit:
		return f.submit(ctx, state, userID), true
	default:
		return "", false
	}
}

func (f *BookingFlow) setField(state *BookingState, field, value string) string {
	switch field {
	case FieldCounselorName:
		state.Draft.CounselorName = value
		state.Stage = StageCollectingReason
		return promptReason
	case FieldReason:
		state.Draft.Reason = value
		state.Stage = StageCollectingTime
		return promptTime
	case FieldPreferredTime:
		state.Draft.PreferredTime = value
		state.Stage = StageReadyToSubmit
		return promptConfirm
	}
	return promptStart
}

func (f *BookingFlow) submit(ctx context.Context, state *BookingState, userID string) string {
	if strings.TrimSpace(state.Draft.Reason) == "" {
		state.Stage = StageCollectingReason
		return promptReason
	}

	counselor, err := f.counselors.FindCounselorByName(ctx, state.Draft.CounselorName)
	if err != nil {
		log.Printf("booking flow: counselor lookup failed: %v", err)
		state.reset()
		return replySubmitFailed
	}
	if counselor == nil {
		state.Stage = StageCollectingCounselor
		return replyNotFound
	}

	preferredTime := state.Draft.PreferredTime
	if preferredTime == "" {
		preferredTime = draftDefaultTime
	}

	_, err = f.bookings.CreateForCounselor(ctx, userID, counselor, state.Draft.Reason, preferredTime)
	if err != nil {
		log.Printf("booking flow: submission failed: %v", err)
		state.reset()
		return replySubmitFailed
	}

	confirmation := "Your counseling request to " + counselor.Name + " has been sent for " + preferredTime + "."
	state.reset()
	return confirmation
}

// Direct handles the one-shot "book a counseling meeting with X for Y"
// intent. It bypasses the stepwise flow entirely and never touches the
// session's booking state.
func (f *BookingFlow) Direct(ctx context.Context, userID string, intent Intent) string {
	counselor, err := f.counselors.FindCounselorByName(ctx, intent.CounselorName)
	if err != nil {
		log.Printf("booking flow: direct lookup failed: %v", err)
		return replyDirectFailed
	}
	if counselor == nil {
		return replyNotFound
	}

	reason := intent.Reason
	_, err = f.bookings.CreateForCounselor(ctx, userID, counselor, reason, storedDefaultTime)
	if err != nil {
		log.Printf("booking flow: direct submission failed: %v", err)
		return replyDirectFailed
	}
	return "Your counseling request to " + counselor.Name + " has been sent for " + storedDefaultTime + "."
}

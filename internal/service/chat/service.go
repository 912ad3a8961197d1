package chat

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashwinyue/mindwell/internal/model"
)

var (
	ErrSessionNotFound = errors.New("session not found or inactive")
	ErrValidation      = errors.New("validation failed")
)

// Mood values accepted on send
var validMoods = map[string]bool{
	"very-low": true, "low": true, "neutral": true, "good": true, "very-good": true,
}

// SessionStore is the persistence surface the chat service needs
type SessionStore interface {
	Create(session *model.Session) error
	GetByID(id, userID string) (*model.Session, error)
	GetActiveByID(id, userID string) (*model.Session, error)
	List(userID, sessionType string, active *bool, offset, limit int) ([]*model.Session, int64, error)
	Update(session *model.Session) error
	Delete(id, userID string) error
	AppendMessage(msg *model.Message) error
}

// Responder produces the assistant reply for an open-ended message
type Responder interface {
	Respond(ctx context.Context, transcript []*schema.Message, latestUserText, sessionType string) (string, float64)
}

// ResourceCatalog lists the resource catalog for list/open intents
type ResourceCatalog interface {
	ListResources(ctx context.Context) ([]*model.Resource, error)
}

// AssessmentOption is one entry of the self-assessment catalog
type AssessmentOption struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

// AssessmentCatalog lists the self-assessment catalog for list/open intents
type AssessmentCatalog interface {
	ListAssessmentTypes(ctx context.Context) ([]AssessmentOption, error)
}

// CounselorLister lists active counselors for the counselor-list intent
type CounselorLister interface {
	ListActiveCounselors(ctx context.Context) ([]*model.Counselor, error)
}

// NavigationSignal tells the caller which page an intent reply points at
type NavigationSignal struct {
	Route string `json:"route"`
	Label string `json:"label"`
}

// SendResult is the outcome of one sendMessage turn
type SendResult struct {
	Message        *model.Message     `json:"message"`
	SessionID      string             `json:"sessionId"`
	ContainsCrisis bool               `json:"containsCrisis"`
	Navigation     *NavigationSignal  `json:"navigation,omitempty"`
	Resources      []*model.Resource  `json:"resources,omitempty"`
	Assessments    []AssessmentOption `json:"assessments,omitempty"`
	Counselors     []*model.Counselor `json:"counselors,omitempty"`
}

// EndSessionInput carries the optional wrap-up fields
type EndSessionInput struct {
	Summary         string
	FeedbackRating  int
	FeedbackComment string
}

// Service ties together crisis detection, intent classification, the booking
// flow and the AI pipeline for one conversation turn, and owns the session
// lifecycle.
type Service struct {
	sessions    SessionStore
	state       *StateManager
	pipeline    Responder
	flow        *BookingFlow
	resources   ResourceCatalog
	assessments AssessmentCatalog
	counselors  CounselorLister
}

// NewService creates the chat service
func NewService(
	sessions SessionStore,
	state *StateManager,
	pipeline Responder,
	flow *BookingFlow,
	resources ResourceCatalog,
	assessments AssessmentCatalog,
	counselors CounselorLister,
) *Service {
	return &Service{
		sessions:    sessions,
		state:       state,
		pipeline:    pipeline,
		flow:        flow,
		resources:   resources,
		assessments: assessments,
		counselors:  counselors,
	}
}

// StartSession creates a session pre-seeded with the system prompt and the
// type-dependent welcome message
func (s *Service) StartSession(ctx context.Context, userID, sessionType, title string) (*model.Session, error) {
	switch sessionType {
	case model.SessionTypeChat, model.SessionTypeCounseling, model.SessionTypeAssessmentDiscussion:
	default:
		return nil, fmt.Errorf("%w: invalid session type %q", ErrValidation, sessionType)
	}

	if title == "" {
		title = strings.ToUpper(sessionType[:1]) + sessionType[1:] + " Session"
	}

	now := time.Now()
	session := &model.Session{
		ID:       uuid.NewString(),
		UserID:   userID,
		Type:     sessionType,
		Title:    title,
		IsActive: true,
		Messages: []model.Message{
			{
				ID:        uuid.NewString(),
				Role:      model.RoleSystem,
				Content:   SystemPrompt(sessionType),
				Timestamp: now,
			},
			{
				ID:        uuid.NewString(),
				Role:      model.RoleAssistant,
				Content:   WelcomeMessage(sessionType),
				Timestamp: now,
			},
		},
	}
	for i := range session.Messages {
		session.Messages[i].SessionID = session.ID
	}

	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// SendMessage handles one conversation turn. Turns are serialized per
// session: crisis tagging first, then the active booking flow, then intent
// dispatch, and only unmatched messages reach the AI pipeline.
func (s *Service) SendMessage(ctx context.Context, sessionID, userID, content, mood string) (*SendResult, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: empty message", ErrValidation)
	}
	if mood != "" && !validMoods[mood] {
		return nil, fmt.Errorf("%w: invalid mood %q", ErrValidation, mood)
	}

	lock := s.state.Lock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.sessions.GetActiveByID(sessionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	containsCrisis := DetectCrisis(content)
	if containsCrisis {
		session.ContainsCrisisLanguage = true
		session.EscalationNeeded = true
	}
	if mood != "" {
		if session.MoodBefore == "" {
			session.MoodBefore = mood
		}
		session.MoodAfter = mood
	}

	state := s.state.Get(ctx, sessionID)
	intent := Classify(content)

	result, err := s.dispatchIntent(ctx, session, state, userID, intent)
	if err != nil {
		return nil, err
	}
	if result != nil {
		result.ContainsCrisis = containsCrisis
		return result, nil
	}

	// No intent consumed the message, hand it to the AI pipeline.
	return s.aiTurn(ctx, session, state, content, containsCrisis)
}

// dispatchIntent runs the short-circuit paths. A nil result means nothing
// consumed the message. An in-progress booking flow gets the intent before
// generic dispatch; booking set/submit intents outside an active flow fall
// through to the AI pipeline.
func (s *Service) dispatchIntent(ctx context.Context, session *model.Session, state *ConversationState, userID string, intent Intent) (*SendResult, error) {
	if state.Booking.Active() && intent.Kind != IntentBookingStart {
		if reply, consumed := s.flow.Offer(ctx, &state.Booking, userID, intent); consumed {
			return s.finishIntentTurn(ctx, session, state, &SendResult{}, reply)
		}
	}

	switch intent.Kind {
	case IntentNavigate:
		result := &SendResult{Navigation: &NavigationSignal{Route: intent.Route, Label: intent.Label}}
		return s.finishIntentTurn(ctx, session, state, result, "Navigating to "+intent.Label+"…")

	case IntentAssessmentList:
		return s.assessmentList(ctx, session, state)

	case IntentAssessmentOpen:
		return s.assessmentOpen(ctx, session, state, intent.Name)

	case IntentResourceList:
		return s.resourceList(ctx, session, state)

	case IntentResourceOpen:
		return s.resourceOpen(ctx, session, state, intent.Name)

	case IntentCounselorList:
		return s.counselorList(ctx, session, state)

	case IntentBookingStart:
		reply := s.flow.Start(&state.Booking)
		return s.finishIntentTurn(ctx, session, state, &SendResult{}, reply)

	case IntentBookingDirect:
		reply := s.flow.Direct(ctx, userID, intent)
		return s.finishIntentTurn(ctx, session, state, &SendResult{}, reply)
	}

	return nil, nil
}

// aiTurn appends the user message and the generated assistant reply, exactly
// two messages per turn, user first
func (s *Service) aiTurn(ctx context.Context, session *model.Session, state *ConversationState, content string, containsCrisis bool) (*SendResult, error) {
	transcript := BuildTranscript(session.Type, session.Messages, content)

	userMsg := &model.Message{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Role:      model.RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
	if containsCrisis {
		userMsg.Sentiment = model.SentimentNegative
	}
	if err := s.sessions.AppendMessage(userMsg); err != nil {
		return nil, fmt.Errorf("append user message: %w", err)
	}

	reply, confidence := s.pipeline.Respond(ctx, transcript, content, session.Type)
	if containsCrisis {
		reply += crisisResourcesBlock
	}

	assistantMsg := &model.Message{
		ID:         uuid.NewString(),
		SessionID:  session.ID,
		Role:       model.RoleAssistant,
		Content:    reply,
		Timestamp:  time.Now(),
		Confidence: confidence,
	}
	if err := s.sessions.AppendMessage(assistantMsg); err != nil {
		return nil, fmt.Errorf("append assistant message: %w", err)
	}

	session.Messages = append(session.Messages, *userMsg, *assistantMsg)
	if overall, score, ok := AnalyzeSentiment(session.Messages); ok {
		session.SentimentOverall = overall
		session.SentimentScore = score
	}
	if err := s.sessions.Update(session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	s.state.Save(ctx, state)

	return &SendResult{
		Message:        assistantMsg,
		SessionID:      session.ID,
		ContainsCrisis: containsCrisis,
	}, nil
}

// finishIntentTurn appends the single acknowledgement message an intent turn
// produces and persists session flags and conversation state
func (s *Service) finishIntentTurn(ctx context.Context, session *model.Session, state *ConversationState, result *SendResult, reply string) (*SendResult, error) {
	msg := &model.Message{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Role:      model.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now(),
	}
	if err := s.sessions.AppendMessage(msg); err != nil {
		return nil, fmt.Errorf("append assistant message: %w", err)
	}
	if err := s.sessions.Update(session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	s.state.Save(ctx, state)

	result.Message = msg
	result.SessionID = session.ID
	return result, nil
}

func (s *Service) assessmentList(ctx context.Context, session *model.Session, state *ConversationState) (*SendResult, error) {
	options, err := s.cachedAssessments(ctx, state)
	if err != nil || len(options) == 0 {
		return s.finishIntentTurn(ctx, session, state, &SendResult{},
			"I couldn't load self-assessments right now. Please try again later.")
	}
	if len(options) > 8 {
		options = options[:8]
	}
	return s.finishIntentTurn(ctx, session, state, &SendResult{Assessments: options},
		"Here are the available self-assessments:")
}

func (s *Service) assessmentOpen(ctx context.Context, session *model.Session, state *ConversationState, name string) (*SendResult, error) {
	options, err := s.cachedAssessments(ctx, state)
	if err != nil || len(options) == 0 {
		return s.finishIntentTurn(ctx, session, state, &SendResult{},
			"I couldn't load self-assessments right now. Please try again later.")
	}

	target := resolveAssessment(options, name)
	if target == nil {
		return s.finishIntentTurn(ctx, session, state, &SendResult{},
			"I couldn't find an assessment named \""+name+"\". Try saying: list assessments.")
	}

	result := &SendResult{Navigation: &NavigationSignal{Route: "/app/assessment", Label: target.Title}}
	return s.finishIntentTurn(ctx, session, state, result, "Opening assessment: "+target.Title+"…")
}

func (s *Service) resourceList(ctx context.Context, session *model.Session, state *ConversationState) (*SendResult, error) {
	resources, err := s.cachedResources(ctx, state)
	if err != nil || len(resources) == 0 {
		return s.finishIntentTurn(ctx, session, state, &SendResult{},
			"I couldn't load resources right now. Please try again later.")
	}
	if len(resources) > 8 {
		resources = resources[:8]
	}
	return s.finishIntentTurn(ctx, session, state, &SendResult{Resources: resources},
		"Here are the available resources:")
}

func (s *Service) resourceOpen(ctx context.Context, session *model.Session, state *ConversationState, name string) (*SendResult, error) {
	resources, err := s.cachedResources(ctx, state)
	if err != nil || len(resources) == 0 {
		return s.finishIntentTurn(ctx, session, state, &SendResult{},
			"I couldn't load resources right now. Please try again later.")
	}

	target := resolveResource(resources, name)
	if target == nil {
		return s.finishIntentTurn(ctx, session, state, &SendResult{},
			"I couldn't find a resource named \""+name+"\". Try saying: list resources.")
	}

	result := &SendResult{Navigation: &NavigationSignal{Route: "/app/resources", Label: target.Title}}
	return s.finishIntentTurn(ctx, session, state, result, "Opening resource: "+target.Title+"…")
}

func (s *Service) counselorList(ctx context.Context, session *model.Session, state *ConversationState) (*SendResult, error) {
	counselors, err := s.counselors.ListActiveCounselors(ctx)
	if err != nil {
		return s.finishIntentTurn(ctx, session, state, &SendResult{},
			"Sorry, I could not load counselors right now.")
	}
	if len(counselors) > 8 {
		counselors = counselors[:8]
	}
	return s.finishIntentTurn(ctx, session, state, &SendResult{Counselors: counselors},
		"Here are the available counselors:")
}

// resolveAssessment matches by exact title, then exact type, then substring
// on either, first hit in catalog order
func resolveAssessment(options []AssessmentOption, name string) *AssessmentOption {
	lower := strings.ToLower(name)
	for i := range options {
		if strings.ToLower(options[i].Title) == lower {
			return &options[i]
		}
	}
	for i := range options {
		if strings.ToLower(options[i].Type) == lower {
			return &options[i]
		}
	}
	for i := range options {
		if strings.Contains(strings.ToLower(options[i].Title), lower) ||
			strings.Contains(strings.ToLower(options[i].Type), lower) {
			return &options[i]
		}
	}
	return nil
}

// resolveResource matches by exact title, then first substring hit
func resolveResource(resources []*model.Resource, name string) *model.Resource {
	lower := strings.ToLower(name)
	for _, r := range resources {
		if strings.ToLower(r.Title) == lower {
			return r
		}
	}
	for _, r := range resources {
		if strings.Contains(strings.ToLower(r.Title), lower) {
			return r
		}
	}
	return nil
}

func (s *Service) cachedResources(ctx context.Context, state *ConversationState) ([]*model.Resource, error) {
	if state.resources != nil {
		return state.resources, nil
	}
	resources, err := s.resources.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	state.resources = resources
	return resources, nil
}

func (s *Service) cachedAssessments(ctx context.Context, state *ConversationState) ([]AssessmentOption, error) {
	if state.assessments != nil {
		return state.assessments, nil
	}
	options, err := s.assessments.ListAssessmentTypes(ctx)
	if err != nil {
		return nil, err
	}
	state.assessments = options
	return options, nil
}

// GetSession returns one session with its messages
func (s *Service) GetSession(ctx context.Context, sessionID, userID string) (*model.Session, error) {
	session, err := s.sessions.GetByID(sessionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	return session, nil
}

// ListSessions returns a page of the user's sessions without messages
func (s *Service) ListSessions(ctx context.Context, userID, sessionType string, active *bool, page, limit int) ([]*model.Session, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.sessions.List(userID, sessionType, active, (page-1)*limit, limit)
}

// EndSession closes an active session, computes its duration in whole
// minutes and stores the optional summary and feedback
func (s *Service) EndSession(ctx context.Context, sessionID, userID string, input EndSessionInput) (*model.Session, error) {
	if len(input.Summary) > 1000 {
		return nil, fmt.Errorf("%w: summary too long", ErrValidation)
	}
	if input.FeedbackRating != 0 && (input.FeedbackRating < 1 || input.FeedbackRating > 5) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if len(input.FeedbackComment) > 500 {
		return nil, fmt.Errorf("%w: comment too long", ErrValidation)
	}

	lock := s.state.Lock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.sessions.GetActiveByID(sessionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	now := time.Now()
	session.IsActive = false
	session.EndedAt = &now
	session.Duration = int(math.Round(now.Sub(session.CreatedAt).Minutes()))
	if input.Summary != "" {
		session.Summary = input.Summary
	}
	if input.FeedbackRating != 0 {
		session.FeedbackRating = input.FeedbackRating
	}
	if input.FeedbackComment != "" {
		session.FeedbackComment = input.FeedbackComment
	}

	if err := s.sessions.Update(session); err != nil {
		return nil, fmt.Errorf("end session: %w", err)
	}
	s.state.Clear(ctx, sessionID)
	return session, nil
}

// DeleteSession removes a session and its transcript
func (s *Service) DeleteSession(ctx context.Context, sessionID, userID string) error {
	if _, err := s.sessions.GetByID(sessionID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("load session: %w", err)
	}
	if err := s.sessions.Delete(sessionID, userID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.state.Clear(ctx, sessionID)
	return nil
}

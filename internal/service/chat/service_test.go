package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"gorm.io/gorm"

	"github.com/ashwinyue/mindwell/internal/model"
)

// mockSessionStore keeps sessions and messages in memory
type mockSessionStore struct {
	sessions    map[string]*model.Session
	messages    map[string][]model.Message
	createError error
	appendError error
	updateError error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{
		sessions: make(map[string]*model.Session),
		messages: make(map[string][]model.Message),
	}
}

func (m *mockSessionStore) Create(session *model.Session) error {
	if m.createError != nil {
		return m.createError
	}
	stored := *session
	stored.Messages = nil
	m.sessions[session.ID] = &stored
	m.messages[session.ID] = append([]model.Message{}, session.Messages...)
	return nil
}

func (m *mockSessionStore) GetByID(id, userID string) (*model.Session, error) {
	session, ok := m.sessions[id]
	if !ok || session.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	found := *session
	found.Messages = append([]model.Message{}, m.messages[id]...)
	return &found, nil
}

func (m *mockSessionStore) GetActiveByID(id, userID string) (*model.Session, error) {
	session, err := m.GetByID(id, userID)
	if err != nil {
		return nil, err
	}
	if !session.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return session, nil
}

func (m *mockSessionStore) List(userID, sessionType string, active *bool, offset, limit int) ([]*model.Session, int64, error) {
	result := make([]*model.Session, 0)
	for _, session := range m.sessions {
		if session.UserID != userID {
			continue
		}
		if sessionType != "" && session.Type != sessionType {
			continue
		}
		if active != nil && session.IsActive != *active {
			continue
		}
		result = append(result, session)
	}
	return result, int64(len(result)), nil
}

func (m *mockSessionStore) Update(session *model.Session) error {
	if m.updateError != nil {
		return m.updateError
	}
	if _, ok := m.sessions[session.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *session
	stored.Messages = nil
	m.sessions[session.ID] = &stored
	return nil
}

func (m *mockSessionStore) Delete(id, userID string) error {
	delete(m.sessions, id)
	delete(m.messages, id)
	return nil
}

func (m *mockSessionStore) AppendMessage(msg *model.Message) error {
	if m.appendError != nil {
		return m.appendError
	}
	m.messages[msg.SessionID] = append(m.messages[msg.SessionID], *msg)
	return nil
}

// mockResponder replaces the provider pipeline
type mockResponder struct {
	reply      string
	confidence float64
	calls      int
}

func (m *mockResponder) Respond(ctx context.Context, transcript []*schema.Message, latestUserText, sessionType string) (string, float64) {
	m.calls++
	return m.reply, m.confidence
}

type mockResourceCatalog struct {
	resources []*model.Resource
	listError error
	calls     int
}

func (m *mockResourceCatalog) ListResources(ctx context.Context) ([]*model.Resource, error) {
	m.calls++
	if m.listError != nil {
		return nil, m.listError
	}
	return m.resources, nil
}

type mockAssessmentCatalog struct {
	options []AssessmentOption
	calls   int
}

func (m *mockAssessmentCatalog) ListAssessmentTypes(ctx context.Context) ([]AssessmentOption, error) {
	m.calls++
	return m.options, nil
}

type mockCounselorLister struct {
	counselors []*model.Counselor
	listError  error
}

func (m *mockCounselorLister) ListActiveCounselors(ctx context.Context) ([]*model.Counselor, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.counselors, nil
}

type serviceFixture struct {
	svc        *Service
	store      *mockSessionStore
	responder  *mockResponder
	resources  *mockResourceCatalog
	assessment *mockAssessmentCatalog
	creator    *mockBookingCreator
}

func newServiceFixture() *serviceFixture {
	store := newMockSessionStore()
	responder := &mockResponder{reply: "I hear you", confidence: confidenceLow}
	resources := &mockResourceCatalog{resources: []*model.Resource{
		{ID: "r1", Title: "Sleep Hygiene Basics", Link: "https://example.com/sleep"},
		{ID: "r2", Title: "Grounding Techniques", Link: "https://example.com/ground"},
	}}
	assessment := &mockAssessmentCatalog{options: []AssessmentOption{
		{Type: "stress", Title: "Stress Level Assessment"},
		{Type: "anxiety", Title: "Anxiety Assessment (GAD-7 based)"},
	}}
	counselors := &mockCounselorLister{counselors: []*model.Counselor{
		{ID: "c1", Name: "Jane Doe", Email: "jane@example.com", IsActive: true},
	}}

	finder := &mockCounselorFinder{counselors: map[string]*model.Counselor{
		"jane doe": {ID: "c1", Name: "Jane Doe", Email: "jane@example.com", IsActive: true},
	}}
	creator := &mockBookingCreator{}
	flow := NewBookingFlow(finder, creator)

	svc := NewService(store, NewStateManager(nil), responder, flow, resources, assessment, counselors)
	return &serviceFixture{
		svc:        svc,
		store:      store,
		responder:  responder,
		resources:  resources,
		assessment: assessment,
		creator:    creator,
	}
}

func TestStartSession(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()

	session, err := f.svc.StartSession(ctx, "u1", model.SessionTypeChat, "")
	if err != nil {
		t.Fatalf("StartSession() error: %v", err)
	}
	if session.Title != "Chat Session" {
		t.Errorf("Title = %q, want %q", session.Title, "Chat Session")
	}
	if !session.IsActive {
		t.Error("new session not active")
	}
	if len(session.Messages) != 2 {
		t.Fatalf("message count = %d, want 2", len(session.Messages))
	}
	if session.Messages[0].Role != model.RoleSystem {
		t.Errorf("first message role = %q, want system", session.Messages[0].Role)
	}
	if session.Messages[1].Role != model.RoleAssistant || session.Messages[1].Content != chatWelcomeMessage {
		t.Errorf("second message = %q/%q, want assistant welcome", session.Messages[1].Role, session.Messages[1].Content)
	}

	counseling, err := f.svc.StartSession(ctx, "u1", model.SessionTypeCounseling, "My Space")
	if err != nil {
		t.Fatalf("StartSession() error: %v", err)
	}
	if counseling.Title != "My Space" {
		t.Errorf("Title = %q, want %q", counseling.Title, "My Space")
	}
	if counseling.Messages[1].Content != counselingWelcomeMessage {
		t.Errorf("welcome = %q, want counseling welcome", counseling.Messages[1].Content)
	}

	if _, err := f.svc.StartSession(ctx, "u1", "group-therapy", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("invalid type error = %v, want ErrValidation", err)
	}
}

func TestSendMessageAITurn(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	session, _ := f.svc.StartSession(ctx, "u1", model.SessionTypeChat, "")

	result, err := f.svc.SendMessage(ctx, session.ID, "u1", "I feel really anxious today", "")
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if result.Message.Content != "I hear you" {
		t.Errorf("reply = %q, want %q", result.Message.Content, "I hear you")
	}
	if result.ContainsCrisis {
		t.Error("ContainsCrisis = true, want false")
	}
	if result.Message.Confidence != confidenceLow {
		t.Errorf("Confidence = %v, want %v", result.Message.Confidence, confidenceLow)
	}

	msgs := f.store.messages[session.ID]
	if len(msgs) != 4 {
		t.Fatalf("message count = %d, want 4", len(msgs))
	}
	if msgs[2].Role != model.RoleUser || msgs[3].Role != model.RoleAssistant {
		t.Errorf("turn roles = %q,%q, want user,assistant", msgs[2].Role, msgs[3].Role)
	}

	stored := f.store.sessions[session.ID]
	if stored.SentimentOverall != model.SentimentNegative {
		t.Errorf("SentimentOverall = %q, want negative", stored.SentimentOverall)
	}
}

func TestSendMessageCrisis(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	session, _ := f.svc.StartSession(ctx, "u1", model.SessionTypeChat, "")

	result, err := f.svc.SendMessage(ctx, session.ID, "u1", "I want to kill myself", "")
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if !result.ContainsCrisis {
		t.Error("ContainsCrisis = false, want true")
	}
	if !strings.HasSuffix(result.Message.Content, crisisResourcesBlock) {
		t.Errorf("reply %q does not end with crisis resources block", result.Message.Content)
	}
	if !strings.HasPrefix(result.Message.Content, "I hear you") {
		t.Errorf("reply %q should start with provider reply", result.Message.Content)
	}

	msgs := f.store.messages[session.ID]
	if msgs[2].Sentiment != model.SentimentNegative {
		t.Errorf("user message sentiment = %q, want negative", msgs[2].Sentiment)
	}

	stored := f.store.sessions[session.ID]
	if !stored.ContainsCrisisLanguage || !stored.EscalationNeeded {
		t.Error("crisis flags not set")
	}

	// flags stay set after a crisis-free turn
	result, err = f.svc.SendMessage(ctx, session.ID, "u1", "I feel calmer now", "")
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if result.ContainsCrisis {
		t.Error("ContainsCrisis = true for crisis-free turn")
	}
	stored = f.store.sessions[session.ID]
	if !stored.ContainsCrisisLanguage || !stored.EscalationNeeded {
		t.Error("crisis flags cleared, must stay set")
	}
}

func TestSendMessageMood(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	session, _ := f.svc.StartSession(ctx, "u1", model.SessionTypeChat, "")

	if _, err := f.svc.SendMessage(ctx, session.ID, "u1", "rough morning", "low"); err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	stored := f.store.sessions[session.ID]
	if stored.MoodBefore != "low" || stored.MoodAfter != "low" {
		t.Errorf("mood = %q/%q, want low/low", stored.MoodBefore, stored.MoodAfter)
	}

	if _, err := f.svc.SendMessage(ctx, session.ID, "u1", "feeling a bit lighter", "good"); err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	stored = f.store.sessions[session.ID]
	if stored.MoodBefore != "low" {
		t.Errorf("MoodBefore = %q, want low (first value kept)", stored.MoodBefore)
	}
	if stored.MoodAfter != "good" {
		t.Errorf("MoodAfter = %q, want good", stored.MoodAfter)
	}

	if _, err := f.svc.SendMessage(ctx, session.ID, "u1", "hi", "ecstatic"); !errors.Is(err, ErrValidation) {
		t.Errorf("invalid mood error = %v, want ErrValidation", err)
	}
}

func TestSendMessageIntentTurn(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	session, _ := f.svc.StartSession(ctx, "u1", model.SessionTypeChat, "")

	result, err := f.svc.SendMessage(ctx, session.ID, "u1", "show resources", "")
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if len(result.Resources) != 2 {
		t.Errorf("resources = %d, want 2", len(result.Resources))
	}
	if f.responder.calls != 0 {
		t.Errorf("responder called %d times on intent turn, want 0", f.responder.calls)
	}

	// exactly one assistant acknowledgement appended, no user echo
	msgs := f.store.messages[session.ID]
	if len(msgs) != 3 {
		t.Fatalf("message count = %d, want 3", len(msgs))
	}
	if msgs[2].Role != model.RoleAssistant {
		t.Errorf("appended role = %q, want assistant", msgs[2].Role)
	}

	// catalog fetched once per conversation
	if _, err := f.svc.SendMessage(ctx, session.ID, "u1", "list resources", ""); err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if f.resources.calls != 1 {
		t.Errorf("catalog fetched %d times, want 1", f.resources.calls)
	}
}

func TestSendMessageNavigation(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	session, _ := f.svc.StartSession(ctx, "u1", model.SessionTypeChat, "")

	result, err := f.svc.SendMessage(ctx, session.ID, "u1", "go to dashboard", "")
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if result.Navigation == nil || result.Navigation.Route != "/app/dashboard" {
		t.Fatalf("Navigation = %+v, want /app/dashboard", result.Navigation)
	}
	if result.Message.Content != "Navigating to Dashboard…" {
		t.Errorf("reply = %q, want %q", result.Message.Content, "Navigating to Dashboard…")
	}
}

func TestSendMessageBookingFlowEndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	session, _ := f.svc.StartSession(ctx, "u1", model.SessionTypeChat, "")

	turns := []struct {
		text      string
		wantReply string
	}{
		{"book a counseling session", promptStart},
		{"counselor is jane doe", promptReason},
		{"reason is burnout", promptTime},
		{"time is 5-6 PM", promptConfirm},
	}
	for _, turn := range turns {
		result, err := f.svc.SendMessage(ctx, session.ID, "u1", turn.text, "")
		if err != nil {
			t.Fatalf("SendMessage(%q) error: %v", turn.text, err)
		}
		if result.Message.Content != turn.wantReply {
			t.Errorf("reply to %q = %q, want %q", turn.text, result.Message.Content, turn.wantReply)
		}
	}

	result, err := f.svc.SendMessage(ctx, session.ID, "u1", "confirm", "")
	if err != nil {
		t.Fatalf("SendMessage(confirm) error: %v", err)
	}
	if !strings.HasPrefix(result.Message.Content, "Your counseling request to Jane Doe") {
		t.Errorf("confirmation = %q", result.Message.Content)
	}

	if len(f.creator.created) != 1 {
		t.Fatalf("bookings created = %d, want 1", len(f.creator.created))
	}
	booking := f.creator.created[0]
	if booking.Reason != "burnout" || booking.PreferredTime != "5-6 pm" {
		t.Errorf("booking = %+v, want burnout / 5-6 pm", booking)
	}
	if f.responder.calls != 0 {
		t.Errorf("responder called %d times during booking flow, want 0", f.responder.calls)
	}

	// flow over: an unmatched message reaches the AI pipeline again
	if _, err := f.svc.SendMessage(ctx, session.ID, "u1", "thanks, that helps", ""); err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if f.responder.calls != 1 {
		t.Errorf("responder calls = %d, want 1", f.responder.calls)
	}
}

func TestSendMessageSessionNotFound(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()

	if _, err := f.svc.SendMessage(ctx, "missing", "u1", "hello", ""); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}

	// wrong owner hides the session
	session, _ := f.svc.StartSession(ctx, "u1", model.SessionTypeChat, "")
	if _, err := f.svc.SendMessage(ctx, session.ID, "u2", "hello", ""); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestEndSession(t *testing.T) {
	ctx := context.Background()
	f := newServiceFixture()
	session, _ := f.svc.StartSession(ctx, "u1", model.SessionTypeChat, "")

	ended, err := f.svc.EndSession(ctx, session.ID, "u1", EndSessionInput{
		Summary:         "short check-in",
		FeedbackRating:  5,
		FeedbackComment: "helpful",
	})
	if err != nil {
		t.Fatalf("EndSession() error: %v", err)
	}
	if ended.IsActive {
		t.Error("session still active")
	}
	if ended.EndedAt == nil {
		t.Error("EndedAt not set")
	}
	if ended.Duration < 0 {
		t.Errorf("Duration = %d, want >= 0", ended.Duration)
	}
	if ended.Summary != "short check-in" || ended.FeedbackRating != 5 {
		t.Errorf("summary/rating = %q/%d", ended.Summary, ended.FeedbackRating)
	}

	// ending twice fails, the session is no longer active
	if _, err := f.svc.EndSession(ctx, session.ID, "u1", EndSessionInput{}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second end error = %v, want ErrSessionNotFound", err)
	}
	// and so does sending
	if _, err := f.svc.SendMessage(ctx, session.ID, "u1", "hello", ""); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("send after end error = %v, want ErrSessionNotFound", err)
	}

	if _, err := f.svc.EndSession(ctx, session.ID, "u1", EndSessionInput{FeedbackRating: 9}); !errors.Is(err, ErrValidation) {
		t.Errorf("rating error = %v, want ErrValidation", err)
	}
}

func TestResolveHelpers(t *testing.T) {
	options := []AssessmentOption{
		{Type: "stress", Title: "Stress Level Assessment"},
		{Type: "anxiety", Title: "Anxiety Assessment (GAD-7 based)"},
	}
	if got := resolveAssessment(options, "anxiety"); got == nil || got.Type != "anxiety" {
		t.Errorf("resolveAssessment(anxiety) = %+v, want anxiety (exact type)", got)
	}
	if got := resolveAssessment(options, "stress level assessment"); got == nil || got.Type != "stress" {
		t.Errorf("resolveAssessment(title) = %+v, want stress", got)
	}
	if got := resolveAssessment(options, "gad-7"); got == nil || got.Type != "anxiety" {
		t.Errorf("resolveAssessment(partial) = %+v, want anxiety", got)
	}
	if got := resolveAssessment(options, "phq"); got != nil {
		t.Errorf("resolveAssessment(miss) = %+v, want nil", got)
	}

	resources := []*model.Resource{
		{ID: "r1", Title: "Sleep Hygiene Basics"},
		{ID: "r2", Title: "Grounding Techniques"},
	}
	if got := resolveResource(resources, "grounding techniques"); got == nil || got.ID != "r2" {
		t.Errorf("resolveResource(exact) = %+v, want r2", got)
	}
	if got := resolveResource(resources, "sleep"); got == nil || got.ID != "r1" {
		t.Errorf("resolveResource(partial) = %+v, want r1", got)
	}
	if got := resolveResource(resources, "yoga"); got != nil {
		t.Errorf("resolveResource(miss) = %+v, want nil", got)
	}
}

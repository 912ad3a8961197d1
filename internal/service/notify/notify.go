// Package notify delivers counselor-facing notifications. The default
// implementation serializes the rendered mail to the log instead of talking
// to an external mail provider.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/ashwinyue/mindwell/internal/config"
)

const defaultPreferredTime = "16:00-17:00"

// CounselingRequest is the payload of a booking notification
type CounselingRequest struct {
	CounselorEmail string
	CounselorName  string
	UserName       string
	UserEmail      string
	Reason         string
	PreferredTime  string
}

// Result describes one delivery attempt
type Result struct {
	Provider  string `json:"provider"`
	MessageID string `json:"messageId"`
}

// Mailer delivers counseling-request notifications
type Mailer interface {
	SendCounselingRequest(ctx context.Context, req CounselingRequest) (*Result, error)
}

// Reason keywords surfaced to the counselor, matched against the free-text
// booking reason.
var keywordPatterns = []struct {
	tag     string
	pattern *regexp.Regexp
}{
	{"sadness", regexp.MustCompile(`(sad|down|low mood)`)},
	{"stress", regexp.MustCompile(`(stress|stressed|overwhelmed|pressure)`)},
	{"anxiety", regexp.MustCompile(`(anxiety|anxious|worry|nervous)`)},
	{"depression", regexp.MustCompile(`(depress|depressed|hopeless)`)},
	{"panic", regexp.MustCompile(`(panic|panic attacks)`)},
	{"loneliness", regexp.MustCompile(`(lonely|isolation|isolated)`)},
	{"sleep issues", regexp.MustCompile(`(sleep|insomnia|can\s*not\s*sleep|trouble\s*sleeping)`)},
	{"anger", regexp.MustCompile(`(anger|angry|irritable)`)},
}

// ExtractKeywords tags a booking reason with the matched concern keywords
func ExtractKeywords(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, kp := range keywordPatterns {
		if kp.pattern.MatchString(lower) {
			tags = append(tags, kp.tag)
		}
	}
	return tags
}

// renderSubject and renderText produce the counselor-facing mail content
func renderSubject(req CounselingRequest, preferredTime string) string {
	return fmt.Sprintf("Counseling Request • %s • %s", req.UserName, preferredTime)
}

func renderText(req CounselingRequest, preferredTime, fromName string) string {
	return fmt.Sprintf("Dear %s,\n\n"+
		"You have a new counseling request:\n"+
		"• Name: %s\n"+
		"• Email: %s\n"+
		"• Preferred Time: %s\n"+
		"• Reason: %s\n\n"+
		"Reply to confirm the session.\n"+
		"— %s",
		req.CounselorName, req.UserName, req.UserEmail, preferredTime, req.Reason, fromName)
}

// jsonMailer renders the mail and writes it to the log as one JSON document
type jsonMailer struct {
	fromAddress string
	fromName    string
}

// NewJSONMailer creates the log-backed mailer
func NewJSONMailer(cfg *config.Config) Mailer {
	fromAddress := cfg.Mail.FromAddress
	if fromAddress == "" {
		fromAddress = "no-reply@example.com"
	}
	fromName := cfg.Mail.FromName
	if fromName == "" {
		fromName = "Counseling Bot"
	}
	return &jsonMailer{fromAddress: fromAddress, fromName: fromName}
}

type mailEnvelope struct {
	MessageID string   `json:"messageId"`
	From      string   `json:"from"`
	FromName  string   `json:"fromName"`
	To        string   `json:"to"`
	ReplyTo   string   `json:"replyTo"`
	Subject   string   `json:"subject"`
	Text      string   `json:"text"`
	Keywords  []string `json:"keywords,omitempty"`
}

func (m *jsonMailer) SendCounselingRequest(ctx context.Context, req CounselingRequest) (*Result, error) {
	preferredTime := req.PreferredTime
	if preferredTime == "" {
		preferredTime = defaultPreferredTime
	}

	envelope := mailEnvelope{
		MessageID: uuid.NewString(),
		From:      m.fromAddress,
		FromName:  m.fromName,
		To:        req.CounselorEmail,
		ReplyTo:   req.UserEmail,
		Subject:   renderSubject(req, preferredTime),
		Text:      renderText(req, preferredTime, m.fromName),
		Keywords:  ExtractKeywords(req.Reason),
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("marshal mail envelope: %w", err)
	}
	log.Printf("mail out: %s", data)

	return &Result{Provider: "json", MessageID: envelope.MessageID}, nil
}

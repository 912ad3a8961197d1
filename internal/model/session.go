package model

import "time"

// Session types
const (
	SessionTypeChat                 = "chat"
	SessionTypeCounseling           = "counseling"
	SessionTypeAssessmentDiscussion = "assessment-discussion"
)

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Sentiment values
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Session one continuous conversation between a user and the assistant
type Session struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36;not null" json:"user_id"`
	Type      string    `gorm:"index;size:30;not null" json:"type"` // chat, counseling, assessment-discussion
	Title     string    `gorm:"size:200" json:"title"`
	Summary   string    `gorm:"size:1000" json:"summary,omitempty"`
	Messages  []Message `gorm:"foreignKey:SessionID" json:"messages,omitempty"`

	MoodBefore string `gorm:"size:20" json:"mood_before,omitempty"` // very-low, low, neutral, good, very-good
	MoodAfter  string `gorm:"size:20" json:"mood_after,omitempty"`

	SentimentOverall string  `gorm:"size:20" json:"sentiment_overall,omitempty"` // positive, neutral, negative
	SentimentScore   float64 `json:"sentiment_score,omitempty"`

	// Flags are monotonic: once set true they are never cleared.
	ContainsCrisisLanguage bool `gorm:"index;default:false" json:"contains_crisis_language"`
	RequiresFollowUp       bool `gorm:"default:false" json:"requires_follow_up"`
	EscalationNeeded       bool `gorm:"default:false" json:"escalation_needed"`

	IsActive bool       `gorm:"index;default:true" json:"is_active"`
	EndedAt  *time.Time `json:"ended_at,omitempty"`
	Duration int        `json:"duration,omitempty"` // whole minutes, set on end

	FeedbackRating  int    `json:"feedback_rating,omitempty"` // 1..5
	FeedbackComment string `gorm:"size:500" json:"feedback_comment,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Message one role-tagged entry in a session transcript
type Message struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	SessionID string    `gorm:"index;size:36;not null" json:"session_id"`
	Role      string    `gorm:"size:20;not null" json:"role"` // user, assistant, system
	Content   string    `gorm:"type:text;not null" json:"content"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`

	// Optional metadata, set only at append time.
	Sentiment  string  `gorm:"size:20" json:"sentiment,omitempty"` // positive, neutral, negative
	Confidence float64 `json:"confidence,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

// TableName table names
func (Session) TableName() string {
	return "sessions"
}

func (Message) TableName() string {
	return "messages"
}

package model

import "time"

// Assessment severity bands
const (
	SeverityLow      = "low"
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeverityHigh     = "high"
	SeveritySevere   = "severe"
)

// Assessment a completed self-assessment with server-side scoring
type Assessment struct {
	ID              string               `gorm:"primaryKey;size:36" json:"id"`
	UserID          string               `gorm:"index;size:36;not null" json:"user_id"`
	Type            string               `gorm:"index;size:30;not null" json:"type"` // stress, anxiety, depression, sleep, general-wellbeing
	Title           string               `gorm:"size:200;not null" json:"title"`
	Description     string               `gorm:"size:500" json:"description"`
	Responses       []AssessmentResponse `gorm:"foreignKey:AssessmentID" json:"responses,omitempty"`
	TotalScore      int                  `json:"total_score"`
	MaxScore        int                  `json:"max_score"`
	Percentage      int                  `json:"percentage"`
	Severity        string               `gorm:"index;size:20;default:low" json:"severity"`
	Recommendations string               `gorm:"type:text" json:"recommendations"` // newline separated
	Duration        int                  `json:"duration,omitempty"`               // seconds
	CompletedAt     time.Time            `json:"completed_at"`
	CreatedAt       time.Time            `gorm:"autoCreateTime" json:"created_at"`
}

// AssessmentResponse one scored answer within an assessment
type AssessmentResponse struct {
	ID           string `gorm:"primaryKey;size:36" json:"id"`
	AssessmentID string `gorm:"index;size:36;not null" json:"assessment_id"`
	QuestionID   string `gorm:"size:50;not null" json:"question_id"`
	Question     string `gorm:"size:500;not null" json:"question"`
	Answer       string `gorm:"size:200;not null" json:"answer"`
	Score        int    `json:"score"`
}

// AssessmentTypeStat aggregate figures for one assessment type
type AssessmentTypeStat struct {
	Type         string  `json:"type"`
	Count        int64   `json:"count"`
	AverageScore float64 `json:"average_score"`
}

// CalculateSeverity maps the percentage to a severity band
func (a *Assessment) CalculateSeverity() string {
	switch {
	case a.Percentage <= 20:
		a.Severity = SeverityLow
	case a.Percentage <= 40:
		a.Severity = SeverityMild
	case a.Percentage <= 60:
		a.Severity = SeverityModerate
	case a.Percentage <= 80:
		a.Severity = SeverityHigh
	default:
		a.Severity = SeveritySevere
	}
	return a.Severity
}

// TableName table names
func (Assessment) TableName() string {
	return "assessments"
}

func (AssessmentResponse) TableName() string {
	return "assessment_responses"
}

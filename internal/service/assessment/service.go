// Package assessment serves self-assessment questionnaires and scores
// submitted responses server-side.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashwinyue/mindwell/internal/model"
	"github.com/ashwinyue/mindwell/internal/service/chat"
)

var (
	ErrTypeNotFound       = errors.New("assessment type not found")
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrValidation         = errors.New("validation failed")
)

// AssessmentStore is the result history's persistence surface
type AssessmentStore interface {
	Create(assessment *model.Assessment) error
	GetByID(id, userID string) (*model.Assessment, error)
	List(userID, assessmentType, severity string, offset, limit int) ([]*model.Assessment, int64, error)
	StatsByType(userID string) ([]*model.AssessmentTypeStat, error)
	Latest(userID, assessmentType string) (*model.Assessment, error)
	Delete(id, userID string) error
}

// TypeSummary describes one questionnaire in the catalog
type TypeSummary struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	QuestionCount int    `json:"question_count"`
}

// AnswerInput one submitted answer, matched against the question's options
// by label or by numeric value
type AnswerInput struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// SubmitInput a full set of answers for one questionnaire
type SubmitInput struct {
	Responses []AnswerInput `json:"responses"`
	Duration  int           `json:"duration,omitempty"`
}

// TypeStats aggregate history figures for one questionnaire type
type TypeStats struct {
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Count        int64     `json:"count"`
	AverageScore float64   `json:"average_score"`
	LatestScore  int       `json:"latest_score"`
	LatestDate   time.Time `json:"latest_date"`
}

// Service scores questionnaires and keeps the result history
type Service struct {
	assessments AssessmentStore
}

// NewService creates the assessment service
func NewService(assessments AssessmentStore) *Service {
	return &Service{assessments: assessments}
}

// ListTypes returns the questionnaire catalog in display order
func (s *Service) ListTypes() []TypeSummary {
	types := make([]TypeSummary, 0, len(templateOrder))
	for _, key := range templateOrder {
		template := templates[key]
		types = append(types, TypeSummary{
			Type:          key,
			Title:         template.Title,
			Description:   template.Description,
			QuestionCount: len(template.Questions),
		})
	}
	return types
}

// ListAssessmentTypes returns the catalog as chat options, for the chat
// assessment-list intent
func (s *Service) ListAssessmentTypes(ctx context.Context) ([]chat.AssessmentOption, error) {
	options := make([]chat.AssessmentOption, 0, len(templateOrder))
	for _, key := range templateOrder {
		options = append(options, chat.AssessmentOption{Type: key, Title: templates[key].Title})
	}
	return options, nil
}

// Questions returns the full questionnaire for one type
func (s *Service) Questions(assessmentType string) (*Template, error) {
	template, ok := templates[assessmentType]
	if !ok {
		return nil, ErrTypeNotFound
	}
	return template, nil
}

// Submit scores a set of answers against the questionnaire template and
// stores the result with severity and recommendations
func (s *Service) Submit(ctx context.Context, userID, assessmentType string, input SubmitInput) (*model.Assessment, error) {
	template, ok := templates[assessmentType]
	if !ok {
		return nil, ErrTypeNotFound
	}
	if len(input.Responses) == 0 {
		return nil, fmt.Errorf("%w: responses are required", ErrValidation)
	}
	if input.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must be a positive integer", ErrValidation)
	}

	questions := make(map[string]*Question, len(template.Questions))
	for i := range template.Questions {
		questions[template.Questions[i].ID] = &template.Questions[i]
	}

	assessmentID := uuid.New().String()
	totalScore := 0
	responses := make([]model.AssessmentResponse, 0, len(input.Responses))
	for _, answer := range input.Responses {
		question, ok := questions[answer.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: invalid question ID: %s", ErrValidation, answer.QuestionID)
		}
		option, ok := matchOption(question, answer.Answer)
		if !ok {
			return nil, fmt.Errorf("%w: invalid answer for question %s", ErrValidation, answer.QuestionID)
		}
		totalScore += option.Value
		responses = append(responses, model.AssessmentResponse{
			ID:           uuid.New().String(),
			AssessmentID: assessmentID,
			QuestionID:   answer.QuestionID,
			Question:     question.Question,
			Answer:       answer.Answer,
			Score:        option.Value,
		})
	}

	maxScore := 0
	for _, question := range template.Questions {
		best := 0
		for _, option := range question.Options {
			if option.Value > best {
				best = option.Value
			}
		}
		maxScore += best
	}

	assessment := &model.Assessment{
		ID:          assessmentID,
		UserID:      userID,
		Type:        assessmentType,
		Title:       template.Title,
		Description: template.Description,
		Responses:   responses,
		TotalScore:  totalScore,
		MaxScore:    maxScore,
		Percentage:  int(math.Round(float64(totalScore) / float64(maxScore) * 100)),
		Duration:    input.Duration,
		CompletedAt: time.Now(),
	}
	assessment.CalculateSeverity()
	assessment.Recommendations = strings.Join(recommendationsFor(assessmentType, assessment.Severity), "\n")

	if err := s.assessments.Create(assessment); err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	return assessment, nil
}

// Get returns one assessment with its scored responses
func (s *Service) Get(ctx context.Context, userID, id string) (*model.Assessment, error) {
	assessment, err := s.assessments.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("get assessment: %w", err)
	}
	return assessment, nil
}

// List returns a user's assessment history, newest first, filtered by type
// and severity
func (s *Service) List(ctx context.Context, userID, assessmentType, severity string, page, limit int) ([]*model.Assessment, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	assessments, total, err := s.assessments.List(userID, assessmentType, severity, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list assessments: %w", err)
	}
	return assessments, total, nil
}

// Stats returns per-type history aggregates with the latest score of each
func (s *Service) Stats(ctx context.Context, userID string) ([]*TypeStats, error) {
	rows, err := s.assessments.StatsByType(userID)
	if err != nil {
		return nil, fmt.Errorf("assessment stats: %w", err)
	}

	stats := make([]*TypeStats, 0, len(rows))
	for _, row := range rows {
		stat := &TypeStats{
			Type:         row.Type,
			Count:        row.Count,
			AverageScore: row.AverageScore,
		}
		if template, ok := templates[row.Type]; ok {
			stat.Title = template.Title
		}
		latest, err := s.assessments.Latest(userID, row.Type)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("latest assessment: %w", err)
			}
		} else {
			stat.LatestScore = latest.Percentage
			stat.LatestDate = latest.CreatedAt
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

// Delete removes one assessment and its responses
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.assessments.GetByID(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssessmentNotFound
		}
		return fmt.Errorf("get assessment: %w", err)
	}
	if err := s.assessments.Delete(id, userID); err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	return nil
}

// matchOption finds the option a submitted answer selects, by label first,
// then by numeric value
func matchOption(question *Question, answer string) (Option, bool) {
	for _, option := range question.Options {
		if option.Label == answer {
			return option, true
		}
	}
	if value, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil {
		for _, option := range question.Options {
			if option.Value == value {
				return option, true
			}
		}
	}
	return Option{}, false
}

package repository

import (
	"github.com/ashwinyue/mindwell/internal/model"
	"gorm.io/gorm"
)

// AssessmentRepository assessment data access
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates the assessment repository
func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Create inserts an assessment and its responses
func (r *AssessmentRepository) Create(assessment *model.Assessment) error {
	return r.db.Create(assessment).Error
}

// GetByID fetches an assessment owned by userID, with responses
func (r *AssessmentRepository) GetByID(id, userID string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Preload("Responses").Where("id = ? AND user_id = ?", id, userID).First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// List returns a user's assessments without responses, newest first
func (r *AssessmentRepository) List(userID, assessmentType, severity string, offset, limit int) ([]*model.Assessment, int64, error) {
	query := r.db.Model(&model.Assessment{}).Where("user_id = ?", userID)
	if assessmentType != "" {
		query = query.Where("type = ?", assessmentType)
	}
	if severity != "" {
		query = query.Where("severity = ?", severity)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assessments []*model.Assessment
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&assessments).Error
	return assessments, total, err
}

// StatsByType returns per-type count and average percentage for a user
func (r *AssessmentRepository) StatsByType(userID string) ([]*model.AssessmentTypeStat, error) {
	var stats []*model.AssessmentTypeStat
	err := r.db.Model(&model.Assessment{}).
		Select("type, COUNT(*) AS count, AVG(percentage) AS average_score").
		Where("user_id = ?", userID).
		Group("type").
		Scan(&stats).Error
	return stats, err
}

// Latest returns the most recent assessment of one type, without responses
func (r *AssessmentRepository) Latest(userID, assessmentType string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Where("user_id = ? AND type = ?", userID, assessmentType).
		Order("created_at DESC").First(&assessment).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// Delete removes an assessment and its responses
func (r *AssessmentRepository) Delete(id, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.AssessmentResponse{}, "assessment_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Assessment{}, "id = ? AND user_id = ?", id, userID).Error
	})
}

package repository

import (
	"github.com/ashwinyue/mindwell/internal/model"
	"gorm.io/gorm"
)

// CounselorRepository counselor directory data access
type CounselorRepository struct {
	db *gorm.DB
}

// NewCounselorRepository creates the counselor repository
func NewCounselorRepository(db *gorm.DB) *CounselorRepository {
	return &CounselorRepository{db: db}
}

// Create inserts a counselor
func (r *CounselorRepository) Create(counselor *model.Counselor) error {
	return r.db.Create(counselor).Error
}

// List filters by email (exact), name (case-insensitive substring) and active
func (r *CounselorRepository) List(email, name string, active *bool) ([]*model.Counselor, error) {
	query := r.db.Model(&model.Counselor{})
	if email != "" {
		query = query.Where("email = ?", email)
	}
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}

	var counselors []*model.Counselor
	err := query.Order("name ASC").Find(&counselors).Error
	return counselors, err
}

// FindActiveByEmail fetches an active counselor by exact email
func (r *CounselorRepository) FindActiveByEmail(email string) (*model.Counselor, error) {
	var counselor model.Counselor
	err := r.db.Where("email = ? AND is_active = ?", email, true).First(&counselor).Error
	if err != nil {
		return nil, err
	}
	return &counselor, nil
}

// FindActiveByName fetches the first active counselor whose name contains
// the query, case-insensitively
func (r *CounselorRepository) FindActiveByName(name string) (*model.Counselor, error) {
	var counselor model.Counselor
	err := r.db.Where("name ILIKE ? AND is_active = ?", "%"+name+"%", true).First(&counselor).Error
	if err != nil {
		return nil, err
	}
	return &counselor, nil
}

package repository

import (
	"github.com/ashwinyue/mindwell/internal/model"
	"gorm.io/gorm"
)

// ResourceRepository resource catalog data access
type ResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates the resource repository
func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// Create inserts a resource
func (r *ResourceRepository) Create(resource *model.Resource) error {
	return r.db.Create(resource).Error
}

// GetByID fetches a resource by id
func (r *ResourceRepository) GetByID(id string) (*model.Resource, error) {
	var resource model.Resource
	if err := r.db.Where("id = ?", id).First(&resource).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// List returns active resources with optional filters, best rated first
func (r *ResourceRepository) List(category, resourceType string, emergency *bool, offset, limit int) ([]*model.Resource, int64, error) {
	query := r.db.Model(&model.Resource{}).Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if resourceType != "" {
		query = query.Where("type = ?", resourceType)
	}
	if emergency != nil {
		query = query.Where("is_emergency = ?", *emergency)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var resources []*model.Resource
	err := query.Order("rating DESC, views DESC").Offset(offset).Limit(limit).Find(&resources).Error
	return resources, total, err
}

// ListAllActive returns every active resource, used by the chat catalog cache
func (r *ResourceRepository) ListAllActive() ([]*model.Resource, error) {
	var resources []*model.Resource
	err := r.db.Where("is_active = ?", true).Order("rating DESC, views DESC").Find(&resources).Error
	return resources, err
}

// IncrementViews bumps the view counter
func (r *ResourceRepository) IncrementViews(id string) error {
	return r.db.Model(&model.Resource{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// Package resource serves the curated resource catalog.
package resource

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/ashwinyue/mindwell/internal/model"
)

var ErrResourceNotFound = errors.New("resource not found")

// ResourceStore is the catalog's persistence surface
type ResourceStore interface {
	GetByID(id string) (*model.Resource, error)
	List(category, resourceType string, emergency *bool, offset, limit int) ([]*model.Resource, int64, error)
	ListAllActive() ([]*model.Resource, error)
	IncrementViews(id string) error
}

// Service reads the resource catalog
type Service struct {
	resources ResourceStore
}

// NewService creates the resource service
func NewService(resources ResourceStore) *Service {
	return &Service{resources: resources}
}

// List returns a catalog page filtered by category, type and emergency flag,
// best-rated first
func (s *Service) List(ctx context.Context, category, resourceType string, emergency *bool, page, limit int) ([]*model.Resource, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	resources, total, err := s.resources.List(category, resourceType, emergency, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list resources: %w", err)
	}
	return resources, total, nil
}

// Get returns one resource and counts the view
func (s *Service) Get(ctx context.Context, id string) (*model.Resource, error) {
	resource, err := s.resources.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	if err := s.resources.IncrementViews(id); err != nil {
		log.Printf("warning: failed to count view for resource %s: %v", id, err)
	}
	return resource, nil
}

// ListResources returns every active catalog entry, for the chat
// resource-list intent
func (s *Service) ListResources(ctx context.Context) ([]*model.Resource, error) {
	return s.resources.ListAllActive()
}

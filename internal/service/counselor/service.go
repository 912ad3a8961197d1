// Package counselor exposes the counselor directory.
package counselor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashwinyue/mindwell/internal/model"
)

// CounselorStore is the directory's persistence surface
type CounselorStore interface {
	Create(counselor *model.Counselor) error
	List(email, name string, active *bool) ([]*model.Counselor, error)
	FindActiveByName(name string) (*model.Counselor, error)
}

// Service reads and maintains the counselor directory
type Service struct {
	counselors CounselorStore
}

// NewService creates the counselor service
func NewService(counselors CounselorStore) *Service {
	return &Service{counselors: counselors}
}

// List filters the directory by exact email, case-insensitive name substring
// and active flag
func (s *Service) List(ctx context.Context, email, name string, active *bool) ([]*model.Counselor, error) {
	counselors, err := s.counselors.List(email, name, active)
	if err != nil {
		return nil, fmt.Errorf("list counselors: %w", err)
	}
	return counselors, nil
}

// ListActiveCounselors returns the active directory entries, for the chat
// counselor-list intent
func (s *Service) ListActiveCounselors(ctx context.Context) ([]*model.Counselor, error) {
	active := true
	return s.List(ctx, "", "", &active)
}

// FindCounselorByName resolves the first active counselor whose name
// contains the query. A nil counselor with a nil error means no match.
func (s *Service) FindCounselorByName(ctx context.Context, name string) (*model.Counselor, error) {
	if name == "" {
		return nil, nil
	}
	counselor, err := s.counselors.FindActiveByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find counselor: %w", err)
	}
	return counselor, nil
}

// Create adds a directory entry
func (s *Service) Create(ctx context.Context, name, email, specialties string) (*model.Counselor, error) {
	if name == "" || email == "" {
		return nil, errors.New("name and email are required")
	}
	counselor := &model.Counselor{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Specialties: specialties,
		IsActive:    true,
	}
	if err := s.counselors.Create(counselor); err != nil {
		return nil, fmt.Errorf("create counselor: %w", err)
	}
	return counselor, nil
}

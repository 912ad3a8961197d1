package repository

import "gorm.io/gorm"

// Repositories aggregates all data access objects
type Repositories struct {
	DB         *gorm.DB
	Auth       *AuthRepository
	Session    *SessionRepository
	Booking    *BookingRepository
	Counselor  *CounselorRepository
	Resource   *ResourceRepository
	Assessment *AssessmentRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:         db,
		Auth:       NewAuthRepository(db),
		Session:    NewSessionRepository(db),
		Booking:    NewBookingRepository(db),
		Counselor:  NewCounselorRepository(db),
		Resource:   NewResourceRepository(db),
		Assessment: NewAssessmentRepository(db),
	}
}

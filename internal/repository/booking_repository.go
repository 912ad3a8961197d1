package repository

import (
	"github.com/ashwinyue/mindwell/internal/model"
	"gorm.io/gorm"
)

// BookingRepository booking data access
type BookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates the booking repository
func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a booking
func (r *BookingRepository) Create(booking *model.Booking) error {
	return r.db.Create(booking).Error
}

// GetByID fetches a booking by id
func (r *BookingRepository) GetByID(id string) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListByUser returns a user's bookings, newest first
func (r *BookingRepository) ListByUser(userID string) ([]*model.Booking, error) {
	var bookings []*model.Booking
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

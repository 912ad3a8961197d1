package model

import "time"

// Booking statuses. Only "requested" is set by this service; confirmation
// and decline happen on the counselor's side.
const (
	BookingStatusRequested = "requested"
	BookingStatusConfirmed = "confirmed"
	BookingStatusDeclined  = "declined"
)

// Booking a counseling session request
type Booking struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UserID         string    `gorm:"index;size:36;not null" json:"user_id"`
	CounselorID    string    `gorm:"index;size:36;not null" json:"counselor_id"`
	CounselorName  string    `gorm:"size:200" json:"counselor_name"`
	CounselorEmail string    `gorm:"size:255" json:"counselor_email"`
	Reason         string    `gorm:"type:text;not null" json:"reason"`
	PreferredTime  string    `gorm:"size:50;default:16:00-17:00" json:"preferred_time"`
	Status         string    `gorm:"index;size:20;default:requested" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Counselor a member of the counselor directory
type Counselor struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Email       string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Specialties string    `gorm:"size:500" json:"specialties"` // comma separated
	IsActive    bool      `gorm:"index;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName table names
func (Booking) TableName() string {
	return "bookings"
}

func (Counselor) TableName() string {
	return "counselors"
}

package model

import "time"

// Resource a curated mental-health resource (article, helpline, app, ...)
type Resource struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Description  string    `gorm:"size:1000;not null" json:"description"`
	Category     string    `gorm:"index;size:50;not null" json:"category"` // articles, helplines, crisis-support, ...
	Type         string    `gorm:"index;size:30;not null" json:"type"`     // article, video, helpline, app, ...
	Link         string    `gorm:"size:500;not null" json:"link"`
	Author       string    `gorm:"size:200" json:"author,omitempty"`
	Organization string    `gorm:"size:200" json:"organization,omitempty"`
	Tags         string    `gorm:"size:500" json:"tags,omitempty"` // comma separated, lowercase
	Rating       float64   `gorm:"default:5" json:"rating"`
	IsEmergency  bool      `gorm:"index;default:false" json:"is_emergency"`
	IsFree       bool      `gorm:"default:true" json:"is_free"`
	IsActive     bool      `gorm:"index;default:true" json:"is_active"`
	Views        int64     `gorm:"default:0" json:"views"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (Resource) TableName() string {
	return "resources"
}

package repository

import (
	"github.com/ashwinyue/mindwell/internal/model"
	"gorm.io/gorm"
)

// SessionRepository session and message data access
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates the session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a session together with its pre-seeded messages
func (r *SessionRepository) Create(session *model.Session) error {
	return r.db.Create(session).Error
}

// GetByID fetches a session with its messages, ordered by timestamp
func (r *SessionRepository) GetByID(id, userID string) (*model.Session, error) {
	var session model.Session
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp ASC, created_at ASC")
	}).Where("id = ? AND user_id = ?", id, userID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetActiveByID fetches an active session owned by userID
func (r *SessionRepository) GetActiveByID(id, userID string) (*model.Session, error) {
	var session model.Session
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp ASC, created_at ASC")
	}).Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// List returns sessions without their messages, newest first
func (r *SessionRepository) List(userID, sessionType string, active *bool, offset, limit int) ([]*model.Session, int64, error) {
	query := r.db.Model(&model.Session{}).Where("user_id = ?", userID)
	if sessionType != "" {
		query = query.Where("type = ?", sessionType)
	}
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sessions []*model.Session
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&sessions).Error
	return sessions, total, err
}

// Update saves session fields (not messages)
func (r *SessionRepository) Update(session *model.Session) error {
	return r.db.Omit("Messages").Save(session).Error
}

// Delete removes a session and its messages
func (r *SessionRepository) Delete(id, userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Message{}, "session_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Session{}, "id = ? AND user_id = ?", id, userID).Error
	})
}

// AppendMessage inserts one message
func (r *SessionRepository) AppendMessage(msg *model.Message) error {
	return r.db.Create(msg).Error
}

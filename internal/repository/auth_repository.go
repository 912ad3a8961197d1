package repository

import (
	"github.com/ashwinyue/mindwell/internal/model"
	"gorm.io/gorm"
)

// AuthRepository user and token data access
type AuthRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates the auth repository
func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

// CreateUser inserts a user
func (r *AuthRepository) CreateUser(user *model.User) error {
	return r.db.Create(user).Error
}

// GetUserByID fetches a user by id
func (r *AuthRepository) GetUserByID(id string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail fetches a user by email
func (r *AuthRepository) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser saves a user
func (r *AuthRepository) UpdateUser(user *model.User) error {
	return r.db.Save(user).Error
}

// CreateToken inserts a token record
func (r *AuthRepository) CreateToken(token *model.AuthToken) error {
	return r.db.Create(token).Error
}

// GetTokenByValue fetches a token record by token string
func (r *AuthRepository) GetTokenByValue(token string) (*model.AuthToken, error) {
	var record model.AuthToken
	if err := r.db.Where("token = ?", token).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// RevokeToken marks a token as revoked
func (r *AuthRepository) RevokeToken(id string) error {
	return r.db.Model(&model.AuthToken{}).Where("id = ?", id).Update("is_revoked", true).Error
}

// RevokeAllUserTokens revokes every token issued to a user
func (r *AuthRepository) RevokeAllUserTokens(userID string) error {
	return r.db.Model(&model.AuthToken{}).Where("user_id = ?", userID).Update("is_revoked", true).Error
}

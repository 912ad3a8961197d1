// Package auth issues and validates the JWT token pairs guarding the API.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashwinyue/mindwell/internal/model"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid token")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrValidation         = errors.New("validation failed")
)

var (
	jwtSecretOnce sync.Once
	jwtSecret     string
)

// getJwtSecret reads the signing secret from the environment, generating a
// random per-process one when unset
func getJwtSecret() string {
	jwtSecretOnce.Do(func() {
		if envSecret := strings.TrimSpace(os.Getenv("JWT_SECRET")); envSecret != "" {
			jwtSecret = envSecret
			return
		}

		randomBytes := make([]byte, 32)
		if _, err := rand.Read(randomBytes); err != nil {
			panic(fmt.Sprintf("failed to generate JWT secret: %v", err))
		}
		jwtSecret = base64.StdEncoding.EncodeToString(randomBytes)
	})

	return jwtSecret
}

// AuthStore is the user and token persistence surface
type AuthStore interface {
	CreateUser(user *model.User) error
	GetUserByID(id string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	UpdateUser(user *model.User) error
	CreateToken(token *model.AuthToken) error
	GetTokenByValue(token string) (*model.AuthToken, error)
	RevokeToken(id string) error
	RevokeAllUserTokens(userID string) error
}

// Service registers users and manages their token pairs
type Service struct {
	store AuthStore
}

// NewService creates the auth service
func NewService(store AuthStore) *Service {
	return &Service{store: store}
}

// RegisterInput signup fields
type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// TokenPair an access token with its refresh token
type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates a user with a hashed password
func (s *Service) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}
	if len(input.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	if existing, _ := s.store.GetUserByEmail(input.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a token pair
func (s *Service) Login(ctx context.Context, email, password string) (*model.User, *TokenPair, error) {
	user, err := s.store.GetUserByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.generateTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// ValidateToken parses an access token and returns its user, rejecting
// revoked tokens
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*model.User, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	record, err := s.store.GetTokenByValue(tokenString)
	if err != nil || record == nil || record.IsRevoked {
		return nil, ErrInvalidToken
	}

	user, err := s.store.GetUserByID(userID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	return user, nil
}

// RefreshToken rotates a refresh token into a fresh pair, revoking the old one
func (s *Service) RefreshToken(ctx context.Context, refreshTokenString string) (*TokenPair, error) {
	claims, err := s.parseToken(refreshTokenString)
	if err != nil {
		return nil, err
	}

	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return nil, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}

	record, err := s.store.GetTokenByValue(refreshTokenString)
	if err != nil || record == nil || record.IsRevoked {
		return nil, ErrInvalidToken
	}

	user, err := s.store.GetUserByID(userID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	_ = s.store.RevokeToken(record.ID)

	return s.generateTokens(user)
}

// Logout revokes one access token
func (s *Service) Logout(ctx context.Context, tokenString string) error {
	record, err := s.store.GetTokenByValue(tokenString)
	if err != nil {
		return ErrInvalidToken
	}
	return s.store.RevokeToken(record.ID)
}

// LogoutAll revokes every token issued to a user
func (s *Service) LogoutAll(ctx context.Context, userID string) error {
	return s.store.RevokeAllUserTokens(userID)
}

// GetUser returns a user by id
func (s *Service) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.store.GetUserByID(userID)
}

// ChangePassword rotates the password and revokes all sessions
func (s *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	user, err := s.store.GetUserByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hashedPassword)
	if err := s.store.UpdateUser(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	// Force re-login everywhere after a password change.
	return s.store.RevokeAllUserTokens(userID)
}

func (s *Service) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(getJwtSecret()), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// generateTokens signs an access/refresh pair and stores both records
func (s *Service) generateTokens(user *model.User) (*TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     now.Add(accessTokenTTL).Unix(),
		"iat":     now.Unix(),
		"type":    "access",
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(getJwtSecret()))
	if err != nil {
		return nil, err
	}

	refreshClaims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     now.Add(refreshTokenTTL).Unix(),
		"iat":     now.Unix(),
		"type":    "refresh",
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(getJwtSecret()))
	if err != nil {
		return nil, err
	}

	_ = s.store.CreateToken(&model.AuthToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     accessToken,
		TokenType: "access_token",
		ExpiresAt: now.Add(accessTokenTTL),
	})
	_ = s.store.CreateToken(&model.AuthToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     refreshToken,
		TokenType: "refresh_token",
		ExpiresAt: now.Add(refreshTokenTTL),
	})

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

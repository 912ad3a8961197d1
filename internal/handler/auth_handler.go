package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/mindwell/internal/middleware"
	"github.com/ashwinyue/mindwell/internal/service"
	"github.com/ashwinyue/mindwell/internal/service/auth"
)

// AuthHandler signup, login and token management
type AuthHandler struct {
	svc *service.Services
}

// NewAuthHandler creates the auth handler
func NewAuthHandler(svc *service.Services) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register registers a new user
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	user, err := h.svc.Auth.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			Conflict(c, err.Error())
		case errors.Is(err, auth.ErrValidation):
			BadRequest(c, err.Error())
		default:
			InternalServerError(c, "Failed to register user")
		}
		return
	}

	Created(c, "User registered successfully", gin.H{"user": user.ToUserInfo()})
}

// Login verifies credentials and returns a token pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	user, pair, err := h.svc.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrAccountDisabled):
			Unauthorized(c, err.Error())
		default:
			InternalServerError(c, "Failed to login")
		}
		return
	}

	c.JSON(200, SuccessResponse{
		Success: true,
		Message: "Login successful",
		Data: gin.H{
			"user":          user.ToUserInfo(),
			"token":         pair.AccessToken,
			"refresh_token": pair.RefreshToken,
		},
	})
}

// RefreshToken rotates a refresh token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters")
		return
	}

	pair, err := h.svc.Auth.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		Unauthorized(c, "Invalid refresh token")
		return
	}

	Success(c, gin.H{
		"token":         pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// Logout revokes the current access token
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.GetToken(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.svc.Auth.Logout(c.Request.Context(), token); err != nil {
		InternalServerError(c, "Failed to logout")
		return
	}
	SuccessMessage(c, "Logout successful")
}

// LogoutAll revokes every token of the current user
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.svc.Auth.LogoutAll(c.Request.Context(), userID); err != nil {
		InternalServerError(c, "Failed to logout from all devices")
		return
	}
	SuccessMessage(c, "Logged out from all devices")
}

// Me returns the current user
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}
	Success(c, gin.H{"user": user.ToUserInfo()})
}

// ChangePassword rotates the current user's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	err := h.svc.Auth.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrWrongPassword):
			BadRequest(c, "Current password is incorrect")
		case errors.Is(err, auth.ErrValidation):
			BadRequest(c, err.Error())
		default:
			InternalServerError(c, "Failed to change password")
		}
		return
	}
	SuccessMessage(c, "Password changed successfully. Please login again.")
}

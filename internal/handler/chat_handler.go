package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/mindwell/internal/middleware"
	"github.com/ashwinyue/mindwell/internal/service"
	"github.com/ashwinyue/mindwell/internal/service/chat"
)

// ChatHandler chat sessions and conversation turns
type ChatHandler struct {
	svc *service.Services
}

// NewChatHandler creates the chat handler
func NewChatHandler(svc *service.Services) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// StartSession opens a new chat session
func (h *ChatHandler) StartSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	var req struct {
		Type  string `json:"type"`
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	session, err := h.svc.Chat.StartSession(c.Request.Context(), userID, req.Type, req.Title)
	if err != nil {
		if errors.Is(err, chat.ErrValidation) {
			BadRequest(c, err.Error())
			return
		}
		InternalServerError(c, "Failed to start session")
		return
	}

	Created(c, "Session started successfully", gin.H{"session": session})
}

// SendMessage runs one conversation turn
func (h *ChatHandler) SendMessage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	var req struct {
		Content string `json:"content"`
		Mood    string `json:"mood"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	result, err := h.svc.Chat.SendMessage(c.Request.Context(), c.Param("id"), userID, req.Content, req.Mood)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrSessionNotFound):
			NotFound(c, "Session not found")
		case errors.Is(err, chat.ErrValidation):
			BadRequest(c, err.Error())
		default:
			InternalServerError(c, "Failed to send message")
		}
		return
	}

	Success(c, result)
}

// GetSession returns one session with its messages
func (h *ChatHandler) GetSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	session, err := h.svc.Chat.GetSession(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			NotFound(c, "Session not found")
			return
		}
		InternalServerError(c, "Failed to get session")
		return
	}

	Success(c, gin.H{"session": session})
}

// ListSessions returns the caller's sessions, newest first
func (h *ChatHandler) ListSessions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	page, limit := getPagination(c, 10)

	var active *bool
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			BadRequest(c, "Invalid active filter")
			return
		}
		active = &parsed
	}

	sessions, total, err := h.svc.Chat.ListSessions(c.Request.Context(), userID, c.Query("type"), active, page, limit)
	if err != nil {
		InternalServerError(c, "Failed to get sessions")
		return
	}

	Success(c, gin.H{
		"sessions":   sessions,
		"pagination": NewPagination(page, limit, total),
	})
}

// EndSession closes a session and records the wrap-up
func (h *ChatHandler) EndSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	var req struct {
		Summary         string `json:"summary"`
		FeedbackRating  int    `json:"feedbackRating"`
		FeedbackComment string `json:"feedbackComment"`
	}
	// All wrap-up fields are optional, so a bare POST with no body ends
	// the session too.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	session, err := h.svc.Chat.EndSession(c.Request.Context(), c.Param("id"), userID, chat.EndSessionInput{
		Summary:         req.Summary,
		FeedbackRating:  req.FeedbackRating,
		FeedbackComment: req.FeedbackComment,
	})
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrSessionNotFound):
			NotFound(c, "Active session not found")
		case errors.Is(err, chat.ErrValidation):
			BadRequest(c, err.Error())
		default:
			InternalServerError(c, "Failed to end session")
		}
		return
	}

	Success(c, gin.H{"session": session})
}

// DeleteSession removes a session and its messages
func (h *ChatHandler) DeleteSession(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.svc.Chat.DeleteSession(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			NotFound(c, "Session not found")
			return
		}
		InternalServerError(c, "Failed to delete session")
		return
	}

	SuccessMessage(c, "Session deleted successfully")
}

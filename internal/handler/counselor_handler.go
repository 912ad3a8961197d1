package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/mindwell/internal/service"
)

// CounselorHandler the counselor directory
type CounselorHandler struct {
	svc *service.Services
}

// NewCounselorHandler creates the counselor handler
func NewCounselorHandler(svc *service.Services) *CounselorHandler {
	return &CounselorHandler{svc: svc}
}

// List filters the directory by email, name and active flag
func (h *CounselorHandler) List(c *gin.Context) {
	var active *bool
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			BadRequest(c, "Invalid active filter")
			return
		}
		active = &parsed
	}

	counselors, err := h.svc.Counselor.List(c.Request.Context(), c.Query("email"), c.Query("name"), active)
	if err != nil {
		InternalServerError(c, "Failed to get counselors")
		return
	}

	Success(c, gin.H{"counselors": counselors})
}

// Create adds a directory entry
func (h *CounselorHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Specialties string `json:"specialties"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	counselor, err := h.svc.Counselor.Create(c.Request.Context(), req.Name, req.Email, req.Specialties)
	if err != nil {
		InternalServerError(c, "Failed to create counselor")
		return
	}

	Created(c, "Counselor created", gin.H{"counselor": counselor})
}

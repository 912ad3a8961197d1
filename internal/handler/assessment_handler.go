package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/mindwell/internal/middleware"
	"github.com/ashwinyue/mindwell/internal/service"
	"github.com/ashwinyue/mindwell/internal/service/assessment"
)

// AssessmentHandler self-assessment questionnaires and results
type AssessmentHandler struct {
	svc *service.Services
}

// NewAssessmentHandler creates the assessment handler
func NewAssessmentHandler(svc *service.Services) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

// Types returns the questionnaire catalog
func (h *AssessmentHandler) Types(c *gin.Context) {
	Success(c, gin.H{"types": h.svc.Assessment.ListTypes()})
}

// Questions returns the full questionnaire for one type. The :id segment
// carries the assessment type here.
func (h *AssessmentHandler) Questions(c *gin.Context) {
	template, err := h.svc.Assessment.Questions(c.Param("id"))
	if err != nil {
		if errors.Is(err, assessment.ErrTypeNotFound) {
			NotFound(c, "Assessment type not found")
			return
		}
		InternalServerError(c, "Failed to get assessment questions")
		return
	}

	Success(c, gin.H{
		"type":        template.Type,
		"title":       template.Title,
		"description": template.Description,
		"questions":   template.Questions,
	})
}

// Submit scores and stores a set of answers. The :id segment carries the
// assessment type here.
func (h *AssessmentHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	var req assessment.SubmitInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	result, err := h.svc.Assessment.Submit(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, assessment.ErrTypeNotFound):
			NotFound(c, "Assessment type not found")
		case errors.Is(err, assessment.ErrValidation):
			BadRequest(c, err.Error())
		default:
			InternalServerError(c, "Failed to submit assessment")
		}
		return
	}

	Created(c, "Assessment submitted successfully", gin.H{"assessment": result})
}

// Get returns one scored assessment
func (h *AssessmentHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	result, err := h.svc.Assessment.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, assessment.ErrAssessmentNotFound) {
			NotFound(c, "Assessment not found")
			return
		}
		InternalServerError(c, "Failed to get assessment")
		return
	}

	Success(c, gin.H{"assessment": result})
}

// List returns the caller's assessment history with per-type stats
func (h *AssessmentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	page, limit := getPagination(c, 10)

	assessments, total, err := h.svc.Assessment.List(c.Request.Context(), userID, c.Query("type"), c.Query("severity"), page, limit)
	if err != nil {
		InternalServerError(c, "Failed to get assessments")
		return
	}

	stats, err := h.svc.Assessment.Stats(c.Request.Context(), userID)
	if err != nil {
		InternalServerError(c, "Failed to get assessments")
		return
	}

	Success(c, gin.H{
		"assessments": assessments,
		"stats":       stats,
		"pagination":  NewPagination(page, limit, total),
	})
}

// Delete removes one assessment
func (h *AssessmentHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.svc.Assessment.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, assessment.ErrAssessmentNotFound) {
			NotFound(c, "Assessment not found")
			return
		}
		InternalServerError(c, "Failed to delete assessment")
		return
	}

	SuccessMessage(c, "Assessment deleted successfully")
}

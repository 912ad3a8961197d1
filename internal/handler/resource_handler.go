package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/mindwell/internal/service"
	"github.com/ashwinyue/mindwell/internal/service/resource"
)

// ResourceHandler the curated resource catalog
type ResourceHandler struct {
	svc *service.Services
}

// NewResourceHandler creates the resource handler
func NewResourceHandler(svc *service.Services) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

// List returns a catalog page
func (h *ResourceHandler) List(c *gin.Context) {
	page, limit := getPagination(c, 20)

	var emergency *bool
	if raw := c.Query("emergency"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			BadRequest(c, "Invalid emergency filter")
			return
		}
		emergency = &parsed
	}

	resources, total, err := h.svc.Resource.List(c.Request.Context(), c.Query("category"), c.Query("type"), emergency, page, limit)
	if err != nil {
		InternalServerError(c, "Failed to get resources")
		return
	}

	Success(c, gin.H{
		"resources":  resources,
		"pagination": NewPagination(page, limit, total),
	})
}

// Get returns one resource and counts the view
func (h *ResourceHandler) Get(c *gin.Context) {
	res, err := h.svc.Resource.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, resource.ErrResourceNotFound) {
			NotFound(c, "Resource not found")
			return
		}
		InternalServerError(c, "Failed to get resource")
		return
	}

	Success(c, gin.H{"resource": res})
}

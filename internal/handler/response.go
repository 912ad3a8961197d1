package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SuccessResponse standard success envelope
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse standard error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Success 200 response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

// SuccessMessage 200 response with a message and no payload
func SuccessMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: msg})
}

// Created 201 response
func Created(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: msg, Data: data})
}

// BadRequest 400 response
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Message: msg})
}

// Unauthorized 401 response
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Message: msg})
}

// NotFound 404 response
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: msg})
}

// Conflict 409 response
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, ErrorResponse{Message: msg})
}

// InternalServerError 500 response
func InternalServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: msg})
}

// Pagination page descriptor attached to list payloads
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// NewPagination builds the page descriptor
func NewPagination(page, limit int, total int64) Pagination {
	if limit < 1 {
		limit = 1
	}
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return Pagination{Current: page, Pages: pages, Total: total}
}

// getPagination parses page/limit query parameters. Out-of-range values are
// clamped here so the response pagination matches what the service returns.
func getPagination(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}

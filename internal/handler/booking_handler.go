package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/mindwell/internal/middleware"
	"github.com/ashwinyue/mindwell/internal/service"
	"github.com/ashwinyue/mindwell/internal/service/booking"
)

// BookingHandler counseling session requests
type BookingHandler struct {
	svc *service.Services
}

// NewBookingHandler creates the booking handler
func NewBookingHandler(svc *service.Services) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Create books a counseling session and notifies the counselor
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	var req booking.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid parameters: "+err.Error())
		return
	}

	created, emailStatus, err := h.svc.Booking.Create(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrCounselorNotFound):
			NotFound(c, "Counselor not found")
		case errors.Is(err, booking.ErrValidation):
			BadRequest(c, err.Error())
		default:
			InternalServerError(c, "Failed to create booking")
		}
		return
	}

	Created(c, "Counseling request sent", gin.H{
		"booking": created,
		"email":   emailStatus,
	})
}

// List returns the caller's bookings
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		Unauthorized(c, "Not authenticated")
		return
	}

	bookings, err := h.svc.Booking.ListByUser(c.Request.Context(), userID)
	if err != nil {
		InternalServerError(c, "Failed to get bookings")
		return
	}

	Success(c, gin.H{"bookings": bookings})
}

package handlers

import (
	"errors"
	"net/http"

	"gymrat/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the schedule and reservation endpoints.
type BookingHandler struct {
	Booking booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Booking: svc}
}

// GetScheduleHandler lists classes with open slots, ordered for display.
func (h *BookingHandler) GetScheduleHandler(c *gin.Context) {
	logger := getLogger(c)

	classes, err := h.Booking.Schedule(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"classes": classes})
}

type reserveRequest struct {
	ClassID string `json:"class_id" binding:"required"`
}

// ReserveHandler books a class for the authenticated member.
func (h *BookingHandler) ReserveHandler(c *gin.Context) {
	logger := getLogger(c)

	var req reserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	userID := c.GetString("userID")
	booked, err := h.Booking.Reserve(c.Request.Context(), userID, req.ClassID)
	if err != nil {
		var dup booking.DuplicateBookingError
		var missing booking.ClassNotFoundError
		var full booking.ClassFullError
		switch {
		case errors.As(err, &dup):
			c.JSON(http.StatusConflict, gin.H{"error": dup.Error()})
		case errors.As(err, &missing):
			c.JSON(http.StatusNotFound, gin.H{"error": missing.Error()})
		case errors.As(err, &full):
			c.JSON(http.StatusConflict, gin.H{"error": full.Error()})
		default:
			logger.Error("Booking failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "System mismatch. Try again later."})
		}
		return
	}
	c.JSON(http.StatusCreated, booked)
}

// GetMyBookingsHandler returns the authenticated member's bookings,
// newest first.
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	bookings, err := h.Booking.ListForUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

package handlers

import (
	"net/http"

	"gymrat/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the authenticated member's profile endpoints.
type UserHandler struct {
	Session auth.SessionService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(session auth.SessionService) *UserHandler {
	return &UserHandler{Session: session}
}

// GetProfileHandler returns the authenticated member's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	profile, ok, err := h.Session.GetProfile(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to get profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": userID, "profile": profile})
}

type updateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateProfileHandler renames the authenticated member.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	userID := c.GetString("userID")
	if err := h.Session.UpdateDisplayName(c.Request.Context(), userID, req.Name); err != nil {
		logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

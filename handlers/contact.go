package handlers

import (
	"net/http"

	"gymrat/services/contact"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler exposes the contact form endpoint.
type ContactHandler struct {
	Contact contact.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Contact: svc}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SubmitMessageHandler stores a contact-form inquiry.
func (h *ContactHandler) SubmitMessageHandler(c *gin.Context) {
	logger := getLogger(c)

	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id, err := h.Contact.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		logger.Error("Failed to store message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

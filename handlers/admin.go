package handlers

import (
	"net/http"

	"gymrat/services/admin"
	"gymrat/services/contact"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations.
type AdminHandler struct {
	Admin   admin.AdminService
	Contact contact.ContactService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as admin.AdminService, cs contact.ContactService) *AdminHandler {
	return &AdminHandler{Admin: as, Contact: cs}
}

// GetMetricsHandler returns the dashboard headline numbers.
func (ah *AdminHandler) GetMetricsHandler(c *gin.Context) {
	metrics, err := ah.Admin.GetMetrics(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to compute metrics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute metrics"})
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// GetAllMembersHandler returns all member profiles.
func (ah *AdminHandler) GetAllMembersHandler(c *gin.Context) {
	members, err := ah.Admin.GetAllMembers(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch members", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch members"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetMessagesHandler returns contact inquiries, newest first.
func (ah *AdminHandler) GetMessagesHandler(c *gin.Context) {
	messages, err := ah.Contact.ListNewestFirst(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, messages)
}

package handlers

import (
	"errors"
	"net/http"

	recordsRepo "gymrat/database/repository/records"
	"gymrat/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler exposes the payment flow endpoints.
type CheckoutHandler struct {
	Checkout checkout.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(svc checkout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Checkout: svc}
}

type payRequest struct {
	Plan  string  `json:"plan" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

// PayHandler records a payment and activates the purchased plan for the
// authenticated member.
func (h *CheckoutHandler) PayHandler(c *gin.Context) {
	logger := getLogger(c)

	var req payRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkout session"})
		return
	}

	userID := c.GetString("userID")
	payment, err := h.Checkout.Pay(c.Request.Context(), userID, req.Plan, req.Price)
	if err != nil {
		var missing recordsRepo.ExistenceError
		if errors.As(err, &missing) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Member profile not found"})
			return
		}
		logger.Error("Payment failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment failed"})
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GetMyPaymentsHandler returns the authenticated member's ledger,
// newest first.
func (h *CheckoutHandler) GetMyPaymentsHandler(c *gin.Context) {
	logger := getLogger(c)

	userID := c.GetString("userID")
	payments, err := h.Checkout.ListPayments(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load payments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments})
}

package handlers

import (
	"net/http"

	"gymrat/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the sign-up/sign-in/sign-out endpoints.
type AuthHandler struct {
	Session auth.SessionService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(session auth.SessionService) *AuthHandler {
	return &AuthHandler{Session: session}
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Plan     string `json:"plan"`
}

// SignUpHandler creates a new member and opens a session.
func (h *AuthHandler) SignUpHandler(c *gin.Context) {
	logger := getLogger(c)

	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Session.SignUp(c.Request.Context(), req.Name, req.Email, req.Password, req.Plan)
	if err != nil {
		logger.Error("Sign-up failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignInHandler opens a session for an email, creating the account if it
// does not exist yet.
func (h *AuthHandler) SignInHandler(c *gin.Context) {
	logger := getLogger(c)

	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Session.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Error("Sign-in failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOutHandler closes the active session.
func (h *AuthHandler) SignOutHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Session.SignOut(c.Request.Context(), c.GetString("token")); err != nil {
		logger.Error("Sign-out failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/TSC-Home/svelte-grow-todo/internal/domain"
	"github.com/TSC-Home/svelte-grow-todo/internal/http/middleware"
	"github.com/TSC-Home/svelte-grow-todo/internal/logger"
	"github.com/TSC-Home/svelte-grow-todo/internal/service"

	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (h *Handler) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "bad request"})
		return
	}

	user, token, err := h.AuthService.SignUp(c.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		case errors.Is(err, domain.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email already exists"})
		default:
			logger.Error("sign up failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred during sign up"})
		}
		return
	}

	setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    gin.H{"id": user.ID, "email": user.Email, "username": user.Username},
	})
}

func (h *Handler) SignIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "bad request"})
		return
	}

	user, token, err := h.AuthService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			// fixed message, never says which field was wrong
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid email or password"})
		default:
			logger.Error("sign in failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred during sign in"})
		}
		return
	}

	setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    gin.H{"id": user.ID, "email": user.Email, "username": user.Username},
	})
}

func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Me(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	user, err := h.UserRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"username":   user.Username,
		"created_at": user.CreatedAt,
	})
}

func setAuthCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.AuthCookie, token, int(service.TokenTTL.Seconds()), "/", "", false, true)
}

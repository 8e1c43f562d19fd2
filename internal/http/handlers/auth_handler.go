package handlers

import (
	"github.com/JJB64/IntelliPark/internal/http/middleware"
	"github.com/JJB64/IntelliPark/internal/services"
	"github.com/JJB64/IntelliPark/internal/utils"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

// The passwordHash request field carries the plaintext password; the
// server hashes it. The name is the historical wire contract of the
// mobile client and cannot change.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"passwordHash" binding:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"message": "Login successful!",
		"user":    user.Profile(),
		"token":   token,
	})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	email := middleware.Identity(c)
	if err := h.auth.ChangePassword(c.Request.Context(), email, req.OldPassword, req.NewPassword); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondMessage(c, "Password changed successfully!")
}

package handlers

import (
	"github.com/JJB64/IntelliPark/internal/http/middleware"
	"github.com/JJB64/IntelliPark/internal/services"
	"github.com/JJB64/IntelliPark/internal/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	auth  *services.AuthService
	users *services.UserService
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"passwordHash" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Gender   string `json:"gender"`
}

type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Gender *string `json:"gender"`
	Phone  *string `json:"phone"`
	Bio    *string `json:"bio"`
	Role   *string `json:"role"`
	Image  *string `json:"image"`
}

func NewUserHandler(auth *services.AuthService, users *services.UserService) *UserHandler {
	return &UserHandler{auth: auth, users: users}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, err := h.auth.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Gender:   req.Gender,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"message": "User created successfully!",
		"user":    user.Profile(),
	})
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	err := h.users.Update(c.Request.Context(), middleware.Identity(c), services.UserUpdate{
		Name:   req.Name,
		Gender: req.Gender,
		Phone:  req.Phone,
		Bio:    req.Bio,
		Role:   req.Role,
		Image:  req.Image,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondMessage(c, "User updated successfully!")
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.users.Delete(c.Request.Context(), middleware.Identity(c)); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondMessage(c, "User deleted successfully!")
}

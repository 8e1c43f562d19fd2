package handlers

import (
	"github.com/JJB64/IntelliPark/internal/http/middleware"
	"github.com/JJB64/IntelliPark/internal/services"
	"github.com/JJB64/IntelliPark/internal/utils"
	"github.com/gin-gonic/gin"
)

type PassHandler struct {
	passes *services.PassService
}

type CreatePassRequest struct {
	RegNo       string `json:"regNo" binding:"required"`
	Make        string `json:"make" binding:"required"`
	Model       string `json:"model" binding:"required"`
	Owner       string `json:"owner" binding:"required,email"`
	Role        string `json:"role" binding:"required"`
	QRCode      string `json:"qrCode" binding:"required"`
	Institution string `json:"institution" binding:"required"`
}

type ApprovePassRequest struct {
	PassID string `json:"passid" binding:"required"`
	Status string `json:"status"`
}

func NewPassHandler(passes *services.PassService) *PassHandler {
	return &PassHandler{passes: passes}
}

func (h *PassHandler) Create(c *gin.Context) {
	var req CreatePassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	pass, err := h.passes.Create(c.Request.Context(), services.CreatePassInput{
		RegNo:       req.RegNo,
		Make:        req.Make,
		Model:       req.Model,
		Owner:       req.Owner,
		Role:        req.Role,
		Institution: req.Institution,
		QRCode:      req.QRCode,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"message": "Pass created successfully!",
		"pass":    pass.Summary(),
	})
}

func (h *PassHandler) Approve(c *gin.Context) {
	var req ApprovePassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	if err := h.passes.Approve(c.Request.Context(), req.PassID); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondMessage(c, "Pass approved successfully!")
}

func (h *PassHandler) ListMine(c *gin.Context) {
	passes, err := h.passes.ListByOwner(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, passes)
}

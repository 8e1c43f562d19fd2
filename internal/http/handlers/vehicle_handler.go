package handlers

import (
	"github.com/JJB64/IntelliPark/internal/http/middleware"
	"github.com/JJB64/IntelliPark/internal/services"
	"github.com/JJB64/IntelliPark/internal/utils"
	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicles *services.VehicleService
}

type AddVehicleRequest struct {
	Make  string `json:"make" binding:"required"`
	Model string `json:"model" binding:"required"`
	VIN   string `json:"vin" binding:"required"`
	Color string `json:"color" binding:"required"`
	RegNo string `json:"regNo" binding:"required"`
	Owner string `json:"owner" binding:"required,email"`
}

type EditVehicleRequest struct {
	RegNo string `json:"regNo" binding:"required"`
	Color string `json:"color" binding:"required"`
}

func NewVehicleHandler(vehicles *services.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

func (h *VehicleHandler) Add(c *gin.Context) {
	var req AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	vehicle, err := h.vehicles.Add(c.Request.Context(), services.AddVehicleInput{
		Make:  req.Make,
		Model: req.Model,
		VIN:   req.VIN,
		Color: req.Color,
		RegNo: req.RegNo,
		Owner: req.Owner,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"message": "Vehicle added successfully!",
		"vehicle": vehicle.Summary(),
	})
}

func (h *VehicleHandler) EditDetails(c *gin.Context) {
	var req EditVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	identity := middleware.Identity(c)
	if err := h.vehicles.EditDetails(c.Request.Context(), identity, req.RegNo, req.Color); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondMessage(c, "Vehicle color updated successfully!")
}

func (h *VehicleHandler) ListMine(c *gin.Context) {
	vehicles, err := h.vehicles.ListByOwner(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, vehicles)
}

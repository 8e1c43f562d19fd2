package handlers

import (
	"github.com/JJB64/IntelliPark/internal/http/middleware"
	"github.com/JJB64/IntelliPark/internal/services"
	"github.com/JJB64/IntelliPark/internal/utils"
	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	locations *services.LocationService
}

type AddLocationRequest struct {
	LocationID string `json:"locationid" binding:"required"`
	Owner      string `json:"owner" binding:"required,email"`
}

func NewLocationHandler(locations *services.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations}
}

func (h *LocationHandler) Add(c *gin.Context) {
	var req AddLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	location, err := h.locations.Add(c.Request.Context(), req.LocationID, req.Owner)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"message":  "Location added successfully!",
		"location": location.Summary(),
	})
}

func (h *LocationHandler) ListMine(c *gin.Context) {
	locations, err := h.locations.ListByOwner(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, locations)
}
